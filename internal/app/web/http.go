package web

import (
	"context"
	"fmt"
	"strconv"

	"taco-cloud/internal/common/httpx"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/config"
	"taco-cloud/internal/connections/database"
	"taco-cloud/internal/connections/rabbitmq"
	"taco-cloud/internal/connections/redis"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

// Run connects to Postgres, RabbitMQ and the session backend, then serves the
// web application on port until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, port int) error {
	lg := logger.New("web")
	defer lg.Sync()

	db, err := database.ConnectDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	lg.Info("db_connected", map[string]any{"host": cfg.Database.Host, "database": cfg.Database.Database})

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq connect: %w", err)
	}
	defer rmq.Close()
	if err := rmq.DeclareTopology(); err != nil {
		return err
	}
	lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host, "vhost": cfg.RabbitMQ.VHost})

	sessions, closeSessions, err := openSessions(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	h := Router(Deps{
		Repo:         repository.New(db),
		Sessions:     sessions,
		Publisher:    rmq,
		Renderer:     renderer,
		Log:          lg,
		SessionTTL:   cfg.Session.TTL,
		SecureCookie: cfg.Session.Secure,
	})

	lg.Info("service_started", map[string]any{"port": port, "session_backend": cfg.Session.Backend})
	return httpx.New(":"+strconv.Itoa(port), h).Run(ctx)
}

func openSessions(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.Session.Backend == "memory" {
		return session.NewMemoryStore(), func() {}, nil
	}
	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return session.NewRedisStore(client, cfg.Session.TTL), func() { _ = client.Close() }, nil
}

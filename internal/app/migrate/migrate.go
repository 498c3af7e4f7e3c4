package migrate

import (
	"context"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/config"
	"taco-cloud/internal/connections/database"
)

// Run applies the embedded schema and seed migrations and exits.
func Run(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("migrate")
	defer lg.Sync()

	db, err := database.ConnectDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.Apply(ctx, db, func(name string) {
		lg.Info("migration_applied", map[string]any{"file": name})
	})
}

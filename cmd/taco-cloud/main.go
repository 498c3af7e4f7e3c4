package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taco-cloud/internal/app/migrate"
	"taco-cloud/internal/app/notify"
	"taco-cloud/internal/app/web"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/config"
)

var (
	mode    string
	cfgPath string
	port    int
)

var rootCmd = &cobra.Command{
	Use:   "taco-cloud",
	Short: "Taco Cloud web application and workers",
	Long: `Runs one part of Taco Cloud, selected with --mode:
  web                      - design form, checkout, login and JSON API
  notification-subscriber  - consumes order.placed events
  migrate                  - applies the embedded schema and seed data`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&mode, "mode", "web", "web | notification-subscriber | migrate")
	rootCmd.Flags().StringVar(&cfgPath, "config", "config.yaml", "path to YAML config")
	rootCmd.Flags().IntVar(&port, "port", 0, "web: http port (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	lg := logger.New("bootstrap")
	defer lg.Sync()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": cfgPath})
		return err
	}
	if port != 0 {
		cfg.HTTP.Port = port
	}

	lg.Info("service_starting", map[string]any{"mode": mode})
	if err := start(ctx, cfg); err != nil {
		lg.Error("fatal", err, map[string]any{"mode": mode})
		return err
	}
	return nil
}

func start(ctx context.Context, cfg *config.Config) error {
	switch mode {
	case "web":
		return web.Run(ctx, cfg, cfg.HTTP.Port)
	case "notification-subscriber":
		return notify.Run(ctx, cfg)
	case "migrate":
		return migrate.Run(ctx, cfg)
	default:
		return fmt.Errorf("unknown --mode %q: want web, notification-subscriber or migrate", mode)
	}
}

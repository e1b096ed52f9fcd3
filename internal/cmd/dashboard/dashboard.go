// Package dashboard parses dashboard flags and launches the service.
package dashboard

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/userdash/internal/platform/cmd"
	"github.com/louisbranch/userdash/internal/services/dashboard"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:"localhost:8082"`
	RecordCount int    `env:"RECORD_COUNT" envDefault:"48"`
	Seed        int64  `env:"SEED" envDefault:"0"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.IntVar(&cfg.RecordCount, "records", cfg.RecordCount, "Number of generated users")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Generator seed (0 = random)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.RecordCount < 0 {
		return Config{}, fmt.Errorf("-records must be >= 0, got %d", cfg.RecordCount)
	}
	return cfg, nil
}

// Run starts the dashboard HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDashboard, func(ctx context.Context) error {
		server, err := dashboard.NewServer(dashboard.Config{
			HTTPAddr:    cfg.HTTPAddr,
			RecordCount: cfg.RecordCount,
			Seed:        cfg.Seed,
		})
		if err != nil {
			return fmt.Errorf("init dashboard server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve dashboard: %w", err)
		}
		return nil
	})
}

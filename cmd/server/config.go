package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/spf13/pflag"
)

// loadAppConfig loads the application configuration from flags, environment
// variables and an optional config file.
func loadAppConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the effective configuration once logging is set up.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat,
		"base_path", cfg.Server.BasePath,
		"id_strategy", cfg.Store.IDStrategy,
		"metrics_enabled", cfg.Metrics.Enabled)

	if cfg.Store.SeedFile != "" {
		logger.Debug("Seed configuration", "seed_file_present", true)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Domenick1991/traveldesk/config"
	"github.com/Domenick1991/traveldesk/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	// configPath is the --config flag value
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "traveldeskctl",
	Short: "Operator commands for the traveldesk database",
	Long: `traveldeskctl manages the traveldesk PostgreSQL schema and runs the analytics
reports without going through the HTTP API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the YAML config (default: $CONFIG_PATH or config.yaml)")
}

// resolveConfigPath applies the precedence --config > CONFIG_PATH > config.yaml.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "config.yaml"
}

// openPool loads the config and connects to the configured database.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pool, nil
}

// Package main implements the entry point for the task API server,
// which lets clients create, read, update and delete tasks over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// main is the entry point for the task-api server.
func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the server command with its configuration flags.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Run the task API HTTP server",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			app, err := initializeApp(cfg)
			if err != nil {
				return err
			}

			return app.Run(cmd.Context())
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

// loadConfig reads the configuration, honoring the --config file and any
// flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := []config.Option{config.WithFlags(cmd.Flags())}

	path, err := cmd.Flags().GetString(config.FlagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read --%s flag: %w", config.FlagConfig, err)
	}
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// initializeApp sets up logging and builds the application from cfg.
func initializeApp(cfg *config.Config) (*application, error) {
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment)
	log.Debug("CORS configuration", slog.Any("allowed_origins", cfg.CORS.AllowedOrigins))

	return newApplication(cfg, log)
}

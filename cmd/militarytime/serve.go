package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/militarytime/internal/config"
	"github.com/dmitrymomot/militarytime/internal/server"
	"github.com/dmitrymomot/militarytime/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the validation HTTP API",
		Long:  `Start an HTTP server exposing time-range validation. Settings come from the environment (APP_ENV, LOG_LEVEL, HTTP_*) and an optional .env file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	return cmd
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(server.RequestIDExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	return logger.New(opts...), nil
}

func runServer(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	router := server.NewRouter(log, server.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes))
	srv := server.NewFromConfig(cfg.HTTP, server.WithLogger(log))
	return srv.Run(ctx, router)
}

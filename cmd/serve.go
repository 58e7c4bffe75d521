package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"socialapi/config"
	"socialapi/internal/app"
	"socialapi/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log := logger.New(cfg.Env)
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logger.WithLogger(ctx, log)

			a, err := app.NewApp(ctx, *cfg)
			if err != nil {
				log.Error("init app", "error", err)
				return err
			}
			return a.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}

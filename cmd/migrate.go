package main

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"socialapi/config"
	"socialapi/internal/adapter/out/storage/postgres"
	"socialapi/pkg/logger"
)

func newMigrateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the postgres schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.StorageType != config.StoragePostgres {
				return errors.New("migrate requires STORAGE_TYPE=postgres")
			}

			log := logger.New(cfg.Env)
			ctx := cmd.Context()

			pool, err := pgxpool.New(ctx, cfg.Postgres.GetDSN())
			if err != nil {
				return fmt.Errorf("pgxpool: %w", err)
			}
			defer pool.Close()

			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}
			log.Info("migrations complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}

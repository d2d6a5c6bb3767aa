package main

import (
	"context"
	"database/sql"
	root "shifts"
	"shifts/internal/config"
	"shifts/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by a connection pool")
			}

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}

			before, err := goose.GetDBVersionContext(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not get database version", zap.Error(err))
			}
			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			after, err := goose.GetDBVersionContext(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not get database version", zap.Error(err))
			}

			logger.Info(ctx, "database migrated", zap.Int64("from", before), zap.Int64("to", after))
		},
	}

	return cmd
}

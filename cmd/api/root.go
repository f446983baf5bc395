package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"foodiefinds/internal/config"
	"foodiefinds/internal/database"
	"foodiefinds/internal/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "foodiefinds",
		Short:         "Serve read-only restaurant and dish queries over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.AddCommand(newDBCheckCmd())
	return cmd
}

// bootstrap loads the configuration, builds the logger and opens the
// database. The caller owns the returned handle and logger.
func bootstrap() (*config.AppConfig, *zap.Logger, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info(fmt.Sprintf("Connected to the %s database.", database.DisplayName(cfg.Database.Driver)))

	return cfg, log, db, nil
}

func closeAll(log *zap.Logger, db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Warn("database_close_failed", zap.Error(err))
	}
	_ = log.Sync()
}

// contextOrBackground keeps commands usable when executed without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

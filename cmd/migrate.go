package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/log"
	"github.com/clawpad/clawpad/orm"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending leaderboard database migrations",
		Long: `
Apply pending leaderboard database migrations.

Migrations are embedded in the binary unless DB_MIGRATION_DIR points to a directory.
The database is selected with DB_DSN.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, logger, err := openMigrationDB()
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck

			applied, err := db.ApplyMigrations(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("migrations applied", slog.Int("count", applied))
			return nil
		},
	}

	cmd.AddCommand(migrateStatusCmd())

	return cmd
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations that are not applied yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openMigrationDB()
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck

			pending, err := db.PendingMigrations(cmd.Context())
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
				return nil
			}
			for _, version := range pending {
				fmt.Fprintln(cmd.OutOrStdout(), "pending:", version)
			}
			return nil
		},
	}
}

func openMigrationDB() (*orm.Database, *slog.Logger, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.LeaderboardEnabled() {
		return nil, nil, errors.New("DB_DSN is required to run migrations")
	}

	logger := log.NewLogger(cfg)
	db, err := orm.OpenDB(cfg.GetDBConfig(), logger)
	if err != nil {
		return nil, nil, err
	}
	return db, logger, nil
}

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/clawpad/clawpad/api"
	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/log"
	"github.com/clawpad/clawpad/metrics"
	"github.com/clawpad/clawpad/orm"
	"github.com/clawpad/clawpad/sentry_integration"
	"github.com/clawpad/clawpad/util"
	"github.com/clawpad/clawpad/util/querier"
)

const shutdownTimeout = 10 * time.Second

func apiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Run clawpad API server",
		Long: `
Run the clawpad API server.

This command starts the HTTP API service for clawpad: the solana-data proxy in front of the
Solana RPC, price and token metadata providers, and the agent leaderboard when DB_DSN is set.

You can configure upstreams, database, logging, and server options via environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			logger := log.NewLogger(cfg)

			if err := sentry_integration.Init(cfg.GetSentryConfig(), config.Version); err != nil {
				logger.Warn("sentry disabled", slog.Any("error", err))
			}
			defer sentry_integration.Flush(2 * time.Second)

			// Initialize the request limiter
			util.InitLimiter(cfg.GetMaxConcurrentRequests())

			var db *orm.Database
			if cfg.LeaderboardEnabled() {
				db, err = orm.OpenDB(cfg.GetDBConfig(), logger)
				if err != nil {
					return err
				}
				defer db.Close() //nolint:errcheck

				if err := db.Migrate(cmd.Context()); err != nil {
					return err
				}
				metrics.StartDBStatsUpdater(db, logger)
			} else {
				logger.Info("DB_DSN not set, leaderboard routes disabled")
			}

			metricsServer := metrics.NewServer(cfg, logger)
			go func() {
				if err := metricsServer.Start(); err != nil {
					logger.Error("metrics server failed", slog.Any("error", err))
				}
			}()

			server := api.New(cfg, logger, db, querier.NewQuerier(cfg.GetUpstreamConfig()))

			// graceful shutdown
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				logger.Info("shutting down API server...")

				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := metricsServer.Shutdown(ctx); err != nil {
					logger.Error("metrics shutdown failed", slog.Any("error", err))
				}
				if err := server.Shutdown(ctx); err != nil {
					logger.Error("graceful shutdown failed", slog.Any("error", err))
				}
			}()

			return server.Start()
		},
	}

	return cmd
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sehatin/progress-api/config"
	"github.com/sehatin/progress-api/internal/infra/db"
	"github.com/sehatin/progress-api/internal/infra/logger"
)

var (
	cfg         *config.Config
	flushLogger func()
)

var rootCmd = &cobra.Command{
	Use:   "progress-api",
	Short: "Goal tracking and progress API",
	Long: `progress-api serves the goal tracking REST API.

Clients create numeric goals for a user, report progress against them and read
the per-goal and overall completion percentages.

CONFIGURATION:

  Settings come from environment variables, optionally loaded from a .env file
  in the working directory. The most relevant ones are:

    DATABASE_DRIVER   postgres (default) or sqlite
    DATABASE_URL      DSN for the chosen driver
    REDIS_ENABLED     true to cache progress snapshots in Redis
    REDIS_URL         redis://host:port/db
    SENTRY_DSN        forward error logs to Sentry
    LOG_LEVEL         debug, info, warn or error

COMMANDS:

  serve     Run the HTTP server (default)
  migrate   Create or update the database schema and exit`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if it exists (development only)
		_ = godotenv.Load()

		cfg = config.Load()

		log, flush, err := logger.New(cfg.Log, cfg.Server.IsProduction(), os.Stdout)
		if err != nil {
			return err
		}
		slog.SetDefault(log)
		flushLogger = flush
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if flushLogger != nil {
			flushLogger()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// openDatabase connects to the configured store.
func openDatabase() (*db.Database, error) {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create or update the goals, user_progress and notifications tables.

The schema is derived from the persistence models, so running this command
repeatedly is safe. The serve command also migrates on startup unless it is
started with --skip-migrate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		return database.Migrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

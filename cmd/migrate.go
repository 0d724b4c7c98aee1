package cmd

import (
	"mealflow/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		logger := NewLogger(cfg.Log)

		db, err := postgres.Open(cfg.DB.Connection(), logger)
		if err != nil {
			return err
		}
		defer closeDB(db, logger)

		logger.Info().Msg("running database migrations")
		if err = postgres.Migrate(db.WithContext(cmd.Context())); err != nil {
			return err
		}
		logger.Info().Msg("database migrations completed")
		return nil
	},
}

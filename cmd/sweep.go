package cmd

import (
	"mealflow/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Auto-approve stale reassignment requests once and exit",
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

		root, err := NewCompositionRoot(cfg, db, logger)
		if err != nil {
			return err
		}
		defer root.Close()

		result, err := root.CreateReassignmentAgingJob().RunOnce(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("approved=%d skipped=%d failed=%d\n", result.Approved, result.Skipped, result.Failed)
		return nil
	},
}

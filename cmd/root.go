package cmd

import (
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "mealflow",
	Short: "Meal delivery orchestration service",
	Long: `Orchestrates meal delivery after checkout.

Functions:
- Drive orders through their lifecycle and dispatch drivers
- Delegate subscription meals to chefs and track the daily timeline
- Review and auto-approve chef reassignment requests
- Fan out push notifications to customers, chefs and admins`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(sweepCmd)
}

// Package cli holds the operator commands that run next to the admin API.
package cli

import (
	"context"
	"os"
	"saapadu/config"
	"saapadu/di"
	"saapadu/shared/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "saapadu-admin",
	Short: "Operator tools for the Oor Saapadu admin back office",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.InitLoggerWithOutput(os.Stderr)
		logger.SetLogLevel(config.Get())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newSeedCommand(), newReportCommand(), newMigrateCommand())
}

// loadApp builds the app and loads every collection.
func loadApp(ctx context.Context) *di.App {
	app := di.InitializeApp()
	app.Repositories.Load(ctx)
	app.Services.Analytics.Refresh(ctx)

	return app
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

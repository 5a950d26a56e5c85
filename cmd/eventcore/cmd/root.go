// Package cmd provides the command-line interface for the event dispatch
// core.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eventcore",
	Short: "eventcore runs and inspects the game event dispatch core.",
	Long: `eventcore runs and inspects the game event dispatch core. ` +
		`It currently provides a synthetic benchmark workload (bench) that ` +
		`exercises the scheduler and the dispatch pipeline.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can provide defaults such as EVENTCORE_MONITOR_PORT.
	// Missing files are fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

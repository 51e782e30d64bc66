package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "failsift",
	Short: "Consolidate failed findings from Prowler CSV reports",
	Long: `Failsift scans a directory for Prowler CSV reports (AWS and Azure),
extracts the failed checks, deduplicates them across files and writes a
single consolidated report sorted by account and severity.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}

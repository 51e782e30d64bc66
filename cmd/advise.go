package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vikwab/failsift/pkg/advisor"
	"github.com/vikwab/failsift/pkg/config"
	"github.com/vikwab/failsift/pkg/console"
	"github.com/vikwab/failsift/pkg/report"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask the configured AI model for remediation advice on the failed findings",
	Run: func(cmd *cobra.Command, args []string) {
		advisor.DebugEnabled = DebugMode

		region, _ := cmd.Flags().GetString("region")
		directory, _ := cmd.Flags().GetString("directory")

		cfg, err := config.LoadConfig()
		if err != nil {
			console.Errorf("Error loading config: %v", err)
			return
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini" // Default
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" {
			// Fallback to env var for Gemini if not in config
			if providerName == "gemini" {
				apiKey = os.Getenv("GOOGLE_API_KEY")
			}
		}
		if apiKey == "" {
			console.Errorf("API Key not found. Please run 'failsift config setup' to configure your keys.")
			return
		}

		files, err := report.FindReportFiles(directory)
		if err != nil {
			console.Errorf("%v", err)
			return
		}
		if len(files) == 0 {
			console.Infof("No Prowler CSV files (matching '%s') found in directory: %s", report.ReportPattern, directory)
			return
		}

		consolidated := report.Consolidate(report.CollectFailed(files, region))
		if len(consolidated) == 0 {
			console.Infof("No failed checks found; nothing to advise on.")
			return
		}

		ctx := context.Background()
		console.Infof("Connecting to %s (Model: %s)...", providerName, cfg.SelectedModel)
		provider, err := advisor.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
		if err != nil {
			console.Errorf("Error creating AI provider: %v", err)
			return
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		digest := report.Summary(consolidated)
		advisor.Debugf("Digest sent to model:\n%s", digest)

		console.Infof("Requesting remediation advice for %d findings...", len(consolidated))
		advice, err := provider.Generate(ctx, advisor.GetAdvicePrompt(), digest)
		if err != nil {
			console.Errorf("Error generating advice: %v", err)
			return
		}

		fmt.Println()
		fmt.Println(advice)
	},
}

func init() {
	adviseCmd.Flags().StringP("region", "r", "", "Cloud Region or Location to filter results by")
	adviseCmd.Flags().StringP("directory", "d", ".", "Directory to search for Prowler CSV files")
	rootCmd.AddCommand(adviseCmd)
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vikwab/failsift/pkg/config"
	"github.com/vikwab/failsift/pkg/console"
	"github.com/vikwab/failsift/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze Prowler CSV reports and write the consolidated failures",
	Run: func(cmd *cobra.Command, args []string) {
		region, _ := cmd.Flags().GetString("region")
		directory, _ := cmd.Flags().GetString("directory")
		output, _ := cmd.Flags().GetString("output")
		snapshotPath, _ := cmd.Flags().GetString("snapshot")

		cfg, err := config.LoadConfig()
		if err != nil {
			console.Errorf("Error loading config: %v", err)
			return
		}
		if !cmd.Flags().Changed("directory") {
			directory = cfg.DefaultDirectory
		}
		if output == "" {
			output = cfg.OutputFile
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

		console.Infof("Searching in directory: %s", console.Highlight(directory))
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = filepath.Base(f)
		}
		console.Infof("Analyzing files: %s", strings.Join(names, ", "))

		failed := report.CollectFailed(files, region)
		if len(failed) == 0 {
			if region != "" {
				console.Infof("No failed checks found in the '%s' region/location.", region)
			} else {
				console.Infof("No failed checks found.")
			}
			return
		}

		consolidated := report.Consolidate(failed)

		if err := report.WriteReport(consolidated, output); err != nil {
			console.Errorf("Error writing report: %v", err)
			return
		}

		regionText := "across all regions/locations"
		if region != "" {
			regionText = fmt.Sprintf("in the '%s' region/location", region)
		}
		console.Successf("Analysis complete. Found %s unique failed items %s.",
			console.Highlight(fmt.Sprintf("%d", len(consolidated))), regionText)
		console.Successf("Results have been saved to %s.", console.Highlight(output))

		if snapshotPath != "" {
			if err := report.SaveSnapshot(consolidated, snapshotPath); err != nil {
				console.Errorf("Error saving snapshot: %v", err)
				return
			}
			console.Successf("Saved %d findings to snapshot %s.", len(consolidated), console.Highlight(snapshotPath))
		}
	},
}

func init() {
	analyzeCmd.Flags().StringP("region", "r", "", "Cloud Region or Location to filter results by (e.g., us-east-1, westeurope)")
	analyzeCmd.Flags().StringP("directory", "d", ".", "Directory to search for Prowler CSV files")
	analyzeCmd.Flags().StringP("output", "o", "", "Output file for the consolidated report (default from config, failed_items.csv)")
	analyzeCmd.Flags().String("snapshot", "", "Also save the consolidated findings to a JSON baseline for 'failsift diff'")
	rootCmd.AddCommand(analyzeCmd)
}

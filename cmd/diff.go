package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vikwab/failsift/pkg/console"
	"github.com/vikwab/failsift/pkg/report"
)

const defaultSnapshotPath = ".failsift-snapshot.json"

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare current failed findings against a saved baseline",
	Run: func(cmd *cobra.Command, args []string) {
		region, _ := cmd.Flags().GetString("region")
		directory, _ := cmd.Flags().GetString("directory")
		baselinePath, _ := cmd.Flags().GetString("baseline")

		baseline, err := report.LoadSnapshot(baselinePath)
		if err != nil {
			console.Errorf("Error loading baseline snapshot: %v. Have you run 'failsift analyze --snapshot %s' before?", err, baselinePath)
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

		current := report.Consolidate(report.CollectFailed(files, region))
		diff := report.CompareSnapshot(current, baseline)

		fmt.Printf("Snapshot Comparison (vs %s):\n", baselinePath)
		fmt.Println("--------------------------------------------------")

		fmt.Printf("NEW FAILURES: %d\n", len(diff.New))
		for _, f := range diff.New {
			fmt.Printf("  [+] [%s] %s (account %s)\n", f.Severity, f.Title, f.AccountID)
		}
		fmt.Println()

		fmt.Printf("FIXED: %d\n", len(diff.Fixed))
		for _, f := range diff.Fixed {
			fmt.Printf("  [-] [%s] %s (account %s)\n", f.Severity, f.Title, f.AccountID)
		}
		fmt.Println()

		fmt.Printf("UNCHANGED: %d\n", len(diff.Unchanged))
		if len(diff.Unchanged) > 0 {
			fmt.Println("  (Listing top 10 unchanged)")
			count := 0
			for _, f := range diff.Unchanged {
				fmt.Printf("  [=] [%s] %s (account %s)\n", f.Severity, f.Title, f.AccountID)
				count++
				if count >= 10 {
					fmt.Printf("  ... and %d more.\n", len(diff.Unchanged)-10)
					break
				}
			}
		}
	},
}

func init() {
	diffCmd.Flags().StringP("region", "r", "", "Cloud Region or Location to filter results by")
	diffCmd.Flags().StringP("directory", "d", ".", "Directory to search for Prowler CSV files")
	diffCmd.Flags().StringP("baseline", "b", defaultSnapshotPath, "Baseline snapshot file to compare against")
	rootCmd.AddCommand(diffCmd)
}

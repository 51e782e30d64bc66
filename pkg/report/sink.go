package report

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Header written to every consolidated report.
var outputHeader = []string{"Failed Item", "Severity", "Account ID"}

// WriteReport writes the consolidated findings to path as standard
// comma-separated CSV, preserving the order of records. Fields
// containing delimiters or quotes are escaped by encoding/csv.
func WriteReport(findings []Finding, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, finding := range findings {
		row := []string{finding.Title, finding.Severity, finding.AccountID}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing record to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

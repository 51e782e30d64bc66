package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReportPattern matches the scanner's CSV export naming scheme.
const ReportPattern = "prowler-*.csv"

// FindReportFiles returns the scanner CSV files inside dir. An empty
// result is not an error; a missing directory is.
func FindReportFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, ReportPattern))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return files, nil
}

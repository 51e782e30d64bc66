package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vikwab/failsift/pkg/console"
)

// missingValue substitutes for any column a row does not carry.
const missingValue = "N/A"

// AnalyzeFile parses one scanner report and returns its failed checks
// as normalized findings. regionFilter narrows the result to rows whose
// region column matches exactly; pass "" to keep every region.
//
// A file that is empty or whose header matches no known dialect is
// skipped with a console warning and contributes nothing; only I/O and
// decode problems surface as an error, and the caller is expected to
// log those and carry on with the remaining files.
func AnalyzeFile(path string, regionFilter string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	// Prowler exports occasionally carry ragged rows; tolerate them.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		console.Warnf("Skipping empty or invalid file: %s", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	dialect, bindings := DetectDialect(header)
	if dialect == DialectUnknown {
		console.Warnf("Skipping file %s: no AWS (ACCOUNT_UID) or Azure (SUBSCRIPTIONID) headers detected", filepath.Base(path))
		return nil, nil
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	var findings []Finding
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}

		if field(row, index, "STATUS", "") != "FAIL" {
			continue
		}
		if regionFilter != "" && field(row, index, bindings.Region, "") != regionFilter {
			continue
		}

		findings = append(findings, Finding{
			Title:     field(row, index, bindings.Title, missingValue),
			Severity:  field(row, index, bindings.Severity, missingValue),
			AccountID: field(row, index, bindings.Account, missingValue),
		})
	}
	return findings, nil
}

// field looks up a column value in a row, falling back when the column
// is absent from the header or the row is too short to contain it.
func field(row []string, index map[string]int, col, fallback string) string {
	i, ok := index[col]
	if !ok || i >= len(row) {
		return fallback
	}
	return row[i]
}

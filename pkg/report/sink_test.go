package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed_items.csv")
	findings := []Finding{
		{Title: "Bucket public, world-readable", Severity: "high", AccountID: "111122223333"},
		{Title: `Check with "quotes"`, Severity: "low", AccountID: "444455556666"},
	}

	if err := WriteReport(findings, path); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written report: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading written report back: %v", err)
	}

	want := [][]string{
		{"Failed Item", "Severity", "Account ID"},
		{"Bucket public, world-readable", "high", "111122223333"},
		{`Check with "quotes"`, "low", "444455556666"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("report rows = %+v, want %+v", rows, want)
	}
}

func TestWriteReportBadPath(t *testing.T) {
	err := WriteReport([]Finding{{Title: "x", Severity: "low", AccountID: "1"}},
		filepath.Join(t.TempDir(), "missing", "failed_items.csv"))
	if err == nil {
		t.Error("expected error when destination directory does not exist")
	}
}

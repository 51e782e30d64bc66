package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindReportFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"prowler-aws.csv", "prowler-azure-2.csv", "other.csv", "prowler-notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := FindReportFiles(dir)
	if err != nil {
		t.Fatalf("FindReportFiles() error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 matching files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base != "prowler-aws.csv" && base != "prowler-azure-2.csv" {
			t.Errorf("unexpected file matched: %s", base)
		}
	}
}

func TestFindReportFilesEmptyDir(t *testing.T) {
	files, err := FindReportFiles(t.TempDir())
	if err != nil {
		t.Fatalf("empty directory should not be an error, got: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestFindReportFilesMissingDir(t *testing.T) {
	if _, err := FindReportFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

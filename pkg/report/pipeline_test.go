package report

import (
	"path/filepath"
	"reflect"
	"testing"
)

// A broken file in the batch must not take the healthy ones down with it.
func TestCollectFailedIsolatesBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeReportFile(t, dir, "prowler-good.csv", awsReport)
	// Bare quote mid-field makes the CSV decoder fail on this file.
	broken := writeReportFile(t, dir, "prowler-broken.csv",
		"ACCOUNT_UID;CHECK_TITLE;SEVERITY;REGION;STATUS\n111;bad\"row;high;us-east-1;FAIL\n")
	missing := filepath.Join(dir, "prowler-missing.csv")

	got := CollectFailed([]string{broken, missing, good}, "")

	want := []Finding{
		{Title: "Root account MFA disabled", Severity: "critical", AccountID: "111122223333"},
		{Title: "S3 bucket publicly readable", Severity: "high", AccountID: "111122223333"},
		{Title: "Security group open to the world", Severity: "high", AccountID: "444455556666"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectFailed() = %+v, want findings from the healthy file only %+v", got, want)
	}
}

func TestCollectFailedAllBroken(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "prowler-missing.csv")

	if got := CollectFailed([]string{missing}, ""); len(got) != 0 {
		t.Errorf("expected no findings from a broken batch, got %+v", got)
	}
}

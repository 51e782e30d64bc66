package report

import (
	"reflect"
	"testing"
)

func TestConsolidateDeduplicates(t *testing.T) {
	in := []Finding{
		{Title: "Open security group", Severity: "high", AccountID: "b"},
		{Title: "Open security group", Severity: "high", AccountID: "b"},
		{Title: "Open security group", Severity: "high", AccountID: "a"},
	}

	got := Consolidate(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 unique findings, got %d: %+v", len(got), got)
	}
	seen := make(map[Finding]bool)
	for _, f := range got {
		if seen[f] {
			t.Errorf("duplicate finding survived consolidation: %+v", f)
		}
		seen[f] = true
	}
}

func TestConsolidateSortOrder(t *testing.T) {
	in := []Finding{
		{Title: "z check", Severity: "low", AccountID: "bbb"},
		{Title: "a check", Severity: "high", AccountID: "bbb"},
		{Title: "m check", Severity: "critical", AccountID: "aaa"},
		{Title: "b tie", Severity: "high", AccountID: "bbb"},
	}

	got := Consolidate(in)
	want := []Finding{
		{Title: "m check", Severity: "critical", AccountID: "aaa"},
		{Title: "a check", Severity: "high", AccountID: "bbb"},
		{Title: "b tie", Severity: "high", AccountID: "bbb"},
		{Title: "z check", Severity: "low", AccountID: "bbb"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Consolidate() = %+v, want %+v", got, want)
	}

	// Non-decreasing under the (account, severity) key.
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if a.AccountID > b.AccountID {
			t.Errorf("accounts out of order at %d: %q > %q", i, a.AccountID, b.AccountID)
		}
		if a.AccountID == b.AccountID && a.Severity > b.Severity {
			t.Errorf("severities out of order at %d: %q > %q", i, a.Severity, b.Severity)
		}
	}
}

func TestConsolidateEmpty(t *testing.T) {
	if got := Consolidate(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestConsolidateDoesNotMutateInput(t *testing.T) {
	in := []Finding{
		{Title: "b", Severity: "high", AccountID: "2"},
		{Title: "a", Severity: "low", AccountID: "1"},
	}
	orig := make([]Finding, len(in))
	copy(orig, in)

	Consolidate(in)
	if !reflect.DeepEqual(in, orig) {
		t.Errorf("input slice was mutated: %+v", in)
	}
}

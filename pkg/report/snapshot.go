package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotDiff classifies current findings against a saved baseline.
type SnapshotDiff struct {
	New       []Finding // present now, absent from the baseline
	Fixed     []Finding // present in the baseline, absent now
	Unchanged []Finding // present in both
}

// SaveSnapshot persists a consolidated report as a JSON baseline for
// later comparison.
func SaveSnapshot(findings []Finding, path string) error {
	data, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a baseline previously written by SaveSnapshot.
func LoadSnapshot(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var findings []Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return findings, nil
}

// CompareSnapshot diffs the current consolidated findings against a
// baseline under the same 3-field equality used for deduplication.
func CompareSnapshot(current, baseline []Finding) SnapshotDiff {
	base := make(map[Finding]struct{}, len(baseline))
	for _, f := range baseline {
		base[f] = struct{}{}
	}
	curr := make(map[Finding]struct{}, len(current))
	for _, f := range current {
		curr[f] = struct{}{}
	}

	var diff SnapshotDiff
	for _, f := range current {
		if _, ok := base[f]; ok {
			diff.Unchanged = append(diff.Unchanged, f)
		} else {
			diff.New = append(diff.New, f)
		}
	}
	for _, f := range baseline {
		if _, ok := curr[f]; !ok {
			diff.Fixed = append(diff.Fixed, f)
		}
	}
	return diff
}

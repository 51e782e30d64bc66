package report

import "sort"

// Consolidate collapses findings from any number of files into one
// deduplicated report, sorted ascending by account, then severity, then
// title. Pure function: the input slice is not modified.
func Consolidate(findings []Finding) []Finding {
	seen := make(map[Finding]struct{}, len(findings))
	unique := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		unique = append(unique, f)
	}

	sort.Slice(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}
		if a.Severity != b.Severity {
			return a.Severity < b.Severity
		}
		return a.Title < b.Title
	})
	return unique
}

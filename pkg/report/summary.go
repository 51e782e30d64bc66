package report

import (
	"fmt"
	"strings"
)

// Summary renders a consolidated report as human-readable text, used
// for console output and as the digest handed to the advisor.
func Summary(findings []Finding) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Consolidated failed findings (%d unique):\n", len(findings)))
	sb.WriteString("--------------------------------------------------\n")

	for _, f := range findings {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", f.Severity, f.Title))
		sb.WriteString(fmt.Sprintf("  Account: %s\n", f.AccountID))
	}
	return sb.String()
}

package advisor

import (
	_ "embed"
)

//go:embed prompts/advice_prompt.md
var advicePrompt string

// GetAdvicePrompt returns the system prompt used for remediation advice.
func GetAdvicePrompt() string {
	return advicePrompt
}

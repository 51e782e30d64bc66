// Package advisor sends a consolidated findings digest to an LLM and
// returns prioritized remediation advice.
package advisor

import (
	"context"
	"fmt"
)

// Provider defines the interface for different AI models.
type Provider interface {
	// Generate sends a single prompt and returns the model's reply.
	Generate(ctx context.Context, system, prompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// NewProvider builds the provider selected in the configuration.
func NewProvider(ctx context.Context, providerName, apiKey, modelName string) (Provider, error) {
	switch providerName {
	case "gemini":
		return NewGeminiProvider(ctx, apiKey, modelName)
	case "openai":
		return NewOpenAIProvider(apiKey, modelName), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
}

var DebugEnabled bool

// Debugf prints messages only if DebugEnabled is true
func Debugf(format string, args ...interface{}) {
	if DebugEnabled {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

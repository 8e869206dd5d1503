package llm

import (
	"context"
)

// Provider is a text-completion backend.
type Provider interface {
	// String returns the name of the provider.
	String() string

	// IsAvailable checks if the provider has all required configuration (e.g. API keys)
	// to be used. Returns true if the provider can be used, false otherwise.
	IsAvailable() bool

	// Generate sends the system and user prompts to the backend and returns
	// up to candidateCount answers.
	Generate(ctx context.Context, systemPrompt, userPrompt string, candidateCount int) ([]string, error)
}

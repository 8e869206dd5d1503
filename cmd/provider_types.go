package cmd

import (
	"github.com/thediveo/enumflag/v2"
)

// ProviderType represents the supported LLM providers.
type ProviderType enumflag.Flag

const (
	// AutoProvider picks the provider from config or the first available one.
	AutoProvider ProviderType = iota
	// PhindProvider represents the Phind provider.
	PhindProvider
	// OpenAIProvider represents the OpenAI provider.
	OpenAIProvider
	// ClaudeProvider represents the Claude provider.
	ClaudeProvider
	// GoogleAIProvider represents the GoogleAI provider.
	GoogleAIProvider
	// OpenRouterProvider represents the OpenRouter provider.
	OpenRouterProvider
	// GroqProvider represents the Groq provider.
	GroqProvider
	// DeepSeekProvider represents the DeepSeek provider.
	DeepSeekProvider
)

// ProviderIds maps ProviderType to their string representations.
var ProviderIds = map[ProviderType][]string{
	AutoProvider:       {"auto"},
	PhindProvider:      {"phind"},
	OpenAIProvider:     {"openai"},
	ClaudeProvider:     {"claude", "anthropic"},
	GoogleAIProvider:   {"googleai", "gemini"},
	OpenRouterProvider: {"openrouter"},
	GroqProvider:       {"groq"},
	DeepSeekProvider:   {"deepseek"},
}

// providerEnvKeys names the environment variable holding each provider's
// API key.
var providerEnvKeys = map[ProviderType]string{
	OpenAIProvider:     "OPENAI_API_KEY",
	ClaudeProvider:     "ANTHROPIC_API_KEY",
	GoogleAIProvider:   "GEMINI_API_KEY",
	OpenRouterProvider: "OPENROUTER_API_KEY",
	GroqProvider:       "GROQ_API_KEY",
	DeepSeekProvider:   "DEEPSEEK_API_KEY",
}

// providerPreference is the order providers are tried in when none is
// selected.
var providerPreference = []ProviderType{
	GoogleAIProvider,
	OpenRouterProvider,
	OpenAIProvider,
	ClaudeProvider,
	GroqProvider,
	DeepSeekProvider,
	PhindProvider,
}

func (p ProviderType) String() string {
	if ids, ok := ProviderIds[p]; ok {
		return ids[0]
	}
	return "unknown"
}

// parseProviderType resolves a provider id (as used in config) to its type.
func parseProviderType(s string) (ProviderType, bool) {
	for t, ids := range ProviderIds {
		for _, id := range ids {
			if id == s {
				return t, true
			}
		}
	}
	return AutoProvider, false
}

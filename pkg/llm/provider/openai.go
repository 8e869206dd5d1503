package provider

import (
	"github.com/sashabaranov/go-openai"

	"github.com/zbiljic/aitools/pkg/llm"
)

const (
	openaiBaseURL = "https://api.openai.com/v1/chat/completions"
	openaiModel   = openai.GPT4oMini
)

// OpenAIOptions holds configuration for the OpenAI provider.
type OpenAIOptions struct {
	ApiKey       string
	BaseURL      string
	Model        string
	ExtraHeaders map[string]string
}

// NewOpenAIProvider creates an OpenAI chat completions provider.
func NewOpenAIProvider(o OpenAIOptions) llm.Provider {
	if o.BaseURL == "" {
		o.BaseURL = openaiBaseURL
	}
	if o.Model == "" {
		o.Model = openaiModel
	}

	return &chatCompletions{
		name:      "OpenAI",
		apiKey:    o.ApiKey,
		baseURL:   o.BaseURL,
		model:     o.Model,
		maxTokens: 1024,
		headers:   headerValues(o.ExtraHeaders),
	}
}

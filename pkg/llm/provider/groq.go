package provider

import (
	"github.com/zbiljic/aitools/pkg/llm"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	groqModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
)

type GroqOptions struct {
	ApiKey  string
	BaseURL string
	Model   string
}

// NewGroqProvider creates a Groq provider. Groq only supports n=1.
func NewGroqProvider(o GroqOptions) llm.Provider {
	if o.BaseURL == "" {
		o.BaseURL = groqBaseURL
	}
	if o.Model == "" {
		o.Model = groqModel
	}

	return &chatCompletions{
		name:         "Groq",
		apiKey:       o.ApiKey,
		baseURL:      o.BaseURL,
		model:        o.Model,
		maxTokens:    1024,
		singleChoice: true,
	}
}

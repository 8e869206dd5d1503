package provider

import (
	"github.com/zbiljic/aitools/pkg/llm"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel   = "mistralai/devstral-small:free"
)

type OpenRouterOptions struct {
	ApiKey       string
	BaseURL      string
	Model        string
	ExtraHeaders map[string]string
}

func NewOpenRouterProvider(o OpenRouterOptions) llm.Provider {
	if o.BaseURL == "" {
		o.BaseURL = openRouterBaseURL
	}
	if o.Model == "" {
		o.Model = openRouterModel
	}

	headers := map[string][]string{
		"X-Title": {"aitools"},
	}
	for k, v := range headerValues(o.ExtraHeaders) {
		headers[k] = v
	}

	return &chatCompletions{
		name:      "OpenRouter",
		apiKey:    o.ApiKey,
		baseURL:   o.BaseURL,
		model:     o.Model,
		maxTokens: 1024,
		headers:   headers,
	}
}

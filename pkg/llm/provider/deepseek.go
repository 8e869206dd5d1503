package provider

import (
	"github.com/zbiljic/aitools/pkg/llm"
)

const (
	deepseekBaseURL = "https://api.deepseek.com/v1/chat/completions"
	deepseekModel   = "deepseek-chat"
)

type DeepSeekOptions struct {
	ApiKey  string
	BaseURL string
	Model   string
}

// NewDeepSeekProvider creates a DeepSeek provider. DeepSeek only
// supports n=1.
func NewDeepSeekProvider(o DeepSeekOptions) llm.Provider {
	if o.BaseURL == "" {
		o.BaseURL = deepseekBaseURL
	}
	if o.Model == "" {
		o.Model = deepseekModel
	}

	return &chatCompletions{
		name:         "DeepSeek",
		apiKey:       o.ApiKey,
		baseURL:      o.BaseURL,
		model:        o.Model,
		maxTokens:    2048,
		singleChoice: true,
	}
}

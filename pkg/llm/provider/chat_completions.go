package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/carlmjohnson/requests"
	"github.com/sashabaranov/go-openai"

	"github.com/zbiljic/aitools/pkg/llm"
)

// Compile-time proof of interface implementation.
var _ llm.Provider = (*chatCompletions)(nil)

// chatCompletions talks to any endpoint speaking the OpenAI chat
// completions protocol.
type chatCompletions struct {
	name      string
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	headers   map[string][]string
	// singleChoice is set for backends that reject n > 1; candidates are
	// then requested one call at a time.
	singleChoice bool
}

func (c *chatCompletions) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.model)
}

func (c *chatCompletions) IsAvailable() bool {
	return c.apiKey != ""
}

func (c *chatCompletions) Generate(ctx context.Context, systemPrompt, userPrompt string, candidateCount int) ([]string, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%s API Key is not set", c.name)
	}

	if candidateCount < 1 {
		candidateCount = 1
	}

	calls, n := 1, candidateCount
	if c.singleChoice {
		calls, n = candidateCount, 1
	}

	var messages []string
	for i := 0; i < calls; i++ {
		choices, err := c.request(ctx, systemPrompt, userPrompt, n)
		if err != nil {
			return nil, err
		}
		messages = append(messages, choices...)
	}

	return uniqueNonEmpty(messages, c.name)
}

func (c *chatCompletions) request(ctx context.Context, systemPrompt, userPrompt string, n int) ([]string, error) {
	payload := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: 0.7,
		TopP:        1,
		MaxTokens:   c.maxTokens,
		Stream:      false,
		N:           n,
	}

	headers := map[string][]string{
		"Authorization": {fmt.Sprintf("Bearer %s", c.apiKey)},
	}
	for k, v := range c.headers {
		headers[k] = v
	}

	var (
		respContent openai.ChatCompletionResponse
		respError   openai.ErrorResponse
	)

	err := requests.
		URL(c.baseURL).
		Post().
		Headers(headers).
		BodyJSON(payload).
		ToJSON(&respContent).
		ErrorJSON(&respError).
		Fetch(ctx)
	if respError.Error != nil && respError.Error.Message != "" {
		return nil, fmt.Errorf("%s API error: %s", c.name, respError.Error.Message)
	}
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.name, err)
	}

	if len(respContent.Choices) == 0 {
		return nil, errors.New("no completion choice available")
	}

	messages := make([]string, 0, len(respContent.Choices))
	for _, choice := range respContent.Choices {
		messages = append(messages, choice.Message.Content)
	}

	return messages, nil
}

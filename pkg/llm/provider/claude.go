package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/zbiljic/aitools/pkg/llm"
)

const (
	claudeModel = string(anthropic.ModelClaude3_5HaikuLatest)
)

// Compile-time proof of interface implementation.
var _ llm.Provider = (*Claude)(nil)

type ClaudeOptions struct {
	ApiKey  string
	BaseURL string
	Model   string
}

type Claude struct {
	options ClaudeOptions
	client  *anthropic.Client
}

// NewClaudeProvider creates a Claude provider. The client is only built
// when an API key is present; otherwise the provider reports itself as
// unavailable.
func NewClaudeProvider(o ClaudeOptions) llm.Provider {
	if o.Model == "" {
		o.Model = claudeModel
	}

	c := &Claude{options: o}
	if o.ApiKey == "" {
		return c
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(o.ApiKey),
	}
	if o.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.BaseURL))
	}

	client := anthropic.NewClient(clientOpts...)
	c.client = &client

	return c
}

func (c *Claude) String() string {
	return fmt.Sprintf("Claude (%s)", c.options.Model)
}

func (c *Claude) IsAvailable() bool {
	return c.client != nil
}

func (c *Claude) Generate(ctx context.Context, systemPrompt, userPrompt string, candidateCount int) ([]string, error) {
	if c.client == nil {
		return nil, errors.New("anthropic API Key is not set")
	}

	if candidateCount < 1 {
		candidateCount = 1
	}

	var messages []string

	// Claude has no n parameter
	for i := 0; i < candidateCount; i++ {
		resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(c.options.Model),
			System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
			Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt))},
			MaxTokens: 1024,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate content: %w", err)
		}

		if len(resp.Content) == 0 {
			return nil, errors.New("no completion choice available")
		}

		textBlock, ok := resp.Content[0].AsAny().(anthropic.TextBlock)
		if !ok {
			return nil, fmt.Errorf("unexpected content type in response: %T", resp.Content[0].AsAny())
		}
		messages = append(messages, textBlock.Text)
	}

	return uniqueNonEmpty(messages, "Claude")
}

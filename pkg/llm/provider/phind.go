package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/tidwall/gjson"

	"github.com/zbiljic/aitools/pkg/llm"
)

const (
	phindBaseURL = "https://https.extension.phind.com/agent/"
	phindModel   = "Phind-70B"
)

// Compile-time proof of interface implementation.
var _ llm.Provider = (*Phind)(nil)

type PhindOptions struct {
	BaseURL string
	Model   string
}

// Phind needs no API key and is always available.
type Phind struct {
	options PhindOptions
}

func NewPhindProvider(o PhindOptions) llm.Provider {
	if o.BaseURL == "" {
		o.BaseURL = phindBaseURL
	}
	if o.Model == "" {
		o.Model = phindModel
	}

	return &Phind{
		options: o,
	}
}

func (p *Phind) String() string {
	return fmt.Sprintf("Phind (%s)", p.options.Model)
}

func (p *Phind) IsAvailable() bool {
	return true
}

func (p *Phind) Generate(ctx context.Context, systemPrompt, userPrompt string, candidateCount int) ([]string, error) {
	prompt := systemPrompt + "\n" + userPrompt

	payload := map[string]any{
		"additional_extension_context": "",
		"allow_magic_buttons":          true,
		"is_vscode_extension":          true,
		"message_history": []any{
			map[string]any{
				"role":    "user",
				"content": prompt,
			},
		},
		"requested_model": p.options.Model,
		"user_input":      prompt,
	}

	if candidateCount < 1 {
		candidateCount = 1
	}

	var messages []string
	for i := 0; i < candidateCount; i++ {
		var responseText string

		err := requests.
			URL(p.options.BaseURL).
			Post().
			Headers(map[string][]string{
				"User-Agent":      {""},
				"Accept":          {"*/*"},
				"Accept-Encoding": {"Identity"},
			}).
			BodyJSON(payload).
			ToString(&responseText).
			Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("request to Phind failed: %w", err)
		}

		if responseText == "" {
			return nil, errors.New("no completion choice available")
		}

		messages = append(messages, parseStreamResponse(responseText))
	}

	return uniqueNonEmpty(messages, "Phind")
}

// parseStreamResponse concatenates the content deltas of a server-sent
// event stream.
func parseStreamResponse(responseText string) string {
	var sb strings.Builder
	for _, line := range strings.Split(responseText, "\n") {
		data := strings.TrimPrefix(strings.TrimSpace(line), "data: ")
		if val := gjson.Get(data, "choices.0.delta.content"); val.Exists() && val.Type == gjson.String {
			sb.WriteString(val.String())
		}
	}
	return sb.String()
}

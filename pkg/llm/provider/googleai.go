package provider

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/zbiljic/aitools/pkg/llm"
)

const (
	googleAIModel = "gemini-2.5-flash"
)

// Compile-time proof of interface implementation.
var _ llm.Provider = (*GoogleAI)(nil)

// GoogleAIOptions holds configuration for the GoogleAI provider.
type GoogleAIOptions struct {
	ApiKey string
	Model  string
}

// GoogleAI is the provider implementation for Google AI Studio using genai library.
type GoogleAI struct {
	options GoogleAIOptions
	client  *genai.Client
}

// NewGoogleAIProvider creates a new GoogleAI provider instance.
func NewGoogleAIProvider(ctx context.Context, o GoogleAIOptions) (llm.Provider, error) {
	if o.Model == "" {
		o.Model = googleAIModel
	}

	if o.ApiKey == "" {
		return nil, errors.New("google AI API Key is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  o.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	return &GoogleAI{
		options: o,
		client:  client,
	}, nil
}

func (p *GoogleAI) String() string {
	return fmt.Sprintf("GoogleAI (%s)", p.options.Model)
}

func (p *GoogleAI) IsAvailable() bool {
	return p.client != nil
}

// Generate sends a prompt to the Google AI API and returns the generated text.
func (p *GoogleAI) Generate(ctx context.Context, systemPrompt, userPrompt string, candidateCount int) ([]string, error) {
	if p.client == nil {
		return nil, errors.New("client is not initialized")
	}

	if candidateCount < 1 {
		candidateCount = 1
	}

	resp, err := p.client.Models.GenerateContent(
		ctx,
		p.options.Model,
		genai.Text(userPrompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{
					{Text: systemPrompt},
				},
			},
			CandidateCount: int32(candidateCount),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
			return nil, fmt.Errorf("prompt blocked due to: %s", resp.PromptFeedback.BlockReason)
		}
		return nil, errors.New("returned no candidates")
	}

	var (
		results       []string
		finishReasons []string
	)
	for _, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonUnspecified {
			finishReasons = append(finishReasons, string(cand.FinishReason))
		}
		if cand.Content == nil {
			continue
		}
		var fullText string
		for _, part := range cand.Content.Parts {
			fullText += part.Text
		}
		results = append(results, fullText)
	}

	results, err = uniqueNonEmpty(results, "GoogleAI")
	if err != nil && len(finishReasons) > 0 {
		return nil, fmt.Errorf("returned no text content; finish reasons: %v", finishReasons)
	}

	return results, err
}

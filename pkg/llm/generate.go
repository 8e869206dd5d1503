package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"go.uber.org/zap"

	"github.com/zbiljic/aitools/internal/logging"
)

const (
	PromptDocumentFormat = "Document:\n\"\"\"\n%s\n\"\"\"\n"
	PromptLanguageFormat = "Target language: %s"
)

// Request describes a single completion.
type Request struct {
	Task        Task
	Instruction string
	Document    string
	Language    string
	// SystemPrompt overrides the task prompt when set.
	SystemPrompt string
	Candidates   int
}

// Validate checks that the request can be sent.
func (r Request) Validate() error {
	if strutil.IsBlank(r.Instruction) && strutil.IsBlank(r.Document) {
		return ErrEmptyRequest
	}
	if r.Task == TranslateTask && strutil.IsBlank(r.Language) {
		return ErrMissingLanguage
	}
	return nil
}

// GenerateSystemPrompt returns the system prompt for the request.
func GenerateSystemPrompt(r Request) string {
	if strutil.IsNotBlank(r.SystemPrompt) {
		return strings.TrimSpace(r.SystemPrompt)
	}
	return r.Task.SystemPrompt()
}

// GenerateUserPrompt assembles the instruction, the target language and
// the document into one prompt.
func GenerateUserPrompt(r Request) string {
	var content []string

	if instruction := strings.TrimSpace(r.Instruction); instruction != "" {
		content = append(content, instruction)
		content = append(content, "")
	}

	if r.Task == TranslateTask {
		content = append(content, fmt.Sprintf(PromptLanguageFormat, strings.TrimSpace(r.Language)))
		content = append(content, "")
	}

	if document := strings.TrimSpace(r.Document); document != "" {
		content = append(content, fmt.Sprintf(PromptDocumentFormat, document))
	}

	return strings.TrimSpace(strings.Join(content, "\n"))
}

// Complete sends the request to provider and returns the cleaned answers.
func Complete(ctx context.Context, provider Provider, r Request) ([]string, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if r.Candidates < 1 {
		r.Candidates = 1
	}

	log := logging.FromContext(ctx).With(
		zap.String("provider", provider.String()),
		zap.Stringer("task", r.Task),
	)

	systemPrompt := GenerateSystemPrompt(r)
	userPrompt := GenerateUserPrompt(r)

	log.Debug("sending completion request",
		zap.Int("candidates", r.Candidates),
		zap.Int("system_prompt_len", len(systemPrompt)),
		zap.Int("user_prompt_len", len(userPrompt)),
	)

	start := time.Now()
	answers, err := provider.Generate(ctx, systemPrompt, userPrompt, r.Candidates)
	if err != nil {
		log.Debug("completion failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	answers = CleanAnswers(answers)
	log.Debug("completion finished", zap.Int("answers", len(answers)), zap.Duration("elapsed", time.Since(start)))

	if len(answers) == 0 {
		return nil, ErrNoCandidates
	}

	return answers, nil
}

// CleanAnswers trims answers, drops blank ones and removes duplicates.
func CleanAnswers(answers []string) []string {
	answers = slice.Map(answers, func(_ int, s string) string {
		return strings.TrimSpace(s)
	})
	answers = slice.Filter(answers, func(_ int, s string) bool {
		return strutil.IsNotBlank(s)
	})
	return slice.Unique(answers)
}

package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, calls *atomic.Int32, answers ...string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) || !assert.Len(t, req.Messages, 2) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Equal(t, "system", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Content)

		resp := openai.ChatCompletionResponse{Model: req.Model}
		for i, a := range answers {
			resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
				Index:   i,
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: a},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestOpenAIGenerate(t *testing.T) {
	var calls atomic.Int32
	srv := newChatServer(t, &calls, "first", "", "first", "second")
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIOptions{ApiKey: "test-key", BaseURL: srv.URL})
	require.True(t, p.IsAvailable())
	assert.Equal(t, "OpenAI (gpt-4o-mini)", p.String())

	messages, err := p.Generate(context.Background(), "system", "user", 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, messages)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGroqRequestsOneChoicePerCall(t *testing.T) {
	var calls atomic.Int32
	srv := newChatServer(t, &calls, "only")
	defer srv.Close()

	p := NewGroqProvider(GroqOptions{ApiKey: "test-key", BaseURL: srv.URL, Model: "llama"})

	messages, err := p.Generate(context.Background(), "system", "user", 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"only"}, messages)
	assert.Equal(t, int32(3), calls.Load())
}

func TestChatCompletionsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
	}))
	defer srv.Close()

	p := NewDeepSeekProvider(DeepSeekOptions{ApiKey: "test-key", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "system", "user", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestChatCompletionsNoChoices(t *testing.T) {
	var calls atomic.Int32
	srv := newChatServer(t, &calls)
	defer srv.Close()

	p := NewOpenRouterProvider(OpenRouterOptions{ApiKey: "test-key", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "system", "user", 1)
	assert.EqualError(t, err, "no completion choice available")
}

func TestChatCompletionsMissingKey(t *testing.T) {
	p := NewOpenAIProvider(OpenAIOptions{})
	assert.False(t, p.IsAvailable())

	_, err := p.Generate(context.Background(), "system", "user", 1)
	assert.EqualError(t, err, "OpenAI API Key is not set")
}

func TestOpenRouterExtraHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "aitools", r.Header.Get("X-Title"))
		assert.Equal(t, "https://example.com", r.Header.Get("HTTP-Referer"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenRouterProvider(OpenRouterOptions{
		ApiKey:       "key",
		BaseURL:      srv.URL,
		ExtraHeaders: map[string]string{"HTTP-Referer": "https://example.com"},
	})

	messages, err := p.Generate(context.Background(), "system", "user", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, messages)
}

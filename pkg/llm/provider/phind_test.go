package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phindStream = `data: {"choices":[{"delta":{"role":"assistant"}}]}
data: {"choices":[{"delta":{"content":"Hello"}}]}

data: {"choices":[{"delta":{"content":", world"}}]}
data: [DONE]
`

func TestParseStreamResponse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Stream", input: phindStream, expected: "Hello, world"},
		{name: "Empty", input: "", expected: ""},
		{name: "Garbage", input: "not json\n{}", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseStreamResponse(tc.input))
		})
	}
}

func TestPhindGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(phindStream))
	}))
	defer srv.Close()

	p := NewPhindProvider(PhindOptions{BaseURL: srv.URL})
	assert.True(t, p.IsAvailable())
	assert.Equal(t, "Phind (Phind-70B)", p.String())

	messages, err := p.Generate(context.Background(), "system", "user", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello, world"}, messages)
}

func TestClaudeWithoutKeyIsUnavailable(t *testing.T) {
	p := NewClaudeProvider(ClaudeOptions{})
	assert.False(t, p.IsAvailable())

	_, err := p.Generate(context.Background(), "system", "user", 1)
	assert.Error(t, err)
}

func TestGoogleAIWithoutKey(t *testing.T) {
	_, err := NewGoogleAIProvider(context.Background(), GoogleAIOptions{})
	assert.Error(t, err)
}

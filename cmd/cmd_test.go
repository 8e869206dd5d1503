package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zbiljic/aitools/internal/config"
	"github.com/zbiljic/aitools/pkg/llm"
	"github.com/zbiljic/aitools/pkg/password"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, env := range providerEnvKeys {
		t.Setenv(env, "")
	}
}

func TestPasswdPolicy(t *testing.T) {
	cmd := &cobra.Command{}
	passwdAddFlags(cmd)
	t.Cleanup(func() { passwdAddFlags(&cobra.Command{}) })

	defaults := config.NewDefault().Password
	defaults.Length = 20
	defaults.Symbols = true

	policy := passwdPolicy(cmd, defaults)
	assert.Equal(t, 20, policy.Length)
	assert.True(t, policy.Symbols)

	require.NoError(t, cmd.Flags().Parse([]string{"--length", "8", "--symbols=false", "--uppercase=false"}))

	policy = passwdPolicy(cmd, defaults)
	assert.Equal(t, password.Policy{Length: 8, Lowercase: true, Uppercase: false, Digits: true, Symbols: false}, policy)
}

func TestPasswdGenerate(t *testing.T) {
	results, err := passwdGenerate(password.DefaultPolicy(), 3, true, 4)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		assert.Len(t, r.Password, password.DefaultLength)
		assert.Equal(t, password.Analyze(r.Password).Label, r.Strength)
		assert.True(t, strings.HasPrefix(r.Hash, "$2a$04$"), r.Hash)
	}

	_, err = passwdGenerate(password.Policy{Length: 12}, 1, false, 0)
	assert.ErrorIs(t, err, password.ErrInvalidPolicy)
}

func TestReadPasswordLine(t *testing.T) {
	pw, err := readPasswordLine(strings.NewReader("hunter2\r\nsecond line\n"))
	require.NoError(t, err)
	assert.Equal(t, "hunter2", pw)

	pw, err = readPasswordLine(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", pw)
}

func TestFormatReport(t *testing.T) {
	color.NoColor = true

	out := formatReport("aaaaaaaaaaaa", password.Analyze("aaaaaaaaaaaa"))

	assert.Equal(t, `Password: aaaaaaaaaaaa
Strength: Fair
Score: 3/7

Suggestions:
  - Add uppercase letters
  - Add numbers
  - Add special characters for better security
  - Use more diverse characters
`, out)

	out = formatReport("Ab1!efgh", password.Analyze("Ab1!efgh"))
	assert.NotContains(t, out, "Suggestions")
	assert.Contains(t, out, "Strength: Strong")
}

func TestWriteStructured(t *testing.T) {
	result := analyzeResult{Password: "Ab1!efgh", Report: password.Analyze("Ab1!efgh")}

	var buf bytes.Buffer
	require.NoError(t, writeStructured(&buf, JSONOutput, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Strong", decoded["label"])
	assert.Equal(t, float64(6), decoded["score"])
	assert.Equal(t, "Ab1!efgh", decoded["password"])

	buf.Reset()
	require.NoError(t, writeStructured(&buf, YAMLOutput, result))

	var decodedYAML map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decodedYAML))
	assert.Equal(t, "Strong", decodedYAML["label"])
	assert.Equal(t, 8, decodedYAML["length"])

	assert.Error(t, writeStructured(&buf, TextOutput, result))
}

func TestAskBuildRequest(t *testing.T) {
	saved := askFlags
	t.Cleanup(func() { askFlags = saved })

	askFlags = askOptions{Task: llm.SummarizeTask, CandidateCount: 1, MaxDocumentSize: 5}

	req, err := askBuildRequest([]string{"Summarize", "this"}, "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "Summarize this", req.Instruction)
	assert.True(t, strings.HasPrefix(req.Document, "01234"))
	assert.Contains(t, req.Document, "truncated")

	req, err = askBuildRequest(nil, "piped question")
	require.NoError(t, err)
	assert.Equal(t, "piped question", req.Instruction)
	assert.Empty(t, req.Document)

	_, err = askBuildRequest(nil, "   ")
	assert.ErrorIs(t, err, llm.ErrEmptyRequest)

	doc := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte("the notes"), 0o600))
	askFlags = askOptions{Task: llm.QATask, File: doc}

	req, err = askBuildRequest(nil, "what is in it?")
	require.NoError(t, err)
	assert.Equal(t, "the notes", req.Document)
	assert.Equal(t, "what is in it?", req.Instruction)

	askFlags = askOptions{Task: llm.TranslateTask}
	_, err = askBuildRequest([]string{"hola"}, "")
	assert.ErrorIs(t, err, llm.ErrMissingLanguage)
}

func TestParseProviderType(t *testing.T) {
	p, ok := parseProviderType("anthropic")
	assert.True(t, ok)
	assert.Equal(t, ClaudeProvider, p)

	_, ok = parseProviderType("nope")
	assert.False(t, ok)

	assert.Equal(t, "googleai", GoogleAIProvider.String())
}

func TestInitializeLLMProvider(t *testing.T) {
	clearProviderEnv(t)
	ctx := context.Background()
	cfg := config.NewDefault()

	_, err := initializeLLMProvider(ctx, cfg, askAgent, OpenAIProvider, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	p, err := initializeLLMProvider(ctx, cfg, askAgent, AutoProvider, "")
	require.NoError(t, err)
	assert.Equal(t, "Phind (Phind-70B)", p.String())

	t.Setenv("GROQ_API_KEY", "from-env")
	p, err = initializeLLMProvider(ctx, cfg, askAgent, GroqProvider, "llama")
	require.NoError(t, err)
	assert.Equal(t, "Groq (llama)", p.String())

	cfg.Providers["work"] = config.ProviderConfig{Name: "Work", Type: "openai", APIKey: "from-config"}
	cfg.Agents[askAgent] = config.AgentConfig{Model: "work/gpt-4o"}
	p, err = initializeLLMProvider(ctx, cfg, askAgent, AutoProvider, "")
	require.NoError(t, err)
	assert.Equal(t, "OpenAI (gpt-4o)", p.String())

	p, err = initializeLLMProvider(ctx, cfg, askAgent, AutoProvider, "gpt-4.1")
	require.NoError(t, err)
	assert.Equal(t, "OpenAI (gpt-4.1)", p.String())
}

func TestResolveProviderSettings(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg := config.NewDefault()
	s := resolveProviderSettings(cfg, OpenAIProvider, "")
	assert.Equal(t, "env-key", s.APIKey)

	cfg.Providers["openai"] = config.ProviderConfig{
		Name:   "OpenAI",
		Type:   "openai",
		APIKey: "config-key",
		Models: []config.ModelConfig{{ID: "gpt-4o", Name: "GPT-4o"}},
	}
	s = resolveProviderSettings(cfg, OpenAIProvider, "")
	assert.Equal(t, "config-key", s.APIKey)
	assert.Equal(t, "gpt-4o", s.Model)
}

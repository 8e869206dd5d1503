package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelReference(t *testing.T) {
	tests := []struct {
		input    string
		provider string
		model    string
		wantErr  bool
	}{
		{input: "openai/gpt-4o-mini", provider: "openai", model: "gpt-4o-mini"},
		{input: "openrouter/mistralai/devstral-small:free", provider: "openrouter", model: "mistralai/devstral-small:free"},
		{input: "", wantErr: true},
		{input: "/gpt", wantErr: true},
		{input: "gpt", wantErr: true},
	}

	for _, test := range tests {
		provider, model, err := ParseModelReference(test.input)
		if test.wantErr {
			assert.Error(t, err, "input %q", test.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.provider, provider)
		assert.Equal(t, test.model, model)
	}
}

func TestDefaultIsValid(t *testing.T) {
	c := NewDefault()

	require.NoError(t, c.Validate())
	assert.Equal(t, configVersionV1, c.Version)
	assert.Equal(t, 12, c.Password.Length)
	assert.True(t, c.Password.Lowercase)
	assert.False(t, c.Password.Symbols)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "Missing providers", modify: func(c *Config) { c.Providers = nil }},
		{name: "Unknown global provider", modify: func(c *Config) { c.Model = "nope/model" }},
		{name: "Bad global model", modify: func(c *Config) { c.Model = "model" }},
		{name: "Provider without name", modify: func(c *Config) { c.Providers["x"] = ProviderConfig{Type: "openai"} }},
		{name: "Provider without type", modify: func(c *Config) { c.Providers["x"] = ProviderConfig{Name: "X"} }},
		{name: "Unknown agent provider", modify: func(c *Config) { c.Agents["ask"] = AgentConfig{Model: "nope/model"} }},
		{name: "Negative length", modify: func(c *Config) { c.Password.Length = -1 }},
		{name: "No character classes", modify: func(c *Config) {
			c.Password.Lowercase, c.Password.Uppercase, c.Password.Digits, c.Password.Symbols = false, false, false, false
		}},
		{name: "Bad bcrypt cost", modify: func(c *Config) { c.Password.BcryptCost = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewDefault()
			tc.modify(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestModelFor(t *testing.T) {
	c := NewDefault()
	c.Model = "phind/Phind-70B"
	assert.Equal(t, "phind/Phind-70B", c.ModelFor("ask"))

	c.Agents["ask"] = AgentConfig{Model: "openai/gpt-4o"}
	assert.Equal(t, "openai/gpt-4o", c.ModelFor("ask"))
	assert.Equal(t, "phind/Phind-70B", c.ModelFor("other"))
}

func TestProviderFor(t *testing.T) {
	c := NewDefault()
	c.Providers["work"] = ProviderConfig{Name: "Work", Type: "OpenAI", APIKey: "k"}
	c.Providers["off"] = ProviderConfig{Name: "Off", Type: "groq", Disable: true}

	p, ok := c.ProviderFor("openai")
	require.True(t, ok)
	assert.Equal(t, "k", p.APIKey)

	_, ok = c.ProviderFor("work")
	assert.True(t, ok)

	_, ok = c.ProviderFor("groq")
	assert.False(t, ok)
}

func TestInitAndLoadFrom(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	path := filepath.Join(t.TempDir(), "nested", "aitools.json")

	created, err := Init(path, false)
	require.NoError(t, err)

	_, err = Init(path, false)
	assert.Error(t, err)

	_, err = Init(path, true)
	require.NoError(t, err)

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, created.Password, loaded.Password)
	assert.Equal(t, created.Version, loaded.Version)
}

func TestLoadFileMigratesV0(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aitools.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"0"}`), 0o600))

	c, err := loadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configVersionV1, c.Version)
	assert.Equal(t, NewDefault().Password, c.Password)
}

func TestLoadFileUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aitools.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"99"}`), 0o600))

	_, err := loadFile(path)
	assert.Error(t, err)
}

func TestSaveInvalidArguments(t *testing.T) {
	assert.ErrorIs(t, Save(nil, "x.json"), errInvalidArgument)
	assert.ErrorIs(t, Save(NewDefault(), ""), errInvalidArgument)
}

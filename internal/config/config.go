package config

import (
	"fmt"
	"strings"
)

// Config represents the current version of configuration
type Config = configV1

// Type aliases for external packages
type (
	ProviderConfig = providerConfigV1
	AgentConfig    = agentConfigV1
	ModelConfig    = modelConfigV1
	PasswordConfig = passwordConfigV1
)

// NewDefault creates a new configuration
func NewDefault() *Config {
	return newConfigV1()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validateV1()
}

// ModelFor returns the model reference configured for agent, falling back
// to the global model. Empty when neither is set.
func (c *Config) ModelFor(agent string) string {
	if a, ok := c.Agents[agent]; ok && a.Model != "" {
		return a.Model
	}
	return c.Model
}

// ProviderFor returns the first enabled provider configuration whose key
// or type matches name, case-insensitively.
func (c *Config) ProviderFor(name string) (ProviderConfig, bool) {
	if p, ok := c.Providers[name]; ok && !p.Disable {
		return p, true
	}
	for _, p := range c.Providers {
		if !p.Disable && strings.EqualFold(p.Type, name) {
			return p, true
		}
	}
	return ProviderConfig{}, false
}

// ParseModelReference parses a model reference in "provider/model-id" format
// from a string
func ParseModelReference(modelRef string) (provider, modelID string, err error) {
	if modelRef == "" {
		return "", "", fmt.Errorf("no model specified")
	}

	// split on the first "/" to separate provider and model
	for i, r := range modelRef {
		if r == '/' {
			if i == 0 {
				return "", "", fmt.Errorf("invalid model format: %s", modelRef)
			}
			return modelRef[:i], modelRef[i+1:], nil
		}
	}

	return "", "", fmt.Errorf("invalid model format (expected provider/model): %s", modelRef)
}

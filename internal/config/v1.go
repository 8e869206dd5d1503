package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/zbiljic/aitools/pkg/password"
)

const configVersionV1 = "1"

type configV1 struct {
	Version   string                      `json:"version" yaml:"version"`                 // required by vconfig-go
	Model     string                      `json:"model,omitempty" yaml:"model,omitempty"` // global default model
	Providers map[string]providerConfigV1 `json:"providers" yaml:"providers"`
	Agents    map[string]agentConfigV1    `json:"agents,omitempty" yaml:"agents,omitempty"`
	Password  passwordConfigV1            `json:"password" yaml:"password"`
}

// providerConfigV1 represents a single provider configuration
type providerConfigV1 struct {
	Name         string            `json:"name" yaml:"name"`
	Type         string            `json:"type" yaml:"type"` // one of the provider ids, e.g. "openai"
	BaseURL      string            `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	APIKey       string            `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Models       []modelConfigV1   `json:"models,omitempty" yaml:"models,omitempty"`
	ExtraHeaders map[string]string `json:"extra_headers,omitempty" yaml:"extra_headers,omitempty"`
	Disable      bool              `json:"disable,omitempty" yaml:"disable,omitempty"`
}

// modelConfigV1 represents a model definition
type modelConfigV1 struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// agentConfigV1 represents command-specific model configuration
type agentConfigV1 struct {
	Model       string `json:"model,omitempty" yaml:"model,omitempty"` // "provider/model-id" format
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// passwordConfigV1 holds the defaults of the passwd command
type passwordConfigV1 struct {
	Length     int  `json:"length" yaml:"length" validate:"gte=0,lte=4096"`
	Lowercase  bool `json:"lowercase" yaml:"lowercase"`
	Uppercase  bool `json:"uppercase" yaml:"uppercase"`
	Digits     bool `json:"digits" yaml:"digits"`
	Symbols    bool `json:"symbols" yaml:"symbols"`
	BcryptCost int  `json:"bcrypt_cost,omitempty" yaml:"bcrypt_cost,omitempty" validate:"omitempty,gte=4,lte=31"`
}

// Policy converts the defaults into a password policy.
func (p passwordConfigV1) Policy() password.Policy {
	return password.Policy{
		Length:    p.Length,
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Digits:    p.Digits,
		Symbols:   p.Symbols,
	}
}

func newPasswordConfigV1() passwordConfigV1 {
	policy := password.DefaultPolicy()
	return passwordConfigV1{
		Length:     policy.Length,
		Lowercase:  policy.Lowercase,
		Uppercase:  policy.Uppercase,
		Digits:     policy.Digits,
		Symbols:    policy.Symbols,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version: configVersionV1,
		Providers: map[string]providerConfigV1{
			"phind": {
				Name: "Phind",
				Type: "phind",
				Models: []modelConfigV1{
					{ID: "Phind-70B", Name: "Phind-70B"},
				},
			},
		},
		Agents: map[string]agentConfigV1{
			"ask": {
				Description: "General questions and document tasks",
			},
		},
		Password: newPasswordConfigV1(),
	}
}

var validate = validator.New()

func (c *configV1) validateV1() error {
	if c.Providers == nil {
		return fmt.Errorf("providers section is required")
	}

	// validate that all provider references in global models exist
	if c.Model != "" {
		provider, _, err := ParseModelReference(c.Model)
		if err != nil {
			return fmt.Errorf("invalid global model reference: %w", err)
		}
		if _, exists := c.Providers[provider]; !exists {
			return fmt.Errorf("provider '%s' referenced in model '%s' does not exist", provider, c.Model)
		}
	}

	// validate provider configurations
	for providerName, provider := range c.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider '%s' must have a name", providerName)
		}
		if provider.Type == "" {
			return fmt.Errorf("provider '%s' must have a type", providerName)
		}
	}

	// Validate agent configurations
	for agentName, agent := range c.Agents {
		if agent.Model != "" {
			provider, _, err := ParseModelReference(agent.Model)
			if err != nil {
				return fmt.Errorf("invalid model reference in agent '%s': %w", agentName, err)
			}
			if _, exists := c.Providers[provider]; !exists {
				return fmt.Errorf("provider '%s' referenced in agent '%s' does not exist", provider, agentName)
			}
		}
	}

	if err := validate.Struct(c.Password); err != nil {
		return fmt.Errorf("invalid password defaults: %w", err)
	}
	if err := c.Password.Policy().Validate(); err != nil {
		return fmt.Errorf("invalid password defaults: %w", err)
	}

	return nil
}

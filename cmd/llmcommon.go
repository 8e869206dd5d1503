package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/zbiljic/aitools/internal/config"
	"github.com/zbiljic/aitools/internal/logging"
	"github.com/zbiljic/aitools/pkg/llm"
	"github.com/zbiljic/aitools/pkg/llm/provider"
)

// providerSettings is the resolved configuration for one provider.
type providerSettings struct {
	APIKey       string
	BaseURL      string
	Model        string
	ExtraHeaders map[string]string
}

// resolveProviderSettings merges the config entry for providerType with
// the environment. Config values win over the environment.
func resolveProviderSettings(cfg *config.Config, providerType ProviderType, model string) providerSettings {
	pc, _ := cfg.ProviderFor(providerType.String())
	return settingsFrom(pc, providerType, model)
}

func settingsFrom(pc config.ProviderConfig, providerType ProviderType, model string) providerSettings {
	s := providerSettings{
		APIKey:       pc.APIKey,
		BaseURL:      pc.BaseURL,
		Model:        model,
		ExtraHeaders: pc.ExtraHeaders,
	}
	if s.APIKey == "" {
		if env, ok := providerEnvKeys[providerType]; ok {
			s.APIKey = os.Getenv(env)
		}
	}
	if s.Model == "" && len(pc.Models) > 0 {
		s.Model = pc.Models[0].ID
	}
	return s
}

// newProvider builds the provider of the given type.
func newProvider(ctx context.Context, providerType ProviderType, s providerSettings) (llm.Provider, error) {
	switch providerType {
	case OpenAIProvider:
		return provider.NewOpenAIProvider(provider.OpenAIOptions{
			ApiKey:       s.APIKey,
			BaseURL:      s.BaseURL,
			Model:        s.Model,
			ExtraHeaders: s.ExtraHeaders,
		}), nil
	case ClaudeProvider:
		return provider.NewClaudeProvider(provider.ClaudeOptions{
			ApiKey:  s.APIKey,
			BaseURL: s.BaseURL,
			Model:   s.Model,
		}), nil
	case GoogleAIProvider:
		return provider.NewGoogleAIProvider(ctx, provider.GoogleAIOptions{
			ApiKey: s.APIKey,
			Model:  s.Model,
		})
	case OpenRouterProvider:
		return provider.NewOpenRouterProvider(provider.OpenRouterOptions{
			ApiKey:       s.APIKey,
			BaseURL:      s.BaseURL,
			Model:        s.Model,
			ExtraHeaders: s.ExtraHeaders,
		}), nil
	case GroqProvider:
		return provider.NewGroqProvider(provider.GroqOptions{
			ApiKey:  s.APIKey,
			BaseURL: s.BaseURL,
			Model:   s.Model,
		}), nil
	case DeepSeekProvider:
		return provider.NewDeepSeekProvider(provider.DeepSeekOptions{
			ApiKey:  s.APIKey,
			BaseURL: s.BaseURL,
			Model:   s.Model,
		}), nil
	case PhindProvider:
		return provider.NewPhindProvider(provider.PhindOptions{
			BaseURL: s.BaseURL,
			Model:   s.Model,
		}), nil
	}
	return nil, fmt.Errorf("unsupported provider: %s", providerType)
}

// initializeLLMProvider selects a provider: an explicit provider type
// wins, then the model configured for agent, then the first available
// provider in preference order.
func initializeLLMProvider(ctx context.Context, cfg *config.Config, agent string, providerType ProviderType, model string) (llm.Provider, error) {
	log := logging.FromContext(ctx)

	if providerType != AutoProvider {
		p, err := newProvider(ctx, providerType, resolveProviderSettings(cfg, providerType, model))
		if err != nil {
			return nil, err
		}
		if !p.IsAvailable() {
			return nil, fmt.Errorf("%s is not configured: set %s or add an api_key to the config", p, lo.ValueOr(providerEnvKeys, providerType, "an API key"))
		}
		return p, nil
	}

	if ref := cfg.ModelFor(agent); ref != "" {
		name, modelID, err := config.ParseModelReference(ref)
		if err != nil {
			return nil, err
		}
		pc, ok := cfg.ProviderFor(name)
		if !ok {
			return nil, fmt.Errorf("provider '%s' is not configured or disabled", name)
		}
		configuredType, ok := parseProviderType(pc.Type)
		if !ok {
			return nil, fmt.Errorf("provider '%s' has unknown type '%s'", name, pc.Type)
		}
		p, err := newProvider(ctx, configuredType, settingsFrom(pc, configuredType, lo.CoalesceOrEmpty(model, modelID)))
		if err == nil && p.IsAvailable() {
			log.Debug("using configured model", zap.String("agent", agent), zap.String("model", ref))
			return p, nil
		}
		log.Debug("configured model unavailable", zap.String("model", ref), zap.Error(err))
	}

	for _, t := range providerPreference {
		p, err := newProvider(ctx, t, resolveProviderSettings(cfg, t, model))
		if err != nil {
			continue
		}
		if p.IsAvailable() {
			return p, nil
		}
	}

	return nil, llm.ErrNoProvider
}

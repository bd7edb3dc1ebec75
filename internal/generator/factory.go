package generator

import (
	"fmt"
	"os"
	"strings"
)

// Provider names
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderTemplate  = "template"
)

// EnvProvider forces a specific provider regardless of available keys
const EnvProvider = "PYDOCGEN_PROVIDER"

// Config holds generator configuration for explicit construction
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	CacheSize int
}

// NewFromConfig creates a generator with an explicit provider selection.
// extra options (persistent store, test capabilities) are applied last.
func NewFromConfig(cfg Config, extra ...Option) (*Generator, error) {
	opts := []Option{WithCache(cfg.CacheSize)}

	switch strings.ToLower(cfg.Provider) {
	case ProviderAnthropic:
		provider, err := NewAnthropicProvider(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCapability(provider))
	case ProviderOpenAI:
		provider, err := NewOpenAIProvider(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCapability(provider))
	case ProviderTemplate, "":
		// Pure fallback mode, no capability.
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadProvider, cfg.Provider)
	}

	return New(append(opts, extra...)...), nil
}

// NewFromEnv selects a capability from the environment.
// Priority:
//  1. PYDOCGEN_PROVIDER (anthropic, openai, template)
//  2. ANTHROPIC_API_KEY, then OPENAI_API_KEY
//  3. Template-only operation when no key is found
func NewFromEnv(extra ...Option) (*Generator, error) {
	return NewFromConfig(Config{Provider: DetectProvider()}, extra...)
}

// DetectProvider returns the provider NewFromEnv would select
func DetectProvider() string {
	if provider := os.Getenv(EnvProvider); provider != "" {
		return strings.ToLower(provider)
	}
	if os.Getenv(EnvAnthropicAPIKey) != "" {
		return ProviderAnthropic
	}
	if os.Getenv(EnvOpenAIAPIKey) != "" {
		return ProviderOpenAI
	}
	return ProviderTemplate
}

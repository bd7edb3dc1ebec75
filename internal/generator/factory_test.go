package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProviderEnv(t *testing.T) {
	t.Setenv(EnvProvider, "")
	t.Setenv(EnvAnthropicAPIKey, "")
	t.Setenv(EnvOpenAIAPIKey, "")
}

func TestDetectProvider_Priority(t *testing.T) {
	clearProviderEnv(t)
	assert.Equal(t, ProviderTemplate, DetectProvider())

	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	assert.Equal(t, ProviderOpenAI, DetectProvider())

	t.Setenv(EnvAnthropicAPIKey, "sk-ant-test")
	assert.Equal(t, ProviderAnthropic, DetectProvider())

	t.Setenv(EnvProvider, "Template")
	assert.Equal(t, ProviderTemplate, DetectProvider())
}

func TestNewFromConfig_TemplateMode(t *testing.T) {
	g, err := NewFromConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, ProviderTemplate, g.Provider())
}

func TestNewFromConfig_UnknownProvider(t *testing.T) {
	_, err := NewFromConfig(Config{Provider: "cohere"})
	assert.ErrorIs(t, err, ErrBadProvider)
}

func TestNewFromConfig_AnthropicWithoutKey(t *testing.T) {
	clearProviderEnv(t)
	_, err := NewFromConfig(Config{Provider: ProviderAnthropic})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestNewFromConfig_AnthropicWithKey(t *testing.T) {
	g, err := NewFromConfig(Config{Provider: ProviderAnthropic, APIKey: "sk-ant-test"})
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, g.Provider())
}

func TestNewFromEnv_TemplateWithoutKeys(t *testing.T) {
	clearProviderEnv(t)
	g, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderTemplate, g.Provider())
}

package gen

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsmith/pkg/gen/generr"
)

func TestNewRegistry_BuildsOnlyConfiguredProviders(t *testing.T) {
	registry := NewRegistry(Config{Keys: map[string]string{
		"openai": "sk-test",
		"google": "g-test",
	}})

	providers := registry.Providers()
	assert.ElementsMatch(t, []string{ProviderOpenAI, ProviderGemini}, providers)
}

func TestNewRegistry_AcceptsProviderAliases(t *testing.T) {
	registry := NewRegistry(Config{Keys: map[string]string{
		"anthropic": "ak-test",
		"gemini":    "g-test",
	}})

	assert.ElementsMatch(t, []string{ProviderClaude, ProviderGemini}, registry.Providers())
}

func TestNewRegistry_OllamaNeedsNoCredential(t *testing.T) {
	registry := NewRegistry(Config{Keys: map[string]string{
		"ollama": "",
	}})

	assert.ElementsMatch(t, []string{ProviderOllama}, registry.Providers())
}

func TestGenerate_UnconfiguredProviderFails(t *testing.T) {
	registry := NewRegistry(Config{Keys: map[string]string{}})

	_, err := registry.Generate(context.Background(), ProviderGemini, "hello", "")
	require.Error(t, err)
	assert.True(t, generr.IsProviderUnavailable(err))
}

func TestGenerate_UnknownProviderWithoutFallbackFails(t *testing.T) {
	registry := NewRegistry(Config{Keys: map[string]string{"google": "g-test"}})

	_, err := registry.Generate(context.Background(), "mistral", "hello", "")
	require.Error(t, err)
	assert.True(t, generr.IsProviderUnavailable(err))
}

func TestNewRegistry_MetricsRegistrationIsIsolated(t *testing.T) {
	// Two registries with separate registerers must not collide the way a
	// process-global default registry would.
	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()

	require.NotPanics(t, func() {
		NewRegistry(Config{Keys: map[string]string{"openai": "a"}, Metrics: regA})
		NewRegistry(Config{Keys: map[string]string{"openai": "b"}, Metrics: regB})
	})
}

func TestPortFunc_Adapts(t *testing.T) {
	port := PortFunc(func(_ context.Context, provider, user, system string) (string, error) {
		return provider + ":" + system + ":" + user, nil
	})

	out, err := port.Generate(context.Background(), "openai", "u", "s")
	require.NoError(t, err)
	assert.Equal(t, "openai:s:u", out)
}

// Package gen provides the text-generation port: a provider registry that
// routes a (provider, user instruction, system instruction) call to the
// configured backend client.
package gen

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"blogsmith/pkg/gen/generr"
	"blogsmith/pkg/gen/internal/anthropicimpl"
	"blogsmith/pkg/gen/internal/googleimpl"
	"blogsmith/pkg/gen/internal/ollamaimpl"
	"blogsmith/pkg/gen/internal/openaiimpl"
	"blogsmith/pkg/gen/llm"
	"blogsmith/pkg/gen/middleware"
	"blogsmith/pkg/logx"
)

// Provider identifiers accepted in agent assignments and API key maps.
const (
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderPerplexity = "perplexity"
	ProviderClaude     = "claude"
	ProviderOllama     = "ollama"
)

// Default models per provider.
const (
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultGeminiModel     = "gemini-1.5-flash"
	DefaultPerplexityModel = "llama-3.1-sonar-small-128k-online"
	DefaultClaudeModel     = "claude-3-5-haiku-latest"
	DefaultOllamaModel     = "llama3.1"
)

const perplexityBaseURL = "https://api.perplexity.ai"

// Port is the capability the pipeline consumes: one blocking generation call
// per stage. Failures are fatal to the run; the port performs no retries.
type Port interface {
	Generate(ctx context.Context, provider, userInstruction, systemInstruction string) (string, error)
}

// PortFunc adapts a plain function to the Port interface.
type PortFunc func(ctx context.Context, provider, userInstruction, systemInstruction string) (string, error)

// Generate implements Port.
func (f PortFunc) Generate(ctx context.Context, provider, userInstruction, systemInstruction string) (string, error) {
	return f(ctx, provider, userInstruction, systemInstruction)
}

// Config is the explicit, immutable configuration for a registry. There is no
// process-wide client state: every registry owns exactly the clients built
// from its key set.
type Config struct {
	// Keys maps provider identifiers to credentials. Gemini accepts its key
	// under "gemini" or "google"; Claude under "claude" or "anthropic". The
	// "ollama" entry carries the server host URL (empty value = localhost).
	Keys map[string]string

	// Metrics receives generation-call collectors when non-nil.
	Metrics prometheus.Registerer
}

// Registry holds one middleware-wrapped client per configured provider and
// implements Port.
type Registry struct {
	clients map[string]llm.Client
	logger  *logx.Logger
}

// NewRegistry builds clients for every provider the config carries a
// credential for. Providers without credentials are simply absent; calling
// them later yields a ProviderUnavailable error.
func NewRegistry(cfg Config) *Registry {
	logger := logx.NewLogger("gen")

	var recorder middleware.Recorder
	if cfg.Metrics != nil {
		recorder = middleware.NewPrometheusRecorder(cfg.Metrics)
	}

	wrap := func(provider string, client llm.Client) llm.Client {
		mws := []llm.Middleware{middleware.Logging(provider, logger)}
		if recorder != nil {
			mws = append(mws, middleware.Metrics(provider, recorder, nil))
		}
		return llm.Chain(client, mws...)
	}

	clients := make(map[string]llm.Client)

	if key := cfg.Keys[ProviderOpenAI]; key != "" {
		clients[ProviderOpenAI] = wrap(ProviderOpenAI, openaiimpl.New(key, DefaultOpenAIModel))
	}
	if key := firstKey(cfg.Keys, ProviderGemini, "google"); key != "" {
		clients[ProviderGemini] = wrap(ProviderGemini, googleimpl.New(key, DefaultGeminiModel))
	}
	if key := cfg.Keys[ProviderPerplexity]; key != "" {
		clients[ProviderPerplexity] = wrap(ProviderPerplexity,
			openaiimpl.NewWithBaseURL(ProviderPerplexity, key, perplexityBaseURL, DefaultPerplexityModel))
	}
	if key := firstKey(cfg.Keys, ProviderClaude, "anthropic"); key != "" {
		clients[ProviderClaude] = wrap(ProviderClaude, anthropicimpl.New(key, DefaultClaudeModel))
	}
	if host, ok := cfg.Keys[ProviderOllama]; ok {
		clients[ProviderOllama] = wrap(ProviderOllama, ollamaimpl.New(host, DefaultOllamaModel))
	}

	return &Registry{clients: clients, logger: logger}
}

func firstKey(keys map[string]string, names ...string) string {
	for _, name := range names {
		if keys[name] != "" {
			return keys[name]
		}
	}
	return ""
}

// Providers returns the identifiers with a configured client.
func (r *Registry) Providers() []string {
	providers := make([]string, 0, len(r.clients))
	for provider := range r.clients {
		providers = append(providers, provider)
	}
	return providers
}

// Generate implements Port. An unknown provider identifier falls back to the
// OpenAI client when one is configured; a provider with no configured client
// fails with ProviderUnavailable.
func (r *Registry) Generate(ctx context.Context, provider, userInstruction, systemInstruction string) (string, error) {
	client, ok := r.clients[provider]
	if !ok {
		if fallback, haveOpenAI := r.clients[ProviderOpenAI]; haveOpenAI && !knownProvider(provider) {
			r.logger.Warn("unknown provider %q, falling back to openai", provider)
			client = fallback
		} else {
			return "", generr.New(generr.ErrorTypeProviderUnavailable, provider,
				"no client configured; add the provider's API key")
		}
	}

	messages := make([]llm.Message, 0, 2)
	if systemInstruction != "" {
		messages = append(messages, llm.NewSystemMessage(systemInstruction))
	}
	messages = append(messages, llm.NewUserMessage(userInstruction))

	resp, err := client.Complete(ctx, llm.NewRequest(messages))
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func knownProvider(provider string) bool {
	switch provider {
	case ProviderOpenAI, ProviderGemini, ProviderPerplexity, ProviderClaude, ProviderOllama:
		return true
	default:
		return false
	}
}

package ai

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
)

// SystemPrompt is the fixed system role message for every generation call.
const SystemPrompt = "You are a helpful SEO content generator. Always return valid JSON."

// Fixed sampling parameters for content generation.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	probeMaxTokens     = 10
)

// GenerateOptions carries the sampling parameters for one generation call.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int64
}

// Usage is token accounting passed through from the endpoint.
type Usage struct {
	PromptTokens     int64 `json:"promptTokens"`
	CompletionTokens int64 `json:"completionTokens"`
	TotalTokens      int64 `json:"totalTokens"`
}

// Response is the raw result of one generation call. Content is expected but
// not guaranteed to be valid JSON; interpretation happens one level up.
type Response struct {
	Content string
	Usage   Usage
}

// Provider defines the interface for AI chat-completion providers.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Generate sends one prompt and returns the model's reply.
	Generate(ctx context.Context, systemPrompt, prompt string, opts GenerateOptions) (*Response, error)
	// Probe issues a minimal low-token request to validate reachability and
	// credentials. It is cheap enough for health checks.
	Probe(ctx context.Context) error
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai/anthropic, required for compatible
	Model    string

	// AllowInsecureTLS accepts self-signed certificates on this provider's
	// HTTP client only. The internal generation endpoint serves a
	// self-signed certificate; nothing else should ever set this.
	AllowInsecureTLS bool
}

// Provider type constants.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
	ErrEmptyResponse   = errors.New("no content in AI response")
)

// NewProvider creates a new AI provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg)
	default:
		return nil, ErrInvalidProvider
	}
}

// insecureHTTPClient returns a client that skips certificate verification.
// Scoped to a single provider; never installed on http.DefaultTransport.
func insecureHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

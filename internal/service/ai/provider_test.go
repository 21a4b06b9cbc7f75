package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/service/ai"
)

func TestNewProvider_Validation(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, Model: "gpt-4o-mini"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "key"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "key", Model: "internal"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ai.Config{Provider: "mystery", APIKey: "key", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)
}

func TestNewProvider_Names(t *testing.T) {
	openAI, err := ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "key", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderOpenAI, openAI.Name())

	anthropic, err := ai.NewProvider(ai.Config{Provider: ai.ProviderAnthropic, APIKey: "key", Model: "claude-3"})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderAnthropic, anthropic.Name())

	compatible, err := ai.NewProvider(ai.Config{
		Provider: ai.ProviderCompatible,
		APIKey:   "key",
		Model:    "internal",
		BaseURL:  "https://ai.internal.example.com/v1",
	})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderCompatible, compatible.Name())
}

func TestNewProvider_InsecureTLSOptIn(t *testing.T) {
	// Explicit opt-in must construct without touching global transport state.
	provider, err := ai.NewProvider(ai.Config{
		Provider:         ai.ProviderCompatible,
		APIKey:           "key",
		Model:            "internal",
		BaseURL:          "https://ai.internal.example.com/v1",
		AllowInsecureTLS: true,
	})
	require.NoError(t, err)
	require.NotNil(t, provider)
}

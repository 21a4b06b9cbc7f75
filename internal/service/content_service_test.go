package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service/ai"
)

type providerStub struct {
	content     string
	generateErr error
	probeErr    error

	generateCalls int
	probeCalls    int
	lastSystem    string
	lastPrompt    string
	lastOpts      ai.GenerateOptions
}

func (s *providerStub) Name() string { return "stub" }

func (s *providerStub) Generate(ctx context.Context, systemPrompt, prompt string, opts ai.GenerateOptions) (*ai.Response, error) {
	s.generateCalls++
	s.lastSystem = systemPrompt
	s.lastPrompt = prompt
	s.lastOpts = opts
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return &ai.Response{
		Content: s.content,
		Usage:   ai.Usage{PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300},
	}, nil
}

func (s *providerStub) Probe(ctx context.Context) error {
	s.probeCalls++
	return s.probeErr
}

func newContentService(stub *providerStub) service.ContentService {
	return service.NewContentService(stub, ai.NewRateLimiter(100))
}

func validInput() service.GenerateInput {
	return service.GenerateInput{
		MainKeywords:      "airport transfer new york",
		SecondaryKeywords: "chauffeur service",
		Components:        []string{"faqs"},
	}
}

func TestContentService_MissingMainKeywords(t *testing.T) {
	stub := &providerStub{content: "{}"}
	svc := newContentService(stub)

	in := validInput()
	in.MainKeywords = ""
	_, err := svc.Generate(context.Background(), in)
	require.ErrorIs(t, err, service.ErrMainKeywordsRequired)
	require.Zero(t, stub.generateCalls, "no outbound AI call expected")
	require.Zero(t, stub.probeCalls, "no probe expected")
}

func TestContentService_MissingSecondaryKeywords(t *testing.T) {
	stub := &providerStub{content: "{}"}
	svc := newContentService(stub)

	in := validInput()
	in.SecondaryKeywords = ""
	_, err := svc.Generate(context.Background(), in)
	require.ErrorIs(t, err, service.ErrSecondaryKeywordsRequired)
	require.Zero(t, stub.generateCalls, "no outbound AI call expected")
}

func TestContentService_ProbeFailureFailsFast(t *testing.T) {
	stub := &providerStub{probeErr: errors.New("connection refused")}
	svc := newContentService(stub)

	_, err := svc.Generate(context.Background(), validInput())
	require.ErrorIs(t, err, service.ErrAIUnavailable)
	require.Zero(t, stub.generateCalls, "generation must not run when the probe fails")
}

func TestContentService_NonJSONDegradesToRaw(t *testing.T) {
	stub := &providerStub{content: "Sorry, here is your landing page copy..."}
	svc := newContentService(stub)

	result, err := svc.Generate(context.Background(), validInput())
	require.NoError(t, err, "non-JSON output is not an error")
	require.False(t, result.Content.Valid)
	require.Equal(t, "Sorry, here is your landing page copy...", result.Content.Raw)

	value, ok := result.Content.Value().(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Sorry, here is your landing page copy...", value["raw"])
}

func TestContentService_ValidJSONIsParsed(t *testing.T) {
	stub := &providerStub{content: `{"metaTitle": "Airport Transfer in New York"}`}
	svc := newContentService(stub)

	result, err := svc.Generate(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, result.Content.Valid)
	require.Equal(t, "Airport Transfer in New York", result.Content.Object["metaTitle"])
	require.Equal(t, int64(300), result.Usage.TotalTokens)
}

func TestContentService_HeroForcedFirst(t *testing.T) {
	stub := &providerStub{content: "{}"}
	svc := newContentService(stub)

	in := validInput()
	in.Components = []string{"faqs", "hero", "faqs"}
	result, err := svc.Generate(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, []string{"hero", "faqs"}, result.ContentTypes)
	require.Contains(t, stub.lastPrompt, "Content types needed: hero, faqs")
}

func TestContentService_FixedSamplingParameters(t *testing.T) {
	stub := &providerStub{content: "{}"}
	svc := newContentService(stub)

	_, err := svc.Generate(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, ai.SystemPrompt, stub.lastSystem)
	require.Equal(t, ai.DefaultTemperature, stub.lastOpts.Temperature)
	require.Equal(t, int64(ai.DefaultMaxTokens), stub.lastOpts.MaxTokens)
}

func TestContentService_DefaultLanguage(t *testing.T) {
	stub := &providerStub{content: "{}"}
	svc := newContentService(stub)

	_, err := svc.Generate(context.Background(), validInput())
	require.NoError(t, err)
	require.Contains(t, stub.lastPrompt, "Language: en")
}

func TestContentService_GenerationErrorPropagates(t *testing.T) {
	stub := &providerStub{generateErr: errors.New("upstream 502")}
	svc := newContentService(stub)

	_, err := svc.Generate(context.Background(), validInput())
	require.Error(t, err)
	require.NotErrorIs(t, err, service.ErrAIUnavailable)
}

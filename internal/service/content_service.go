package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/config"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/logger"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service/ai"
)

// Content generation errors.
var (
	ErrMainKeywordsRequired      = errors.New("mainKeywords is required")
	ErrSecondaryKeywordsRequired = errors.New("secondaryKeywords is required")
	ErrAIUnavailable             = errors.New("AI service unavailable")
)

// DefaultLanguage is used when a generation request carries no language code.
const DefaultLanguage = "en"

// GenerateInput is the raw caller request for one content generation.
type GenerateInput struct {
	MainKeywords        string
	SecondaryKeywords   string
	Questions           string
	Language            string
	Components          []string
	ConversationContext string
}

// ParsedContent is the tagged outcome of parsing the model's reply. When
// Valid is false the reply was not valid JSON and Raw carries it verbatim.
type ParsedContent struct {
	Valid  bool
	Object map[string]any
	Raw    string
}

// Value returns the caller-facing shape: the parsed object, or a fallback
// object carrying the raw text under a "raw" key. Parse failure is not an
// error; a human reviews the result either way.
func (p ParsedContent) Value() any {
	if p.Valid {
		return p.Object
	}
	return map[string]any{"raw": p.Raw}
}

// GenerateResult is the outcome of one successful generation call.
type GenerateResult struct {
	Content      ParsedContent
	Usage        ai.Usage
	ContentTypes []string
	Timestamp    time.Time
}

// ContentService orchestrates prompt assembly and the AI call.
type ContentService interface {
	// Generate validates the input, assembles the prompt, calls the AI
	// endpoint and best-effort-parses the reply.
	Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error)
	// ProbeAI checks connectivity to the AI endpoint.
	ProbeAI(ctx context.Context) error
}

type contentService struct {
	provider    ai.Provider
	rateLimiter *ai.RateLimiter
}

// NewContentService creates a new content generation service.
func NewContentService(provider ai.Provider, rateLimiter *ai.RateLimiter) ContentService {
	return &contentService{
		provider:    provider,
		rateLimiter: rateLimiter,
	}
}

func (s *contentService) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	if in.MainKeywords == "" {
		return nil, ErrMainKeywordsRequired
	}
	if in.SecondaryKeywords == "" {
		return nil, ErrSecondaryKeywordsRequired
	}

	// Fail fast before spending tokens on an unreachable endpoint.
	if err := s.ProbeAI(ctx); err != nil {
		logger.Warn("ai probe failed", "module", "service", "action", "generate", "resource", "ai", "result", "failed", "provider", s.provider.Name(), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	language := in.Language
	if language == "" {
		language = DefaultLanguage
	}
	contentTypes := ai.ResolveContentTypes(in.Components)

	params := ai.PromptParams{
		MainKeywords:      in.MainKeywords,
		SecondaryKeywords: in.SecondaryKeywords,
		Questions:         in.Questions,
		Language:          language,
		ContentTypes:      contentTypes,
		ContextInfo:       in.ConversationContext,
		ComponentExamples: ai.ComponentExamples(contentTypes),
	}
	prompt := ai.BuildContentGenerationPrompt(params)

	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, config.AIRequestTimeout)
	defer cancel()

	resp, err := s.provider.Generate(callCtx, ai.SystemPrompt, prompt, ai.GenerateOptions{
		Temperature: ai.DefaultTemperature,
		MaxTokens:   ai.DefaultMaxTokens,
	})
	if err != nil {
		logger.Warn("ai generation failed", "module", "service", "action", "generate", "resource", "ai", "result", "failed", "provider", s.provider.Name(), "error", err)
		return nil, fmt.Errorf("generate content: %w", err)
	}

	content := parseContent(resp.Content)
	if !content.Valid {
		logger.Warn("ai returned non-JSON content", "module", "service", "action", "generate", "resource", "ai", "result", "ok", "provider", s.provider.Name(), "chars", len(resp.Content))
	}
	logger.Info("content generated", "module", "service", "action", "generate", "resource", "ai", "result", "ok", "content_types", contentTypes, "total_tokens", resp.Usage.TotalTokens, "parsed", content.Valid)

	return &GenerateResult{
		Content:      content,
		Usage:        resp.Usage,
		ContentTypes: contentTypes,
		Timestamp:    time.Now().UTC(),
	}, nil
}

func (s *contentService) ProbeAI(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, config.AIProbeTimeout)
	defer cancel()
	return s.provider.Probe(probeCtx)
}

// parseContent attempts a strict JSON parse of the model reply and degrades
// to a raw-text passthrough on failure.
func parseContent(raw string) ParsedContent {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return ParsedContent{Raw: raw}
	}
	return ParsedContent{Valid: true, Object: obj}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/contentful"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/logger"
)

// Publish errors.
var (
	ErrContentRequired      = errors.New("generatedContent is required")
	ErrReleaseTitleRequired = errors.New("releaseTitle is required")
	ErrCMSNotConfigured     = errors.New("contentful not configured")
	ErrPublishFailed        = errors.New("publishing failed")
)

// PublishInput is the caller request to push reviewed content into the CMS.
type PublishInput struct {
	GeneratedContent map[string]any
	ReleaseTitle     string
}

// PublishResult is the shaped outcome of a successful publish.
type PublishResult struct {
	ReleaseID       string
	ReleaseTitle    string
	PageID          string
	TotalComponents int
	ContentfulURL   string
	Timestamp       time.Time
}

// PublishService pushes reviewed generated content into Contentful as a
// draft release. There is no automatic retry; a failed publish requires
// explicit user re-submission.
type PublishService interface {
	Publish(ctx context.Context, in PublishInput) (*PublishResult, error)
	// ProbeCMS checks connectivity to the CMS.
	ProbeCMS(ctx context.Context) error
}

type publishService struct {
	publisher contentful.Publisher
}

// NewPublishService creates a publish service. publisher may be nil when
// Contentful is not configured; operations then fail with ErrCMSNotConfigured.
func NewPublishService(publisher contentful.Publisher) PublishService {
	return &publishService{publisher: publisher}
}

func (s *publishService) Publish(ctx context.Context, in PublishInput) (*PublishResult, error) {
	if len(in.GeneratedContent) == 0 {
		return nil, ErrContentRequired
	}
	if in.ReleaseTitle == "" {
		return nil, ErrReleaseTitleRequired
	}
	if s.publisher == nil {
		return nil, ErrCMSNotConfigured
	}

	outcome, err := s.publisher.PublishPageAsRelease(ctx, in.GeneratedContent, in.ReleaseTitle)
	if err != nil {
		logger.Warn("publish failed", "module", "service", "action", "publish", "resource", "contentful", "result", "failed", "release_title", in.ReleaseTitle, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}
	if !outcome.Success {
		logger.Warn("publish reported failure", "module", "service", "action", "publish", "resource", "contentful", "result", "failed", "release_title", in.ReleaseTitle)
		return nil, ErrPublishFailed
	}

	result := &PublishResult{
		ReleaseTitle:    in.ReleaseTitle,
		TotalComponents: outcome.Summary.TotalComponents,
		Timestamp:       time.Now().UTC(),
	}
	if outcome.ReleaseResult != nil {
		result.ReleaseID = outcome.ReleaseResult.ReleaseID
	}
	if outcome.PageResult != nil {
		result.PageID = outcome.PageResult.EntryID
		result.ContentfulURL = outcome.PageResult.ContentfulURL
	}

	logger.Info("content published", "module", "service", "action", "publish", "resource", "contentful", "result", "ok", "release_id", result.ReleaseID, "total_components", result.TotalComponents)
	return result, nil
}

func (s *publishService) ProbeCMS(ctx context.Context) error {
	if s.publisher == nil {
		return ErrCMSNotConfigured
	}
	return s.publisher.TestConnection(ctx)
}

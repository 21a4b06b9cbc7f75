package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/handler"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
)

type publishServiceStub struct {
	result *service.PublishResult
	err    error
	inputs []service.PublishInput
}

func (s *publishServiceStub) Publish(_ context.Context, in service.PublishInput) (*service.PublishResult, error) {
	s.inputs = append(s.inputs, in)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *publishServiceStub) ProbeCMS(context.Context) error { return nil }

func postPublish(t *testing.T, stub *publishServiceStub, body string) *httptest.ResponseRecorder {
	t.Helper()
	return postJSON(t, handler.NewPublishHandler(stub).Publish, "/api/publish", body)
}

func TestPublishHandler_MissingFields(t *testing.T) {
	stub := &publishServiceStub{err: service.ErrReleaseTitleRequired}

	rec := postPublish(t, stub, `{"generatedContent": {"metaTitle": "x"}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "generatedContent and releaseTitle are required", body["error"])
}

func TestPublishHandler_CMSNotConfigured(t *testing.T) {
	stub := &publishServiceStub{err: service.ErrCMSNotConfigured}

	rec := postPublish(t, stub, `{"generatedContent": {"metaTitle": "x"}, "releaseTitle": "r"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Contentful not configured", body["error"])
}

func TestPublishHandler_PublishFailure(t *testing.T) {
	stub := &publishServiceStub{err: errors.Join(service.ErrPublishFailed, errors.New("boom"))}

	rec := postPublish(t, stub, `{"generatedContent": {"metaTitle": "x"}, "releaseTitle": "r"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Publishing failed", body["error"])
	require.Equal(t, "Failed to create page or release in Contentful", body["message"])
}

func TestPublishHandler_Success(t *testing.T) {
	stub := &publishServiceStub{result: &service.PublishResult{
		ReleaseID:       "rel-1",
		ReleaseTitle:    "Berlin launch",
		PageID:          "page-1",
		TotalComponents: 3,
		ContentfulURL:   "https://app.contentful.com/spaces/s/environments/e/entries/page-1",
		Timestamp:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := postPublish(t, stub, `{"generatedContent": {"metaTitle": "x"}, "releaseTitle": "Berlin launch"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ReleaseID       string `json:"releaseId"`
			PageID          string `json:"pageId"`
			TotalComponents int    `json:"totalComponents"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "Content published successfully to Contentful", body.Message)
	require.Equal(t, "rel-1", body.Data.ReleaseID)
	require.Equal(t, "page-1", body.Data.PageID)
	require.Equal(t, 3, body.Data.TotalComponents)

	require.Len(t, stub.inputs, 1)
	require.Equal(t, "Berlin launch", stub.inputs[0].ReleaseTitle)
}

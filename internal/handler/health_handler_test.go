package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/handler"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
)

func getHealth(t *testing.T, probes map[string]service.ProbeFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := handler.NewHealthHandler(service.NewHealthService(probes, 100*time.Millisecond))
	require.NoError(t, h.Check(c))
	return rec
}

func TestHealthHandler_Healthy(t *testing.T) {
	rec := getHealth(t, map[string]service.ProbeFunc{
		"ai":         func(ctx context.Context) error { return nil },
		"contentful": func(ctx context.Context) error { return nil },
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "healthy", body.Status)
	require.Equal(t, "connected", body.Services["ai"])
	require.Equal(t, "connected", body.Services["contentful"])
}

func TestHealthHandler_DegradedReportsPerService(t *testing.T) {
	rec := getHealth(t, map[string]service.ProbeFunc{
		"ai":         func(ctx context.Context) error { return nil },
		"contentful": func(ctx context.Context) error { return errors.New("contentful not configured") },
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
		Errors   map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "degraded", body.Status)
	require.Equal(t, "connected", body.Services["ai"])
	require.Equal(t, "disconnected", body.Services["contentful"])
	require.Equal(t, "contentful not configured", body.Errors["contentful"])
}

func TestHealthHandler_SetsNoCacheHeaders(t *testing.T) {
	rec := getHealth(t, map[string]service.ProbeFunc{
		"ai": func(ctx context.Context) error { return nil },
	})

	require.Equal(t, "no-store, no-cache, must-revalidate, proxy-revalidate", rec.Header().Get("Cache-Control"))
	require.Equal(t, "0", rec.Header().Get("Expires"))
	require.Equal(t, "no-store", rec.Header().Get("Surrogate-Control"))
	require.Equal(t, "no-cache", rec.Header().Get("Pragma"))
}

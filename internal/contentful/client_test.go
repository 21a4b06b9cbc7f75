package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        map[string]any
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("space-1", "staging", "mgmt-token")
	require.NoError(t, err)
	client.baseURL = srv.URL
	return client, srv
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "master", "token")
	require.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient("space", "master", "")
	require.ErrorIs(t, err, ErrNotConfigured)

	client, err := NewClient("space", "", "token")
	require.NoError(t, err)
	require.Equal(t, "master", client.environment)
}

func TestClient_TestConnection(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/spaces/space-1", r.URL.Path)
		fmt.Fprint(w, `{"name": "Test Space"}`)
	})

	require.NoError(t, client.TestConnection(context.Background()))
	require.Equal(t, "Bearer mgmt-token", gotAuth)
}

func TestClient_TestConnectionUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := client.TestConnection(context.Background())
	require.ErrorIs(t, err, ErrPublishFailed)
	require.Contains(t, err.Error(), "401")
}

func TestClient_PublishPageAsRelease(t *testing.T) {
	var requests []recordedRequest
	nextID := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		requests = append(requests, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("X-Contentful-Content-Type"),
			body:        body,
		})
		nextID++
		fmt.Fprintf(w, `{"sys": {"id": "entry-%d"}}`, nextID)
	})

	generated := map[string]any{
		"metaTitle": "Chauffeur Service Berlin",
		"language":  "de",
		"generatedSections": []any{
			map[string]any{"type": "hero", "title": "Welcome"},
			map[string]any{"type": "faqs", "items": []any{}},
		},
	}

	outcome, err := client.PublishPageAsRelease(context.Background(), generated, "Berlin launch")
	require.NoError(t, err)
	require.True(t, outcome.Success)

	// Two section entries, one page entry, one release.
	require.Len(t, requests, 4)
	require.Equal(t, "hero", requests[0].contentType)
	require.Equal(t, "faqs", requests[1].contentType)
	require.Equal(t, "landingPage", requests[2].contentType)
	require.Equal(t, "/spaces/space-1/environments/staging/releases", requests[3].path)

	// Section fields are locale-wrapped and the type key is consumed.
	heroFields := requests[0].body["fields"].(map[string]any)
	require.NotContains(t, heroFields, "type")
	require.Equal(t, map[string]any{"en-US": "Welcome"}, heroFields["title"])

	// The page links every section entry and carries the metadata fields.
	pageFields := requests[2].body["fields"].(map[string]any)
	require.Equal(t, map[string]any{"en-US": "Chauffeur Service Berlin"}, pageFields["metaTitle"])
	require.Equal(t, map[string]any{"en-US": "de"}, pageFields["language"])
	require.NotContains(t, pageFields, "metaDescription")
	sections := pageFields["sections"].(map[string]any)["en-US"].([]any)
	require.Len(t, sections, 2)

	// The release batches sections plus the page.
	release := requests[3].body
	require.Equal(t, "Berlin launch", release["title"])
	items := release["entities"].(map[string]any)["items"].([]any)
	require.Len(t, items, 3)

	require.Equal(t, "entry-3", outcome.PageResult.EntryID)
	require.Contains(t, outcome.PageResult.ContentfulURL, "app.contentful.com/spaces/space-1")
	require.Equal(t, "entry-4", outcome.ReleaseResult.ReleaseID)
	require.Equal(t, 3, outcome.Summary.TotalComponents)
}

func TestClient_PublishStopsOnEntryFailure(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	generated := map[string]any{
		"generatedSections": []any{
			map[string]any{"type": "hero", "title": "Welcome"},
			map[string]any{"type": "faqs"},
		},
	}
	_, err := client.PublishPageAsRelease(context.Background(), generated, "Berlin launch")
	require.Error(t, err)
	require.Contains(t, err.Error(), "create hero entry 0")
	require.Equal(t, 1, calls)
}

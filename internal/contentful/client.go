// Package contentful is a thin client for the Contentful Management API,
// limited to the two operations this service needs: publishing a generated
// page as a draft release, and a connectivity probe.
package contentful

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/logger"
)

const defaultBaseURL = "https://api.contentful.com"

// defaultLocale keys all entry fields; generated pages are monolingual and
// the content language travels inside the generated payload itself.
const defaultLocale = "en-US"

var (
	ErrNotConfigured = errors.New("contentful is not configured")
	ErrPublishFailed = errors.New("contentful publish failed")
)

// PageResult describes the created page entry.
type PageResult struct {
	EntryID       string `json:"entryId"`
	ContentfulURL string `json:"contentfulUrl"`
}

// ReleaseResult describes the created release.
type ReleaseResult struct {
	ReleaseID string `json:"releaseId"`
	Title     string `json:"title"`
}

// Summary aggregates what a publish run produced.
type Summary struct {
	TotalComponents int `json:"totalComponents"`
}

// PublishOutcome is the full result of one publish run.
type PublishOutcome struct {
	Success       bool           `json:"success"`
	PageResult    *PageResult    `json:"pageResult,omitempty"`
	ReleaseResult *ReleaseResult `json:"releaseResult,omitempty"`
	Summary       Summary        `json:"summary"`
}

// Publisher is the CMS publishing collaborator contract.
type Publisher interface {
	// PublishPageAsRelease creates draft entries for the generated sections,
	// a page entry referencing them, and a release batching everything.
	PublishPageAsRelease(ctx context.Context, generated map[string]any, releaseTitle string) (*PublishOutcome, error)
	// TestConnection probes API reachability and credentials.
	TestConnection(ctx context.Context) error
}

// Client talks to the Contentful Management API.
type Client struct {
	baseURL     string
	spaceID     string
	environment string
	token       string
	httpClient  *http.Client
}

// NewClient creates a Contentful client, or nil-with-error when the required
// credentials are absent.
func NewClient(spaceID, environment, token string) (*Client, error) {
	if spaceID == "" || token == "" {
		return nil, ErrNotConfigured
	}
	if environment == "" {
		environment = "master"
	}
	return &Client{
		baseURL:     defaultBaseURL,
		spaceID:     spaceID,
		environment: environment,
		token:       token,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// TestConnection probes API reachability and credentials.
func (c *Client) TestConnection(ctx context.Context) error {
	var resp struct {
		Name string `json:"name"`
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/spaces/%s", c.spaceID), "", nil, &resp)
}

// PublishPageAsRelease creates one draft entry per generated section, a page
// entry referencing them, and a release that batches all created entries.
// Entries stay in draft; the release is the unit editors publish from.
func (c *Client) PublishPageAsRelease(ctx context.Context, generated map[string]any, releaseTitle string) (*PublishOutcome, error) {
	sections, _ := generated["generatedSections"].([]any)

	sectionIDs := make([]string, 0, len(sections))
	for i, raw := range sections {
		section, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		contentType, _ := section["type"].(string)
		if contentType == "" {
			contentType = "section"
		}
		entryID, err := c.createEntry(ctx, contentType, localizeFields(section))
		if err != nil {
			return nil, fmt.Errorf("create %s entry %d: %w", contentType, i, err)
		}
		sectionIDs = append(sectionIDs, entryID)
	}

	pageID, err := c.createEntry(ctx, "landingPage", c.pageFields(generated, releaseTitle, sectionIDs))
	if err != nil {
		return nil, fmt.Errorf("create page entry: %w", err)
	}

	releaseID, err := c.createRelease(ctx, releaseTitle, append(sectionIDs, pageID))
	if err != nil {
		return nil, fmt.Errorf("create release: %w", err)
	}

	logger.Info("page published as release", "module", "contentful", "action", "publish", "resource", "release", "result", "ok", "release_id", releaseID, "page_id", pageID, "sections", len(sectionIDs))

	return &PublishOutcome{
		Success: true,
		PageResult: &PageResult{
			EntryID:       pageID,
			ContentfulURL: fmt.Sprintf("https://app.contentful.com/spaces/%s/environments/%s/entries/%s", c.spaceID, c.environment, pageID),
		},
		ReleaseResult: &ReleaseResult{
			ReleaseID: releaseID,
			Title:     releaseTitle,
		},
		Summary: Summary{TotalComponents: len(sectionIDs) + 1},
	}, nil
}

func (c *Client) pageFields(generated map[string]any, title string, sectionIDs []string) map[string]any {
	links := make([]any, 0, len(sectionIDs))
	for _, id := range sectionIDs {
		links = append(links, entryLink(id))
	}

	fields := map[string]any{
		"title":    map[string]any{defaultLocale: title},
		"sections": map[string]any{defaultLocale: links},
	}
	if v, ok := generated["metaTitle"].(string); ok && v != "" {
		fields["metaTitle"] = map[string]any{defaultLocale: v}
	}
	if v, ok := generated["metaDescription"].(string); ok && v != "" {
		fields["metaDescription"] = map[string]any{defaultLocale: v}
	}
	if v, ok := generated["language"].(string); ok && v != "" {
		fields["language"] = map[string]any{defaultLocale: v}
	}
	return fields
}

func (c *Client) createEntry(ctx context.Context, contentType string, fields map[string]any) (string, error) {
	body := map[string]any{"fields": fields}
	var resp struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	}
	path := fmt.Sprintf("/spaces/%s/environments/%s/entries", c.spaceID, c.environment)
	if err := c.do(ctx, http.MethodPost, path, contentType, body, &resp); err != nil {
		return "", err
	}
	return resp.Sys.ID, nil
}

func (c *Client) createRelease(ctx context.Context, title string, entryIDs []string) (string, error) {
	items := make([]any, 0, len(entryIDs))
	for _, id := range entryIDs {
		items = append(items, entryLink(id))
	}
	body := map[string]any{
		"title": title,
		"entities": map[string]any{
			"sys":   map[string]any{"type": "Array"},
			"items": items,
		},
	}
	var resp struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	}
	path := fmt.Sprintf("/spaces/%s/environments/%s/releases", c.spaceID, c.environment)
	if err := c.do(ctx, http.MethodPost, path, "", body, &resp); err != nil {
		return "", err
	}
	return resp.Sys.ID, nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/vnd.contentful.management.v1+json")
	if contentType != "" {
		req.Header.Set("X-Contentful-Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s returned %d", ErrPublishFailed, method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// localizeFields wraps each scalar field of a generated section in the
// default locale map the Management API expects. The section "type" key is
// consumed as the content type and not stored as a field.
func localizeFields(section map[string]any) map[string]any {
	fields := make(map[string]any, len(section))
	for k, v := range section {
		if k == "type" {
			continue
		}
		fields[k] = map[string]any{defaultLocale: v}
	}
	return fields
}

func entryLink(id string) map[string]any {
	return map[string]any{
		"sys": map[string]any{
			"type":     "Link",
			"linkType": "Entry",
			"id":       id,
		},
	}
}

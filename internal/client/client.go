// Package client is a cache-backed Go client for the tools directory API.
//
// GET responses are cached under their query key, the list of path segments that also forms the
// request path (["/api/tools", "x"] -> /api/tools/x). Mutations invalidate every cached key that
// starts with one of the affected prefixes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute

	// keySep never appears in a path segment.
	keySep = "\x1f"
)

// Query keys shared by reads and invalidations.
var (
	KeyTools      = []string{"/api/tools"}
	KeyFeatured   = []string{"/api/tools/featured"}
	KeyAdminTools = []string{"/api/admin/tools"}
	KeyAdminStats = []string{"/api/admin/stats"}
)

// ToolKey is the query key of one tool.
func ToolKey(slug string) []string { return []string{"/api/tools", slug} }

// ReviewsKey is the query key of a tool's reviews.
func ReviewsKey(toolID uuid.UUID) []string { return []string{"/api/reviews", toolID.String()} }

// TokenSource returns the bearer token for authenticated calls.
type TokenSource func(ctx context.Context) (string, error)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Field      string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Client calls the API and caches GET responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	cacheSize  int
	cacheTTL   time.Duration
	cache      *expirable.LRU[string, []byte]
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithTokenSource sets the bearer token provider for authenticated calls.
func WithTokenSource(ts TokenSource) Option {
	return func(cl *Client) { cl.token = ts }
}

// WithCache sets the cache capacity and entry lifetime.
func WithCache(size int, ttl time.Duration) Option {
	return func(cl *Client) {
		cl.cacheSize = size
		cl.cacheTTL = ttl
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cacheSize:  defaultCacheSize,
		cacheTTL:   defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = expirable.NewLRU[string, []byte](c.cacheSize, nil, c.cacheTTL)
	return c
}

// Tools returns every tool with stats.
func (c *Client) Tools(ctx context.Context) ([]models.ToolWithStats, error) {
	var out []models.ToolWithStats
	return out, c.query(ctx, KeyTools, false, &out)
}

// FeaturedTools returns the newest tools.
func (c *Client) FeaturedTools(ctx context.Context) ([]models.ToolWithStats, error) {
	var out []models.ToolWithStats
	return out, c.query(ctx, KeyFeatured, false, &out)
}

// Tool returns one tool by slug.
func (c *Client) Tool(ctx context.Context, slug string) (*models.ToolWithStats, error) {
	var out models.ToolWithStats
	if err := c.query(ctx, ToolKey(slug), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reviews returns a tool's reviews.
func (c *Client) Reviews(ctx context.Context, toolID uuid.UUID) ([]models.ReviewWithUser, error) {
	var out []models.ReviewWithUser
	return out, c.query(ctx, ReviewsKey(toolID), false, &out)
}

// AdminTools returns every tool for the admin view.
func (c *Client) AdminTools(ctx context.Context) ([]models.ToolWithStats, error) {
	var out []models.ToolWithStats
	return out, c.query(ctx, KeyAdminTools, true, &out)
}

// AdminStats returns catalog-wide totals.
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.query(ctx, KeyAdminStats, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestLogin returns the admin email if the token passes the admin guard. Never cached.
func (c *Client) TestLogin(ctx context.Context) (string, error) {
	var out struct {
		Admin string `json:"admin"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/test-login", nil, true, &out); err != nil {
		return "", err
	}
	return out.Admin, nil
}

// TrackDownload records a download of the tool identified by slug.
func (c *Client) TrackDownload(ctx context.Context, slug string, req models.DownloadRequest) error {
	if err := c.do(ctx, http.MethodPost, "/api/downloads", req, true, nil); err != nil {
		return err
	}
	c.Invalidate(ToolKey(slug))
	return nil
}

// SubmitReview posts a review of the tool identified by slug.
func (c *Client) SubmitReview(ctx context.Context, slug string, req models.ReviewRequest) error {
	if err := c.do(ctx, http.MethodPost, "/api/reviews", req, true, nil); err != nil {
		return err
	}
	c.Invalidate([]string{"/api/reviews", req.ToolID})
	c.Invalidate(ToolKey(slug))
	return nil
}

// CreateTool creates a tool.
func (c *Client) CreateTool(ctx context.Context, req models.ToolRequest) (*models.ToolWithStats, error) {
	var out models.ToolWithStats
	if err := c.do(ctx, http.MethodPost, "/api/admin/tools", req, true, &out); err != nil {
		return nil, err
	}
	c.invalidateCatalog()
	return &out, nil
}

// UpdateTool overwrites a tool and its buttons.
func (c *Client) UpdateTool(ctx context.Context, id uuid.UUID, req models.ToolRequest) (*models.ToolWithStats, error) {
	var out models.ToolWithStats
	if err := c.do(ctx, http.MethodPut, "/api/admin/tools/"+id.String(), req, true, &out); err != nil {
		return nil, err
	}
	c.invalidateCatalog()
	return &out, nil
}

// DeleteTool deletes a tool.
func (c *Client) DeleteTool(ctx context.Context, id uuid.UUID) error {
	if err := c.do(ctx, http.MethodDelete, "/api/admin/tools/"+id.String(), nil, true, nil); err != nil {
		return err
	}
	c.invalidateCatalog()
	return nil
}

// Invalidate drops every cached entry whose key starts with prefix.
func (c *Client) Invalidate(prefix []string) {
	p := strings.Join(prefix, keySep)
	for _, k := range c.cache.Keys() {
		if k == p || strings.HasPrefix(k, p+keySep) {
			c.cache.Remove(k)
		}
	}
}

// Cached reports whether key currently has a cached response.
func (c *Client) Cached(key []string) bool {
	_, ok := c.cache.Peek(strings.Join(key, keySep))
	return ok
}

func (c *Client) invalidateCatalog() {
	c.Invalidate(KeyAdminTools)
	c.Invalidate(KeyTools)
	c.Invalidate(KeyFeatured)
	c.Invalidate(KeyAdminStats)
}

func (c *Client) query(ctx context.Context, key []string, auth bool, out any) error {
	cacheKey := strings.Join(key, keySep)
	if body, ok := c.cache.Get(cacheKey); ok {
		return json.Unmarshal(body, out)
	}

	body, err := c.send(ctx, http.MethodGet, strings.Join(key, "/"), nil, auth)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", strings.Join(key, "/"), err)
	}

	c.cache.Add(cacheKey, body)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, auth bool, out any) error {
	body, err := c.send(ctx, method, path, in, auth)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, in any, auth bool) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		if c.token == nil {
			return nil, fmt.Errorf("%s %s requires a token", method, path)
		}
		token, err := c.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("get token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	logger.Log.Debugw("api call", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(body, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}
	return body, nil
}

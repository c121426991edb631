package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// Browser-like UA; several review sites serve stripped pages to obvious bots.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	fetchTimeout = 9 * time.Second
	maxBodyBytes = 2 << 20
)

// Doer lets handlers and tests swap the underlying HTTP client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches pages and search results with a bounded timeout. Failures
// of any kind (network error, timeout, non-2xx) yield an empty string so
// callers degrade to defaults; there are no retries.
type Client struct {
	httpc Doer
}

func New() *Client {
	return &Client{httpc: &http.Client{Timeout: fetchTimeout}}
}

func NewWithDoer(d Doer) *Client {
	return &Client{httpc: d}
}

// FetchPage retrieves a URL's HTML. Empty string on any failure.
func (c *Client) FetchPage(ctx context.Context, rawURL string) string {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return ""
	}
	return string(body)
}

// SearchHTML runs a query against DuckDuckGo's HTML endpoint and returns the
// raw result page. Empty string on any failure.
func (c *Client) SearchHTML(ctx context.Context, query string) string {
	return c.FetchPage(ctx, "https://html.duckduckgo.com/html/?q="+url.QueryEscape(query))
}

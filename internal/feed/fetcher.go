package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultUserAgent identifies the fetcher to feed hosts.
const DefaultUserAgent = "TechIntelBot/1.0"

// ErrFetchFailed is the single failure signal of a feed fetch. Timeouts,
// DNS errors and non-2xx statuses all wrap it; callers should only test
// for it with errors.Is and treat the source as unavailable.
var ErrFetchFailed = errors.New("feed fetch failed")

// Fetcher retrieves the raw text of a feed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher implements Fetcher using net/http.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates an HTTPFetcher backed by client. An empty
// userAgent falls back to DefaultUserAgent.
func NewHTTPFetcher(client *http.Client, userAgent string) *HTTPFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{client: client, userAgent: userAgent}
}

// Fetch performs an HTTP GET and returns the body of a 2xx response.
// Any other outcome returns an error wrapping ErrFetchFailed.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: new request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	return string(body), nil
}

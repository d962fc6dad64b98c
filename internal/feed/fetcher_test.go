package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonesrussell/north-cloud/techintel/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResponseBody = "<rss><channel><item><title>t</title></item></channel></rss>"

func TestHTTPFetcher_Success(t *testing.T) {
	t.Parallel()

	agents := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(testResponseBody))
	}))
	defer srv.Close()

	body, err := feed.NewHTTPFetcher(srv.Client(), "").Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, testResponseBody, body)
	assert.Equal(t, feed.DefaultUserAgent, <-agents)
}

func TestHTTPFetcher_CustomUserAgent(t *testing.T) {
	t.Parallel()

	agents := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		agents <- r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	_, err := feed.NewHTTPFetcher(srv.Client(), "CustomBot/2.0").Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "CustomBot/2.0", <-agents)
}

func TestHTTPFetcher_FailuresCollapse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "not modified", status: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			body, err := feed.NewHTTPFetcher(srv.Client(), "").Fetch(context.Background(), srv.URL)

			require.ErrorIs(t, err, feed.ErrFetchFailed)
			assert.Empty(t, body)
		})
	}
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := srv.Client()
	client.Timeout = 50 * time.Millisecond

	_, err := feed.NewHTTPFetcher(client, "").Fetch(context.Background(), srv.URL)

	require.ErrorIs(t, err, feed.ErrFetchFailed)
}

func TestHTTPFetcher_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := feed.NewHTTPFetcher(http.DefaultClient, "").Fetch(context.Background(), url)

	require.ErrorIs(t, err, feed.ErrFetchFailed)
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := feed.NewHTTPFetcher(http.DefaultClient, "").Fetch(context.Background(), "://bad")

	require.ErrorIs(t, err, feed.ErrFetchFailed)
}

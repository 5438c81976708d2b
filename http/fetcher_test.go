package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/htmlcheck"
	htmlcheckhttp "github.com/fwojciec/htmlcheck/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := htmlcheckhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("issues a GET request", func(t *testing.T) {
		t.Parallel()

		methods := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			methods <- r.Method
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		_, err := htmlcheckhttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, <-methods)
	})

	t.Run("decodes charset from Content-Type header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<html><body>caf\xe9</body></html>"))
		}))
		defer server.Close()

		html, err := htmlcheckhttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "café")
	})

	t.Run("keeps UTF-8 body whose first non-ASCII byte is past 1KB", func(t *testing.T) {
		t.Parallel()

		page := "<html><head><!-- " + strings.Repeat("x", 1100) + ` --></head><body><p title="café">zażółć</p></body></html>`
		for _, contentType := range []string{"text/html", "text/html; charset=utf-8"} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", contentType)
				_, _ = w.Write([]byte(page))
			}))

			html, err := htmlcheckhttp.NewFetcher().Fetch(context.Background(), server.URL)
			server.Close()

			require.NoError(t, err, contentType)
			assert.Equal(t, page, html, contentType)
		}
	})

	t.Run("treats non-200 response body as the document", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<html><body><h1 id="missing">404 Not Found</h1></body></html>`))
		}))
		defer server.Close()

		html, err := htmlcheckhttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "404 Not Found")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := htmlcheckhttp.NewFetcher(htmlcheckhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("uses provided client", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<p>ok</p>"))
		}))
		defer server.Close()

		fetcher := htmlcheckhttp.NewFetcher(htmlcheckhttp.WithClient(server.Client()))

		html, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", html)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := htmlcheckhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := htmlcheckhttp.NewFetcher(htmlcheckhttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("returns error for malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheckhttp.NewFetcher().Fetch(context.Background(), "://bad")

		require.Error(t, err)
	})
}

// Compile-time verification that Fetcher implements htmlcheck.Fetcher
var _ htmlcheck.Fetcher = (*htmlcheckhttp.Fetcher)(nil)

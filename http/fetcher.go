// Package http provides an HTTP-based implementation of htmlcheck.Fetcher
// for fetching documents that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Zero leaves the request bounded only by the context.
const DefaultFetchTimeout time.Duration = 0

// Ensure Fetcher implements htmlcheck.Fetcher at compile time.
var _ htmlcheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents with a single GET request. There are no
// retries. The body of the first complete response is the document,
// whatever its status code.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying HTTP client. The client's own Timeout is
// overridden when WithTimeout is also given.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.timeout > 0 {
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}

	return f
}

// Fetch retrieves the document at url. The body is UTF-8 unless the
// Content-Type header or the document itself declares another charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	html, err := charset.Decode(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return html, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

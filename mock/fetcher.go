package mock

import (
	"context"

	"github.com/fwojciec/htmlcheck"
)

// Compile-time interface verification.
var (
	_ htmlcheck.Fetcher        = (*Fetcher)(nil)
	_ htmlcheck.DocumentReader = (*DocumentReader)(nil)
)

// Fetcher is a mock implementation of htmlcheck.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// DocumentReader is a mock implementation of htmlcheck.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(ctx context.Context, path string) (string, error)
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	return r.ReadDocumentFn(ctx, path)
}

package htmlcheck

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the document HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DocumentReader reads HTML documents from local storage.
type DocumentReader interface {
	ReadDocument(ctx context.Context, path string) (html string, err error)
}

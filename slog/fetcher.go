package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Compile-time interface verification.
var (
	_ htmlcheck.Fetcher        = (*LoggingFetcher)(nil)
	_ htmlcheck.DocumentReader = (*LoggingDocumentReader)(nil)
)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   htmlcheck.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next htmlcheck.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"digest", digest(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingDocumentReader wraps a DocumentReader with logging.
type LoggingDocumentReader struct {
	next   htmlcheck.DocumentReader
	logger *slog.Logger
}

// NewLoggingDocumentReader creates a new LoggingDocumentReader.
func NewLoggingDocumentReader(next htmlcheck.DocumentReader, logger *slog.Logger) *LoggingDocumentReader {
	return &LoggingDocumentReader{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped reader and logs the operation.
func (r *LoggingDocumentReader) ReadDocument(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read document",
			"path", path,
			"bytes", len(html),
			"digest", digest(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadDocument(ctx, path)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingChecksLoader implements htmlcheck.ChecksLoader.
var _ htmlcheck.ChecksLoader = (*LoggingChecksLoader)(nil)

// LoggingChecksLoader wraps a ChecksLoader with logging.
type LoggingChecksLoader struct {
	next   htmlcheck.ChecksLoader
	logger *slog.Logger
}

// NewLoggingChecksLoader creates a new LoggingChecksLoader.
func NewLoggingChecksLoader(next htmlcheck.ChecksLoader, logger *slog.Logger) *LoggingChecksLoader {
	return &LoggingChecksLoader{next: next, logger: logger}
}

// LoadChecks delegates to the wrapped loader and logs the operation.
func (l *LoggingChecksLoader) LoadChecks(ctx context.Context, path string) (checks []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load checks",
			"path", path,
			"count", len(checks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadChecks(ctx, path)
}

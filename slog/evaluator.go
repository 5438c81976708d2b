package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingEvaluator implements htmlcheck.Evaluator.
var _ htmlcheck.Evaluator = (*LoggingEvaluator)(nil)

// LoggingEvaluator wraps an Evaluator with logging. Each selector outcome
// is logged at debug level.
type LoggingEvaluator struct {
	next   htmlcheck.Evaluator
	logger *slog.Logger
}

// NewLoggingEvaluator creates a new LoggingEvaluator.
func NewLoggingEvaluator(next htmlcheck.Evaluator, logger *slog.Logger) *LoggingEvaluator {
	return &LoggingEvaluator{next: next, logger: logger}
}

// Evaluate delegates to the wrapped evaluator and logs the outcome.
func (e *LoggingEvaluator) Evaluate(ctx context.Context, html string, checks []string) (result htmlcheck.Result, err error) {
	defer func(begin time.Time) {
		present := 0
		for _, selector := range result.Selectors() {
			if result[selector] {
				present++
			}
			e.logger.Debug("selector", "selector", selector, "present", result[selector])
		}
		e.logger.Info("evaluate",
			"checks", len(checks),
			"present", present,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Evaluate(ctx, html, checks)
}

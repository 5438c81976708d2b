package mock

import (
	"context"

	"github.com/fwojciec/htmlcheck"
)

var _ htmlcheck.Evaluator = (*Evaluator)(nil)

// Evaluator is a mock implementation of htmlcheck.Evaluator.
type Evaluator struct {
	EvaluateFn func(ctx context.Context, html string, checks []string) (htmlcheck.Result, error)
}

func (e *Evaluator) Evaluate(ctx context.Context, html string, checks []string) (htmlcheck.Result, error) {
	return e.EvaluateFn(ctx, html, checks)
}

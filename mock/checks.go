package mock

import (
	"context"

	"github.com/fwojciec/htmlcheck"
)

var _ htmlcheck.ChecksLoader = (*ChecksLoader)(nil)

// ChecksLoader is a mock implementation of htmlcheck.ChecksLoader.
type ChecksLoader struct {
	LoadChecksFn func(ctx context.Context, path string) ([]string, error)
}

func (l *ChecksLoader) LoadChecks(ctx context.Context, path string) ([]string, error) {
	return l.LoadChecksFn(ctx, path)
}

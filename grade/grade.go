// Package grade runs a single check of an HTML document against a checks
// file. It sequences document retrieval, checks loading and evaluation.
package grade

import (
	"context"
	"fmt"

	"github.com/fwojciec/htmlcheck"
)

// Grader orchestrates one check run.
type Grader struct {
	// Fetcher retrieves the document when the config has a URL.
	Fetcher htmlcheck.Fetcher

	// Documents reads the document from disk when the config has no URL.
	Documents htmlcheck.DocumentReader

	Checks    htmlcheck.ChecksLoader
	Evaluator htmlcheck.Evaluator
}

// Grade obtains the document, then loads and sorts the checks, then
// evaluates them. Checks loading starts only after the document has been
// obtained. Any failure aborts the run and no partial result is returned.
func (g *Grader) Grade(ctx context.Context, cfg htmlcheck.Config) (htmlcheck.Result, error) {
	html, err := g.document(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}

	checks, err := g.Checks.LoadChecks(ctx, cfg.ChecksFile)
	if err != nil {
		return nil, fmt.Errorf("loading checks: %w", err)
	}

	result, err := g.Evaluator.Evaluate(ctx, html, htmlcheck.SortChecks(checks))
	if err != nil {
		return nil, fmt.Errorf("evaluating checks: %w", err)
	}

	return result, nil
}

// document reads exactly one of the URL or the local file.
func (g *Grader) document(ctx context.Context, cfg htmlcheck.Config) (string, error) {
	if cfg.UsesURL() {
		if g.Fetcher == nil {
			return "", htmlcheck.Errorf(htmlcheck.EINVALID, "no fetcher configured for %s", cfg.URL)
		}
		return g.Fetcher.Fetch(ctx, cfg.URL)
	}
	return g.Documents.ReadDocument(ctx, cfg.HTMLFile)
}

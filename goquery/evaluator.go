// Package goquery implements htmlcheck.Evaluator on top of goquery and the
// cascadia selector engine.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlcheck"
)

// Ensure Evaluator implements htmlcheck.Evaluator at compile time.
var _ htmlcheck.Evaluator = (*Evaluator)(nil)

// Evaluator checks documents for elements matching CSS selectors.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate parses html once and checks every selector against the tree.
// goquery treats an unparseable selector as matching nothing, so selectors
// are compiled up front and rejected with EINVALID instead.
func (e *Evaluator) Evaluate(ctx context.Context, html string, checks []string) (htmlcheck.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	result := make(htmlcheck.Result, len(checks))
	for _, selector := range checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		present, err := e.hasSelector(doc, selector)
		if err != nil {
			return nil, err
		}
		result[selector] = present
	}

	return result, nil
}

// hasSelector checks if the document contains at least one element matching the selector.
// A blank selector selects nothing.
func (e *Evaluator) hasSelector(doc *goquery.Document, selector string) (bool, error) {
	if strings.TrimSpace(selector) == "" {
		return false, nil
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return false, htmlcheck.Errorf(htmlcheck.EINVALID, "invalid selector %q: %v", selector, err)
	}

	return doc.FindMatcher(matcher).Length() > 0, nil
}

package htmlcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"
)

// Result maps each selector to whether at least one element matched it.
type Result map[string]bool

// Selectors returns the selectors in the result in sorted order.
func (r Result) Selectors() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Evaluator tests an HTML document against a list of selectors.
type Evaluator interface {
	// Evaluate parses html and records, for each selector, whether it
	// matches anything. A selector that matches nothing is not an error.
	// Returns EINVALID for a selector the query engine cannot parse.
	Evaluate(ctx context.Context, html string, checks []string) (Result, error)
}

// FormatResult renders the result as a JSON object indented with four
// spaces. Keys appear in sorted order. Selector text is not HTML-escaped,
// so combinators such as ">" appear as written.
func FormatResult(r Result) (string, error) {
	if r == nil {
		r = Result{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/htmlcheck"
)

// Ensure ChecksLoader implements htmlcheck.ChecksLoader at compile time.
var _ htmlcheck.ChecksLoader = (*ChecksLoader)(nil)

// ChecksLoader reads checks files from disk. A checks file is a JSON array
// of CSS selector strings, e.g. ["#header", "h2#subtitle", "p"].
type ChecksLoader struct{}

// NewChecksLoader creates a new ChecksLoader.
func NewChecksLoader() *ChecksLoader {
	return &ChecksLoader{}
}

// LoadChecks reads the file at path and returns its selectors in file order.
// Returns EINVALID if the contents are not a JSON array of strings.
func (l *ChecksLoader) LoadChecks(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading checks file %q: %w", path, err)
	}

	var checks []string
	if err := json.Unmarshal(data, &checks); err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "invalid checks file %q: %v", path, err)
	}
	if checks == nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "invalid checks file %q: checks file must be a JSON array", path)
	}

	return checks, nil
}

package htmlcheck

import (
	"context"
	"sort"
)

// ChecksLoader loads the list of selectors to check for.
type ChecksLoader interface {
	// LoadChecks returns the selectors in the order they appear in the
	// source. Callers sort them with SortChecks.
	LoadChecks(ctx context.Context, path string) ([]string, error)
}

// SortChecks returns a lexicographically sorted copy of checks.
// Duplicates are kept.
func SortChecks(checks []string) []string {
	sorted := make([]string, len(checks))
	copy(sorted, checks)
	sort.Strings(sorted)
	return sorted
}

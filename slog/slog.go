// Package slog provides log/slog decorators for the htmlcheck interfaces.
// Each decorator logs one record per call with its duration and error.
package slog

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// digest returns a short content fingerprint so documents fetched from
// different sources can be compared in the logs.
func digest(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

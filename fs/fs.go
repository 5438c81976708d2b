// Package fs provides file-based inputs for htmlcheck: the existence guard
// for required paths, the checks file loader and the local document reader.
package fs

import (
	"os"

	"github.com/fwojciec/htmlcheck"
)

// RequireFile returns path unchanged if it names an existing file.
// Otherwise it returns an ENOTFOUND error whose message names the path.
// A directory does not satisfy the guard.
func RequireFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist. Exiting.", path)
	}
	return path, nil
}

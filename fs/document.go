package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/charset"
)

// Ensure DocumentReader implements htmlcheck.DocumentReader at compile time.
var _ htmlcheck.DocumentReader = (*DocumentReader)(nil)

// DocumentReader reads HTML documents from disk. Files are UTF-8 unless a
// byte order mark or a <meta> charset declaration names another encoding,
// in which case they are decoded to UTF-8.
type DocumentReader struct{}

// NewDocumentReader creates a new DocumentReader.
func NewDocumentReader() *DocumentReader {
	return &DocumentReader{}
}

// ReadDocument returns the contents of the file at path as UTF-8 HTML.
func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document %q: %w", path, err)
	}

	html, err := charset.Decode(data, "")
	if err != nil {
		return "", fmt.Errorf("decoding document %q: %w", path, err)
	}

	return html, nil
}

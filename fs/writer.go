// Package fs provides file-based storage for downloaded documents.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alces-flight/flightdocs"
)

// Ensure Writer implements flightdocs.DocumentWriter at compile time.
var _ flightdocs.DocumentWriter = (*Writer)(nil)

// Writer saves document content to files.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer. Relative paths are resolved against
// baseDir; an empty baseDir means the working directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// DocumentPath returns the path a document is saved to when no path is
// given. Only the base name of the document's filename is used so a
// filename from the server cannot escape baseDir.
func (w *Writer) DocumentPath(doc *flightdocs.Document, path string) (string, error) {
	if path == "" {
		name := filepath.Base(filepath.Clean("/" + doc.Filename))
		if name == "/" || name == "." {
			return "", flightdocs.Errorf(flightdocs.EINVALID, "document has no filename; use --output to choose one")
		}
		path = name
	}

	if !filepath.IsAbs(path) && w.baseDir != "" {
		path = filepath.Join(w.baseDir, path)
	}
	return path, nil
}

// WriteDocument writes the document content to path, or to the document's
// filename when path is empty. Returns the path written.
func (w *Writer) WriteDocument(ctx context.Context, doc *flightdocs.Document, path string) (string, error) {
	fullPath, err := w.DocumentPath(doc, path)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, doc.Content, 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

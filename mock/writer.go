package mock

import (
	"context"

	"github.com/alces-flight/flightdocs"
)

var _ flightdocs.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of flightdocs.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *flightdocs.Document, path string) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *flightdocs.Document, path string) (string, error) {
	return w.WriteDocumentFn(ctx, doc, path)
}

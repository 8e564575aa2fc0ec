package flightdocs

import "context"

// MarkdownRenderer renders markdown for display in a terminal.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// Pager displays long content one screen at a time.
type Pager interface {
	Page(ctx context.Context, content string) error
}

// DocumentWriter saves a fetched document's content.
type DocumentWriter interface {
	// WriteDocument writes doc.Content to path, or to a file named after the
	// document when path is empty. Returns the path written.
	WriteDocument(ctx context.Context, doc *Document, path string) (string, error)
}

package mock

import (
	"context"

	"github.com/alces-flight/flightdocs"
)

var (
	_ flightdocs.MarkdownRenderer = (*MarkdownRenderer)(nil)
	_ flightdocs.Pager            = (*Pager)(nil)
)

// MarkdownRenderer is a mock implementation of flightdocs.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *MarkdownRenderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

// Pager is a mock implementation of flightdocs.Pager.
type Pager struct {
	PageFn func(ctx context.Context, content string) error
}

func (p *Pager) Page(ctx context.Context, content string) error {
	return p.PageFn(ctx, content)
}

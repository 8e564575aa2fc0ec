// Package glamour implements flightdocs.MarkdownRenderer using glamour.
package glamour

import (
	"fmt"

	"github.com/alces-flight/flightdocs"
	"github.com/charmbracelet/glamour"
)

// MaxWidth caps the word-wrap width for readability on wide terminals.
const MaxWidth = 120

// Ensure Renderer implements flightdocs.MarkdownRenderer at compile time.
var _ flightdocs.MarkdownRenderer = (*Renderer)(nil)

// Renderer renders markdown with terminal styling.
type Renderer struct {
	renderer *glamour.TermRenderer
}

// NewRenderer creates a Renderer wrapping text at width, capped at
// MaxWidth. style is a glamour standard style such as "dark" or "notty".
func NewRenderer(style string, width int) (*Renderer, error) {
	if width <= 0 || width > MaxWidth {
		width = MaxWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{renderer: r}, nil
}

// Render renders markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}

	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

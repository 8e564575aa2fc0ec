package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alces-flight/flightdocs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if err := deps.Config.RequireSignedIn(); err != nil {
		return err
	}

	var doc *flightdocs.Document
	err := deps.spin(fmt.Sprintf("Retrieving document %s", strings.TrimSpace(c.Document)), func() (err error) {
		doc, err = deps.Resolver.GetDocument(deps.Ctx, c.Document)
		return err
	})
	if err != nil {
		return deps.showCandidates(err)
	}

	// Binary content would garble the terminal.
	if deps.Interactive && !doc.Printable() {
		return save(deps, doc, "")
	}

	content := c.content(deps, doc)

	if deps.Interactive && !c.NoPager && deps.Pager != nil {
		return deps.Pager.Page(deps.Ctx, content)
	}

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err = io.WriteString(deps.Stdout, content)
	return err
}

// content returns the text to display, rendering markdown when the output
// is a terminal and pretty output was not disabled.
func (c *ShowCmd) content(deps *Dependencies, doc *flightdocs.Document) string {
	raw := string(doc.Content)
	if !deps.Interactive || c.NoPretty || deps.Markdown == nil || doc.ContentType != "text/markdown" {
		return raw
	}

	rendered, err := deps.Markdown.Render(raw)
	if err != nil {
		if deps.Logger != nil {
			deps.Logger.Debug("markdown render failed, showing raw content", "err", err)
		}
		return raw
	}
	return rendered
}

// save writes doc to path, or to its filename when path is empty.
func save(deps *Dependencies, doc *flightdocs.Document, path string) error {
	written, err := deps.Writer.WriteDocument(deps.Ctx, doc, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saving binary file to %q\n", written)
	return nil
}

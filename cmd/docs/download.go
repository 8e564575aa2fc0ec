package main

import (
	"fmt"
	"strings"

	"github.com/alces-flight/flightdocs"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	if err := deps.Config.RequireSignedIn(); err != nil {
		return err
	}

	var doc *flightdocs.Document
	err := deps.spin(fmt.Sprintf("Downloading document %s", strings.TrimSpace(c.Document)), func() (err error) {
		doc, err = deps.Resolver.GetDocument(deps.Ctx, c.Document)
		return err
	})
	if err != nil {
		return deps.showCandidates(err)
	}

	return save(deps, doc, c.Output)
}

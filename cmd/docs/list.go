package main

import (
	"github.com/alces-flight/flightdocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if err := deps.Config.RequireSignedIn(); err != nil {
		return err
	}

	var docs []*flightdocs.Document
	err := deps.spin("Retrieving documents", func() (err error) {
		docs, err = deps.Resolver.ListDocuments(deps.Ctx)
		return err
	})
	if err != nil {
		return err
	}

	return deps.table().Render(deps.Stdout, docs)
}

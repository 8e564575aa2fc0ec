package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/alces-flight/flightdocs"
	"github.com/alces-flight/flightdocs/lipgloss"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *flightdocs.Config
	Resolver *flightdocs.Resolver
	Markdown flightdocs.MarkdownRenderer
	Pager    flightdocs.Pager
	Writer   flightdocs.DocumentWriter

	// Interactive is true when stdout is a terminal.
	Interactive bool
	Width       int

	// Spin runs fn while showing status. Nil runs fn directly.
	Spin func(status string, fn func() error) error
}

// spin shows a spinner around fn on interactive terminals.
func (d *Dependencies) spin(status string, fn func() error) error {
	if !d.Interactive || d.Spin == nil {
		return fn()
	}
	return d.Spin(status, fn)
}

// table returns a renderer whose ID column shows quick codes.
func (d *Dependencies) table() *lipgloss.TableRenderer {
	return &lipgloss.TableRenderer{
		Interactive: d.Interactive,
		Width:       d.Width,
		Code:        d.Resolver.QuickCode,
	}
}

// showCandidates renders the candidate table when err is ambiguous, so the
// user can pick a quick code. err is returned unchanged.
func (d *Dependencies) showCandidates(err error) error {
	var ae *flightdocs.AmbiguousError
	if errors.As(err, &ae) {
		if rerr := d.table().Render(d.Stdout, ae.Documents); rerr != nil {
			return rerr
		}
	}
	return err
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	List     ListCmd     `cmd:"" aliases:"ls" help:"List available documents"`
	Show     ShowCmd     `cmd:"" help:"Display the given document"`
	Download DownloadCmd `cmd:"" aliases:"get" help:"Download the given document"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Document string `arg:"" help:"Document name or quick code"`
	NoPager  bool   `name:"no-pager" help:"Do not pipe output through a pager"`
	NoPretty bool   `name:"no-pretty" help:"Display the raw document content"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	Document string `arg:"" help:"Document name or quick code"`
	Output   string `short:"o" name:"output" placeholder:"FILE" help:"Save to FILE instead of the document name"`
}

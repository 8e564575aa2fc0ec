package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alces-flight/flightdocs"
	"github.com/alces-flight/flightdocs/fs"
	"github.com/alces-flight/flightdocs/glamour"
	"github.com/alces-flight/flightdocs/hashids"
	fdhttp "github.com/alces-flight/flightdocs/http"
	fdslog "github.com/alces-flight/flightdocs/slog"
	"github.com/alces-flight/flightdocs/term"
	"github.com/alces-flight/flightdocs/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// errorText returns the user-facing message for err. Errors that carry no
// application code, such as usage errors from the parser, print as is.
func errorText(err error) string {
	var e *flightdocs.Error
	var ae *flightdocs.AmbiguousError
	if errors.As(err, &e) || errors.As(err, &ae) {
		return flightdocs.ErrorMessage(err)
	}
	return err.Error()
}

// Main represents the program.
type Main struct {
	// Program name shown in help. Set before calling Run().
	Name string

	// Config file path. Set before calling Run().
	ConfigPath string

	// Services for end-to-end testing.
	DocumentService flightdocs.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Name:       programName(),
		ConfigPath: configPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(m.Name),
		kong.Description("View and download documents from Alces Flight Center."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run '%s --help' to see available commands", m.Name)
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := yaml.Load(m.ConfigPath)
	if err != nil {
		return err
	}
	if url := os.Getenv("flight_SSO_URL"); url != "" {
		cfg.BaseURL = url
	}
	deps.Config = cfg

	deps.Interactive = term.IsTerminal(stdout)
	deps.Width = term.Width(stdout)
	if deps.Interactive {
		deps.Spin = term.NewSpinner(stderr).Run
	}

	documents := m.DocumentService
	if documents == nil {
		documents = fdhttp.NewDocumentService(cfg.APIURL(), cfg.AuthToken,
			fdhttp.WithInsecureSkipVerify(!cfg.VerifyTLS()),
			fdhttp.WithLogger(deps.Logger),
		)
	}

	ids, err := hashids.NewCodec()
	if err != nil {
		return err
	}

	deps.Resolver = &flightdocs.Resolver{
		Documents: fdslog.NewLoggingDocumentService(documents, deps.Logger),
		IDs:       ids,
	}
	deps.Writer = fs.NewWriter("")

	if strings.HasPrefix(kongCtx.Command(), "show") {
		style := "notty"
		if deps.Interactive {
			style = "dark"
		}
		markdown, err := glamour.NewRenderer(style, deps.Width)
		if err != nil {
			return err
		}
		deps.Markdown = markdown
		deps.Pager = term.NewPager(stdout, stderr)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a debug logger on w when DEBUG is set, otherwise a
// logger that discards everything.
func newLogger(w io.Writer) *slog.Logger {
	if os.Getenv("DEBUG") == "" {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func configPath() string {
	if path := os.Getenv("FLIGHT_DOCS_CONFIG"); path != "" {
		return path
	}
	return yaml.DefaultPath()
}

func programName() string {
	if name := os.Getenv("FLIGHT_PROGRAM_NAME"); name != "" {
		return name
	}
	return "docs"
}

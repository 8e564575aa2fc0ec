package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/alces-flight/flightdocs"
)

// DefaultPager is used when $PAGER is not set.
const DefaultPager = "less -R"

// Ensure Pager implements flightdocs.Pager at compile time.
var _ flightdocs.Pager = (*Pager)(nil)

// Pager pipes content through an external pager program.
type Pager struct {
	// Command line of the pager. Defaults to $PAGER, then DefaultPager.
	Command string

	Stdout io.Writer
	Stderr io.Writer
}

// NewPager returns a Pager writing to stdout.
func NewPager(stdout, stderr io.Writer) *Pager {
	return &Pager{
		Command: os.Getenv("PAGER"),
		Stdout:  stdout,
		Stderr:  stderr,
	}
}

// Page shows content in the pager. If the pager program cannot be found the
// content is written directly to Stdout.
func (p *Pager) Page(ctx context.Context, content string) error {
	command := p.Command
	if strings.TrimSpace(command) == "" {
		command = DefaultPager
	}
	args := strings.Fields(command)

	path, err := exec.LookPath(args[0])
	if errors.Is(err, exec.ErrNotFound) {
		_, err := io.WriteString(p.Stdout, content)
		return err
	} else if err != nil {
		return fmt.Errorf("failed to find pager %q: %w", args[0], err)
	}

	cmd := exec.CommandContext(ctx, path, args[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pager %q failed: %w", args[0], err)
	}
	return nil
}

package term

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner shows an animated status line while a blocking call runs.
type Spinner struct {
	Writer io.Writer
	Style  spinner.Spinner
}

// NewSpinner returns a Spinner drawing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{Writer: w, Style: spinner.Dot}
}

// Run calls fn while animating status, then clears the line.
// The spinner only draws; it never touches fn's state.
func (s *Spinner) Run(status string, fn func() error) error {
	frames := s.Style.Frames
	interval := s.Style.FPS
	if len(frames) == 0 {
		return fn()
	}
	if interval <= 0 {
		interval = time.Second / 10
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(s.Writer, "\r%s %s", frames[i%len(frames)], status)
			select {
			case <-done:
				fmt.Fprint(s.Writer, "\r\x1b[K")
				return
			case <-ticker.C:
			}
		}
	}()

	err := fn()
	close(done)
	wg.Wait()
	return err
}

package lipgloss

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Strategy is a way of breaking an overlong line. Pattern matches the
// boundaries a line may be broken after.
type Strategy struct {
	Name    string
	Pattern *regexp.Regexp
}

// Break strategies, from most to least preferred.
var (
	BreakOnWhitespace       = Strategy{Name: "whitespace", Pattern: regexp.MustCompile(`\s+`)}
	BreakOnHyphen           = Strategy{Name: "hyphen", Pattern: regexp.MustCompile(`[-_]+`)}
	BreakOnWhitespaceHyphen = Strategy{Name: "whitespace-or-hyphen", Pattern: regexp.MustCompile(`[\s\-_]+`)}
)

// DefaultStrategies is the order in which table cells are wrapped.
var DefaultStrategies = []Strategy{
	BreakOnWhitespace,
	BreakOnHyphen,
	BreakOnWhitespaceHyphen,
}

// Wrap breaks each line of text so that it fits within width terminal
// cells, joining the pieces with brk.
//
// Lines that already fit are kept as they are. Longer lines are broken
// using strategies[0]. If any piece is still too wide the
// whole text is wrapped again with the remaining strategies. The output of
// the last strategy is kept even when it overflows, so Wrap never breaks
// inside a word.
func Wrap(text string, width int, brk string, strategies []Strategy) string {
	if width <= 0 || len(strategies) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	fits := true

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		parts := strategies[0].split(line, width)
		for _, p := range parts {
			if runewidth.StringWidth(p) > width {
				fits = false
			}
		}
		out = append(out, strings.Join(parts, brk))
	}

	if !fits && len(strategies) > 1 {
		return Wrap(text, width, brk, strategies[1:])
	}
	return strings.Join(out, brk)
}

// split breaks line into pieces no wider than width where the strategy
// allows it.
func (s Strategy) split(line string, width int) []string {
	var parts []string
	for runewidth.StringWidth(line) > width {
		cut := s.cut(line, width)
		if cut <= 0 || cut >= len(line) {
			break
		}
		parts = append(parts, trimRight(line[:cut]))
		line = line[cut:]
	}
	return append(parts, trimRight(line))
}

// cut returns the byte offset after the last boundary whose preceding text
// fits within width. If none fits, the first boundary is returned. Returns -1
// when the line has no usable boundary.
func (s Strategy) cut(line string, width int) int {
	cut := -1
	for _, m := range s.Pattern.FindAllStringIndex(line, -1) {
		if m[0] == 0 {
			continue
		}
		if m[1] >= len(line) {
			break
		}
		if runewidth.StringWidth(trimRight(line[:m[1]])) > width {
			if cut < 0 {
				cut = m[1]
			}
			break
		}
		cut = m[1]
	}
	return cut
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

package lipgloss_test

import (
	"testing"

	"github.com/alces-flight/flightdocs/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("leaves short lines alone", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("short", 10, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "short", got)
	})

	t.Run("keeps trailing whitespace on lines that fit", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("ab  \ncd ", 10, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "ab  \ncd ", got)
	})

	t.Run("breaks on whitespace", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("the quick brown fox", 10, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "the quick\nbrown fox", got)
	})

	t.Run("falls back to hyphens when there is no whitespace", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("a-very-long-word-without-spaces", 10, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "a-very-\nlong-word-\nwithout-\nspaces", got)
	})

	t.Run("falls back to whitespace or hyphens for mixed text", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("alpha beta-gamma-delta", 10, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "alpha\nbeta-\ngamma-\ndelta", got)
	})

	t.Run("keeps overflowing text when no strategy fits", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("supercalifragilistic", 5, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "supercalifragilistic", got)
	})

	t.Run("wraps each hard line independently", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("one two\nthree four", 5, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "one\ntwo\nthree\nfour", got)
	})

	t.Run("joins pieces with the break sequence", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("one two", 3, "<br>", []lipgloss.Strategy{lipgloss.BreakOnWhitespace})

		assert.Equal(t, "one<br>two", got)
	})

	t.Run("trims trailing whitespace", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("hello   world   ", 6, "\n", []lipgloss.Strategy{lipgloss.BreakOnWhitespace})

		assert.Equal(t, "hello\nworld", got)
	})

	t.Run("measures wide characters in cells", func(t *testing.T) {
		t.Parallel()

		got := lipgloss.Wrap("日本語 日本語", 6, "\n", lipgloss.DefaultStrategies)

		assert.Equal(t, "日本語\n日本語", got)
	})

	t.Run("returns text unchanged without width or strategies", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", lipgloss.Wrap("a b c", 0, "\n", lipgloss.DefaultStrategies))
		assert.Equal(t, "a b c", lipgloss.Wrap("a b c", 1, "\n", nil))
	})

	t.Run("does not modify the strategy list", func(t *testing.T) {
		t.Parallel()

		strategies := []lipgloss.Strategy{lipgloss.BreakOnWhitespace, lipgloss.BreakOnHyphen}
		before := append([]lipgloss.Strategy(nil), strategies...)

		_ = lipgloss.Wrap("a-very-long-word", 5, "\n", strategies)
		_ = lipgloss.Wrap("a-very-long-word", 5, "\n", strategies)

		assert.Equal(t, before, strategies)
	})
}

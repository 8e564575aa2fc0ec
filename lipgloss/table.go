// Package lipgloss renders document listings for the terminal. Interactive
// terminals get a boxed table whose flexible columns are sized to the
// terminal and word-wrapped; anything else gets tab-separated rows.
package lipgloss

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alces-flight/flightdocs"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

var headers = []string{"ID", "Location", "Title", "Type"}

// TableRenderer writes documents as a table.
type TableRenderer struct {
	// Interactive selects the boxed, wrapped table. Otherwise rows are
	// written tab-separated and never truncated or wrapped.
	Interactive bool

	// Width of the terminal in cells. Defaults to DefaultWidth.
	Width int

	// Code returns the identifier shown in the ID column.
	// Defaults to the document ID.
	Code func(doc *flightdocs.Document) string
}

// Render writes docs to w.
func (r *TableRenderer) Render(w io.Writer, docs []*flightdocs.Document) error {
	if !r.Interactive {
		return r.renderTSV(w, docs)
	}
	if len(docs) == 0 {
		_, err := fmt.Fprintln(w, "No documents found.")
		return err
	}
	return r.renderTable(w, docs)
}

func (r *TableRenderer) renderTable(w io.Writer, docs []*flightdocs.Document) error {
	rows := r.rows(docs)

	// ID and Type are fixed; Location and Title share what is left.
	// Headers never wrap, so every column is at least as wide as its header.
	idWidth := runewidth.StringWidth(headers[0])
	locHeader := runewidth.StringWidth(headers[1])
	titleHeader := runewidth.StringWidth(headers[2])
	typeWidth := runewidth.StringWidth(headers[3])
	locWidth, titleWidth := locHeader, titleHeader
	for _, row := range rows {
		idWidth = max(idWidth, runewidth.StringWidth(row[0]))
		locWidth = max(locWidth, runewidth.StringWidth(row[1]))
		titleWidth = max(titleWidth, runewidth.StringWidth(row[2]))
		typeWidth = max(typeWidth, runewidth.StringWidth(row[3]))
	}

	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}
	locCols, titleCols := PlanColumns(width, idWidth+typeWidth, len(headers), locWidth, titleWidth)
	locCols, titleCols = fitHeaders(locCols, titleCols, locHeader, titleHeader)

	for _, row := range rows {
		row[1] = Wrap(row[1], locCols, "\n", DefaultStrategies)
		row[2] = Wrap(row[2], titleCols, "\n", DefaultStrategies)
	}

	re := lipgloss.NewRenderer(w)
	headerStyle := re.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := re.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// renderTSV writes rows as raw tab-joined values so they can be cut and
// passed back to the CLI unchanged.
func (r *TableRenderer) renderTSV(w io.Writer, docs []*flightdocs.Document) error {
	bw := bufio.NewWriter(w)
	for _, row := range r.rows(docs) {
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// fitHeaders widens a planned column that is narrower than its header,
// taking the difference from the other column. The table can still exceed
// the terminal when both headers do not fit.
func fitHeaders(a, b, headerA, headerB int) (int, int) {
	if a < headerA {
		b -= headerA - a
		a = headerA
	}
	if b < headerB {
		if spare := a - headerA; spare > 0 {
			take := min(spare, headerB-b)
			a -= take
			b += take
		}
		b = max(b, headerB)
	}
	return a, b
}

func (r *TableRenderer) rows(docs []*flightdocs.Document) [][]string {
	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, []string{
			r.code(doc),
			doc.Location(),
			doc.Filename,
			flightdocs.ContentTypeLabel(doc.ContentType),
		})
	}
	return rows
}

func (r *TableRenderer) code(doc *flightdocs.Document) string {
	if r.Code == nil {
		return doc.ID
	}
	return r.Code(doc)
}

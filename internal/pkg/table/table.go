// Package table renders plain-text tables whose columns line up for
// Cyrillic and wide characters.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	Left Align = iota
	Right
)

// Column is a table header.
type Column struct {
	Title string
	Align Align
	// MaxWidth truncates cells wider than this many terminal cells. Zero means no limit.
	MaxWidth int
}

// Cyrillic is ambiguous-width under East Asian locales; terminals running
// the CLI render it narrow.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

type Table struct {
	columns []Column
	rows    [][]string
	gap     string
}

func New(columns ...Column) *Table {
	return &Table{columns: columns, gap: "  "}
}

// Append adds a row. Missing cells render empty and extra cells are dropped.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Section adds a full-width line, such as a group heading, between rows.
func (t *Table) Section(title string) {
	t.rows = append(t.rows, []string{sectionMarker + title})
}

const sectionMarker = "\x00"

func (t *Table) Len() int {
	n := 0
	for _, r := range t.rows {
		if !isSection(r) {
			n++
		}
	}
	return n
}

// Render writes the header, a rule and every row.
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()

	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		header[i] = c.Title
	}
	if _, err := fmt.Fprintln(w, t.line(header, widths)); err != nil {
		return err
	}

	total := 0
	for i, wd := range widths {
		total += wd
		if i > 0 {
			total += len(t.gap)
		}
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", total)); err != nil {
		return err
	}

	for _, r := range t.rows {
		var s string
		if isSection(r) {
			s = strings.TrimPrefix(r[0], sectionMarker)
		} else {
			s = t.line(r, widths)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = widthCond.StringWidth(c.Title)
	}
	for _, r := range t.rows {
		if isSection(r) {
			continue
		}
		for i, cell := range r {
			if wd := widthCond.StringWidth(t.clip(i, cell)); wd > widths[i] {
				widths[i] = wd
			}
		}
	}
	return widths
}

func (t *Table) clip(col int, cell string) string {
	limit := t.columns[col].MaxWidth
	if limit <= 0 || widthCond.StringWidth(cell) <= limit {
		return cell
	}
	return widthCond.Truncate(cell, limit, "…")
}

func (t *Table) line(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(t.gap)
		}
		cell = t.clip(i, cell)
		last := i == len(cells)-1
		switch {
		case t.columns[i].Align == Right:
			b.WriteString(widthCond.FillLeft(cell, widths[i]))
		case last:
			b.WriteString(cell)
		default:
			b.WriteString(widthCond.FillRight(cell, widths[i]))
		}
	}
	return b.String()
}

func isSection(r []string) bool {
	return len(r) == 1 && strings.HasPrefix(r[0], sectionMarker)
}

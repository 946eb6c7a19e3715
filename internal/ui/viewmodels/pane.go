// Package viewmodels transforms application state into view-ready data
package viewmodels

import (
	"fmt"
	"sort"

	"codediff/internal/diff"
	"codediff/internal/domain"
)

// Span marks a matched range inside a row, in column offsets of the row text
type Span struct {
	Start  int
	End    int
	Active bool
}

// Row is one rendered line of a pane
type Row struct {
	Kind        domain.LineKind
	Text        string
	BaseLine    int // 1-based, 0 on Added rows
	VariantLine int // 1-based, 0 on Removed rows
	Spans       []Span
}

// Pane is the view-ready form of one document
type Pane struct {
	DocID   string
	Title   string
	Rows    []Row
	Top     int
	Left    int
	Synced  bool
	Added   int
	Removed int
}

// PaneInput carries everything the builder needs for one document
type PaneInput struct {
	Doc     domain.Document
	IsBase  bool
	Script  []domain.DiffLine // nil for the base document
	Matches []domain.Match    // full cross-document list, in order
	Active  int               // index into Matches, or domain.NoActiveMatch
}

// BuildPane produces the rows for one document pane. The base pane shows
// the raw text; every other pane shows the edit script against the base,
// with line counters advancing per side.
func BuildPane(in PaneInput) Pane {
	p := Pane{DocID: in.Doc.ID, Title: in.Doc.Title}

	if in.IsBase {
		for i, line := range diff.SplitLines(in.Doc.Text) {
			p.Rows = append(p.Rows, Row{
				Kind:        domain.Unchanged,
				Text:        line,
				BaseLine:    i + 1,
				VariantLine: i + 1,
			})
		}
	} else {
		baseLine, variantLine := 0, 0
		for _, dl := range in.Script {
			row := Row{Kind: dl.Kind, Text: dl.Text}
			switch dl.Kind {
			case domain.Added:
				variantLine++
				row.VariantLine = variantLine
			case domain.Removed:
				baseLine++
				row.BaseLine = baseLine
			default:
				baseLine++
				variantLine++
				row.BaseLine = baseLine
				row.VariantLine = variantLine
			}
			p.Rows = append(p.Rows, row)
		}
		p.Added, p.Removed = diff.Stats(in.Script)
	}

	applySpans(&p, in)
	return p
}

// applySpans converts the document's match offsets into per-row column
// spans. A match spanning several lines contributes one span per line.
func applySpans(p *Pane, in PaneInput) {
	starts := lineStarts(in.Doc.Text)
	rowFor := docLineToRow(p.Rows, in.IsBase)

	for i, m := range in.Matches {
		if m.DocID != in.Doc.ID {
			continue
		}
		active := i == in.Active

		firstLine := lineAt(starts, m.Start)
		lastLine := lineAt(starts, m.End)
		if m.End > m.Start {
			// An end offset sitting exactly on a line start belongs
			// to the previous line
			lastLine = lineAt(starts, m.End-1)
		}

		for line := firstLine; line <= lastLine; line++ {
			row, ok := rowIndex(rowFor, line)
			if !ok {
				continue
			}
			lineStart := starts[line]
			lineEnd := lineStart + len(p.Rows[row].Text)

			s := maxInt(m.Start, lineStart) - lineStart
			e := minInt(m.End, lineEnd) - lineStart
			if e < s {
				e = s
			}
			p.Rows[row].Spans = append(p.Rows[row].Spans, Span{Start: s, End: e, Active: active})
		}
	}
}

// lineStarts returns the rune-independent byte offset of each line start
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineAt returns the index of the line containing the byte offset
func lineAt(starts []int, off int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
}

// docLineToRow maps 0-based document lines to pane row indexes. In a
// variant pane the document's own lines live on Added and Unchanged rows.
func docLineToRow(rows []Row, isBase bool) []int {
	out := make([]int, 0, len(rows))
	for i, r := range rows {
		if isBase || r.Kind != domain.Removed {
			out = append(out, i)
		}
	}
	return out
}

func rowIndex(rowFor []int, line int) (int, bool) {
	if line < 0 || line >= len(rowFor) {
		return 0, false
	}
	return rowFor[line], true
}

// VisibleText returns the slice of a row's text after horizontal scrolling,
// clipped to the pane width
func VisibleText(text string, left, width int) string {
	runes := []rune(text)
	if left >= len(runes) {
		return ""
	}
	visible := runes[left:]
	if width > 0 && len(visible) > width {
		visible = visible[:width]
	}
	return string(visible)
}

// TitleLine renders the pane header: title plus diff stats for variants
func TitleLine(p Pane, isBase bool) string {
	if isBase {
		return p.Title + " (base)"
	}
	if p.Added == 0 && p.Removed == 0 {
		return p.Title
	}
	return fmt.Sprintf("%s +%d -%d", p.Title, p.Added, p.Removed)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

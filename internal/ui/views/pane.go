package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codediff/internal/domain"
	"codediff/internal/ui/viewmodels"
)

// HighlightFunc colors one line of source text. Nil disables highlighting.
type HighlightFunc func(line string) string

// PaneRenderer handles rendering of document panes
type PaneRenderer struct {
	styles          *Styles
	showLineNumbers bool
}

// NewPaneRenderer creates a new pane renderer
func NewPaneRenderer(styles *Styles, showLineNumbers bool) *PaneRenderer {
	return &PaneRenderer{
		styles:          styles,
		showLineNumbers: showLineNumbers,
	}
}

// RenderPane renders one pane into a bordered box of the given size
func (r *PaneRenderer) RenderPane(p viewmodels.Pane, isBase, active bool, width, height int, highlight HighlightFunc) string {
	innerWidth := width - 2 // border
	if innerWidth < 1 {
		innerWidth = 1
	}
	bodyHeight := height - 3 // border + title line
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	title := viewmodels.TitleLine(p, isBase)
	if p.Synced {
		title = title + " " + r.styles.SyncBadge.Render("≡ synced")
	}
	header := r.styles.PaneTitle.MaxWidth(innerWidth).Render(title)

	gutterWidth := 0
	if r.showLineNumbers {
		gutterWidth = r.gutterWidth(p)
	}
	textWidth := innerWidth - gutterWidth - 2 // kind marker and a space
	if textWidth < 1 {
		textWidth = 1
	}

	lines := make([]string, 0, bodyHeight)
	for i := p.Top; i < p.Top+bodyHeight && i < len(p.Rows); i++ {
		lines = append(lines, r.renderRow(p.Rows[i], p.Left, textWidth, gutterWidth, highlight))
	}

	body := strings.Join(lines, "\n")
	content := header + "\n" + body

	border := r.styles.PaneBorder
	if active {
		border = r.styles.ActiveBorder
	}
	box := border.Width(innerWidth).Height(height - 2)
	return box.Render(content)
}

// renderRow renders a single pane row: gutter, kind marker, then the text
// with match spans applied
func (r *PaneRenderer) renderRow(row viewmodels.Row, left, textWidth, gutterWidth int, highlight HighlightFunc) string {
	var b strings.Builder

	if gutterWidth > 0 {
		b.WriteString(r.styles.LineNumber.Render(r.gutter(row, gutterWidth)))
	}

	kindStyle := r.styles.KindStyle(row.Kind)
	b.WriteString(kindStyle.Render(KindMarker(row.Kind)))
	b.WriteString(" ")

	text := viewmodels.VisibleText(row.Text, left, textWidth)
	switch {
	case len(row.Spans) > 0:
		b.WriteString(r.renderSpans(text, row.Spans, left, kindStyle))
	case row.Kind == domain.Unchanged && left == 0 && highlight != nil:
		b.WriteString(highlight(text))
	default:
		b.WriteString(kindStyle.Render(text))
	}

	return b.String()
}

// renderSpans splits the visible text into matched and unmatched segments.
// Span offsets are in columns of the full row text, so the horizontal
// scroll offset is subtracted first.
func (r *PaneRenderer) renderSpans(text string, spans []viewmodels.Span, left int, normal lipgloss.Style) string {
	runes := []rune(text)
	var b strings.Builder
	pos := 0

	for _, span := range spans {
		start := span.Start - left
		end := span.End - left
		// Zero-width matches have nothing to paint
		if start == end || end <= pos || start >= len(runes) {
			continue
		}
		if start < pos {
			start = pos
		}
		if end > len(runes) {
			end = len(runes)
		}

		b.WriteString(normal.Render(string(runes[pos:start])))
		style := r.styles.Match
		if span.Active {
			style = r.styles.ActiveMatch
		}
		b.WriteString(style.Render(string(runes[start:end])))
		pos = end
	}

	if pos < len(runes) {
		b.WriteString(normal.Render(string(runes[pos:])))
	}
	return b.String()
}

// gutterWidth sizes the line-number gutter to the largest counter in the pane
func (r *PaneRenderer) gutterWidth(p viewmodels.Pane) int {
	max := 1
	for _, row := range p.Rows {
		if row.BaseLine > max {
			max = row.BaseLine
		}
		if row.VariantLine > max {
			max = row.VariantLine
		}
	}
	return len(fmt.Sprint(max))*2 + 2 // two counters, separator, trailing space
}

func (r *PaneRenderer) gutter(row viewmodels.Row, width int) string {
	digits := (width - 2) / 2
	return fmt.Sprintf("%s %s ", counter(row.BaseLine, digits), counter(row.VariantLine, digits))
}

// counter formats a 1-based line number, or dashes when the side has no
// line on this row
func counter(n, digits int) string {
	if n == 0 {
		return strings.Repeat("·", digits)
	}
	return fmt.Sprintf("%*d", digits, n)
}

package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"codediff/internal/domain"
	"codediff/internal/ui/viewmodels"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Panes       []viewmodels.Pane
	ActivePane  int
	Highlighter func(paneIndex int) HighlightFunc

	Query       string
	MatchCount  int
	ActiveMatch int // index into the match list, domain.NoActiveMatch when none

	SyncEnabled bool
	Summarizing bool

	StatusMessage string
	StatusIsError bool

	TextInput     string
	InputMode     string
	ConfirmPrompt string

	ShowSummary    bool
	SummaryContent string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	paneRender *PaneRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showLineNumbers bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		paneRender: NewPaneRenderer(styles, showLineNumbers),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	// Input or confirm prompt take the line under the title
	if state.ConfirmPrompt != "" {
		content.WriteString(r.styles.Confirm.Render(state.ConfirmPrompt))
		content.WriteString("\n")
	} else if state.InputMode != "" {
		content.WriteString(state.TextInput)
		content.WriteString("\n")
	}

	content.WriteString(r.renderPanes(state))
	content.WriteString("\n")
	content.WriteString(r.renderStatusBar(state))

	finalContent := r.styles.Main.MaxHeight(state.Height).Render(content.String())

	if state.ShowSummary && state.SummaryContent != "" {
		return r.renderSummaryOverlay(finalContent, state)
	}
	return finalContent
}

// renderTitleLine builds the top line with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("codediff")

	indicators := []string{}
	if state.Summarizing {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, fmt.Sprintf("%s Summarizing", spinner[frame]))
	}
	if state.SyncEnabled {
		indicators = append(indicators, r.styles.SyncBadge.Render("⇅ Sync"))
	}

	if len(indicators) == 0 {
		return logo
	}

	rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))
	logoWidth := lipgloss.Width(logo)
	rightWidth := lipgloss.Width(rightContent)

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 2 - logoWidth - rightWidth
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

// renderPanes lays the document panes out side by side with equal widths
func (r *Renderer) renderPanes(state ViewState) string {
	n := len(state.Panes)
	if n == 0 {
		return r.styles.Dim.Render("No documents loaded")
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paneWidth := (termWidth - 2) / n
	paneHeight := r.PaneBodyHeight(state.Height) + 3

	rendered := make([]string, 0, n)
	for i, p := range state.Panes {
		var hl HighlightFunc
		if state.Highlighter != nil {
			hl = state.Highlighter(i)
		}
		rendered = append(rendered, r.paneRender.RenderPane(p, i == 0, i == state.ActivePane, paneWidth, paneHeight, hl))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// PaneBodyHeight returns how many text rows fit in a pane for the given
// terminal height. The navigation service uses the same number as its
// viewport height.
func (r *Renderer) PaneBodyHeight(termHeight int) int {
	// Title line, status bar, pane border and header
	h := termHeight - 6
	if h < 1 {
		h = 1
	}
	return h
}

// renderStatusBar builds the bottom line: match counter, message, key hint
func (r *Renderer) renderStatusBar(state ViewState) string {
	parts := []string{}

	if state.Query != "" {
		if state.MatchCount == 0 {
			parts = append(parts, r.styles.StatusError.Render(fmt.Sprintf("No matches for '%s'", state.Query)))
		} else if state.ActiveMatch != domain.NoActiveMatch {
			parts = append(parts, r.styles.Status.Render(
				fmt.Sprintf("Match %d/%d for '%s'", state.ActiveMatch+1, state.MatchCount, state.Query)))
		}
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		parts = append(parts, style.Render(state.StatusMessage))
	}

	parts = append(parts, r.styles.Help.Render("? help"))
	return strings.Join(parts, "  ")
}

// renderSummaryOverlay centers the summary box over a dimmed base layer
func (r *Renderer) renderSummaryOverlay(mainContent string, state ViewState) string {
	width := state.Width
	height := state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	boxWidth := width - 10
	if boxWidth > 80 {
		boxWidth = 80
	}
	body := wrapText(state.SummaryContent, boxWidth-4)
	popup := r.styles.SummaryBox.Width(boxWidth).Render(
		r.styles.Title.Render("Summary") + "\n\n" + body +
			"\n\n" + r.styles.Help.Render("esc to close"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

// wrapText wraps on word boundaries to the given width
func wrapText(s string, width int) string {
	if width < 10 {
		width = 10
	}
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if lipgloss.Width(line)+1+lipgloss.Width(word) <= width {
				line += " " + word
			} else {
				out = append(out, line)
				line = word
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

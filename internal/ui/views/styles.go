package views

import (
	"github.com/charmbracelet/lipgloss"

	"codediff/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	PaneTitle     lipgloss.Style
	PaneBorder    lipgloss.Style
	ActiveBorder  lipgloss.Style
	LineNumber    lipgloss.Style
	AddedLine     lipgloss.Style
	RemovedLine   lipgloss.Style
	Match         lipgloss.Style
	ActiveMatch   lipgloss.Style
	SyncBadge     lipgloss.Style
	SummaryBox    lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(0, 1),
		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		PaneBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")),
		LineNumber:  lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("241")),
		AddedLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		RemovedLine: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Match: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("226")),
		ActiveMatch: lipgloss.NewStyle().
			Background(lipgloss.Color("226")).
			Foreground(lipgloss.Color("16")).
			Bold(true),
		SyncBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		SummaryBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("99")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// KindMarker returns the gutter marker for a diff line kind
func KindMarker(kind domain.LineKind) string {
	switch kind {
	case domain.Added:
		return "+"
	case domain.Removed:
		return "-"
	default:
		return " "
	}
}

// KindStyle returns the line style for a diff line kind
func (s *Styles) KindStyle(kind domain.LineKind) lipgloss.Style {
	switch kind {
	case domain.Added:
		return s.AddedLine
	case domain.Removed:
		return s.RemovedLine
	default:
		return lipgloss.NewStyle()
	}
}

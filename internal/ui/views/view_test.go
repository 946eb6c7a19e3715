package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"codediff/internal/domain"
	"codediff/internal/ui/viewmodels"
)

func TestStatusBarShowsMatchCounter(t *testing.T) {
	r := NewRenderer(true)

	bar := r.renderStatusBar(ViewState{
		Query:       "needle",
		MatchCount:  7,
		ActiveMatch: 2,
	})

	require.Contains(t, bar, "Match 3/7 for 'needle'")
}

func TestStatusBarShowsNoMatches(t *testing.T) {
	r := NewRenderer(true)

	bar := r.renderStatusBar(ViewState{
		Query:       "nothing",
		MatchCount:  0,
		ActiveMatch: domain.NoActiveMatch,
	})

	require.Contains(t, bar, "No matches for 'nothing'")
}

func TestRenderIncludesAllPaneTitles(t *testing.T) {
	r := NewRenderer(false)

	out := r.Render(ViewState{
		Width:  120,
		Height: 30,
		Panes: []viewmodels.Pane{
			{DocID: "a", Title: "left.txt", Rows: []viewmodels.Row{{Text: "x"}}},
			{DocID: "b", Title: "right.txt", Rows: []viewmodels.Row{{Text: "y"}}},
		},
		ActiveMatch: domain.NoActiveMatch,
	})

	require.Contains(t, out, "left.txt (base)")
	require.Contains(t, out, "right.txt")
	require.Contains(t, out, "codediff")
}

func TestPaneBodyHeightNeverZero(t *testing.T) {
	r := NewRenderer(true)

	require.Equal(t, 1, r.PaneBodyHeight(3))
	require.Equal(t, 24, r.PaneBodyHeight(30))
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText("one two three four five", 10)
	for _, line := range strings.Split(wrapped, "\n") {
		require.LessOrEqual(t, len(line), 10)
	}
	require.Equal(t, "one two three four five", strings.ReplaceAll(wrapped, "\n", " "))
}

func TestKindMarker(t *testing.T) {
	require.Equal(t, "+", KindMarker(domain.Added))
	require.Equal(t, "-", KindMarker(domain.Removed))
	require.Equal(t, " ", KindMarker(domain.Unchanged))
}

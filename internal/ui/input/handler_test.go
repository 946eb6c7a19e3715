package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"codediff/internal/ui/input/types"
)

// stubContext satisfies types.Context with settable answers
type stubContext struct {
	title       string
	panes       int
	hasQuery    bool
	hasActive   bool
	showSummary bool
}

func (c stubContext) ActivePaneTitle() string { return c.title }
func (c stubContext) PaneCount() int          { return c.panes }
func (c stubContext) HasQuery() bool          { return c.hasQuery }
func (c stubContext) HasActiveMatch() bool    { return c.hasActive }
func (c stubContext) CanAddPane() bool        { return c.panes < 4 }
func (c stubContext) CanRemovePane() bool     { return c.panes > 2 }
func (c stubContext) ShowingSummary() bool    { return c.showSummary }

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSlashEntersSearchMode(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(key("/"), stubContext{panes: 2})

	require.Equal(t, types.ModeSearch, h.CurrentMode())
	// Mode transitions are resolved inside the handler, nothing surfaces
	require.Empty(t, actions)
}

func TestTypedQuerySubmitsOnEnter(t *testing.T) {
	h := New()
	ctx := stubContext{panes: 2}

	h.HandleKey(key("/"), ctx)
	h.HandleKey(key("f"), ctx)
	h.HandleKey(key("o"), ctx)
	h.HandleKey(key("o"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)

	var submitted *types.SubmitTextAction
	for _, a := range actions {
		if s, ok := a.(types.SubmitTextAction); ok {
			submitted = &s
		}
	}
	require.NotNil(t, submitted)
	require.Equal(t, "foo", submitted.Text)
	require.Equal(t, types.ModeSearch, submitted.Mode)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestEscCancelsTextMode(t *testing.T) {
	h := New()
	ctx := stubContext{panes: 2}

	h.HandleKey(key("/"), ctx)
	h.HandleKey(key("x"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	require.Equal(t, types.ModeNormal, h.CurrentMode())
	var cancelled bool
	for _, a := range actions {
		if _, ok := a.(types.CancelTextAction); ok {
			cancelled = true
		}
	}
	require.True(t, cancelled)
}

func TestTypingReportsUpdates(t *testing.T) {
	h := New()
	ctx := stubContext{panes: 2}

	h.HandleKey(key("/"), ctx)
	actions, _ := h.HandleKey(key("a"), ctx)

	var update *types.UpdateTextAction
	for _, a := range actions {
		if u, ok := a.(types.UpdateTextAction); ok {
			update = &u
		}
	}
	require.NotNil(t, update)
	require.Equal(t, "a", update.Text)
}

func TestReplaceNeedsActiveMatch(t *testing.T) {
	h := New()

	h.HandleKey(key("r"), stubContext{panes: 2})
	require.Equal(t, types.ModeNormal, h.CurrentMode())

	h.HandleKey(key("r"), stubContext{panes: 2, hasQuery: true, hasActive: true})
	require.Equal(t, types.ModeReplaceOne, h.CurrentMode())
}

func TestRenamePrefillsTitle(t *testing.T) {
	h := New()
	ctx := stubContext{panes: 2, title: "old.go"}

	h.HandleKey(key("t"), ctx)
	require.Equal(t, types.ModeRename, h.CurrentMode())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	var submitted *types.SubmitTextAction
	for _, a := range actions {
		if s, ok := a.(types.SubmitTextAction); ok {
			submitted = &s
		}
	}
	require.NotNil(t, submitted)
	require.Equal(t, "old.go", submitted.Text)
}

func TestRemoveNeedsConfirmation(t *testing.T) {
	h := New()
	ctx := stubContext{panes: 3}

	h.HandleKey(key("-"), ctx)
	require.Equal(t, types.ModeRemoveConfirm, h.CurrentMode())

	actions, _ := h.HandleKey(key("y"), ctx)
	var removed bool
	for _, a := range actions {
		if _, ok := a.(types.RemovePaneAction); ok {
			removed = true
		}
	}
	require.True(t, removed)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestRemoveBlockedAtMinimum(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(key("-"), stubContext{panes: 2})

	require.Empty(t, actions)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

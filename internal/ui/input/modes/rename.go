package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"codediff/internal/ui/input/types"
)

// RenameMode prompts for a new title for the focused pane's document.
// Enter prefills the current title so small edits stay cheap.
type RenameMode struct {
	TextInputMode
}

func NewRenameMode(ti *textinput.Model) *RenameMode {
	return &RenameMode{
		TextInputMode: NewTextInputMode(types.ModeRename, "rename", "Rename to: ", ti),
	}
}

func (m *RenameMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(ctx.ActivePaneTitle())
		m.textInput.CursorEnd()
	}
	return actions
}

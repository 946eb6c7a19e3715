package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codediff/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		if ctx.ShowingSummary() {
			return []types.Action{types.CloseOverlayAction{}}, true
		}
		if ctx.HasQuery() {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.FocusPaneAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.FocusPaneAction{Delta: -1}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "ctrl+d":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case "ctrl+u":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case "g":
		// gg goes to the top, vim style
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "n":
		if ctx.HasQuery() {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, false

	case "N":
		if ctx.HasQuery() {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, false

	case "C":
		return []types.Action{types.ToggleCaseAction{}}, true

	case "E":
		return []types.Action{types.ToggleRegexAction{}}, true

	case "r":
		if ctx.HasActiveMatch() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeReplaceOne}}, true
		}
		return nil, false

	case "R":
		if ctx.HasQuery() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeReplaceAll}}, true
		}
		return nil, false

	case "t":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRename}}, true

	case "+", "=":
		if ctx.CanAddPane() {
			return []types.Action{types.AddPaneAction{}}, true
		}
		return nil, false

	case "-":
		if ctx.CanRemovePane() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeRemoveConfirm}}, true
		}
		return nil, false

	case "s":
		return []types.Action{types.ToggleSyncAction{}}, true

	case "S":
		return []types.Action{types.RequestSummaryAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	m.lastKeyWasG = false
	return nil, false
}

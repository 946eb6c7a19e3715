package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type FocusPaneAction struct {
	Delta int // +1 next pane, -1 previous
}

func (a FocusPaneAction) Type() string { return "focus_pane" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type ToggleCaseAction struct{}

func (a ToggleCaseAction) Type() string { return "toggle_case" }

type ToggleRegexAction struct{}

func (a ToggleRegexAction) Type() string { return "toggle_regex" }

// Pane actions
type AddPaneAction struct{}

func (a AddPaneAction) Type() string { return "add_pane" }

type RemovePaneAction struct{}

func (a RemovePaneAction) Type() string { return "remove_pane" }

// Command actions
type ToggleSyncAction struct{}

func (a ToggleSyncAction) Type() string { return "toggle_sync" }

type RequestSummaryAction struct{}

func (a RequestSummaryAction) Type() string { return "request_summary" }

type CloseOverlayAction struct{}

func (a CloseOverlayAction) Type() string { return "close_overlay" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

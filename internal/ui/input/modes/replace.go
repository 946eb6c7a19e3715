package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"codediff/internal/ui/input/types"
)

// ReplaceOneMode prompts for the text substituted into the active match
type ReplaceOneMode struct {
	TextInputMode
}

func NewReplaceOneMode(ti *textinput.Model) *ReplaceOneMode {
	return &ReplaceOneMode{
		TextInputMode: NewTextInputMode(types.ModeReplaceOne, "replace", "Replace match with: ", ti),
	}
}

// ReplaceAllMode prompts for the text substituted into every match
type ReplaceAllMode struct {
	TextInputMode
}

func NewReplaceAllMode(ti *textinput.Model) *ReplaceAllMode {
	return &ReplaceAllMode{
		TextInputMode: NewTextInputMode(types.ModeReplaceAll, "replace-all", "Replace all with: ", ti),
	}
}

package ui

import (
	"chemvista/internal/suggest"
	"chemvista/internal/ui/input"
	"chemvista/internal/ui/input/types"
	"chemvista/internal/ui/state"
)

// dropdownView is the suggestion controller's handle on the screen
type dropdownView struct {
	state *state.AppState
	input *input.Handler
}

var _ suggest.View = (*dropdownView)(nil)

func (v *dropdownView) Render(rows []suggest.Row) {
	v.state.DropdownRows = rows
}

func (v *dropdownView) Show() {
	v.state.DropdownVisible = true
}

func (v *dropdownView) Hide() {
	v.state.DropdownVisible = false
}

// Blur moves focus to the table. The controller has already done its own
// blur bookkeeping, so the mode hooks are skipped.
func (v *dropdownView) Blur() {
	v.input.ChangeMode(types.ModeTable)
}

package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"chemvista/internal/ui/input/types"
)

// ModalMode is active while an element or compound modal is on screen
type ModalMode struct{}

func NewModalMode() *ModalMode {
	return &ModalMode{}
}

func (m *ModalMode) Name() string {
	return "modal"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "enter", " ":
		return []types.Action{types.CloseModalAction{}}, true
	case "o":
		if ctx.ModalShowsElement() {
			return []types.Action{types.CloseModalAction{}, types.OpenElementPageAction{}}, true
		}
	}
	// Everything else is swallowed while the modal is open
	return nil, true
}

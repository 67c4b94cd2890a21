package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"chemvista/internal/ui/input/types"
)

// SearchMode types into the search box. Keys aimed at the suggestion
// dropdown are taken by the suggestion controller before they get here.
type SearchMode struct{}

func NewSearchMode() *SearchMode {
	return &SearchMode{}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusedAction{}}
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.BlurredAction{}}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab", "shift+tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeTable}}, true
	case "enter":
		return []types.Action{types.SubmitSearchAction{}}, true
	case "ctrl+o":
		if ctx.HasActiveSuggestion() {
			return []types.Action{types.PreviewCompoundAction{}}, true
		}
		return nil, true
	default:
		// Let the handler feed the text input
		return nil, false
	}
}

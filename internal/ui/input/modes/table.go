package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"chemvista/internal/ui/input/types"
)

// TableMode moves the cursor around the periodic table
type TableMode struct{}

func NewTableMode() *TableMode {
	return &TableMode{}
}

func (m *TableMode) Name() string {
	return "table"
}

func (m *TableMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *TableMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *TableMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case tea.KeyEnter, tea.KeySpace:
		return []types.Action{types.OpenElementAction{}}, true
	case tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	}

	switch key := msg.String(); key {
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case "o":
		return []types.Action{types.OpenElementPageAction{}}, true
	case "/", "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "t":
		return []types.Action{types.ToggleThemeAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < ctx.ExampleCount() {
			return []types.Action{types.ExampleAction{Index: idx}}, true
		}
		return nil, true
	}

	return nil, false
}

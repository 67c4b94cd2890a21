package input

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chemvista/internal/ui/input/types"
)

type fakeContext struct {
	examples      int
	activeSuggest bool
	elementModal  bool
}

func (c fakeContext) ExampleCount() int         { return c.examples }
func (c fakeContext) HasActiveSuggestion() bool { return c.activeSuggest }
func (c fakeContext) ModalShowsElement() bool   { return c.elementModal }

func newHandler() (*Handler, *textinput.Model) {
	ti := textinput.New()
	ti.Cursor.SetMode(cursor.CursorStatic)
	return New(&ti), &ti
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTableModeKeys(t *testing.T) {
	h, _ := newHandler()
	ctx := fakeContext{examples: 5}

	tests := []struct {
		name string
		key  tea.KeyMsg
		want []types.Action
	}{
		{"vim down", runes("j"), []types.Action{types.NavigateAction{Direction: "down"}}},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, []types.Action{types.NavigateAction{Direction: "left"}}},
		{"enter opens", tea.KeyMsg{Type: tea.KeyEnter}, []types.Action{types.OpenElementAction{}}},
		{"o opens page", runes("o"), []types.Action{types.OpenElementPageAction{}}},
		{"theme", runes("t"), []types.Action{types.ToggleThemeAction{}}},
		{"help", runes("?"), []types.Action{types.ToggleHelpAction{}}},
		{"example", runes("3"), []types.Action{types.ExampleAction{Index: 2}}},
		{"example out of range", runes("9"), nil},
		{"quit", runes("q"), []types.Action{types.QuitAction{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, _ := h.HandleKey(tt.key, ctx)
			assert.Equal(t, tt.want, actions)
			assert.Equal(t, types.ModeTable, h.CurrentMode())
		})
	}
}

func TestTabEntersSearchAndFocusesInput(t *testing.T) {
	h, ti := newHandler()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, fakeContext{})
	assert.Equal(t, []types.Action{types.FocusedAction{}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, ti.Focused())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, fakeContext{})
	assert.Equal(t, []types.Action{types.BlurredAction{}}, actions)
	assert.Equal(t, types.ModeTable, h.CurrentMode())
	assert.False(t, ti.Focused())
}

func TestSearchModeFeedsTextInput(t *testing.T) {
	h, ti := newHandler()
	h.ChangeMode(types.ModeSearch)

	actions, _ := h.HandleKey(runes("N"), fakeContext{})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "N"}}, actions)

	actions, _ = h.HandleKey(runes("a"), fakeContext{})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "Na"}}, actions)
	assert.Equal(t, "Na", ti.Value())

	// Table keys are plain text here
	actions, _ = h.HandleKey(runes("q"), fakeContext{})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "Naq"}}, actions)

	// Cursor movement does not change the value
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, fakeContext{})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.Equal(t, []types.Action{types.SubmitSearchAction{}}, actions)
}

func TestSearchModePreviewNeedsActiveSuggestion(t *testing.T) {
	h, _ := newHandler()
	h.ChangeMode(types.ModeSearch)
	key := tea.KeyMsg{Type: tea.KeyCtrlO}

	actions, _ := h.HandleKey(key, fakeContext{})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(key, fakeContext{activeSuggest: true})
	assert.Equal(t, []types.Action{types.PreviewCompoundAction{}}, actions)
}

func TestModalModeSwallowsKeys(t *testing.T) {
	h, _ := newHandler()
	h.ChangeMode(types.ModeModal)

	actions, _ := h.HandleKey(runes("j"), fakeContext{})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Equal(t, []types.Action{types.CloseModalAction{}}, actions)

	actions, _ = h.HandleKey(runes("o"), fakeContext{elementModal: true})
	assert.Equal(t, []types.Action{types.CloseModalAction{}, types.OpenElementPageAction{}}, actions)

	actions, _ = h.HandleKey(runes("o"), fakeContext{})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeModal, h.CurrentMode())
}

func TestEnterModeRunsHooks(t *testing.T) {
	h, _ := newHandler()

	actions, _ := h.EnterMode(types.ModeSearch, fakeContext{})
	require.Equal(t, []types.Action{types.FocusedAction{}}, actions)

	actions, _ = h.EnterMode(types.ModeSearch, fakeContext{})
	assert.Nil(t, actions)
}

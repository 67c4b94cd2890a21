package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"chemvista/internal/ui/input/modes"
	"chemvista/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // the search box
}

func New(ti *textinput.Model) *Handler {
	h := &Handler{
		currentMode: types.ModeTable,
		textInput:   ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeTable] = modes.NewTableMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode()
	h.modes[types.ModeModal] = modes.NewModalMode()

	return h
}

// HandleKey routes a key to the current mode. Mode changes requested by
// the mode are applied here and the enter/exit actions of both modes are
// returned along with the rest.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			cmd = h.setMode(changeMode.Mode)
			allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			continue
		}
		allActions = append(allActions, action)
	}

	// Unconsumed keys in search mode go to the text input
	if !consumed && h.currentMode == types.ModeSearch {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

// ChangeMode switches mode without running enter/exit hooks
func (h *Handler) ChangeMode(mode types.Mode) tea.Cmd {
	return h.setMode(mode)
}

// EnterMode switches mode and returns the hook actions
func (h *Handler) EnterMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}
	var actions []types.Action
	actions = append(actions, h.modes[h.currentMode].Exit(ctx)...)
	cmd := h.setMode(mode)
	actions = append(actions, h.modes[h.currentMode].Enter(ctx)...)
	return actions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Update handles non-keyboard messages for the text input, e.g. cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) setMode(mode types.Mode) tea.Cmd {
	h.currentMode = mode
	if mode == types.ModeSearch {
		return h.textInput.Focus()
	}
	h.textInput.Blur()
	return nil
}

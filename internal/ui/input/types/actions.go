package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Search box actions
type FocusedAction struct{}

func (a FocusedAction) Type() string { return "focused" }

type BlurredAction struct{}

func (a BlurredAction) Type() string { return "blurred" }

type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitSearchAction struct{}

func (a SubmitSearchAction) Type() string { return "submit_search" }

type PreviewCompoundAction struct{}

func (a PreviewCompoundAction) Type() string { return "preview_compound" }

type ExampleAction struct {
	Index int // zero based
}

func (a ExampleAction) Type() string { return "example" }

// Periodic table actions
type OpenElementAction struct{}

func (a OpenElementAction) Type() string { return "open_element" }

type OpenElementPageAction struct{}

func (a OpenElementPageAction) Type() string { return "open_element_page" }

type CloseModalAction struct{}

func (a CloseModalAction) Type() string { return "close_modal" }

// Application actions
type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

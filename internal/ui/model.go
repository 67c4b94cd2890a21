package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"chemvista/internal/catalog"
	"chemvista/internal/config"
	"chemvista/internal/domain"
	"chemvista/internal/eventbus"
	"chemvista/internal/nav"
	"chemvista/internal/periodic"
	"chemvista/internal/searchapi"
	"chemvista/internal/suggest"
	"chemvista/internal/ui/handlers"
	"chemvista/internal/ui/input"
	inputtypes "chemvista/internal/ui/input/types"
	"chemvista/internal/ui/state"
	"chemvista/internal/ui/views"
)

const (
	modalOpenDelay  = 10 * time.Millisecond
	modalCloseDelay = 300 * time.Millisecond
)

// Options carries the collaborators of the model
type Options struct {
	Catalogs  *catalog.Store
	Searcher  searchapi.Searcher
	Navigator suggest.Navigator
	Theme     domain.Theme
	Logger    *zap.Logger
	Pager     nav.PagerFunc    // help pager, ov when nil
	Tick      suggest.TickFunc // tea.Tick when nil
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	logger *zap.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	textInput   *textinput.Model
	modalReturn inputtypes.Mode // mode to go back to when the modal closes
	initCmd     tea.Cmd

	catalogs     *catalog.Store
	navigator    suggest.Navigator
	suggestions  *suggest.Controller
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        nav.PagerFunc
	tick         suggest.TickFunc

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The search box starts focused.
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Catalogs == nil {
		opts.Catalogs = catalog.NewStore(catalog.Default())
	}
	if opts.Tick == nil {
		opts.Tick = tea.Tick
	}
	if opts.Pager == nil {
		opts.Pager = nav.RunPager
	}
	if opts.Theme == "" {
		opts.Theme = domain.ThemeLight
	}

	ti := textinput.New()
	ti.Placeholder = "Search compounds, e.g. Sodium Chloride"
	ti.Prompt = "› "
	ti.CharLimit = 128
	ti.Width = 48

	keys := DefaultKeyMap()
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(opts.Catalogs.Current(), opts.Theme),
		logger:       opts.Logger,
		help:         help.New(),
		keys:         keys,
		textInput:    &ti,
		catalogs:     opts.Catalogs,
		navigator:    opts.Navigator,
		renderer:     views.NewRenderer(opts.Theme),
		helpRenderer: NewHelpRenderer(keys),
		pager:        opts.Pager,
		tick:         opts.Tick,
		modalReturn:  inputtypes.ModeSearch,
	}
	m.state.ShowExamples = cfg.UISettings.ShowExamples
	m.inputHandler = input.New(m.textInput)
	m.eventHandler = handlers.NewEventHandler(m.state, opts.Catalogs)

	m.suggestions = suggest.New(opts.Searcher, &dropdownView{state: m.state, input: m.inputHandler}, opts.Navigator,
		suggest.WithDebounce(cfg.Search.Debounce()),
		suggest.WithBlurGrace(cfg.UISettings.BlurGrace()),
		suggest.WithMinQueryLength(cfg.Search.MinQueryLength),
		suggest.WithLogger(opts.Logger.Named("suggest")),
		suggest.WithEventBus(bus),
		suggest.WithTick(opts.Tick),
	)

	m.initCmd = m.inputHandler.ChangeMode(inputtypes.ModeSearch)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if t, ok := m.navigator.(interface{ SetTerminal(nav.Terminal) }); ok {
		t.SetTerminal(p)
	}
}

// State exposes the application state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, textinput.Blink)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.suggestions.Update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-keyboard messages, e.g. cursor blink, also reach the text input
	inputCmd := m.inputHandler.Update(msg)
	_, cmd := m.handleNonKeyboardMsg(msg)
	return m, tea.Batch(inputCmd, cmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the notice
	if m.state.Notice != "" {
		m.state.DismissNotice(0)
	}

	// Help popup swallows keys until closed
	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "q", "?":
			m.state.ShowHelp = false
		case "ctrl+c":
			return m, m.quit()
		}
		return m, nil
	}

	// Keys aimed at the dropdown go to the suggestion controller first
	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		if cmd, consumed := m.suggestions.OnKeydown(msg); consumed {
			return m, cmd
		}
	}

	actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.state.MoveCursor(a.Direction)

	case inputtypes.FocusedAction:
		return m.suggestions.OnFocus()

	case inputtypes.BlurredAction:
		return m.suggestions.OnBlur()

	case inputtypes.UpdateTextAction:
		return m.suggestions.OnInput(a.Text)

	case inputtypes.SubmitSearchAction:
		cmd, err := m.suggestions.Submit()
		if errors.Is(err, suggest.ErrEmptyQuery) {
			return m.showNotice("Please enter a search term")
		}
		return cmd

	case inputtypes.PreviewCompoundAction:
		if s, ok := m.suggestions.Active(); ok {
			return m.openModal(state.ModalCompound, domain.Element{}, s)
		}

	case inputtypes.ExampleAction:
		if a.Index < 0 || a.Index >= len(state.Examples) {
			return nil
		}
		term := state.Examples[a.Index]
		m.textInput.SetValue(term)
		m.suggestions.SetQuery(term)
		return m.suggestions.SubmitQuery(term)

	case inputtypes.OpenElementAction:
		cell := m.state.CurrentCell()
		switch cell.Kind {
		case periodic.CellPlaceholder:
			m.state.Cursor = m.state.Table.Enter(m.state.Cursor)
		case periodic.CellElement:
			return m.openModal(state.ModalElement, cell.Element, domain.Suggestion{})
		}

	case inputtypes.OpenElementPageAction:
		var n int
		if m.state.Modal.Kind == state.ModalElement {
			n = m.state.Modal.Element.AtomicNumber
		} else if cell := m.state.CurrentCell(); cell.Kind == periodic.CellElement {
			n = cell.Element.AtomicNumber
		}
		if n > 0 {
			return m.suggestions.Navigate(nav.ElementPath(n))
		}

	case inputtypes.CloseModalAction:
		return m.closeModal()

	case inputtypes.ToggleThemeAction:
		m.state.Theme = m.state.Theme.Toggle()
		m.renderer.SetTheme(m.state.Theme)
		if m.bus != nil {
			m.bus.Publish(eventbus.ThemeChangedEvent{Theme: m.state.Theme})
		}

	case inputtypes.ToggleHelpAction:
		if m.state.ShowHelp {
			m.state.ShowHelp = false
			return nil
		}
		return m.showHelpInPager()

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case noticeExpiredMsg:
		m.state.DismissNotice(msg.gen)

	case modalPhaseMsg:
		m.state.AdvanceModal(msg.gen)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the popup
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.state.ShowHelp = true
		}

	case suggest.NavigatedMsg:
		if msg.Err != nil {
			m.logger.Error("navigation failed", zap.String("path", msg.Path), zap.Error(msg.Err))
			m.state.StatusMessage = fmt.Sprintf("Could not open %s", msg.Path)
			return m, nil
		}
		m.state.StatusMessage = ""
		if m.bus != nil {
			m.bus.Publish(eventbus.NavigatedEvent{Path: msg.Path})
		}
	}
	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	vs := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		SearchInput:     m.textInput.View(),
		SearchFocused:   mode == inputtypes.ModeSearch,
		DropdownRows:    m.state.DropdownRows,
		DropdownVisible: m.state.DropdownVisible,
		Table:           m.state.Table,
		Cursor:          m.state.Cursor,
		ShowCursor:      mode != inputtypes.ModeSearch,
		Modal:           m.state.Modal,
		Notice:          m.state.Notice,
		StatusMessage:   m.state.StatusMessage,
		ShowHelp:        m.state.ShowHelp,
		HelpLine:        m.help.View(m.keys),
	}
	if m.state.ShowExamples {
		vs.Examples = state.Examples
	}
	if m.state.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent()
	}
	return m.renderer.Render(vs)
}

func (m *Model) showNotice(text string) tea.Cmd {
	gen := m.state.ShowNotice(text)
	return m.tick(m.config.UISettings.NoticeDuration(), func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}

func (m *Model) openModal(kind state.ModalKind, e domain.Element, c domain.Suggestion) tea.Cmd {
	if mode := m.inputHandler.CurrentMode(); mode != inputtypes.ModeModal {
		m.modalReturn = mode
	}
	m.inputHandler.ChangeMode(inputtypes.ModeModal)
	gen := m.state.OpenModal(kind, e, c)
	return m.tick(modalOpenDelay, func(time.Time) tea.Msg {
		return modalPhaseMsg{gen: gen}
	})
}

func (m *Model) closeModal() tea.Cmd {
	cmd := m.inputHandler.ChangeMode(m.modalReturn)
	gen := m.state.CloseModal()
	return tea.Batch(cmd, m.tick(modalCloseDelay, func(time.Time) tea.Msg {
		return modalPhaseMsg{gen: gen}
	}))
}

// showHelpInPager shows the help page in ov
func (m *Model) showHelpInPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent()
	program, pager := m.program, m.pager
	return func() tea.Msg {
		if program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		return helpPagerMsg{err: nav.Show(program, pager, content)}
	}
}

func (m *Model) quit() tea.Cmd {
	m.suggestions.Close()
	return tea.Quit
}

// modelContext gives the input modes read access to the model
type modelContext struct {
	m *Model
}

func (c *modelContext) ExampleCount() int {
	if !c.m.state.ShowExamples {
		return 0
	}
	return len(state.Examples)
}

func (c *modelContext) HasActiveSuggestion() bool {
	_, ok := c.m.suggestions.Active()
	return ok
}

func (c *modelContext) ModalShowsElement() bool {
	return c.m.state.Modal.Kind == state.ModalElement
}

// Package suggest turns keystrokes in the search box into debounced
// requests to the search endpoint and renders the results as a dropdown.
//
// All state changes happen on the Bubble Tea update loop. Timers are tick
// commands tagged with a generation; bumping the generation cancels them.
// Requests carry a sequence number and only the latest one is rendered.
package suggest

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"chemvista/internal/domain"
	"chemvista/internal/eventbus"
	"chemvista/internal/nav"
	"chemvista/internal/searchapi"
)

// ErrEmptyQuery is returned by Submit when there is nothing to search for
var ErrEmptyQuery = errors.New("please enter a search term")

const (
	DefaultDebounce       = 300 * time.Millisecond
	DefaultBlurGrace      = 200 * time.Millisecond
	DefaultMinQueryLength = 2
)

// View is everything the controller may do to the UI
type View interface {
	Render(rows []Row)
	Show()
	Hide()
	Blur()
}

// Navigator performs a page navigation
type Navigator interface {
	Navigate(path string) error
}

// Row is one rendered suggestion
type Row struct {
	Suggestion domain.Suggestion
	Segments   []Segment
	Active     bool
}

// TickFunc has the signature of tea.Tick
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

type debounceMsg struct {
	gen   uint64
	query string
}

type resultMsg struct {
	seq         uint64
	query       string
	suggestions []domain.Suggestion
	err         error
}

type blurMsg struct {
	gen uint64
}

// NavigatedMsg reports the outcome of a navigation
type NavigatedMsg struct {
	Path string
	Err  error
}

// Controller owns the suggestion dropdown
type Controller struct {
	searcher  searchapi.Searcher
	view      View
	navigator Navigator
	logger    *zap.Logger
	bus       eventbus.EventBus
	tick      TickFunc

	debounce  time.Duration
	blurGrace time.Duration
	minLen    int

	query       string
	debounceGen uint64
	blurGen     uint64
	seq         uint64
	inFlight    bool
	cancel      context.CancelFunc
	focused     bool
	visible     bool
	rows        []Row
	active      int
}

// Option configures a Controller
type Option func(*Controller)

func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

func WithBlurGrace(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.blurGrace = d
		}
	}
}

func WithMinQueryLength(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.minLen = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEventBus publishes render and failure events to bus
func WithEventBus(bus eventbus.EventBus) Option {
	return func(c *Controller) {
		c.bus = bus
	}
}

// WithTick replaces tea.Tick, mainly for tests
func WithTick(tick TickFunc) Option {
	return func(c *Controller) {
		if tick != nil {
			c.tick = tick
		}
	}
}

// New creates a controller. The input starts focused.
func New(searcher searchapi.Searcher, view View, navigator Navigator, opts ...Option) *Controller {
	c := &Controller{
		searcher:  searcher,
		view:      view,
		navigator: navigator,
		logger:    zap.NewNop(),
		tick:      tea.Tick,
		debounce:  DefaultDebounce,
		blurGrace: DefaultBlurGrace,
		minLen:    DefaultMinQueryLength,
		focused:   true,
		active:    -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query returns the latest trimmed query
func (c *Controller) Query() string { return c.query }

// Visible reports whether the dropdown is shown
func (c *Controller) Visible() bool { return c.visible }

// Focused reports whether the search box has focus
func (c *Controller) Focused() bool { return c.focused }

// InFlight reports whether a request is outstanding
func (c *Controller) InFlight() bool { return c.inFlight }

// Active returns the highlighted suggestion, if any
func (c *Controller) Active() (domain.Suggestion, bool) {
	if !c.visible || c.active < 0 || c.active >= len(c.rows) {
		return domain.Suggestion{}, false
	}
	return c.rows[c.active].Suggestion, true
}

// Rows returns the rows of the last render
func (c *Controller) Rows() []Row {
	out := make([]Row, len(c.rows))
	copy(out, c.rows)
	return out
}

// OnInput records the query and schedules a fetch after the debounce
// window. Short queries clear the dropdown without touching the network.
func (c *Controller) OnInput(raw string) tea.Cmd {
	c.query = strings.TrimSpace(raw)
	c.debounceGen++

	if utf8.RuneCountInString(c.query) < c.minLen {
		c.abort()
		c.clear()
		return nil
	}

	gen, query := c.debounceGen, c.query
	return c.tick(c.debounce, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen, query: query}
	})
}

// SetQuery replaces the query without fetching, for text put into the
// search box by something other than typing. A pending debounce tick or
// request for the old query is made stale.
func (c *Controller) SetQuery(raw string) {
	c.query = strings.TrimSpace(raw)
	c.debounceGen++
	c.abort()
}

// FetchAndRender issues a request for query unless one is already in
// flight, in which case the call is dropped.
func (c *Controller) FetchAndRender(query string) tea.Cmd {
	if c.inFlight {
		c.logger.Debug("search in flight, dropping fetch", zap.String("query", query))
		return nil
	}
	return c.issue(query)
}

// Render replaces the dropdown rows. An empty list hides the dropdown.
func (c *Controller) Render(suggestions []domain.Suggestion) {
	c.active = -1
	if len(suggestions) == 0 {
		c.rows = nil
		c.hide()
		return
	}

	rows := make([]Row, len(suggestions))
	for i, s := range suggestions {
		rows[i] = Row{Suggestion: s, Segments: Highlight(s.Name, c.query)}
	}
	c.rows = rows
	c.view.Render(c.Rows())
	c.show()

	if c.bus != nil {
		c.bus.Publish(eventbus.SuggestionsRenderedEvent{Query: c.query, Count: len(rows)})
	}
}

// OnSelect navigates to the compound page for id
func (c *Controller) OnSelect(id string) tea.Cmd {
	c.hide()
	return c.navigate(nav.CompoundPath(id))
}

// OnFocus refetches right away when the query is long enough. The focus
// fetch pre-empts any request in flight.
func (c *Controller) OnFocus() tea.Cmd {
	c.focused = true
	c.blurGen++

	if utf8.RuneCountInString(c.query) < c.minLen {
		return nil
	}
	return c.issue(c.query)
}

// OnBlur hides the dropdown after a grace period so a selection made at
// the same moment still lands
func (c *Controller) OnBlur() tea.Cmd {
	c.focused = false
	c.blurGen++
	gen := c.blurGen
	return c.tick(c.blurGrace, func(time.Time) tea.Msg {
		return blurMsg{gen: gen}
	})
}

// OnKeydown handles keys aimed at the dropdown. It reports whether the key
// was consumed.
func (c *Controller) OnKeydown(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		c.Dismiss()
		return nil, true
	case "up", "ctrl+p":
		if !c.visible || len(c.rows) == 0 {
			return nil, false
		}
		c.MoveUp()
		return nil, true
	case "down", "ctrl+n":
		if !c.visible || len(c.rows) == 0 {
			return nil, false
		}
		c.MoveDown()
		return nil, true
	case "enter":
		if c.visible && c.active >= 0 && c.active < len(c.rows) {
			return c.OnSelect(c.rows[c.active].Suggestion.ID), true
		}
		return nil, false
	}
	return nil, false
}

// Dismiss hides the dropdown and blurs the input
func (c *Controller) Dismiss() {
	c.focused = false
	c.blurGen++
	c.hide()
	c.view.Blur()
}

// MoveDown highlights the next row, wrapping to the first
func (c *Controller) MoveDown() {
	if len(c.rows) == 0 {
		return
	}
	c.setActive((c.active + 1) % len(c.rows))
}

// MoveUp highlights the previous row, wrapping to the last
func (c *Controller) MoveUp() {
	if len(c.rows) == 0 {
		return
	}
	if c.active <= 0 {
		c.setActive(len(c.rows) - 1)
		return
	}
	c.setActive(c.active - 1)
}

// Submit runs a page-level search for the current query
func (c *Controller) Submit() (tea.Cmd, error) {
	if c.query == "" {
		return nil, ErrEmptyQuery
	}
	return c.SubmitQuery(c.query), nil
}

// SubmitQuery runs a page-level search for q, e.g. one of the examples
func (c *Controller) SubmitQuery(q string) tea.Cmd {
	c.hide()
	return c.navigate(nav.SearchPath(strings.TrimSpace(q)))
}

// Navigate leaves for path through the controller's navigator
func (c *Controller) Navigate(path string) tea.Cmd {
	return c.navigate(path)
}

// Update routes the controller's own messages. It reports whether msg
// belonged to the controller.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case debounceMsg:
		if msg.gen != c.debounceGen {
			return nil, true
		}
		return c.FetchAndRender(msg.query), true

	case resultMsg:
		c.handleResult(msg)
		return nil, true

	case blurMsg:
		if msg.gen == c.blurGen && !c.focused {
			c.hide()
		}
		return nil, true
	}
	return nil, false
}

// Close cancels any request in flight
func (c *Controller) Close() {
	c.abort()
}

func (c *Controller) issue(query string) tea.Cmd {
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.inFlight = true

	searcher := c.searcher
	return func() tea.Msg {
		res, err := searcher.Search(ctx, query)
		return resultMsg{seq: seq, query: query, suggestions: res, err: err}
	}
}

func (c *Controller) handleResult(msg resultMsg) {
	if msg.seq != c.seq {
		c.logger.Debug("discarding stale search response",
			zap.Uint64("seq", msg.seq), zap.Uint64("latest", c.seq), zap.String("query", msg.query))
		return
	}
	c.inFlight = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if msg.err != nil {
		c.logger.Warn("search failed", zap.String("query", msg.query), zap.Error(msg.err))
		if c.bus != nil {
			c.bus.Publish(eventbus.SearchFailedEvent{Query: msg.query, Seq: msg.seq, Err: msg.err})
		}
		return
	}
	c.Render(msg.suggestions)
}

// abort cancels the outstanding request and makes its response stale
func (c *Controller) abort() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.inFlight {
		c.seq++
		c.inFlight = false
	}
}

func (c *Controller) navigate(path string) tea.Cmd {
	navigator := c.navigator
	return func() tea.Msg {
		return NavigatedMsg{Path: path, Err: navigator.Navigate(path)}
	}
}

func (c *Controller) setActive(i int) {
	c.active = i
	for j := range c.rows {
		c.rows[j].Active = j == i
	}
	c.view.Render(c.Rows())
}

func (c *Controller) clear() {
	c.rows = nil
	c.active = -1
	c.view.Render(nil)
	c.hide()
}

func (c *Controller) show() {
	c.visible = true
	c.view.Show()
}

func (c *Controller) hide() {
	c.visible = false
	c.view.Hide()
}

package state

import (
	"chemvista/internal/catalog"
	"chemvista/internal/domain"
	"chemvista/internal/periodic"
	"chemvista/internal/suggest"
)

// Examples are the canned searches offered under the search box
var Examples = []string{"Water", "Sodium Chloride", "Aspirin", "Glucose", "Methane"}

// ModalKind says what a modal shows
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalElement
	ModalCompound
)

// ModalPhase tracks the two-step open and close of a modal
type ModalPhase int

const (
	PhaseHidden ModalPhase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

// Modal is the element or compound dialog
type Modal struct {
	Kind     ModalKind
	Phase    ModalPhase
	Element  domain.Element
	Compound domain.Suggestion
	Gen      uint64 // bumps on every open or close so stale phase ticks are ignored
}

// Visible reports whether anything of the modal is on screen
func (m Modal) Visible() bool {
	return m.Kind != ModalNone && m.Phase != PhaseHidden
}

// AppState contains all the application state
type AppState struct {
	// Periodic table
	Table  *periodic.Table
	Cursor periodic.Position

	// Search box and dropdown
	DropdownRows    []suggest.Row
	DropdownVisible bool
	ShowExamples    bool

	// Overlays
	Modal     Modal
	Notice    string
	NoticeGen uint64
	ShowHelp  bool

	Theme         domain.Theme
	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState(c *catalog.Catalog, theme domain.Theme) *AppState {
	s := &AppState{Theme: theme, ShowExamples: true}
	s.SetCatalog(c)
	return s
}

// SetCatalog rebuilds the table, keeping the cursor on the same element
// when it still exists
func (s *AppState) SetCatalog(c *catalog.Catalog) {
	var current int
	if s.Table != nil {
		current = s.Table.At(s.Cursor).Element.AtomicNumber
	}

	s.Table = periodic.Build(c.All())
	if pos, ok := s.Table.Find(current); ok && current > 0 {
		s.Cursor = pos
		return
	}
	if !s.Table.Occupied(s.Cursor) {
		s.Cursor = s.Table.Home()
	}
}

// CurrentCell returns the cell under the cursor
func (s *AppState) CurrentCell() periodic.Cell {
	return s.Table.At(s.Cursor)
}

// MoveCursor moves the cursor one step
func (s *AppState) MoveCursor(direction string) {
	var d periodic.Direction
	switch direction {
	case "up":
		d = periodic.Up
	case "down":
		d = periodic.Down
	case "left":
		d = periodic.Left
	case "right":
		d = periodic.Right
	default:
		return
	}
	s.Cursor = s.Table.Move(s.Cursor, d)
}

// OpenModal starts showing a modal and returns its generation
func (s *AppState) OpenModal(kind ModalKind, e domain.Element, c domain.Suggestion) uint64 {
	s.Modal.Gen++
	s.Modal = Modal{Kind: kind, Phase: PhaseOpening, Element: e, Compound: c, Gen: s.Modal.Gen}
	return s.Modal.Gen
}

// CloseModal starts the closing phase and returns its generation
func (s *AppState) CloseModal() uint64 {
	s.Modal.Gen++
	s.Modal.Phase = PhaseClosing
	return s.Modal.Gen
}

// AdvanceModal completes the phase started under gen. Stale generations
// are ignored.
func (s *AppState) AdvanceModal(gen uint64) {
	if gen != s.Modal.Gen {
		return
	}
	switch s.Modal.Phase {
	case PhaseOpening:
		s.Modal.Phase = PhaseOpen
	case PhaseClosing:
		s.Modal = Modal{Gen: s.Modal.Gen}
	}
}

// ShowNotice displays msg and returns the generation its timeout must carry
func (s *AppState) ShowNotice(msg string) uint64 {
	s.NoticeGen++
	s.Notice = msg
	return s.NoticeGen
}

// DismissNotice clears the notice. A non-zero gen only clears the notice
// it was issued for.
func (s *AppState) DismissNotice(gen uint64) {
	if gen != 0 && gen != s.NoticeGen {
		return
	}
	s.Notice = ""
}

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chemvista/internal/catalog"
	"chemvista/internal/domain"
	"chemvista/internal/periodic"
)

func TestNewAppStateStartsOnHydrogen(t *testing.T) {
	s := NewAppState(catalog.Default(), domain.ThemeLight)

	cell := s.CurrentCell()
	require.Equal(t, periodic.CellElement, cell.Kind)
	assert.Equal(t, "H", cell.Element.Symbol)
	assert.True(t, s.ShowExamples)
}

func TestMoveCursor(t *testing.T) {
	s := NewAppState(catalog.Default(), domain.ThemeLight)

	s.MoveCursor("right")
	assert.Equal(t, "He", s.CurrentCell().Element.Symbol)
	s.MoveCursor("down")
	assert.Equal(t, "Ne", s.CurrentCell().Element.Symbol)
	s.MoveCursor("sideways")
	assert.Equal(t, "Ne", s.CurrentCell().Element.Symbol)
}

func TestSetCatalogKeepsCursorOnSameElement(t *testing.T) {
	full := catalog.Default()
	s := NewAppState(full, domain.ThemeLight)
	s.MoveCursor("down") // Li

	s.SetCatalog(full)
	assert.Equal(t, "Li", s.CurrentCell().Element.Symbol)
}

func TestSetCatalogFallsBackHome(t *testing.T) {
	full := catalog.Default()
	s := NewAppState(full, domain.ThemeLight)
	pos, ok := s.Table.Find(26)
	require.True(t, ok)
	s.Cursor = pos

	small, err := catalog.New(full.All()[:10])
	require.NoError(t, err)
	s.SetCatalog(small)
	assert.Equal(t, "H", s.CurrentCell().Element.Symbol)
}

func TestModalPhases(t *testing.T) {
	s := NewAppState(catalog.Default(), domain.ThemeLight)
	e := s.CurrentCell().Element

	gen := s.OpenModal(ModalElement, e, domain.Suggestion{})
	assert.Equal(t, PhaseOpening, s.Modal.Phase)
	assert.True(t, s.Modal.Visible())

	s.AdvanceModal(gen)
	assert.Equal(t, PhaseOpen, s.Modal.Phase)

	closeGen := s.CloseModal()
	assert.Equal(t, PhaseClosing, s.Modal.Phase)
	assert.True(t, s.Modal.Visible())

	// The tick from the open phase is stale now
	s.AdvanceModal(gen)
	assert.Equal(t, PhaseClosing, s.Modal.Phase)

	s.AdvanceModal(closeGen)
	assert.False(t, s.Modal.Visible())
	assert.Equal(t, ModalNone, s.Modal.Kind)
}

func TestReopenDuringCloseIgnoresCloseTick(t *testing.T) {
	s := NewAppState(catalog.Default(), domain.ThemeLight)
	e := s.CurrentCell().Element

	s.AdvanceModal(s.OpenModal(ModalElement, e, domain.Suggestion{}))
	closeGen := s.CloseModal()
	openGen := s.OpenModal(ModalCompound, domain.Element{}, domain.Suggestion{Name: "Water"})

	s.AdvanceModal(closeGen)
	assert.Equal(t, PhaseOpening, s.Modal.Phase)
	s.AdvanceModal(openGen)
	assert.Equal(t, PhaseOpen, s.Modal.Phase)
	assert.Equal(t, "Water", s.Modal.Compound.Name)
}

func TestNoticeGenerations(t *testing.T) {
	s := NewAppState(catalog.Default(), domain.ThemeLight)

	first := s.ShowNotice("one")
	second := s.ShowNotice("two")

	s.DismissNotice(first)
	assert.Equal(t, "two", s.Notice)

	s.DismissNotice(second)
	assert.Empty(t, s.Notice)

	s.ShowNotice("three")
	s.DismissNotice(0)
	assert.Empty(t, s.Notice)
}

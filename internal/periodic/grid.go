// Package periodic lays elements out on the periodic table and moves a
// cursor across it.
package periodic

import "chemvista/internal/domain"

const (
	Columns = 18
	Periods = 7

	// FBlockWidth is the length of the lanthanide and actinide rows
	FBlockWidth = 15

	// LanthanideRow and ActinideRow index the two overflow rows below
	// the main grid
	LanthanideRow = Periods
	ActinideRow   = Periods + 1
	TotalRows     = Periods + 2

	// fBlockOffset aligns the overflow rows under groups 3-17
	fBlockOffset = 2
)

// CellKind classifies a grid position
type CellKind int

const (
	CellEmpty CellKind = iota
	CellElement
	CellPlaceholder
)

// Cell is one position in the layout
type Cell struct {
	Kind    CellKind
	Element domain.Element

	// Placeholder fields
	Label      string
	RangeStart int
	RangeEnd   int
}

// Position addresses a cell. Rows 0-6 are periods 1-7, row 7 the
// lanthanides and row 8 the actinides.
type Position struct {
	Row int
	Col int
}

// Table is the full layout: an 18x7 main grid plus two f-block rows
type Table struct {
	rows     [TotalRows][Columns]Cell
	byAtomic map[int]Position
}

// Build places elements by period and group. Lanthanides (57-71) and
// actinides (89-103) go to the overflow rows and placeholders mark their
// slot at group 3 of periods 6 and 7.
func Build(elements []domain.Element) *Table {
	t := &Table{byAtomic: make(map[int]Position, len(elements))}

	for _, e := range elements {
		var pos Position
		switch {
		case e.IsLanthanide():
			pos = Position{Row: LanthanideRow, Col: fBlockOffset + e.AtomicNumber - 57}
		case e.IsActinide():
			pos = Position{Row: ActinideRow, Col: fBlockOffset + e.AtomicNumber - 89}
		case e.Period >= 1 && e.Period <= Periods && e.Group >= 1 && e.Group <= Columns:
			pos = Position{Row: e.Period - 1, Col: e.Group - 1}
		default:
			continue
		}
		t.rows[pos.Row][pos.Col] = Cell{Kind: CellElement, Element: e}
		t.byAtomic[e.AtomicNumber] = pos
	}

	if t.rows[5][2].Kind == CellEmpty {
		t.rows[5][2] = Cell{Kind: CellPlaceholder, Label: "La-Lu*", RangeStart: 57, RangeEnd: 71}
	}
	if t.rows[6][2].Kind == CellEmpty {
		t.rows[6][2] = Cell{Kind: CellPlaceholder, Label: "Ac-Lr**", RangeStart: 89, RangeEnd: 103}
	}
	return t
}

// At returns the cell at pos, or an empty cell when out of range
func (t *Table) At(pos Position) Cell {
	if !inBounds(pos) {
		return Cell{}
	}
	return t.rows[pos.Row][pos.Col]
}

// Row returns a copy of one layout row
func (t *Table) Row(row int) []Cell {
	if row < 0 || row >= TotalRows {
		return nil
	}
	out := make([]Cell, Columns)
	copy(out, t.rows[row][:])
	return out
}

// FBlock returns the 15 cells of the lanthanide or actinide row
func (t *Table) FBlock(row int) []Cell {
	if row != LanthanideRow && row != ActinideRow {
		return nil
	}
	out := make([]Cell, FBlockWidth)
	copy(out, t.rows[row][fBlockOffset:fBlockOffset+FBlockWidth])
	return out
}

// Find returns the position of an element by atomic number
func (t *Table) Find(atomicNumber int) (Position, bool) {
	pos, ok := t.byAtomic[atomicNumber]
	return pos, ok
}

// Len returns how many elements were placed
func (t *Table) Len() int {
	return len(t.byAtomic)
}

func inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < TotalRows && pos.Col >= 0 && pos.Col < Columns
}

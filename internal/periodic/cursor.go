package periodic

// Direction for cursor movement
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Occupied reports whether the cursor may rest on pos
func (t *Table) Occupied(pos Position) bool {
	return t.At(pos).Kind != CellEmpty
}

// Home is the first occupied cell, normally hydrogen
func (t *Table) Home() Position {
	for r := 0; r < TotalRows; r++ {
		for c := 0; c < Columns; c++ {
			if t.rows[r][c].Kind != CellEmpty {
				return Position{Row: r, Col: c}
			}
		}
	}
	return Position{}
}

// Move returns the next occupied position from pos in dir. Horizontal
// moves skip gaps within the row; vertical moves go to the nearest
// occupied column of the next non-empty row. The cursor stays put at the
// edges.
func (t *Table) Move(pos Position, dir Direction) Position {
	switch dir {
	case Left, Right:
		step := 1
		if dir == Left {
			step = -1
		}
		for c := pos.Col + step; c >= 0 && c < Columns; c += step {
			next := Position{Row: pos.Row, Col: c}
			if t.Occupied(next) {
				return next
			}
		}
	case Up, Down:
		step := 1
		if dir == Up {
			step = -1
		}
		for r := pos.Row + step; r >= 0 && r < TotalRows; r += step {
			if col, ok := t.nearestInRow(r, pos.Col); ok {
				return Position{Row: r, Col: col}
			}
		}
	}
	return pos
}

// Enter resolves a placeholder to the first element of its series.
// Other positions are returned unchanged.
func (t *Table) Enter(pos Position) Position {
	cell := t.At(pos)
	if cell.Kind != CellPlaceholder {
		return pos
	}
	if p, ok := t.Find(cell.RangeStart); ok {
		return p
	}
	return pos
}

func (t *Table) nearestInRow(row, col int) (int, bool) {
	best, bestDist := -1, Columns+1
	for c := 0; c < Columns; c++ {
		if t.rows[row][c].Kind == CellEmpty {
			continue
		}
		d := c - col
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best >= 0
}

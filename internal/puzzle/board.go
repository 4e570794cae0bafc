package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned when a board dimension is smaller than 1.
var ErrInvalidSize = errors.New("puzzle: invalid board size")

// Board owns the cells of one puzzle and indexes them by slot.
// The last cell (highest home index) starts out as the empty cell.
type Board struct {
	cols  int
	rows  int
	cells []Cell   // indexed by CellID
	slots []CellID // indexed by row*cols+col
	empty CellID
}

// NewBoard creates a solved board of the given size.
func NewBoard(cols, rows int) (*Board, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}

	n := cols * rows
	b := &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, n),
		slots: make([]CellID, n),
		empty: CellID(n - 1),
	}
	for i := range n {
		id := CellID(i)
		b.cells[i] = Cell{ID: id, Col: i % cols, Row: i / cols}
		b.slots[i] = id
	}
	b.cells[b.empty].Empty = true

	return b, nil
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Len returns the number of cells including the empty one.
func (b *Board) Len() int {
	return len(b.cells)
}

// Cell returns the cell with the given id.
// It panics if id is out of range, like a slice index.
func (b *Board) Cell(id CellID) Cell {
	return b.cells[id]
}

// Cells returns a copy of all cells ordered by home index.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether (col, row) lies on the board.
func (b *Board) Contains(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// CellAt returns the cell occupying (col, row).
// ok is false when the slot is off the board or not occupied.
func (b *Board) CellAt(col, row int) (Cell, bool) {
	if !b.Contains(col, row) {
		return Cell{ID: NoCell}, false
	}
	id := b.slots[row*b.cols+col]
	if id == NoCell {
		return Cell{ID: NoCell}, false
	}
	c := b.cells[id]
	if c.Col != col || c.Row != row {
		// stale slot left by a partial MoveRun
		return Cell{ID: NoCell}, false
	}
	return c, true
}

// EmptyCell returns the unique empty cell.
func (b *Board) EmptyCell() Cell {
	return b.cells[b.empty]
}

// HomeOf returns the solved position of a cell.
func (b *Board) HomeOf(id CellID) (col, row int) {
	return int(id) % b.cols, int(id) / b.cols
}

// RunToEmptyCell returns the cells from target up to, but excluding, the
// empty cell, ordered from target toward the empty cell. The result is empty
// when target does not share an axis with the empty cell.
func (b *Board) RunToEmptyCell(target CellID) []CellID {
	t := b.cells[target]
	e := b.EmptyCell()

	var run []CellID
	switch {
	case e.IsAbove(t):
		for row := t.Row; row > e.Row; row-- {
			run = b.appendAt(run, t.Col, row)
		}
	case e.IsBelow(t):
		for row := t.Row; row < e.Row; row++ {
			run = b.appendAt(run, t.Col, row)
		}
	case e.IsToLeftOf(t):
		for col := t.Col; col > e.Col; col-- {
			run = b.appendAt(run, col, t.Row)
		}
	case e.IsToRightOf(t):
		for col := t.Col; col < e.Col; col++ {
			run = b.appendAt(run, col, t.Row)
		}
	}
	return run
}

func (b *Board) appendAt(run []CellID, col, row int) []CellID {
	if c, ok := b.CellAt(col, row); ok {
		return append(run, c.ID)
	}
	return run
}

// DirectionToEmptyCell returns the unit step from target toward the empty
// cell, or None when they share no axis.
func (b *Board) DirectionToEmptyCell(target CellID) Direction {
	t := b.cells[target]
	e := b.EmptyCell()

	switch {
	case e.IsAbove(t):
		return Up
	case e.IsBelow(t):
		return Down
	case e.IsToLeftOf(t):
		return Left
	case e.IsToRightOf(t):
		return Right
	default:
		return None
	}
}

// IsSolved reports whether every cell sits at its home position.
func (b *Board) IsSolved() bool {
	for _, c := range b.cells {
		col, row := b.HomeOf(c.ID)
		if c.Col != col || c.Row != row {
			return false
		}
	}
	return true
}

// MoveRun shifts every cell in ids by d. The caller guarantees the
// destination slots are free once the move completes.
func (b *Board) MoveRun(ids []CellID, d Direction) {
	for _, id := range ids {
		c := b.cells[id]
		b.place(id, c.Col+d.DX, c.Row+d.DY)
	}
}

// place sets the coordinates of a cell and claims its slot.
func (b *Board) place(id CellID, col, row int) {
	b.cells[id].Col = col
	b.cells[id].Row = row
	b.slots[row*b.cols+col] = id
}

// Validate checks the board invariants: one empty cell, and every slot
// occupied by exactly one cell.
func (b *Board) Validate() error {
	seen := make([]bool, len(b.cells))
	empties := 0
	for _, c := range b.cells {
		if c.Empty {
			empties++
		}
		if !b.Contains(c.Col, c.Row) {
			return fmt.Errorf("puzzle: cell %d off board at (%d,%d)", c.ID, c.Col, c.Row)
		}
		i := c.Row*b.cols + c.Col
		if seen[i] {
			return fmt.Errorf("puzzle: slot (%d,%d) occupied twice", c.Col, c.Row)
		}
		seen[i] = true
		if b.slots[i] != c.ID {
			return fmt.Errorf("puzzle: slot index for (%d,%d) is stale", c.Col, c.Row)
		}
	}
	if empties != 1 {
		return fmt.Errorf("puzzle: expected 1 empty cell, found %d", empties)
	}
	return nil
}

// String renders the board as rows of 1-based home numbers, "." for empty.
func (b *Board) String() string {
	width := len(fmt.Sprint(len(b.cells)))
	var sb strings.Builder
	for row := range b.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range b.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			c, ok := b.CellAt(col, row)
			switch {
			case !ok:
				fmt.Fprintf(&sb, "%*s", width, "?")
			case c.Empty:
				fmt.Fprintf(&sb, "%*s", width, ".")
			default:
				fmt.Fprintf(&sb, "%*d", width, int(c.ID)+1)
			}
		}
	}
	return sb.String()
}

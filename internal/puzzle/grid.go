// Package puzzle implements the sliding-tile puzzle core: the board model,
// the move engine, shuffle and restore, and the pointer gesture state machine.
//
// The package has no UI dependencies. Rendering and animation are delegated
// to a View supplied by the platform layer. A Puzzle is not safe for
// concurrent use; all calls must come from a single event loop.
package puzzle

import "fmt"

// CellID identifies a cell by its home index (row-major, 0-based).
// It never changes for the lifetime of a board.
type CellID int

// NoCell is returned where a cell lookup has no result.
const NoCell CellID = -1

// Cell is a tile on the board with its current grid coordinates.
type Cell struct {
	ID    CellID
	Col   int
	Row   int
	Empty bool
}

// IsAbove reports whether c is in the same column as other and above it.
func (c Cell) IsAbove(other Cell) bool {
	return c.Col == other.Col && c.Row < other.Row
}

// IsBelow reports whether c is in the same column as other and below it.
func (c Cell) IsBelow(other Cell) bool {
	return c.Col == other.Col && c.Row > other.Row
}

// IsToLeftOf reports whether c is in the same row as other and left of it.
func (c Cell) IsToLeftOf(other Cell) bool {
	return c.Row == other.Row && c.Col < other.Col
}

// IsToRightOf reports whether c is in the same row as other and right of it.
func (c Cell) IsToRightOf(other Cell) bool {
	return c.Row == other.Row && c.Col > other.Col
}

// IsInSameAxis reports whether c shares a column or a row with other.
func (c Cell) IsInSameAxis(other Cell) bool {
	return c.Col == other.Col || c.Row == other.Row
}

// String returns a debug representation like "#5(1,1)".
func (c Cell) String() string {
	if c.Empty {
		return fmt.Sprintf("#%d(%d,%d)*", c.ID, c.Col, c.Row)
	}
	return fmt.Sprintf("#%d(%d,%d)", c.ID, c.Col, c.Row)
}

// Point is a position in view pixels (or terminal cells for the TUI).
type Point struct {
	X, Y float64
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is the extent of one cell in view units.
type Size struct {
	W, H float64
}

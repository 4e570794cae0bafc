package puzzle

import "time"

// View is the rendering collaborator. The puzzle decides target positions
// and when to animate; the view decides how.
type View interface {
	// CellOrigin maps grid coordinates to the top-left corner of a cell.
	CellOrigin(col, row int) Point

	// CellSize returns the extent of one cell.
	CellSize() Size

	// Place moves a cell's visual immediately, without animation.
	Place(id CellID, p Point)

	// AnimateTo starts a fire-and-forget animation toward p.
	AnimateTo(id CellID, p Point, d time.Duration)

	// SetInteractive toggles the visual enabled state of the board.
	SetInteractive(enabled bool)
}

// GridView is a View that only does layout arithmetic. It is the default
// when no view is attached, and useful in tests and headless tools.
type GridView struct {
	Cell Size
}

// CellOrigin implements View.
func (v GridView) CellOrigin(col, row int) Point {
	return Point{X: float64(col) * v.Cell.W, Y: float64(row) * v.Cell.H}
}

// CellSize implements View.
func (v GridView) CellSize() Size {
	return v.Cell
}

// Place implements View.
func (GridView) Place(CellID, Point) {}

// AnimateTo implements View.
func (GridView) AnimateTo(CellID, Point, time.Duration) {}

// SetInteractive implements View.
func (GridView) SetInteractive(bool) {}

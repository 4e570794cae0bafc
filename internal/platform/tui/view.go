package tui

import (
	"time"

	"github.com/vovakirdan/tui-slider/internal/core"
	"github.com/vovakirdan/tui-slider/internal/puzzle"
)

// tileAnim is one tile easing from one position to another.
type tileAnim struct {
	from  puzzle.Point
	to    puzzle.Point
	start time.Time
	dur   time.Duration
}

// TileView implements puzzle.View for the terminal. Positions are in
// terminal cells relative to the top-left corner of the board.
type TileView struct {
	tileW, tileH int
	pos          map[puzzle.CellID]puzzle.Point
	anims        map[puzzle.CellID]tileAnim
	interactive  bool
	now          func() time.Time
}

// NewTileView creates a view with tiles of the given size in cells.
func NewTileView(tileW, tileH int) *TileView {
	return &TileView{
		tileW:       core.Max(1, tileW),
		tileH:       core.Max(1, tileH),
		pos:         make(map[puzzle.CellID]puzzle.Point),
		anims:       make(map[puzzle.CellID]tileAnim),
		interactive: true,
		now:         time.Now,
	}
}

// CellOrigin implements puzzle.View.
func (v *TileView) CellOrigin(col, row int) puzzle.Point {
	return puzzle.Point{X: float64(col * v.tileW), Y: float64(row * v.tileH)}
}

// CellSize implements puzzle.View.
func (v *TileView) CellSize() puzzle.Size {
	return puzzle.Size{W: float64(v.tileW), H: float64(v.tileH)}
}

// Place implements puzzle.View.
func (v *TileView) Place(id puzzle.CellID, p puzzle.Point) {
	v.pos[id] = p
	delete(v.anims, id)
}

// AnimateTo implements puzzle.View.
func (v *TileView) AnimateTo(id puzzle.CellID, p puzzle.Point, d time.Duration) {
	if d <= 0 {
		v.Place(id, p)
		return
	}
	v.anims[id] = tileAnim{from: v.pos[id], to: p, start: v.now(), dur: d}
}

// SetInteractive implements puzzle.View.
func (v *TileView) SetInteractive(enabled bool) {
	v.interactive = enabled
}

// Interactive reports whether the board currently accepts input.
func (v *TileView) Interactive() bool {
	return v.interactive
}

// Step advances running animations and reports whether any remain.
func (v *TileView) Step() bool {
	now := v.now()
	for id, a := range v.anims {
		t := float64(now.Sub(a.start)) / float64(a.dur)
		if t >= 1 {
			v.pos[id] = a.to
			delete(v.anims, id)
			continue
		}
		e := core.EaseOutQuad(t)
		v.pos[id] = puzzle.Point{
			X: core.Lerp(a.from.X, a.to.X, e),
			Y: core.Lerp(a.from.Y, a.to.Y, e),
		}
	}
	return len(v.anims) > 0
}

// Animating reports whether any tile is still moving.
func (v *TileView) Animating() bool {
	return len(v.anims) > 0
}

// Position returns where a tile is currently drawn.
func (v *TileView) Position(id puzzle.CellID) (puzzle.Point, bool) {
	p, ok := v.pos[id]
	return p, ok
}

// BoardSize returns the board extent in cells.
func (v *TileView) BoardSize(b *puzzle.Board) (w, h int) {
	return b.Cols() * v.tileW, b.Rows() * v.tileH
}

// HitTest returns the tile drawn under p, or NoCell. The empty cell is
// never hit.
func (v *TileView) HitTest(b *puzzle.Board, p puzzle.Point) puzzle.CellID {
	if b == nil {
		return puzzle.NoCell
	}
	for _, c := range b.Cells() {
		if c.Empty {
			continue
		}
		o, ok := v.pos[c.ID]
		if !ok {
			o = v.CellOrigin(c.Col, c.Row)
		}
		if p.X >= o.X && p.X < o.X+float64(v.tileW) &&
			p.Y >= o.Y && p.Y < o.Y+float64(v.tileH) {
			return c.ID
		}
	}
	return puzzle.NoCell
}

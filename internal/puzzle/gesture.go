package puzzle

import "math"

// PointerID identifies one pointer (finger, mouse button) across events.
type PointerID int

type pointer struct {
	id  PointerID
	pos Point
}

// gesture is the drag state machine. It is idle unless active is set, in
// which case one pointer owns a captured run.
type gesture struct {
	active  bool
	owner   PointerID
	target  CellID
	run     []CellID
	dir     Direction
	origins []Point // canonical origins of run cells at capture
	offset  Point   // visual displacement applied to the run
	last    Point   // last position of the owning pointer

	// pointers that are down while the gesture is active, in press order
	down []pointer
}

func (g *gesture) find(id PointerID) int {
	for i, ptr := range g.down {
		if ptr.id == id {
			return i
		}
	}
	return -1
}

// Dragging reports whether a pointer currently owns a drag.
func (p *Puzzle) Dragging() bool {
	return p.gesture.active
}

// PointerDown starts a drag on cell if it is a legal target: the board is
// idle and enabled, the cell is not the empty cell, and it shares a row or
// column with the empty cell. Presses from further pointers during a drag
// are tracked for hand-off but do not capture. It returns true on capture.
func (p *Puzzle) PointerDown(id PointerID, pos Point, cell CellID) bool {
	if p.board == nil {
		return false
	}

	g := &p.gesture
	if g.active {
		if g.find(id) < 0 {
			g.down = append(g.down, pointer{id: id, pos: pos})
		}
		return false
	}

	if !p.enabled || cell < 0 || int(cell) >= p.board.Len() {
		return false
	}

	c := p.board.Cell(cell)
	if c.Empty || !c.IsInSameAxis(p.board.EmptyCell()) {
		return false
	}

	run := p.board.RunToEmptyCell(cell)
	if len(run) == 0 {
		return false
	}

	origins := make([]Point, len(run))
	for i, rid := range run {
		origins[i] = p.origin(p.board.Cell(rid))
	}

	*g = gesture{
		active:  true,
		owner:   id,
		target:  cell,
		run:     run,
		dir:     p.board.DirectionToEmptyCell(cell),
		origins: origins,
		last:    pos,
		down:    []pointer{{id: id, pos: pos}},
	}

	p.log.Debug("drag captured", "pointer", id, "cell", cell, "run", len(run), "dir", g.dir)
	return true
}

// PointerMove drags the captured run with the owning pointer. Motion off the
// drag axis is ignored and the run never moves past one cell toward the empty
// slot, nor behind its origin. Events for unknown pointers are ignored.
func (p *Puzzle) PointerMove(id PointerID, pos Point) {
	g := &p.gesture
	if !g.active {
		return
	}

	i := g.find(id)
	if i < 0 {
		return
	}
	g.down[i].pos = pos
	if id != g.owner {
		return
	}

	delta := pos.Sub(g.last)
	g.last = pos
	p.dragBy(delta)
}

// dragBy applies delta, projected and clamped, to the captured run.
func (p *Puzzle) dragBy(delta Point) {
	g := &p.gesture
	span := p.view.CellSize()

	if g.dir.Horizontal() {
		limit := float64(g.dir.DX) * span.W
		g.offset = Point{X: clampRange(g.offset.X+delta.X, 0, limit)}
	} else {
		limit := float64(g.dir.DY) * span.H
		g.offset = Point{Y: clampRange(g.offset.Y+delta.Y, 0, limit)}
	}

	for i, id := range g.run {
		p.view.Place(id, g.origins[i].Add(g.offset))
	}
}

// PointerUp lifts a pointer. If it owned the drag and other pointers are
// still down, the earliest of them takes over without resetting the drag;
// if it was the last pointer the drag is released.
func (p *Puzzle) PointerUp(id PointerID, pos Point) {
	g := &p.gesture
	if !g.active {
		return
	}

	i := g.find(id)
	if i < 0 {
		return
	}
	g.down = append(g.down[:i], g.down[i+1:]...)

	if id != g.owner {
		return
	}

	if len(g.down) > 0 {
		next := g.down[0]
		g.owner = next.id
		g.last = next.pos
		p.log.Debug("drag handed off", "from", id, "to", next.id)
		return
	}

	p.release()
}

// PointerCancel aborts the gesture the pointer takes part in. The release
// policy still applies, so a cancelled drag may commit.
func (p *Puzzle) PointerCancel(id PointerID) {
	g := &p.gesture
	if !g.active || g.find(id) < 0 {
		return
	}
	p.release()
}

// release commits or snaps back the captured run and returns to idle.
func (p *Puzzle) release() {
	g := p.gesture
	p.gesture = gesture{}

	span := p.view.CellSize()
	moved, extent := math.Abs(g.offset.Y), span.H
	if g.dir.Horizontal() {
		moved, extent = math.Abs(g.offset.X), span.W
	}

	if !ShouldCommit(moved, extent, p.settings.TapThreshold) {
		for i, id := range g.run {
			p.view.AnimateTo(id, g.origins[i], p.settings.SettleDuration)
		}
		p.log.Debug("drag cancelled", "cell", g.target, "moved", moved)
		return
	}

	run, d, ok := p.board.CommitRun(g.target)
	if !ok {
		return
	}

	empty := p.board.EmptyCell()
	p.view.Place(empty.ID, p.origin(empty))
	for _, id := range run {
		p.view.AnimateTo(id, p.origin(p.board.Cell(id)), p.settings.SettleDuration)
	}

	p.log.Debug("drag committed", "cell", g.target, "run", len(run), "moved", moved)
	for range run {
		p.history.push(d.Neg())
		p.events.emit(EventMoved)
	}
	p.checkSolved()
}

// clampRange restricts v to the interval spanned by a and b.
func clampRange(v, a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return math.Max(lo, math.Min(hi, v))
}

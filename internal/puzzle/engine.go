package puzzle

// DefaultTapThreshold is the displacement (in view units) under which a
// released drag counts as a tap and commits.
const DefaultTapThreshold = 5

// MoveEmptyCell swaps the empty cell with its neighbour at empty+d.
// It returns the neighbour that moved, or false if that slot is off the board.
func (b *Board) MoveEmptyCell(d Direction) (Cell, bool) {
	if d.IsZero() {
		return Cell{ID: NoCell}, false
	}

	e := b.EmptyCell()
	n, ok := b.CellAt(e.Col+d.DX, e.Row+d.DY)
	if !ok {
		return Cell{ID: NoCell}, false
	}

	b.place(n.ID, e.Col, e.Row)
	b.place(e.ID, n.Col, n.Row)

	return b.cells[n.ID], true
}

// CommitRun slides the run between target and the empty cell one step
// toward the empty cell and puts the empty cell where target was.
// It returns the moved cells and the direction they moved in.
// Nothing changes if target is the empty cell or off its axis.
func (b *Board) CommitRun(target CellID) ([]CellID, Direction, bool) {
	t := b.cells[target]
	if t.Empty || !t.IsInSameAxis(b.EmptyCell()) {
		return nil, None, false
	}

	d := b.DirectionToEmptyCell(target)
	run := b.RunToEmptyCell(target)
	if len(run) == 0 {
		return nil, None, false
	}

	b.MoveRun(run, d)
	b.place(b.empty, t.Col, t.Row)

	return run, d, true
}

// ShouldCommit applies the release policy. span is the cell extent along
// the drag axis. Past the midpoint commits, and so does a displacement under
// tap; anything in between snaps back.
func ShouldCommit(moved, span, tap float64) bool {
	return moved > span/2 || moved < tap
}

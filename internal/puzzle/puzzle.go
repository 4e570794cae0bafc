package puzzle

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Puzzle is the interactive sliding-tile puzzle: a board, its move history,
// the gesture state machine and the shuffle/restore controller.
//
// The enabled flag serializes mutation: while a shuffle or restore runs the
// board is disabled and gestures and keyboard moves are rejected.
type Puzzle struct {
	board    *Board
	history  History
	enabled  bool
	settings Settings

	rng    *rand.Rand
	view   View
	sched  Scheduler
	log    *log.Logger
	events observers

	gesture gesture
	restore restoreState
}

// New creates an unconfigured puzzle. Call Configure before use.
// Without WithScheduler the puzzle cannot restore.
func New(opts ...Option) *Puzzle {
	p := &Puzzle{
		enabled:  true,
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.view == nil {
		p.view = GridView{Cell: Size{W: 1, H: 1}}
	}
	if p.log == nil {
		p.log = log.New(io.Discard)
	}
	return p
}

// Configure (re)builds the board with the given size and resets history,
// gesture state and any restore in progress.
func (p *Puzzle) Configure(cols, rows int) error {
	b, err := NewBoard(cols, rows)
	if err != nil {
		return err
	}

	if p.restore.active {
		p.stopRestore()
		p.events.emit(EventRestoreCancelled)
	}

	p.board = b
	p.history = nil
	p.gesture = gesture{}
	p.setEnabled(true)

	for _, c := range b.cells {
		p.view.Place(c.ID, p.origin(c))
	}

	p.log.Debug("board configured", "cols", cols, "rows", rows)
	return nil
}

// Subscribe registers fn for puzzle events and returns a function that
// removes it.
func (p *Puzzle) Subscribe(fn Listener) (unsubscribe func()) {
	return p.events.add(fn)
}

// Board returns the current board, or nil before Configure.
// Callers must treat it as read-only.
func (p *Puzzle) Board() *Board {
	return p.board
}

// Settings returns the puzzle parameters.
func (p *Puzzle) Settings() Settings {
	return p.settings
}

// IsSolved reports whether every cell is at its home position.
func (p *Puzzle) IsSolved() bool {
	return p.board != nil && p.board.IsSolved()
}

// Steps returns the length of the move history.
func (p *Puzzle) Steps() int {
	return len(p.history)
}

// History returns a copy of the move history.
func (p *Puzzle) History() History {
	out := make(History, len(p.history))
	copy(out, p.history)
	return out
}

// Enabled reports whether the board accepts input.
func (p *Puzzle) Enabled() bool {
	return p.enabled
}

// Restoring reports whether a restore sequence is in progress.
func (p *Puzzle) Restoring() bool {
	return p.restore.active
}

// ready reports whether a new operation may start.
func (p *Puzzle) ready() bool {
	return p.board != nil && p.enabled && !p.gesture.active
}

// Move steps the empty cell by d, as a keyboard move. It returns false if
// the move is off the board or input is not accepted right now.
func (p *Puzzle) Move(d Direction) bool {
	if !p.ready() {
		return false
	}
	if !p.moveEmpty(d, true) {
		return false
	}
	p.checkSolved()
	return true
}

// Shuffle scrambles the board with a random walk of the empty cell.
// It runs synchronously and returns false if the board is busy.
func (p *Puzzle) Shuffle() bool {
	if !p.ready() {
		return false
	}

	p.setEnabled(false)
	steps := shuffleLength(p.rng, p.settings.MinShuffleSteps, p.settings.MaxShuffleSteps)
	RandomWalk(p.board, p.rng, steps, p.history.Last(), func(d Direction, moved Cell) {
		p.history.push(d)
		p.afterMove(moved)
	})
	p.setEnabled(true)

	p.log.Debug("shuffled", "steps", steps, "history", len(p.history))
	p.events.emit(EventShuffled)
	return true
}

// moveEmpty moves the empty cell one step, recording it when record is set.
func (p *Puzzle) moveEmpty(d Direction, record bool) bool {
	moved, ok := p.board.MoveEmptyCell(d)
	if !ok {
		return false
	}
	if record {
		p.history.push(d)
	}
	p.afterMove(moved)
	return true
}

// afterMove syncs the view after a single empty-cell step and notifies
// subscribers.
func (p *Puzzle) afterMove(moved Cell) {
	empty := p.board.EmptyCell()
	p.view.Place(empty.ID, p.origin(empty))
	p.view.AnimateTo(moved.ID, p.origin(moved), p.settings.SettleDuration)
	p.log.Debug("cell moved", "cell", moved.ID, "col", moved.Col, "row", moved.Row)
	p.events.emit(EventMoved)
}

func (p *Puzzle) checkSolved() {
	if p.board.IsSolved() {
		p.log.Debug("solved", "steps", len(p.history))
		p.events.emit(EventSolved)
	}
}

func (p *Puzzle) setEnabled(enabled bool) {
	p.enabled = enabled
	p.view.SetInteractive(enabled)
}

func (p *Puzzle) origin(c Cell) Point {
	return p.view.CellOrigin(c.Col, c.Row)
}

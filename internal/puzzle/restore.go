package puzzle

import "time"

// restoreState tracks a running restore sequence.
type restoreState struct {
	active bool
	gen    int
	cancel func()
}

// Restore replays the move history backwards, one step per RestoreDelay,
// on the puzzle's scheduler. The board stays disabled until the history is
// exhausted. It returns false if the board is busy or unconfigured, or if
// the puzzle has no scheduler.
func (p *Puzzle) Restore() bool {
	if !p.ready() || p.sched == nil {
		return false
	}

	p.setEnabled(false)
	p.restore.active = true
	p.restore.gen++
	p.log.Debug("restore started", "steps", len(p.history))
	p.events.emit(EventRestoreStarted)

	p.scheduleRestore(0)
	return true
}

// CancelRestore stops a running restore before its next step. Steps already
// replayed stay applied and the remaining history is kept.
func (p *Puzzle) CancelRestore() bool {
	if !p.restore.active {
		return false
	}

	p.stopRestore()
	p.setEnabled(true)
	p.log.Debug("restore cancelled", "remaining", len(p.history))
	p.events.emit(EventRestoreCancelled)
	return true
}

func (p *Puzzle) scheduleRestore(delay time.Duration) {
	gen := p.restore.gen
	p.restore.cancel = p.sched.After(delay, func() {
		if !p.restore.active || p.restore.gen != gen {
			return
		}
		p.restoreTick()
	})
}

// restoreTick replays one history entry, or finishes when none remain.
func (p *Puzzle) restoreTick() {
	p.restore.cancel = nil

	d, ok := p.history.pop()
	if !ok {
		p.finishRestore()
		return
	}

	p.moveEmpty(d.Neg(), false)
	p.scheduleRestore(p.settings.RestoreDelay)
}

func (p *Puzzle) finishRestore() {
	p.restore.active = false
	p.history = nil
	p.setEnabled(true)

	p.log.Debug("restore finished", "solved", p.board.IsSolved())
	p.events.emit(EventRestoreFinished)
	p.checkSolved()
}

func (p *Puzzle) stopRestore() {
	if p.restore.cancel != nil {
		p.restore.cancel()
		p.restore.cancel = nil
	}
	p.restore.active = false
	p.restore.gen++
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg fires a puzzle callback scheduled through teaScheduler.
type timerMsg struct {
	id int
}

// teaScheduler implements puzzle.Scheduler on top of Bubble Tea. Each After
// call becomes a tea.Tick command; when its message arrives, Update runs the
// callback, so puzzle state is only touched from the Bubble Tea loop.
type teaScheduler struct {
	next    int
	tasks   map[int]func()
	pending []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[int]func())}
}

// After implements puzzle.Scheduler.
func (s *teaScheduler) After(d time.Duration, fn func()) func() {
	s.next++
	id := s.next
	s.tasks[id] = fn
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return func() { delete(s.tasks, id) }
}

// fire runs the callback for id unless it was cancelled.
func (s *teaScheduler) fire(id int) bool {
	fn, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	fn()
	return true
}

// Cmds returns the timers scheduled since the last call.
func (s *teaScheduler) Cmds() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

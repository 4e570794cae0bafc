package puzzle

import "time"

// ManualScheduler is a Scheduler driven by a virtual clock. Nothing runs
// until Advance or Flush is called, which makes restore sequences
// deterministic in tests and headless tools.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After implements Scheduler.
func (s *ManualScheduler) After(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTask{at: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() { t.cancelled = true }
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks waiting to run.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that falls
// due, including ones scheduled by callbacks along the way. It returns the
// number of callbacks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	ran := 0
	for {
		t := s.popNext(target)
		if t == nil {
			break
		}
		s.now = t.at
		t.fn()
		ran++
	}
	s.now = target
	return ran
}

// Flush runs callbacks in time order until none remain and returns how
// many ran.
func (s *ManualScheduler) Flush() int {
	ran := 0
	for {
		t := s.popNext(-1)
		if t == nil {
			return ran
		}
		if t.at > s.now {
			s.now = t.at
		}
		t.fn()
		ran++
	}
}

// popNext removes and returns the earliest live task due at or before
// limit. A negative limit means no limit.
func (s *ManualScheduler) popNext(limit time.Duration) *manualTask {
	best := -1
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live

	for i, t := range s.tasks {
		if limit >= 0 && t.at > limit {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at ||
			(t.at == s.tasks[best].at && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	t := s.tasks[best]
	s.tasks = append(s.tasks[:best], s.tasks[best+1:]...)
	return t
}

package puzzle

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []string
	s.After(20*time.Millisecond, func() { got = append(got, "a") })
	s.After(10*time.Millisecond, func() { got = append(got, "b") })
	s.After(10*time.Millisecond, func() { got = append(got, "c") })

	if n := s.Advance(15 * time.Millisecond); n != 2 {
		t.Errorf("Advance ran %d callbacks, want 2", n)
	}
	if s.Now() != 15*time.Millisecond {
		t.Errorf("Now() = %v, want 15ms", s.Now())
	}
	s.Advance(5 * time.Millisecond)

	if len(got) != 3 || got[0] != "b" || got[1] != "c" || got[2] != "a" {
		t.Errorf("order = %v, want [b c a]", got)
	}
}

func TestManualSchedulerCancel(t *testing.T) {
	s := NewManualScheduler()
	ran := false
	cancel := s.After(time.Second, func() { ran = true })
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}

	cancel()
	cancel()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after cancel", s.Pending())
	}
	s.Flush()
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestManualSchedulerFlushChains(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var step func()
	step = func() {
		count++
		if count < 5 {
			s.After(100*time.Millisecond, step)
		}
	}
	s.After(0, step)

	if n := s.Flush(); n != 5 {
		t.Errorf("Flush ran %d callbacks, want 5", n)
	}
	if s.Now() != 400*time.Millisecond {
		t.Errorf("Now() = %v, want 400ms", s.Now())
	}
}

func startLoop(t *testing.T) (*Loop, context.CancelFunc, <-chan error) {
	t.Helper()
	l := NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	t.Cleanup(cancel)
	return l, cancel, errc
}

func TestLoopDo(t *testing.T) {
	l, _, _ := startLoop(t)

	n := 0
	for range 10 {
		if err := l.Do(context.Background(), func() { n++ }); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}
	if n != 10 {
		t.Errorf("n = %d, want 10", n)
	}
}

func TestLoopAfter(t *testing.T) {
	l, _, _ := startLoop(t)

	fired := make(chan struct{})
	l.After(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("After callback did not run")
	}
}

func TestLoopAfterCancel(t *testing.T) {
	l, _, _ := startLoop(t)

	var fired atomic.Bool
	cancel := l.After(10*time.Millisecond, func() { fired.Store(true) })
	cancel()

	time.Sleep(50 * time.Millisecond)
	if err := l.Do(context.Background(), func() {}); err != nil {
		t.Fatal(err)
	}
	if fired.Load() {
		t.Error("cancelled callback ran")
	}
}

func TestLoopStop(t *testing.T) {
	l, cancel, errc := startLoop(t)
	cancel()

	select {
	case err := <-errc:
		if err != context.Canceled {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}

	if l.Post(func() {}) {
		t.Error("Post should fail after the loop stops")
	}
}

func TestLoopRestore(t *testing.T) {
	l, _, _ := startLoop(t)

	settings := DefaultSettings()
	settings.RestoreDelay = time.Millisecond
	p := New(WithSeed(11), WithScheduler(l), WithSettings(settings))

	done := make(chan struct{})
	err := l.Do(context.Background(), func() {
		if err := p.Configure(3, 3); err != nil {
			t.Error(err)
			return
		}
		p.Subscribe(func(e Event) {
			if e.Kind == EventRestoreFinished {
				close(done)
			}
		})
		p.Shuffle()
		p.Restore()
	})
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("restore did not finish")
	}

	var solved bool
	if err := l.Do(context.Background(), func() { solved = p.IsSolved() }); err != nil {
		t.Fatal(err)
	}
	if !solved {
		t.Error("board not solved after restore on the loop")
	}
}

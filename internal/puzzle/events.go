package puzzle

// EventKind identifies what happened on a puzzle.
type EventKind int

const (
	// EventMoved fires once per committed single-step move of the empty cell.
	EventMoved EventKind = iota
	EventShuffled
	EventRestoreStarted
	EventRestoreFinished
	EventRestoreCancelled
	// EventSolved fires after a move that leaves every cell at home.
	EventSolved
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "Moved"
	case EventShuffled:
		return "Shuffled"
	case EventRestoreStarted:
		return "RestoreStarted"
	case EventRestoreFinished:
		return "RestoreFinished"
	case EventRestoreCancelled:
		return "RestoreCancelled"
	case EventSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Event is published synchronously to subscribers. It carries no state;
// subscribers query the puzzle for whatever they need.
type Event struct {
	Kind EventKind
}

// Listener receives puzzle events.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// observers is a list of listeners with stable unsubscribe handles.
type observers struct {
	next int
	subs []subscription
}

func (o *observers) add(fn Listener) func() {
	o.next++
	id := o.next
	o.subs = append(o.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) emit(kind EventKind) {
	// listeners may unsubscribe while we iterate
	subs := o.subs
	for _, s := range subs {
		s.fn(Event{Kind: kind})
	}
}

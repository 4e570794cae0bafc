package puzzle

import (
	"fmt"
	"strings"
)

// History is the ordered list of empty-cell steps made since the board was
// configured. Restore consumes it from the end.
type History []Direction

// Last returns the most recent step, or None for an empty history.
func (h History) Last() Direction {
	if len(h) == 0 {
		return None
	}
	return h[len(h)-1]
}

// String returns the compact notation, one letter per step ("RRDLU...").
func (h History) String() string {
	var sb strings.Builder
	sb.Grow(len(h))
	for _, d := range h {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Inverse returns the steps that undo h, in the order they must be applied.
func (h History) Inverse() History {
	out := make(History, len(h))
	for i, d := range h {
		out[len(h)-1-i] = d.Neg()
	}
	return out
}

// ParseHistory reads the notation produced by History.String.
// Whitespace is ignored.
func ParseHistory(s string) (History, error) {
	var h History
	for i, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			continue
		}
		d, ok := ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("puzzle: invalid move %q at offset %d", r, i)
		}
		h = append(h, d)
	}
	return h, nil
}

func (h *History) push(d Direction) {
	*h = append(*h, d)
}

func (h *History) pop() (Direction, bool) {
	n := len(*h)
	if n == 0 {
		return None, false
	}
	d := (*h)[n-1]
	*h = (*h)[:n-1]
	return d, true
}

package puzzle

import (
	"math/rand"
	"testing"
)

func TestRandomWalkNoBacktrack(t *testing.T) {
	sizes := [][2]int{{2, 2}, {3, 3}, {4, 4}, {6, 3}}
	for _, s := range sizes {
		b := mustBoard(t, s[0], s[1])
		rng := rand.New(rand.NewSource(int64(s[0] + s[1])))

		var dirs []Direction
		RandomWalk(b, rng, 200, None, func(d Direction, _ Cell) {
			dirs = append(dirs, d)
		})

		if len(dirs) != 200 {
			t.Errorf("%dx%d: %d steps, want 200", s[0], s[1], len(dirs))
		}
		for i := 1; i < len(dirs); i++ {
			if dirs[i] == dirs[i-1].Neg() {
				t.Errorf("%dx%d: step %d backtracks", s[0], s[1], i)
				break
			}
		}
		if err := b.Validate(); err != nil {
			t.Errorf("%dx%d: Validate() = %v", s[0], s[1], err)
		}
	}
}

func TestRandomWalkSeedsFromPrevious(t *testing.T) {
	// from the bottom-right corner only Up and Left are legal; with Up
	// forbidden the first step is forced
	b := mustBoard(t, 3, 3)
	rng := rand.New(rand.NewSource(5))

	var first Direction
	RandomWalk(b, rng, 1, Down, func(d Direction, _ Cell) { first = d })
	if first != Left {
		t.Errorf("first step = %v, want L", first)
	}
}

func TestRandomWalkNarrowBoards(t *testing.T) {
	b := mustBoard(t, 1, 4)
	rng := rand.New(rand.NewSource(3))

	n := 0
	RandomWalk(b, rng, 25, None, func(Direction, Cell) { n++ })
	if n != 25 {
		t.Errorf("1x4 walk made %d steps, want 25", n)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	single := mustBoard(t, 1, 1)
	RandomWalk(single, rng, 10, None, func(Direction, Cell) {
		t.Error("1x1 board has no moves")
	})
}

func TestShuffleLength(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for range 500 {
		n := shuffleLength(rng, DefaultMinShuffleSteps, DefaultMaxShuffleSteps)
		if n < DefaultMinShuffleSteps || n >= DefaultMinShuffleSteps+DefaultMaxShuffleSteps {
			t.Fatalf("shuffleLength = %d out of range", n)
		}
	}
	if n := shuffleLength(rng, 7, 0); n != 7 {
		t.Errorf("shuffleLength with no spread = %d, want 7", n)
	}
}

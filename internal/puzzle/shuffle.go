package puzzle

import "math/rand"

// Shuffle length defaults: a shuffle makes between DefaultMinShuffleSteps
// and DefaultMinShuffleSteps+DefaultMaxShuffleSteps-1 moves.
const (
	DefaultMaxShuffleSteps = 50
	DefaultMinShuffleSteps = 10
)

// RandomWalk moves the empty cell steps times in random directions.
// A step never undoes the one before it (prev seeds that rule for the first
// step) unless the empty cell is in a dead end, which only happens on boards
// one cell wide. Off-board draws are not counted. onStep is called after
// every successful move.
func RandomWalk(b *Board, rng *rand.Rand, steps int, prev Direction, onStep func(Direction, Cell)) {
	if b.Len() < 2 {
		return
	}

	forbidden := prev.Neg()
	legal := make([]Direction, 0, len(randomOrder))
	for steps > 0 {
		legal = legalSteps(b, legal[:0], forbidden)
		if len(legal) == 0 {
			legal = legalSteps(b, legal[:0], None)
		}

		d := legal[rng.Intn(len(legal))]
		moved, ok := b.MoveEmptyCell(d)
		if !ok {
			continue
		}
		if onStep != nil {
			onStep(d, moved)
		}
		forbidden = d.Neg()
		steps--
	}
}

// legalSteps appends the directions the empty cell can move in, skipping
// the forbidden one.
func legalSteps(b *Board, dst []Direction, forbidden Direction) []Direction {
	e := b.EmptyCell()
	for _, d := range randomOrder {
		if d == forbidden {
			continue
		}
		if b.Contains(e.Col+d.DX, e.Row+d.DY) {
			dst = append(dst, d)
		}
	}
	return dst
}

// shuffleLength draws the number of shuffle steps.
func shuffleLength(rng *rand.Rand, minSteps, spread int) int {
	if minSteps < 0 {
		minSteps = 0
	}
	if spread <= 0 {
		return minSteps
	}
	return rng.Intn(spread) + minSteps
}

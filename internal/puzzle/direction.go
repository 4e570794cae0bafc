package puzzle

// Direction is a unit step on the grid.
// DX: -1 left, +1 right. DY: -1 up, +1 down.
type Direction struct {
	DX, DY int
}

// Directions of the four axis-aligned unit steps.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
	None  = Direction{}
)

// randomOrder is the draw order used by shuffle.
var randomOrder = [4]Direction{Down, Right, Up, Left}

// Dir builds a Direction from the signs of arbitrary deltas.
func Dir(dx, dy int) Direction {
	return Direction{DX: sign(dx), DY: sign(dy)}
}

// Neg returns the opposite direction.
func (d Direction) Neg() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether d is the null step.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Horizontal reports whether d moves along a row.
func (d Direction) Horizontal() bool {
	return d.DX != 0
}

// String returns the single-letter notation used in move histories.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	case None:
		return "-"
	default:
		return "?"
	}
}

// ParseDirection parses a single-letter notation produced by String.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'U', 'u':
		return Up, true
	case 'D', 'd':
		return Down, true
	case 'L', 'l':
		return Left, true
	case 'R', 'r':
		return Right, true
	}
	return None, false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

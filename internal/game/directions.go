package game

type Direction struct {
	DRow, DCol int
}

// Diagonal reports whether both components are non-zero.
func (d Direction) Diagonal() bool { return d.DRow != 0 && d.DCol != 0 }

var (
	AllDirections = []Direction{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	Orthogonal = []Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	Diagonal   = []Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	// Starting formations face into the board, away from the wall behind each castle.
	Player1StartOffsets = []Direction{{1, 0}, {1, -1}, {1, 1}, {0, -1}, {0, 1}}
	Player2StartOffsets = []Direction{{-1, 0}, {-1, -1}, {-1, 1}, {0, -1}, {0, 1}}
)

// Neighbors returns p shifted by each of dirs, in order, dropping anything
// outside a size x size board.
func Neighbors(p Position, size int, dirs []Direction) []Position {
	out := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		n := p.Add(d)
		if in(n.Row, n.Col, size) {
			out = append(out, n)
		}
	}
	return out
}

func in(row, col, size int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// chebyshev is the king-step distance between two cells.
func chebyshev(a, b Position) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

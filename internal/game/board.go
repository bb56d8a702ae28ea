package game

import (
	"fmt"
	"strings"
)

type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"` // Cells[row][col]
}

// NewBoard returns a size x size board with every cell empty and unclaimed.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Errorf("%w: %d", ErrBoardSize, size))
	}

	c := make([][]Cell, size)
	for i := range c {
		c[i] = make([]Cell, size)
	}

	return &Board{
		Size:  size,
		Cells: c,
	}
}

func (b *Board) InBounds(p Position) bool {
	return in(p.Row, p.Col, b.Size)
}

func (b *Board) mustInBounds(p Position) {
	if !b.InBounds(p) {
		panic(fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.Size, b.Size))
	}
}

func (b *Board) Cell(p Position) Cell {
	b.mustInBounds(p)
	return b.Cells[p.Row][p.Col]
}

func (b *Board) Occupant(p Position) Occupant {
	return b.Cell(p).Occupant
}

func (b *Board) SetOccupant(p Position, o Occupant) {
	b.mustInBounds(p)
	b.Cells[p.Row][p.Col].Occupant = o
}

func (b *Board) IsTerritory(p Position, player Player) bool {
	return b.Cell(p).IsTerritory(player)
}

func (b *Board) MarkTerritory(p Position, player Player) {
	b.mustInBounds(p)
	if player != Player1 && player != Player2 {
		panic(fmt.Errorf("%w: cannot mark territory for %d", ErrUnknownPlayer, player))
	}
	b.Cells[p.Row][p.Col].Territory[player-1] = true
}

// Neighbors is the package-level Neighbors clipped to this board.
func (b *Board) Neighbors(p Position, dirs []Direction) []Position {
	return Neighbors(p, b.Size, dirs)
}

// Count returns the number of cells for which match is true.
func (b *Board) Count(match func(Cell) bool) int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if match(c) {
				n++
			}
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	cp := &Board{Size: b.Size, Cells: make([][]Cell, len(b.Cells))}
	for i := range b.Cells {
		cp.Cells[i] = make([]Cell, len(b.Cells[i]))
		copy(cp.Cells[i], b.Cells[i])
	}
	return cp
}

// String draws the board one row per line:
//
//	#  wall      .  empty
//	A  player1 castle, a  player1 piece
//	B  player2 castle, b  player2 piece
//
// Empty territory cells are drawn as 1 or 2.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Cells {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellGlyph(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellGlyph(c Cell) byte {
	o := c.Occupant
	switch o.Kind {
	case KindWall:
		return '#'
	case KindCastle:
		if o.Player == Player1 {
			return 'A'
		}
		return 'B'
	case KindPiece:
		if o.Player == Player1 {
			return 'a'
		}
		return 'b'
	}
	switch {
	case c.IsTerritory(Player1):
		return '1'
	case c.IsTerritory(Player2):
		return '2'
	}
	return '.'
}

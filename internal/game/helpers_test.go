package game

import (
	"strings"
	"testing"
)

// parseBoard reads the glyphs produced by Board.String. Digits mark empty
// territory cells; use markTerritory for occupied ones.
func parseBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b := NewBoard(len(rows))
	for r, line := range rows {
		glyphs := strings.Fields(line)
		if len(glyphs) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(glyphs), len(rows))
		}
		for c, g := range glyphs {
			p := Position{Row: r, Col: c}
			switch g {
			case "#":
				b.SetOccupant(p, Wall())
			case "A":
				b.SetOccupant(p, CastleOf(Player1))
			case "B":
				b.SetOccupant(p, CastleOf(Player2))
			case "a":
				b.SetOccupant(p, PieceOf(Player1))
			case "b":
				b.SetOccupant(p, PieceOf(Player2))
			case "1":
				b.MarkTerritory(p, Player1)
			case "2":
				b.MarkTerritory(p, Player2)
			case ".":
			default:
				t.Fatalf("unknown glyph %q at %s", g, p)
			}
		}
	}
	return b
}

func markTerritory(b *Board, p Player, cells ...Position) {
	for _, c := range cells {
		b.MarkTerritory(c, p)
	}
}

func playing(b *Board, turn Player) *Game {
	return &Game{Board: b, CurrentPlayer: turn, Status: StatusPlaying}
}

func pos(row, col int) Position { return Position{Row: row, Col: col} }

func samePositions(got, want []Position) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[Position]int, len(got))
	for _, p := range got {
		seen[p]++
	}
	for _, p := range want {
		if seen[p] == 0 {
			return false
		}
		seen[p]--
	}
	return true
}

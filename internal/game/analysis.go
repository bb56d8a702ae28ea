package game

// LegalMoves generates every move the current player could make right now.
func (g *Game) LegalMoves() []Move {
	if g.Status != StatusPlaying {
		return nil
	}

	var moves []Move
	for row := 0; row < g.Board.Size; row++ {
		for col := 0; col < g.Board.Size; col++ {
			from := Position{Row: row, Col: col}
			if !g.Board.Occupant(from).IsPieceOf(g.CurrentPlayer) {
				continue
			}
			for _, to := range g.ValidTargets(from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// Score is a per-player summary shown next to the board.
type Score struct {
	Player           Player `json:"player"`
	Pieces           int    `json:"pieces"`
	InEnemyTerritory int    `json:"in_enemy_territory"`
}

func (g *Game) Scores() []Score {
	out := make([]Score, 0, 2)
	for _, p := range []Player{Player1, Player2} {
		out = append(out, Score{
			Player:           p,
			Pieces:           RemainingPieces(g.Board, p),
			InEnemyTerritory: TerritoryCount(g.Board, p),
		})
	}
	return out
}

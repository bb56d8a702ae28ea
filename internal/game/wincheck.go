package game

// evaluateWin ends the game in mover's favour when mover holds enough of the
// opponent's territory or the opponent is down to its last piece.
func (g *Game) evaluateWin(mover Player) {
	opponent := mover.Opponent()
	if TerritoryCount(g.Board, mover) >= TerritoryWinCount ||
		RemainingPieces(g.Board, opponent) <= AttritionLimit {
		g.Status = StatusFinished
		g.Winner = mover
	}
}

// TerritoryCount is the number of player's pieces standing on the opponent's territory.
func TerritoryCount(b *Board, player Player) int {
	opponent := player.Opponent()
	return b.Count(func(c Cell) bool {
		return c.IsTerritory(opponent) && c.Occupant.IsPieceOf(player)
	})
}

// RemainingPieces counts player's movable pieces. Castles do not count.
func RemainingPieces(b *Board, player Player) int {
	return b.Count(func(c Cell) bool {
		return c.Occupant.IsPieceOf(player)
	})
}

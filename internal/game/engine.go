package game

// IsValidMove checks geometry and destination only: one king step onto an
// empty cell. Who stands on from is the caller's concern.
func (g *Game) IsValidMove(from, to Position) bool {
	if !g.Board.InBounds(from) || !g.Board.InBounds(to) {
		return false
	}
	if chebyshev(from, to) != 1 {
		return false
	}
	return g.Board.Occupant(to).IsEmpty()
}

// ValidTargets lists every cell the occupant of from could step to.
func (g *Game) ValidTargets(from Position) []Position {
	if !g.Board.InBounds(from) {
		return nil
	}
	var out []Position
	for _, n := range g.Board.Neighbors(from, AllDirections) {
		if g.IsValidMove(from, n) {
			out = append(out, n)
		}
	}
	return out
}

// CapturedPositions returns the opposing pieces flanked by the occupant that
// just landed on landedAt. Each ray collects a run of opposing pieces and keeps
// it only if the run ends on the mover's own piece or castle, or on a wall when
// the ray is orthogonal.
func (b *Board) CapturedPositions(landedAt Position) []Position {
	mover := b.Occupant(landedAt).Player
	if mover == NoPlayer {
		return nil
	}

	var captured []Position
	for _, d := range AllDirections {
		var run []Position
		p := landedAt.Add(d)
	walk:
		for b.InBounds(p) {
			o := b.Occupant(p)
			switch {
			case o.Kind == KindEmpty:
				break walk
			case o.Kind == KindPiece && o.Player != mover:
				run = append(run, p)
				p = p.Add(d)
			case (o.Kind == KindPiece || o.Kind == KindCastle) && o.Player == mover,
				o.Kind == KindWall && !d.Diagonal():
				captured = append(captured, run...)
				break walk
			default:
				// opposing castle, or a wall closing a diagonal ray
				break walk
			}
		}
	}
	return captured
}

// ApplyMove moves the current player's piece from -> to, removes captures,
// checks for a winner and hands over the turn. It reports false and leaves
// the game untouched when the move is not allowed.
func (g *Game) ApplyMove(from, to Position) (MoveResult, bool) {
	if g.Status != StatusPlaying {
		return MoveResult{}, false
	}
	if !g.Board.InBounds(from) || !g.Board.Occupant(from).IsPieceOf(g.CurrentPlayer) {
		return MoveResult{}, false
	}
	if !g.IsValidMove(from, to) {
		return MoveResult{}, false
	}

	mover := g.CurrentPlayer
	g.Board.SetOccupant(to, g.Board.Occupant(from))
	g.Board.SetOccupant(from, Empty())

	captured := g.Board.CapturedPositions(to)
	for _, p := range captured {
		g.Board.SetOccupant(p, Empty())
	}

	g.evaluateWin(mover)

	if g.Rules != TurnKeptOnCapture || len(captured) == 0 {
		g.CurrentPlayer = mover.Opponent()
	}
	g.Selected = nil

	res := MoveResult{Player: mover, From: from, To: to, Captured: captured}
	g.LastMove = &res
	return res, true
}

// Select marks p as the piece to move if it belongs to the current player.
func (g *Game) Select(p Position) bool {
	if g.Status != StatusPlaying || !g.Board.InBounds(p) {
		return false
	}
	if !g.Board.Occupant(p).IsPieceOf(g.CurrentPlayer) {
		return false
	}
	sel := p
	g.Selected = &sel
	return true
}

func (g *Game) Deselect() { g.Selected = nil }

// Click feeds one board click into the turn state machine: the first click
// selects a friendly piece, the second attempts the move and always clears
// the selection, even when it lands off the board.
func (g *Game) Click(p Position) {
	if g.Status != StatusPlaying {
		return
	}
	if g.Selected == nil {
		g.Select(p)
		return
	}
	from := *g.Selected
	g.Selected = nil
	if g.Board.InBounds(p) {
		g.ApplyMove(from, p)
	}
}

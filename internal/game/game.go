package game

import (
	"fmt"
	"math/rand"
	"time"
)

/*
  Layout on a 9x9 board (player1 on top, player2 at the bottom):

    # # # # # # # # #
    # . . a A a . . #       A/B castles, a/b pieces, # wall
    # . . a a a . . #
    # . . . . . . . #
    # . . . . . . . #
    # . . . . . . . #
    # . . b b b . . #
    # . . b B b . . #
    # # # # # # # # #

  Territory is the castle cell plus its five starting piece cells.
*/

type Game struct {
	Board         *Board      `json:"board"`
	CurrentPlayer Player      `json:"current_player"`
	Status        Status      `json:"status"`
	Selected      *Position   `json:"selected,omitempty"`
	Winner        Player      `json:"winner"` // NoPlayer until finished
	Rules         TurnRule    `json:"rules"`
	LastMove      *MoveResult `json:"last_move,omitempty"`
}

type options struct {
	starting Player
	random   *rand.Rand
	rule     TurnRule
}

type Option func(*options)

// WithStartingPlayer fixes who moves first. Without it the first player is random.
func WithStartingPlayer(p Player) Option {
	return func(o *options) { o.starting = p }
}

// WithRand supplies the source used to pick a random first player.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.random = r }
}

func WithTurnRule(r TurnRule) Option {
	return func(o *options) { o.rule = r }
}

// NewGame builds the starting position for an odd size between MinBoardSize
// and MaxBoardSize.
func NewGame(size int, opts ...Option) (*Game, error) {
	if size < MinBoardSize || size > MaxBoardSize || size%2 == 0 {
		return nil, fmt.Errorf("%w: %d (need odd size in %d..%d)", ErrBoardSize, size, MinBoardSize, MaxBoardSize)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch o.starting {
	case Player1, Player2:
	case NoPlayer:
		r := o.random
		if r == nil {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		o.starting = Player(1 + r.Intn(2))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, o.starting)
	}

	b := NewBoard(size)
	center := (size - 1) / 2
	placeHome(b, Position{Row: 1, Col: center}, Player1, Player1StartOffsets)
	placeHome(b, Position{Row: size - 2, Col: center}, Player2, Player2StartOffsets)
	placeWalls(b)

	return &Game{
		Board:         b,
		CurrentPlayer: o.starting,
		Status:        StatusPlaying,
		Rules:         o.rule,
	}, nil
}

// placeHome puts a castle at c, a piece on every offset cell and claims all of
// them as the player's territory.
func placeHome(b *Board, c Position, p Player, offsets []Direction) {
	b.SetOccupant(c, CastleOf(p))
	b.MarkTerritory(c, p)
	for _, n := range b.Neighbors(c, offsets) {
		b.SetOccupant(n, PieceOf(p))
		b.MarkTerritory(n, p)
	}
}

// placeWalls rings the border. It runs last and replaces whole cells.
func placeWalls(b *Board) {
	last := b.Size - 1
	for i := 0; i < b.Size; i++ {
		b.Cells[0][i] = Cell{Occupant: Wall()}
		b.Cells[last][i] = Cell{Occupant: Wall()}
		b.Cells[i][0] = Cell{Occupant: Wall()}
		b.Cells[i][last] = Cell{Occupant: Wall()}
	}
}

// Clone returns a deep copy; mutating it never touches g.
func (g *Game) Clone() *Game {
	cp := *g
	cp.Board = g.Board.Clone()
	if g.Selected != nil {
		sel := *g.Selected
		cp.Selected = &sel
	}
	if g.LastMove != nil {
		lm := *g.LastMove
		lm.Captured = append([]Position(nil), g.LastMove.Captured...)
		cp.LastMove = &lm
	}
	return &cp
}

func (g *Game) Size() int { return g.Board.Size }

func (g *Game) IsFinished() bool { return g.Status == StatusFinished }

package game

import "fmt"

type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other player. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return ""
}

func (p Player) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Player) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = NoPlayer
		return nil
	}
	v, err := ParsePlayer(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlayer accepts the names produced by String.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "player1", "1":
		return Player1, nil
	case "player2", "2":
		return Player2, nil
	}
	return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
}

type Kind uint8

const (
	KindEmpty Kind = iota
	KindPiece
	KindCastle
	KindWall
)

func (k Kind) String() string {
	switch k {
	case KindPiece:
		return "piece"
	case KindCastle:
		return "castle"
	case KindWall:
		return "wall"
	}
	return "empty"
}

// Occupant is whatever sits on a cell. Walls and empty cells never carry a player.
type Occupant struct {
	Kind   Kind   `json:"kind"`
	Player Player `json:"player"`
}

func Empty() Occupant { return Occupant{} }

func Wall() Occupant { return Occupant{Kind: KindWall} }

func PieceOf(p Player) Occupant { return Occupant{Kind: KindPiece, Player: p} }

func CastleOf(p Player) Occupant { return Occupant{Kind: KindCastle, Player: p} }

func (o Occupant) IsEmpty() bool { return o.Kind == KindEmpty }

func (o Occupant) IsPieceOf(p Player) bool {
	return o.Kind == KindPiece && o.Player == p
}

type Cell struct {
	Occupant  Occupant `json:"occupant"`
	Territory [2]bool  `json:"territory"` // indexed by Player-1
}

func (c Cell) IsTerritory(p Player) bool {
	if p != Player1 && p != Player2 {
		return false
	}
	return c.Territory[p-1]
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Add offsets p by d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

type Status uint8

const (
	StatusPlaying Status = iota
	StatusFinished
)

func (s Status) String() string {
	if s == StatusFinished {
		return "finished"
	}
	return "playing"
}

// TurnRule decides who moves after a completed move.
type TurnRule uint8

const (
	TurnAlwaysPasses TurnRule = iota
	TurnKeptOnCapture
)

func (r TurnRule) String() string {
	if r == TurnKeptOnCapture {
		return "keep-on-capture"
	}
	return "always"
}

func ParseTurnRule(s string) (TurnRule, error) {
	switch s {
	case "", "always":
		return TurnAlwaysPasses, nil
	case "keep-on-capture":
		return TurnKeptOnCapture, nil
	}
	return TurnAlwaysPasses, fmt.Errorf("%w: %q", ErrUnknownTurnRule, s)
}

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// MoveResult describes the most recently applied move.
type MoveResult struct {
	Player   Player     `json:"player"`
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captured []Position `json:"captured"`
}

const (
	DefaultBoardSize = 9
	// MinBoardSize is 7: at 5 the two starting formations overlap on row 2.
	MinBoardSize     = 7
	MaxBoardSize     = 25

	TerritoryWinCount = 3
	AttritionLimit    = 1
)

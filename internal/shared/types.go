package shared

import (
	"time"

	"castle-siege/internal/game"
)

// GameState is the renderer-facing view of one game.
type GameState struct {
	RoomCode      string          `json:"room_code"`
	Size          int             `json:"size"`
	Board         [][]CellView    `json:"board"`
	CurrentPlayer string          `json:"current_player"`
	Status        string          `json:"status"`
	Selected      *game.Position  `json:"selected"`
	Targets       []game.Position `json:"targets"`
	Winner        *string         `json:"winner"`
	LastMove      *MoveView       `json:"last_move,omitempty"`
	Scores        []game.Score    `json:"scores"`
	Rules         string          `json:"rules"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CellView struct {
	Kind      string        `json:"kind"`
	Player    string        `json:"player,omitempty"`
	Territory TerritoryView `json:"territory"`
}

type TerritoryView struct {
	Player1 bool `json:"player1"`
	Player2 bool `json:"player2"`
}

type MoveView struct {
	Player   string          `json:"player"`
	From     game.Position   `json:"from"`
	To       game.Position   `json:"to"`
	Captured []game.Position `json:"captured"`
}

// NewGameState converts g into its wire form. g should be a snapshot the
// caller owns, such as the result of Game.Clone.
func NewGameState(code string, g *game.Game, updatedAt time.Time) GameState {
	st := GameState{
		RoomCode:      code,
		Size:          g.Size(),
		Board:         make([][]CellView, g.Size()),
		CurrentPlayer: g.CurrentPlayer.String(),
		Status:        g.Status.String(),
		Selected:      g.Selected,
		Targets:       []game.Position{},
		Scores:        g.Scores(),
		Rules:         g.Rules.String(),
		UpdatedAt:     updatedAt,
	}
	for r, row := range g.Board.Cells {
		st.Board[r] = make([]CellView, len(row))
		for c, cell := range row {
			st.Board[r][c] = CellView{
				Kind:   cell.Occupant.Kind.String(),
				Player: cell.Occupant.Player.String(),
				Territory: TerritoryView{
					Player1: cell.IsTerritory(game.Player1),
					Player2: cell.IsTerritory(game.Player2),
				},
			}
		}
	}
	if g.Selected != nil {
		st.Targets = append(st.Targets, g.ValidTargets(*g.Selected)...)
	}
	if g.IsFinished() {
		w := g.Winner.String()
		st.Winner = &w
	}
	if lm := g.LastMove; lm != nil {
		st.LastMove = &MoveView{
			Player:   lm.Player.String(),
			From:     lm.From,
			To:       lm.To,
			Captured: append([]game.Position{}, lm.Captured...),
		}
	}
	return st
}

// Event is what the websocket hub pushes to renderers.
type Event struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

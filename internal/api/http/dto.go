package http

import "castle-siege/internal/game"

// CreateRoomRequest represents the payload for POST /rooms. Both fields are
// optional and fall back to the server configuration.
type CreateRoomRequest struct {
	BoardSize      int    `json:"board_size"`
	StartingPlayer string `json:"starting_player"`
}

// ClickRequest is one board click translated to cell coordinates.
type ClickRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// MoveRequest moves the piece on From to To.
type MoveRequest struct {
	From *game.Position `json:"from" binding:"required"`
	To   *game.Position `json:"to" binding:"required"`
}

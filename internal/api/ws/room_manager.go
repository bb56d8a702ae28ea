package ws

import (
	"castle-siege/internal/game"
	"castle-siege/internal/room"
	"castle-siege/internal/shared"
)

type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	State(r *room.Room) shared.GameState
	Click(r *room.Room, p game.Position) (shared.GameState, error)
	Move(r *room.Room, from, to game.Position) (shared.GameState, bool, error)
}

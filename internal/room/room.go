package room

import (
	"sync"
	"time"

	"castle-siege/internal/game"
)

// Room hosts one hot-seat game. All engine calls for a room go through its
// mutex; the engine itself does no locking.
type Room struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Game      *game.Game `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	mu sync.Mutex
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Rooms() []*Room
}

// withGame runs fn with exclusive access to the room's game.
func (r *Room) withGame(fn func(g *game.Game)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.Game)
}

func (r *Room) lastUpdate() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.UpdatedAt
}

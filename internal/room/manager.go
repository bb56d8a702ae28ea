package room

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"castle-siege/internal/config"
	"castle-siege/internal/game"
	"castle-siege/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrBadPosition  = errors.New("position outside the board")
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	now   func() time.Time
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub, now: time.Now}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

func (m *Manager) broadcast(code, action string, data interface{}) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(code, action, data)
}

// CreateRoom starts a new game. Zero boardSize and empty startingPlayer fall
// back to the configured defaults.
func (m *Manager) CreateRoom(boardSize int, startingPlayer string) (*Room, error) {
	if boardSize == 0 {
		boardSize = m.cfg.BoardSize
	}
	opts, err := m.cfg.GameOptions(startingPlayer)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(boardSize, opts...)
	if err != nil {
		return nil, err
	}

	now := m.now()
	r := &Room{
		ID:        uuid.NewString(),
		Code:      m.uniqueCode(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.store.SaveRoom(r)
	log.Printf("room %s created: %dx%d, %s to move", r.Code, boardSize, boardSize, g.CurrentPlayer)
	return r, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) DeleteRoom(code string) error {
	if _, ok := m.store.GetRoom(code); !ok {
		return ErrRoomNotFound
	}
	m.store.DeleteRoom(code)
	m.broadcast(code, "room-closed", gin.H{"room_code": code})
	return nil
}

// State returns a snapshot of the room's game that is safe to serialise.
func (m *Manager) State(r *Room) shared.GameState {
	var (
		g  *game.Game
		at time.Time
	)
	r.withGame(func(live *game.Game) {
		g = live.Clone()
		at = r.UpdatedAt
	})
	return shared.NewGameState(r.Code, g, at)
}

// Click forwards one board click. Clicks outside the board are rejected here
// so they never reach the engine's bounds checks.
func (m *Manager) Click(r *Room, p game.Position) (shared.GameState, error) {
	var (
		err   error
		moved bool
	)
	r.withGame(func(g *game.Game) {
		if !g.Board.InBounds(p) {
			err = fmt.Errorf("%w: %s", ErrBadPosition, p)
			return
		}
		before := g.LastMove
		g.Click(p)
		moved = g.LastMove != before
		r.UpdatedAt = m.now()
	})
	if err != nil {
		return shared.GameState{}, err
	}
	m.store.SaveRoom(r)

	st := m.State(r)
	if !moved {
		m.broadcast(r.Code, "state-updated", gin.H{"state": st})
		return st, nil
	}
	lm := st.LastMove
	log.Printf("room %s: %s moved %s -> %s, captured %d", r.Code, lm.Player, lm.From, lm.To, len(lm.Captured))
	m.broadcast(r.Code, "move-applied", gin.H{"state": st})
	m.announceWinner(r.Code, st)
	return st, nil
}

// Move applies from -> to for the player on turn. applied is false when the
// engine rejected the move; the game is unchanged in that case.
func (m *Manager) Move(r *Room, from, to game.Position) (st shared.GameState, applied bool, err error) {
	var res game.MoveResult
	r.withGame(func(g *game.Game) {
		if !g.Board.InBounds(from) || !g.Board.InBounds(to) {
			err = fmt.Errorf("%w: %s -> %s", ErrBadPosition, from, to)
			return
		}
		res, applied = g.ApplyMove(from, to)
		if applied {
			r.UpdatedAt = m.now()
		}
	})
	if err != nil {
		return shared.GameState{}, false, err
	}

	st = m.State(r)
	if !applied {
		return st, false, nil
	}
	m.store.SaveRoom(r)
	log.Printf("room %s: %s moved %s -> %s, captured %d", r.Code, res.Player, from, to, len(res.Captured))
	m.broadcast(r.Code, "move-applied", gin.H{"state": st})
	m.announceWinner(r.Code, st)
	return st, true, nil
}

func (m *Manager) announceWinner(code string, st shared.GameState) {
	if st.Winner == nil {
		return
	}
	log.Printf("room %s: %s wins", code, *st.Winner)
	m.broadcast(code, "game-over", gin.H{"winner": *st.Winner, "state": st})
}

// Targets lists the cells the piece at from may step to.
func (m *Manager) Targets(r *Room, from game.Position) ([]game.Position, error) {
	var (
		out []game.Position
		err error
	)
	r.withGame(func(g *game.Game) {
		if !g.Board.InBounds(from) {
			err = fmt.Errorf("%w: %s", ErrBadPosition, from)
			return
		}
		out = g.ValidTargets(from)
	})
	if out == nil {
		out = []game.Position{}
	}
	return out, err
}

func (m *Manager) LegalMoves(r *Room) []game.Move {
	var moves []game.Move
	r.withGame(func(g *game.Game) {
		moves = g.LegalMoves()
	})
	if moves == nil {
		moves = []game.Move{}
	}
	return moves
}

// SweepExpired drops rooms idle for longer than the configured TTL.
func (m *Manager) SweepExpired() int {
	cutoff := m.now().Add(-m.cfg.RoomTTL)
	n := 0
	for _, r := range m.store.Rooms() {
		if r.lastUpdate().Before(cutoff) {
			m.store.DeleteRoom(r.Code)
			m.broadcast(r.Code, "room-closed", gin.H{"room_code": r.Code})
			n++
		}
	}
	if n > 0 {
		log.Printf("swept %d idle rooms", n)
	}
	return n
}

// MaintainRooms sweeps on every SweepInterval tick until ctx is done.
func (m *Manager) MaintainRooms(ctx context.Context) {
	interval := m.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SweepExpired()
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

func (m *Manager) uniqueCode() string {
	for {
		code := randCode(6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

package room

import (
	"errors"
	"sync"
	"testing"
	"time"

	"castle-siege/internal/config"
	"castle-siege/internal/game"
)

type mapStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func newMapStore() *mapStore { return &mapStore{rooms: map[string]*Room{}} }

func (s *mapStore) GetRoom(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	return r, ok
}

func (s *mapStore) SaveRoom(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.Code] = r
}

func (s *mapStore) DeleteRoom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

func (s *mapStore) Rooms() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Room
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

type recorder struct {
	mu      sync.Mutex
	actions []string
}

func (r *recorder) Broadcast(roomCode, action string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.actions) == 0 {
		return ""
	}
	return r.actions[len(r.actions)-1]
}

func testConfig() config.Config {
	return config.Config{
		BoardSize:      9,
		StartingPlayer: "player1",
		TurnRule:       "always",
		RoomTTL:        time.Hour,
		SweepInterval:  time.Minute,
	}
}

func TestCreateRoomDefaults(t *testing.T) {
	m := NewManager(newMapStore(), testConfig(), nil)
	r, err := m.CreateRoom(0, "")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if len(r.Code) != 6 || r.ID == "" {
		t.Fatalf("room identifiers not set: %+v", r)
	}
	st := m.State(r)
	if st.Size != 9 || st.CurrentPlayer != "player1" || st.Status != "playing" {
		t.Fatalf("unexpected state %+v", st)
	}
	if got, ok := m.Get(r.Code); !ok || got != r {
		t.Fatalf("room not stored")
	}
}

func TestCreateRoomRejectsBadInput(t *testing.T) {
	m := NewManager(newMapStore(), testConfig(), nil)
	if _, err := m.CreateRoom(6, ""); !errors.Is(err, game.ErrBoardSize) {
		t.Fatalf("expected ErrBoardSize, got %v", err)
	}
	if _, err := m.CreateRoom(4001, ""); !errors.Is(err, game.ErrBoardSize) {
		t.Fatalf("oversized board: expected ErrBoardSize, got %v", err)
	}
	if _, err := m.CreateRoom(9, "nobody"); !errors.Is(err, game.ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}
}

func TestClickSelectsThenMoves(t *testing.T) {
	rec := &recorder{}
	m := NewManager(newMapStore(), testConfig(), rec)
	r, err := m.CreateRoom(9, "player1")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	st, err := m.Click(r, game.Position{Row: 2, Col: 4})
	if err != nil {
		t.Fatalf("select click: %v", err)
	}
	if st.Selected == nil || len(st.Targets) != 3 {
		t.Fatalf("selection not reflected: selected=%v targets=%v", st.Selected, st.Targets)
	}
	if rec.last() != "state-updated" {
		t.Fatalf("broadcast got=%q want=state-updated", rec.last())
	}

	st, err = m.Click(r, game.Position{Row: 3, Col: 4})
	if err != nil {
		t.Fatalf("move click: %v", err)
	}
	if st.CurrentPlayer != "player2" || st.Selected != nil || st.LastMove == nil {
		t.Fatalf("move not reflected: %+v", st)
	}
	if rec.last() != "move-applied" {
		t.Fatalf("broadcast got=%q want=move-applied", rec.last())
	}
}

func TestClickOutsideBoard(t *testing.T) {
	m := NewManager(newMapStore(), testConfig(), nil)
	r, err := m.CreateRoom(9, "")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if _, err := m.Click(r, game.Position{Row: 9, Col: 0}); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("expected ErrBadPosition, got %v", err)
	}
}

func TestMoveAppliedAndRejected(t *testing.T) {
	rec := &recorder{}
	m := NewManager(newMapStore(), testConfig(), rec)
	r, err := m.CreateRoom(9, "player1")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	st, applied, err := m.Move(r, game.Position{Row: 6, Col: 4}, game.Position{Row: 5, Col: 4})
	if err != nil || applied {
		t.Fatalf("moving the opponent's piece: applied=%v err=%v", applied, err)
	}
	if st.CurrentPlayer != "player1" {
		t.Fatalf("rejected move changed the turn")
	}
	if len(rec.actions) != 0 {
		t.Fatalf("rejected move broadcast %v", rec.actions)
	}

	st, applied, err = m.Move(r, game.Position{Row: 2, Col: 4}, game.Position{Row: 3, Col: 4})
	if err != nil || !applied {
		t.Fatalf("legal move: applied=%v err=%v", applied, err)
	}
	if st.CurrentPlayer != "player2" {
		t.Fatalf("turn got=%s want=player2", st.CurrentPlayer)
	}
	if rec.last() != "move-applied" {
		t.Fatalf("broadcast got=%q want=move-applied", rec.last())
	}

	if _, _, err := m.Move(r, game.Position{Row: 2, Col: 4}, game.Position{Row: -1, Col: 4}); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("expected ErrBadPosition, got %v", err)
	}
}

func TestStateIsASnapshot(t *testing.T) {
	m := NewManager(newMapStore(), testConfig(), nil)
	r, err := m.CreateRoom(9, "player1")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	before := m.State(r)
	if _, _, err := m.Move(r, game.Position{Row: 2, Col: 4}, game.Position{Row: 3, Col: 4}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if before.Board[3][4].Kind != "empty" || before.Board[2][4].Kind != "piece" {
		t.Fatalf("earlier snapshot changed after a move")
	}
}

func TestTargetsAndLegalMoves(t *testing.T) {
	m := NewManager(newMapStore(), testConfig(), nil)
	r, err := m.CreateRoom(9, "player1")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	targets, err := m.Targets(r, game.Position{Row: 2, Col: 3})
	if err != nil || len(targets) != 5 {
		t.Fatalf("targets=%v err=%v", targets, err)
	}
	if _, err := m.Targets(r, game.Position{Row: 0, Col: 20}); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("expected ErrBadPosition, got %v", err)
	}
	if got := len(m.LegalMoves(r)); got != 17 {
		t.Fatalf("legal moves got=%d want=17", got)
	}
}

func TestWinnerIsAnnounced(t *testing.T) {
	rec := &recorder{}
	m := NewManager(newMapStore(), testConfig(), rec)
	r, err := m.CreateRoom(9, "player1")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	// Leave player2 with (6,4) and (7,5); (6,4) gets flanked from (6,3).
	r.withGame(func(g *game.Game) {
		for _, p := range []game.Position{{Row: 6, Col: 3}, {Row: 7, Col: 3}} {
			g.Board.SetOccupant(p, game.Empty())
		}
		g.Board.SetOccupant(game.Position{Row: 6, Col: 5}, game.PieceOf(game.Player1))
		g.Board.SetOccupant(game.Position{Row: 5, Col: 3}, game.PieceOf(game.Player1))
	})

	st, applied, err := m.Move(r, game.Position{Row: 5, Col: 3}, game.Position{Row: 6, Col: 3})
	if err != nil || !applied {
		t.Fatalf("capture move: applied=%v err=%v", applied, err)
	}
	if st.Winner == nil || *st.Winner != "player1" || st.Status != "finished" {
		t.Fatalf("expected player1 to win: %+v", st)
	}
	if rec.last() != "game-over" {
		t.Fatalf("broadcast got=%q want=game-over", rec.last())
	}
}

func TestSweepExpired(t *testing.T) {
	rec := &recorder{}
	m := NewManager(newMapStore(), testConfig(), rec)
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	stale, err := m.CreateRoom(9, "")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	now = now.Add(50 * time.Minute)
	fresh, err := m.CreateRoom(9, "")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	now = now.Add(20 * time.Minute)

	if n := m.SweepExpired(); n != 1 {
		t.Fatalf("swept got=%d want=1", n)
	}
	if _, ok := m.Get(stale.Code); ok {
		t.Fatalf("stale room survived the sweep")
	}
	if _, ok := m.Get(fresh.Code); !ok {
		t.Fatalf("fresh room was swept")
	}
	if rec.last() != "room-closed" {
		t.Fatalf("broadcast got=%q want=room-closed", rec.last())
	}
}

func TestDeleteRoom(t *testing.T) {
	rec := &recorder{}
	m := NewManager(newMapStore(), testConfig(), rec)
	r, err := m.CreateRoom(9, "")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if err := m.DeleteRoom(r.Code); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.DeleteRoom(r.Code); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if rec.last() != "room-closed" {
		t.Fatalf("broadcast got=%q want=room-closed", rec.last())
	}
}

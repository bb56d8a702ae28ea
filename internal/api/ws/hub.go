package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"castle-siege/internal/game"
	"castle-siege/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pingInterval = 30 * time.Second
	pongWait     = 2 * pingInterval
)

// writeWait bounds every write so one stalled renderer cannot hold mu.
var writeWait = 10 * time.Second

// Hub fans room events out to every renderer watching that room. All writes
// to a connection happen under mu, so a conn never sees concurrent writers.
type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // renderer may be served from another origin
	},
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type moveData struct {
	From game.Position `json:"from"`
	To   game.Position `json:"to"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	log.Printf("renderer connected to room %s", roomCode)

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	err = writeEvent(conn, "state", gin.H{"state": h.roomManager.State(rm)})
	h.mu.Unlock()
	if err != nil {
		log.Printf("failed to send initial state: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	done := make(chan struct{})
	defer func() {
		close(done)
		h.remove(roomCode, conn)
	}()
	go keepAlive(conn, done)

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read error in room %s: %v", roomCode, err)
			}
			return
		}
		h.handle(conn, roomCode, msg)
	}
}

func (h *Hub) handle(conn *websocket.Conn, roomCode string, msg inbound) {
	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		h.reply(conn, "error", gin.H{"error": "room not found"})
		return
	}

	switch msg.Action {
	case "click":
		var p game.Position
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			h.reply(conn, "error", gin.H{"error": "invalid click payload"})
			return
		}
		if _, err := h.roomManager.Click(rm, p); err != nil {
			h.reply(conn, "error", gin.H{"error": err.Error()})
		}
	case "move":
		var mv moveData
		if err := json.Unmarshal(msg.Data, &mv); err != nil {
			h.reply(conn, "error", gin.H{"error": "invalid move payload"})
			return
		}
		st, applied, err := h.roomManager.Move(rm, mv.From, mv.To)
		if err != nil {
			h.reply(conn, "error", gin.H{"error": err.Error()})
			return
		}
		if !applied {
			h.reply(conn, "move-rejected", gin.H{"state": st})
		}
	default:
		log.Printf("unknown action %q in room %s", msg.Action, roomCode)
		h.reply(conn, "error", gin.H{"error": "unknown action"})
	}
}

// Broadcast sends action to every connection in the room, dropping any that
// fail to take the write.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	for conn := range clients {
		if err := writeEvent(conn, action, data); err != nil {
			log.Printf("failed to send %s to room %s: %v", action, roomCode, err)
			conn.Close()
			delete(clients, conn)
		}
	}
	if len(clients) == 0 {
		delete(h.rooms, roomCode)
	}
}

func (h *Hub) reply(conn *websocket.Conn, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := writeEvent(conn, action, data); err != nil {
		log.Printf("failed to reply %s: %v", action, err)
	}
}

func writeEvent(conn *websocket.Conn, action string, data interface{}) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(shared.Event{Action: action, Data: data})
}

func (h *Hub) remove(roomCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[roomCode]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.rooms, roomCode)
		}
	}
	_ = conn.Close()
}

// Watchers reports how many renderers are attached to a room.
func (h *Hub) Watchers(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomCode])
}

// keepAlive pings the peer until done closes. WriteControl may run alongside
// the hub's writes.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}
}

package room

// Broadcaster pushes room events to live renderers. The websocket hub is the
// production implementation; nil means nobody is listening.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

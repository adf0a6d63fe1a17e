package room

// Broadcaster is the transport boundary: room membership plus "send to one
// connection", "send to a room" and "send to everyone". The websocket hub
// implements it; tests substitute a recorder.
type Broadcaster interface {
	JoinRoom(roomCode, connID string)
	LeaveRoom(roomCode, connID string)
	Broadcast(roomCode, event string, data interface{})
	SendTo(connID, event string, data interface{})
	BroadcastAll(event string, data interface{})
}

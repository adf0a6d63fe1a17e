package ws

import "kingkung/internal/game"

// Session is what the hub needs from the room manager. Errors are for
// logging; replies to clients are emitted by the manager itself.
type Session interface {
	Join(connID, roomCode, name, color string, private bool) error
	SelectTile(connID string, cell game.Cell) error
	Deselect(connID string) error
	AttemptMove(connID string, src, tgt game.Cell, isSwap bool) error
	VoteRematch(connID string) error
	RequestState(connID string) error
	RequestLobby(connID string)
	ValidateColor(connID, roomCode string, hue float64)
	Disconnect(connID string)
}

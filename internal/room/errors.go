package room

import "errors"

// All errors here are local and recoverable: none of them tears down a room
// or the process. ErrNotYourTurn is dropped without a reply; ErrInvalidMove
// is answered to the mover only.
var (
	ErrRoomFull            = errors.New("room is full")
	ErrAlreadyJoined       = errors.New("connection already seated in a room")
	ErrRoomPrivacyConflict = errors.New("room privacy conflict")
	ErrRoomNotFound        = errors.New("room not found")
	ErrInvalidMove         = errors.New("invalid move")
	ErrNotYourTurn         = errors.New("not your turn")
)

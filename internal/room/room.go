package room

import (
	"sync"
	"time"

	"kingkung/internal/game"
)

type Player struct {
	ConnID string    `json:"id"`
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Role   game.Role `json:"role"`
	Score  int       `json:"score"`
}

// Room owns the authoritative state for one game. All mutation goes through
// the Manager while mu is held; broadcasts are emitted before the lock is
// released so two interleaved moves can never publish an inconsistent
// snapshot.
type Room struct {
	mu sync.Mutex

	Code       string
	Private    bool
	Players    []*Player
	State      *game.State
	LastWinner game.Role
	CreatedAt  time.Time
}

func (r *Room) playerByConn(connID string) *Player {
	for _, p := range r.Players {
		if p.ConnID == connID {
			return p
		}
	}
	return nil
}

func (r *Room) playerByRole(role game.Role) *Player {
	for _, p := range r.Players {
		if p.Role == role {
			return p
		}
	}
	return nil
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	// GetOrCreateRoom resolves code atomically: two racing joins to an
	// unseen code must end up in the same room.
	GetOrCreateRoom(code string, create func() *Room) *Room
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Rooms() []*Room
}

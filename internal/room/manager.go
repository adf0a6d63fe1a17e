package room

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"kingkung/internal/config"
	"kingkung/internal/game"
	"kingkung/internal/lobby"
)

// Manager is the only writer of room state. Every public operation resolves
// the caller's room, takes the room lock, validates the intent against the
// current turn, mutates, and broadcasts before unlocking.
type Manager struct {
	store Store
	cfg   config.Config
	dir   *lobby.Directory
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, dir *lobby.Directory) *Manager {
	return &Manager{store: s, cfg: cfg, dir: dir}
}

// SetHub breaks the manager/hub construction cycle: the hub needs the manager
// for dispatch, the manager needs the hub for broadcast.
func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// Join implements createOrJoin: the first join to an unseen code creates the
// room, the second starts the game. The joiner alone hears about failures.
func (m *Manager) Join(connID, code, name, color string, private bool) error {
	// One seat per connection: intents are routed by connID, so a second
	// join would make that routing ambiguous.
	if _, _, seated := m.roomForConn(connID); seated {
		m.hub.SendTo(connID, "joinResult", gin.H{
			"success": false,
			"reason":  "already in a room",
		})
		return ErrAlreadyJoined
	}

	r := m.store.GetOrCreateRoom(code, func() *Room {
		log.Printf("room %s created (private=%v)", code, private)
		return &Room{
			Code:      code,
			Private:   private,
			State:     game.NewState(game.RoleHost),
			CreatedAt: time.Now(),
		}
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Players) >= 2 {
		m.hub.SendTo(connID, "joinResult", gin.H{
			"success": false,
			"reason":  "room is full",
		})
		return ErrRoomFull
	}
	if len(r.Players) > 0 && r.Private != private {
		m.hub.SendTo(connID, "joinResult", gin.H{
			"success": false,
			"reason":  "room privacy conflict",
		})
		return ErrRoomPrivacyConflict
	}

	role := game.RoleHost
	if len(r.Players) == 1 {
		role = game.RoleOpp
	}
	p := &Player{ConnID: connID, Name: name, Color: color, Role: role}
	r.Players = append(r.Players, p)
	m.hub.JoinRoom(code, connID)
	log.Printf("player %s joined room %s as %s", name, code, role)

	m.hub.SendTo(connID, "joinResult", gin.H{
		"success": true,
		"player":  p,
	})

	if len(r.Players) == 2 {
		r.State.Current = startingRole(r.LastWinner)
		m.syncScores(r)
		m.hub.Broadcast(code, "gameStart", gin.H{
			"players":   r.Players,
			"gameState": r.State,
		})
	}

	m.republishLobby(r)
	m.store.SaveRoom(r)
	return nil
}

// SelectTile sets the selection and derives its legal destinations. Intents
// from the side not on the move are dropped.
func (m *Manager) SelectTile(connID string, cell game.Cell) error {
	r, p, ok := m.roomForConn(connID)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State.Phase == game.PhaseWon || p.Role != r.State.Current {
		return ErrNotYourTurn
	}
	if !game.InBounds(cell) {
		return ErrInvalidMove
	}
	r.State.Select(cell)
	m.hub.Broadcast(r.Code, "stateUpdate", r.State)
	m.store.SaveRoom(r)
	return nil
}

func (m *Manager) Deselect(connID string) error {
	r, p, ok := m.roomForConn(connID)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State.Phase == game.PhaseWon || p.Role != r.State.Current {
		return ErrNotYourTurn
	}
	r.State.Deselect()
	m.hub.Broadcast(r.Code, "stateUpdate", r.State)
	m.store.SaveRoom(r)
	return nil
}

// AttemptMove re-validates the move server-side and commits it atomically:
// either the room state advances and everyone hears about it, or nothing
// changes and only the mover gets an invalidMove.
func (m *Manager) AttemptMove(connID string, src, tgt game.Cell, isSwap bool) error {
	r, p, ok := m.roomForConn(connID)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State.Phase == game.PhaseWon || p.Role != r.State.Current {
		return ErrNotYourTurn
	}
	if !r.State.ValidMove(src, tgt, isSwap) {
		m.hub.SendTo(connID, "invalidMove", gin.H{})
		return ErrInvalidMove
	}

	r.State.ApplyMove(src, tgt, isSwap)

	if winner, won := r.State.WinnerAfterMove(p.Role); won {
		r.State.SetWinner(winner)
		r.LastWinner = winner
		wp := r.playerByRole(winner)
		if wp != nil {
			wp.Score = r.State.Scores[winner]
		}
		log.Printf("room %s won by %s", r.Code, winner)
		m.hub.Broadcast(r.Code, "gameWon", gin.H{
			"winner":    wp,
			"gameState": r.State,
		})
	} else {
		r.State.SwitchTurn()
		m.hub.Broadcast(r.Code, "stateUpdate", r.State)
	}

	m.store.SaveRoom(r)
	return nil
}

// VoteRematch records the vote; once both sides voted the board resets,
// scores carry over and the loser of the previous game starts.
func (m *Manager) VoteRematch(connID string) error {
	r, p, ok := m.roomForConn(connID)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.State.RematchVotes[p.Role] = true
	log.Printf("player %s voted rematch in room %s", p.Name, r.Code)

	if r.State.RematchVotes[game.RoleHost] && r.State.RematchVotes[game.RoleOpp] {
		r.State = game.NewState(startingRole(r.LastWinner))
		m.syncScores(r)
		m.hub.Broadcast(r.Code, "gameReset", r.State)
	} else if other := r.playerByRole(p.Role.Other()); other != nil {
		m.hub.SendTo(other.ConnID, "rematchPending", gin.H{})
	}

	m.store.SaveRoom(r)
	return nil
}

// Disconnect removes the connection's player. An emptied room is destroyed;
// a surviving player inherits the host role over a fresh board. The
// survivor's score does not carry over this reset (unlike the rematch path);
// that asymmetry is deliberate.
func (m *Manager) Disconnect(connID string) {
	r, p, ok := m.roomForConn(connID)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, q := range r.Players {
		if q.ConnID == connID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			break
		}
	}
	m.hub.LeaveRoom(r.Code, connID)
	log.Printf("player %s disconnected from room %s", p.Name, r.Code)

	if len(r.Players) == 0 {
		m.store.DeleteRoom(r.Code)
		m.dir.Remove(r.Code)
		m.hub.BroadcastAll("lobbySnapshot", gin.H{"rooms": m.dir.Snapshot()})
		log.Printf("room %s deleted (empty)", r.Code)
		return
	}

	survivor := r.Players[0]
	survivor.Role = game.RoleHost
	survivor.Score = 0
	r.State = game.NewState(game.RoleHost)
	m.hub.Broadcast(r.Code, "playerLeft", gin.H{
		"players":   r.Players,
		"gameState": r.State,
	})
	m.republishLobby(r)
	m.store.SaveRoom(r)
}

// RequestState replies to the sender only.
func (m *Manager) RequestState(connID string) error {
	r, _, ok := m.roomForConn(connID)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m.hub.SendTo(connID, "stateUpdate", r.State)
	return nil
}

// RequestLobby replies to the sender only.
func (m *Manager) RequestLobby(connID string) {
	m.hub.SendTo(connID, "lobbySnapshot", gin.H{"rooms": m.dir.Snapshot()})
}

// ValidateColor checks a prospective joiner's hue against the room's first
// player before the join is committed. Unknown or empty rooms accept any
// color.
func (m *Manager) ValidateColor(connID, code string, hue float64) {
	valid := true
	if r, ok := m.store.GetRoom(code); ok {
		r.mu.Lock()
		if len(r.Players) > 0 {
			if other, parsed := hexToHue(r.Players[0].Color); parsed {
				valid = hueDistinct(hue, other, float64(m.cfg.ColorHueThreshold))
			}
		}
		r.mu.Unlock()
	}
	m.hub.SendTo(connID, "colorValidation", gin.H{"valid": valid})
}

// Summary is the REST projection of a room for discovery and debugging.
func (m *Manager) Summary(code string) (gin.H, bool) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return gin.H{
		"code":       r.Code,
		"private":    r.Private,
		"players":    r.Players,
		"lastWinner": r.LastWinner,
		"createdAt":  r.CreatedAt,
	}, true
}

func (m *Manager) roomForConn(connID string) (*Room, *Player, bool) {
	for _, r := range m.store.Rooms() {
		r.mu.Lock()
		p := r.playerByConn(connID)
		r.mu.Unlock()
		if p != nil {
			return r, p, true
		}
	}
	return nil, nil, false
}

// republishLobby keeps the directory invariant: listed iff exactly one
// player and not private. Every change rebroadcasts the full snapshot to all
// connected clients. Callers hold the room lock.
func (m *Manager) republishLobby(r *Room) {
	if len(r.Players) == 1 && !r.Private {
		m.dir.Put(lobby.Entry{
			RoomCode:  r.Code,
			HostName:  r.Players[0].Name,
			HostColor: r.Players[0].Color,
		})
	} else {
		m.dir.Remove(r.Code)
	}
	m.hub.BroadcastAll("lobbySnapshot", gin.H{"rooms": m.dir.Snapshot()})
}

// syncScores mirrors the players' cumulative scores into the fresh state so
// clients render them from a single snapshot.
func (m *Manager) syncScores(r *Room) {
	for _, p := range r.Players {
		r.State.Scores[p.Role] = p.Score
	}
}

// The loser of the previous game starts the next one; the host starts when
// there is no previous game.
func startingRole(lastWinner game.Role) game.Role {
	if lastWinner == game.RoleNone {
		return game.RoleHost
	}
	return lastWinner.Other()
}

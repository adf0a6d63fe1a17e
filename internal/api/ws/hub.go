package ws

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"kingkung/internal/game"
	"kingkung/internal/room"
)

// Hub owns the websocket connections. Each connection gets an ephemeral uuid
// which is the only identity the rest of the server ever sees; room
// membership is mirrored here so broadcasts can be addressed by room code.
type Hub struct {
	mu      sync.Mutex
	conns   map[string]*websocket.Conn
	rooms   map[string]map[string]struct{}
	session Session
}

func NewHub(session Session) *Hub {
	return &Hub{
		conns:   make(map[string]*websocket.Conn),
		rooms:   make(map[string]map[string]struct{}),
		session: session,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade connection: %v", err)
		return
	}

	connID := uuid.NewString()
	h.mu.Lock()
	h.conns[connID] = conn
	h.mu.Unlock()
	log.Printf("connection %s established", connID)

	defer func() {
		h.session.Disconnect(connID)
		h.mu.Lock()
		delete(h.conns, connID)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg frame
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("connection %s closed: %v", connID, err)
			return
		}
		h.dispatch(connID, msg)
	}
}

func (h *Hub) dispatch(connID string, msg frame) {
	var err error
	switch msg.Event {
	case "join":
		var p struct {
			RoomCode  string `json:"roomCode"`
			Name      string `json:"name"`
			Color     string `json:"color"`
			IsPrivate bool   `json:"isPrivate"`
		}
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = h.session.Join(connID, p.RoomCode, p.Name, p.Color, p.IsPrivate)
		}
	case "selectTile":
		var p struct {
			Row int `json:"row"`
			Col int `json:"col"`
		}
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = h.session.SelectTile(connID, game.Cell{Row: p.Row, Col: p.Col})
		}
	case "deselectTile":
		err = h.session.Deselect(connID)
	case "attemptMove":
		var p struct {
			SourceRow int  `json:"sourceRow"`
			SourceCol int  `json:"sourceCol"`
			TargetRow int  `json:"targetRow"`
			TargetCol int  `json:"targetCol"`
			IsSwap    bool `json:"isSwap"`
		}
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = h.session.AttemptMove(connID,
				game.Cell{Row: p.SourceRow, Col: p.SourceCol},
				game.Cell{Row: p.TargetRow, Col: p.TargetCol},
				p.IsSwap)
		}
	case "voteRematch":
		err = h.session.VoteRematch(connID)
	case "requestState":
		err = h.session.RequestState(connID)
	case "requestLobby":
		h.session.RequestLobby(connID)
	case "validateColor":
		var p struct {
			RoomCode string  `json:"roomCode"`
			Hue      float64 `json:"hue"`
		}
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			h.session.ValidateColor(connID, p.RoomCode, p.Hue)
		}
	default:
		log.Printf("connection %s: unknown event %q", connID, msg.Event)
	}

	// Turn violations are dropped without a reply; everything else the
	// manager already answered, so the log is all that is left to do.
	if err != nil && !errors.Is(err, room.ErrNotYourTurn) {
		log.Printf("connection %s: %s rejected: %v", connID, msg.Event, err)
	}
}

// JoinRoom adds the connection to the room's broadcast group.
func (h *Hub) JoinRoom(roomCode, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[string]struct{})
	}
	h.rooms[roomCode][connID] = struct{}{}
}

func (h *Hub) LeaveRoom(roomCode, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members, ok := h.rooms[roomCode]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, roomCode)
		}
	}
}

// Broadcast sends the event to every connection in the room.
func (h *Hub) Broadcast(roomCode, event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for connID := range h.rooms[roomCode] {
		h.write(connID, event, data)
	}
}

// SendTo addresses a single connection.
func (h *Hub) SendTo(connID, event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.write(connID, event, data)
}

// BroadcastAll sends to every connected client, room member or not. Used for
// lobby snapshots.
func (h *Hub) BroadcastAll(event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for connID := range h.conns {
		h.write(connID, event, data)
	}
}

// write assumes h.mu is held; it serializes all writers on a connection.
func (h *Hub) write(connID, event string, data interface{}) {
	conn, ok := h.conns[connID]
	if !ok {
		return
	}
	message := map[string]interface{}{
		"event": event,
		"data":  data,
	}
	if err := conn.WriteJSON(message); err != nil {
		log.Printf("failed to send %s to %s: %v", event, connID, err)
		conn.Close()
		delete(h.conns, connID)
	}
}

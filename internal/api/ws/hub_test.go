package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingkung/internal/game"
)

type call struct {
	method string
	args   []interface{}
}

type fakeSession struct {
	calls []call
}

func (f *fakeSession) Join(connID, roomCode, name, color string, private bool) error {
	f.calls = append(f.calls, call{"Join", []interface{}{connID, roomCode, name, color, private}})
	return nil
}

func (f *fakeSession) SelectTile(connID string, cell game.Cell) error {
	f.calls = append(f.calls, call{"SelectTile", []interface{}{connID, cell}})
	return nil
}

func (f *fakeSession) Deselect(connID string) error {
	f.calls = append(f.calls, call{"Deselect", []interface{}{connID}})
	return nil
}

func (f *fakeSession) AttemptMove(connID string, src, tgt game.Cell, isSwap bool) error {
	f.calls = append(f.calls, call{"AttemptMove", []interface{}{connID, src, tgt, isSwap}})
	return nil
}

func (f *fakeSession) VoteRematch(connID string) error {
	f.calls = append(f.calls, call{"VoteRematch", []interface{}{connID}})
	return nil
}

func (f *fakeSession) RequestState(connID string) error {
	f.calls = append(f.calls, call{"RequestState", []interface{}{connID}})
	return nil
}

func (f *fakeSession) RequestLobby(connID string) {
	f.calls = append(f.calls, call{"RequestLobby", []interface{}{connID}})
}

func (f *fakeSession) ValidateColor(connID, roomCode string, hue float64) {
	f.calls = append(f.calls, call{"ValidateColor", []interface{}{connID, roomCode, hue}})
}

func (f *fakeSession) Disconnect(connID string) {
	f.calls = append(f.calls, call{"Disconnect", []interface{}{connID}})
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name  string
		event string
		data  string
		want  call
	}{
		{
			name:  "join",
			event: "join",
			data:  `{"roomCode":"R1","name":"alice","color":"#ff0000","isPrivate":true}`,
			want:  call{"Join", []interface{}{"c1", "R1", "alice", "#ff0000", true}},
		},
		{
			name:  "selectTile",
			event: "selectTile",
			data:  `{"row":2,"col":3}`,
			want:  call{"SelectTile", []interface{}{"c1", game.Cell{Row: 2, Col: 3}}},
		},
		{
			name:  "deselectTile",
			event: "deselectTile",
			data:  `{}`,
			want:  call{"Deselect", []interface{}{"c1"}},
		},
		{
			name:  "attemptMove",
			event: "attemptMove",
			data:  `{"sourceRow":0,"sourceCol":0,"targetRow":0,"targetCol":1,"isSwap":false}`,
			want: call{"AttemptMove", []interface{}{
				"c1", game.Cell{Row: 0, Col: 0}, game.Cell{Row: 0, Col: 1}, false,
			}},
		},
		{
			name:  "voteRematch",
			event: "voteRematch",
			data:  `{}`,
			want:  call{"VoteRematch", []interface{}{"c1"}},
		},
		{
			name:  "requestState",
			event: "requestState",
			data:  `{}`,
			want:  call{"RequestState", []interface{}{"c1"}},
		},
		{
			name:  "requestLobby",
			event: "requestLobby",
			data:  `{}`,
			want:  call{"RequestLobby", []interface{}{"c1"}},
		},
		{
			name:  "validateColor",
			event: "validateColor",
			data:  `{"roomCode":"R1","hue":120}`,
			want:  call{"ValidateColor", []interface{}{"c1", "R1", 120.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeSession{}
			h := NewHub(session)
			h.dispatch("c1", frame{Event: tt.event, Data: json.RawMessage(tt.data)})
			require.Len(t, session.calls, 1)
			assert.Equal(t, tt.want, session.calls[0])
		})
	}
}

func TestDispatchIgnoresUnknownAndMalformed(t *testing.T) {
	session := &fakeSession{}
	h := NewHub(session)

	h.dispatch("c1", frame{Event: "teleport", Data: json.RawMessage(`{}`)})
	h.dispatch("c1", frame{Event: "selectTile", Data: json.RawMessage(`"not an object"`)})

	assert.Empty(t, session.calls, "nothing reaches the session")
}

func TestRoomMembership(t *testing.T) {
	h := NewHub(&fakeSession{})

	h.JoinRoom("R1", "c1")
	h.JoinRoom("R1", "c2")
	assert.Len(t, h.rooms["R1"], 2)

	h.LeaveRoom("R1", "c1")
	assert.Len(t, h.rooms["R1"], 1)

	h.LeaveRoom("R1", "c2")
	_, ok := h.rooms["R1"]
	assert.False(t, ok, "empty membership set is dropped")
}

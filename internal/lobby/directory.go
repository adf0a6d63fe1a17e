// Package lobby tracks the public rooms still waiting for a second player.
package lobby

import (
	"sort"
	"sync"
)

// Entry is the discovery projection of an open room.
type Entry struct {
	RoomCode  string `json:"roomCode"`
	HostName  string `json:"hostName"`
	HostColor string `json:"hostColor"`
}

type Directory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewDirectory() *Directory {
	return &Directory{entries: map[string]Entry{}}
}

func (d *Directory) Put(e Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[e.RoomCode] = e
}

func (d *Directory) Remove(roomCode string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.entries, roomCode)
}

// Snapshot returns the current directory sorted by room code, so every
// rebroadcast is stable for clients.
func (d *Directory) Snapshot() []Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomCode < out[j].RoomCode })
	return out
}

package main

import (
	"log"

	httpapi "kingkung/internal/api/http"
	"kingkung/internal/api/ws"
	"kingkung/internal/config"
	"kingkung/internal/lobby"
	"kingkung/internal/room"
	"kingkung/internal/store"
)

func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	dir := lobby.NewDirectory()
	rm := room.NewManager(mem, cfg, dir)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)

	r := httpapi.NewRouter(hub, rm, dir)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

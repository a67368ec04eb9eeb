package world

import (
	"fmt"
	"sort"
)

// World is the live room graph for one game session. Rooms are built once
// from a Definition and persist for the process lifetime; only their mutable
// fields (items, visited, spawned) change during play.
type World struct {
	Name  string
	Start string

	rooms map[string]*Room
}

// New validates the definition and builds a fresh world from it. Each call
// produces independent room copies, so a second New with the same definition
// yields the construction-time state.
func New(def *Definition) (*World, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world definition: %w", err)
	}

	w := &World{
		Name:  def.Name,
		Start: def.Start,
		rooms: make(map[string]*Room, len(def.Rooms)),
	}
	for _, rd := range def.Rooms {
		room := &Room{
			ID:          rd.ID,
			Name:        rd.Name,
			Description: rd.Description,
			Items:       append([]Item(nil), rd.Items...),
			Exits:       make(map[Direction]string, len(rd.Exits)),
		}
		for dir, target := range rd.Exits {
			d, _ := ParseDirection(dir)
			room.Exits[d] = target
		}
		if rd.NPC != nil {
			npc := *rd.NPC
			npc.Choices = append([]Choice(nil), rd.NPC.Choices...)
			room.NPC = &npc
		}
		w.rooms[rd.ID] = room
	}
	return w, nil
}

// Room returns the room with the given ID.
func (w *World) Room(id string) (*Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// RoomIDs returns all room IDs in a stable order.
func (w *World) RoomIDs() []string {
	ids := make([]string, 0, len(w.rooms))
	for id := range w.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Move resolves the exit from the given room. It returns ErrNoExit when the
// room defines no exit in that direction; otherwise it marks the target room
// visited (idempotent) and returns it.
func (w *World) Move(from *Room, dir Direction) (*Room, error) {
	targetID, ok := from.Exits[dir]
	if !ok {
		return nil, ErrNoExit
	}
	target, ok := w.rooms[targetID]
	if !ok {
		// Definitions are validated at build time, so this indicates a bug.
		return nil, fmt.Errorf("exit %q from %q leads to unknown room %q", dir, from.ID, targetID)
	}
	target.Visited = true
	return target, nil
}

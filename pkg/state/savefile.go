package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emberwood-game/emberwood/pkg/world"
)

// SaveFile is the wholesale serialized snapshot of a session. It is written
// in full on save and fully replaces in-memory state on a successful load.
type SaveFile struct {
	ID            uuid.UUID            `json:"id"`
	PlayerName    string               `json:"player_name"`
	CurrentRoomID string               `json:"current_room_id"`
	Inventory     []world.Item         `json:"inventory"`
	Rooms         map[string]RoomState `json:"rooms"`
	ChoiceHistory map[string]string    `json:"choice_history,omitempty"`
	SavedAt       time.Time            `json:"saved_at"`
}

// RoomState is the mutable per-room state carried by a save file.
type RoomState struct {
	Visited bool         `json:"visited"`
	Spawned bool         `json:"spawned,omitempty"`
	Items   []world.Item `json:"items"`
}

// SaveFile captures the current session as a serializable snapshot.
func (gs *GameState) SaveFile() *SaveFile {
	sf := &SaveFile{
		ID:            gs.ID,
		PlayerName:    gs.Player.Name,
		CurrentRoomID: gs.Player.RoomID,
		Inventory:     append([]world.Item(nil), gs.Player.Inventory...),
		Rooms:         make(map[string]RoomState),
		ChoiceHistory: make(map[string]string, len(gs.ChoiceHistory)),
		SavedAt:       time.Now(),
	}
	for _, id := range gs.world.RoomIDs() {
		room, _ := gs.world.Room(id)
		sf.Rooms[id] = RoomState{
			Visited: room.Visited,
			Spawned: room.Spawned,
			Items:   append([]world.Item(nil), room.Items...),
		}
	}
	for k, v := range gs.ChoiceHistory {
		sf.ChoiceHistory[k] = v
	}
	return sf
}

// Restore replaces the session state wholesale from a save file. The save is
// validated against the world definition first: an unknown current room or an
// unknown room key fails the load and leaves the in-memory state untouched.
// Rooms not mentioned in the save keep their construction-time state.
func (gs *GameState) Restore(sf *SaveFile) error {
	if sf.PlayerName == "" {
		return fmt.Errorf("save file has no player name")
	}

	// Build the replacement world before touching anything, so a bad save
	// cannot leave the session half-restored.
	w, err := world.New(gs.def)
	if err != nil {
		return err
	}
	if _, ok := w.Room(sf.CurrentRoomID); !ok {
		return fmt.Errorf("save file references unknown room %q", sf.CurrentRoomID)
	}
	for id := range sf.Rooms {
		if _, ok := w.Room(id); !ok {
			return fmt.Errorf("save file references unknown room %q", id)
		}
	}
	for id := range sf.ChoiceHistory {
		if _, ok := w.Room(id); !ok {
			return fmt.Errorf("save file records a choice for unknown room %q", id)
		}
	}

	for id, rs := range sf.Rooms {
		room, _ := w.Room(id)
		room.Visited = rs.Visited
		room.Spawned = rs.Spawned
		room.Items = append([]world.Item(nil), rs.Items...)
	}

	if sf.ID != uuid.Nil {
		gs.ID = sf.ID
	}
	gs.world = w
	gs.Player = Player{
		Name:      sf.PlayerName,
		RoomID:    sf.CurrentRoomID,
		Inventory: append([]world.Item(nil), sf.Inventory...),
	}
	gs.ChoiceHistory = make(map[string]string, len(sf.ChoiceHistory))
	for k, v := range sf.ChoiceHistory {
		gs.ChoiceHistory[k] = v
	}
	gs.Phase = PhasePlaying
	gs.dialogueRoom = ""
	gs.dialogueCursor = 0
	gs.notice = ""
	return nil
}

package state

import "github.com/emberwood-game/emberwood/pkg/world"

// Snapshot is the read-only view of current state exposed to the presentation
// layer. Slices are copies; mutating a snapshot never touches live state.
type Snapshot struct {
	Phase    Phase
	Player   PlayerView
	Room     *RoomView
	Dialogue *DialogueView
	Notice   string
}

// PlayerView is the player portion of a snapshot.
type PlayerView struct {
	Name      string
	RoomID    string
	Inventory []world.Item
}

// RoomView is the current-room portion of a snapshot.
type RoomView struct {
	ID          string
	Name        string
	Description string
	Items       []world.Item
	NPCName     string
	NPCText     string
	Exits       map[world.Direction]string
	Visited     bool
}

// DialogueView is present only while in the Dialogue phase.
type DialogueView struct {
	NPCName string
	Text    string
	Options []world.Choice
	Cursor  int
}

// Snapshot captures the current state for rendering.
func (gs *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: gs.Phase,
		Player: PlayerView{
			Name:      gs.Player.Name,
			RoomID:    gs.Player.RoomID,
			Inventory: append([]world.Item(nil), gs.Player.Inventory...),
		},
		Notice: gs.notice,
	}

	if room := gs.CurrentRoom(); room != nil {
		rv := &RoomView{
			ID:          room.ID,
			Name:        room.Name,
			Description: room.Description,
			Items:       append([]world.Item(nil), room.Items...),
			Exits:       make(map[world.Direction]string, len(room.Exits)),
			Visited:     room.Visited,
		}
		for dir, target := range room.Exits {
			rv.Exits[dir] = target
		}
		if room.NPC != nil {
			rv.NPCName = room.NPC.Name
			rv.NPCText = room.NPC.Text
		}
		snap.Room = rv
	}

	if gs.Phase == PhaseDialogue {
		if room, ok := gs.world.Room(gs.dialogueRoom); ok && room.NPC != nil {
			snap.Dialogue = &DialogueView{
				NPCName: room.NPC.Name,
				Text:    room.NPC.Text,
				Options: append([]world.Choice(nil), room.NPC.Choices...),
				Cursor:  gs.dialogueCursor,
			}
		}
	}

	return snap
}

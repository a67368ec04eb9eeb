package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/emberwood-game/emberwood/pkg/world"
)

// ErrEmptyName is returned when name entry is confirmed with a blank name.
var ErrEmptyName = errors.New("player name cannot be empty")

// GameState is the single owner of all live game state for a session. The
// presentation layer mutates it only through Apply and reads it only through
// Snapshot. Save and load go through SaveFile and Restore so that GameState
// itself performs no IO.
type GameState struct {
	ID     uuid.UUID
	Phase  Phase
	Player Player

	def     *world.Definition
	world   *world.World
	spawner *world.Spawner

	// ChoiceHistory records the last confirmed dialogue choice per room.
	ChoiceHistory map[string]string

	dialogueRoom   string
	dialogueCursor int

	notice string
}

// New builds a fresh session in the name-entry phase. The definition is
// retained so that Restore can rebuild construction-time room state.
func New(def *world.Definition, spawner *world.Spawner) (*GameState, error) {
	w, err := world.New(def)
	if err != nil {
		return nil, err
	}
	return &GameState{
		ID:            uuid.New(),
		Phase:         PhaseNameEntry,
		def:           def,
		world:         w,
		spawner:       spawner,
		ChoiceHistory: make(map[string]string),
	}, nil
}

// CurrentRoom returns the room the player is in. Before name entry completes
// there is no current room.
func (gs *GameState) CurrentRoom() *world.Room {
	if gs.Player.RoomID == "" {
		return nil
	}
	r, _ := gs.world.Room(gs.Player.RoomID)
	return r
}

// Apply processes one input event against the current phase. Recoverable
// gameplay errors (no exit, item not found) are returned for the presentation
// layer to surface; state is unchanged in those cases. Events that do not
// apply to the current phase are ignored.
func (gs *GameState) Apply(ev Event) error {
	gs.notice = ""

	switch gs.Phase {
	case PhaseNameEntry:
		return gs.applyNameEntry(ev)
	case PhasePlaying:
		return gs.applyPlaying(ev)
	case PhaseDialogue:
		return gs.applyDialogue(ev)
	case PhaseInventoryView:
		return gs.applyInventoryView(ev)
	default:
		return fmt.Errorf("unknown phase %q", gs.Phase)
	}
}

func (gs *GameState) applyNameEntry(ev Event) error {
	e, ok := ev.(SubmitNameEvent)
	if !ok {
		return nil
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return ErrEmptyName
	}

	gs.Player = Player{
		Name:      name,
		RoomID:    gs.world.Start,
		Inventory: make([]world.Item, 0),
	}
	start, _ := gs.world.Room(gs.world.Start)
	start.Visited = true
	gs.enterRoom(start)
	gs.Phase = PhasePlaying
	return nil
}

func (gs *GameState) applyPlaying(ev Event) error {
	switch e := ev.(type) {
	case MoveEvent:
		target, err := gs.world.Move(gs.CurrentRoom(), e.Direction)
		if err != nil {
			return err
		}
		gs.Player.RoomID = target.ID
		gs.enterRoom(target)
		return nil

	case TakeEvent:
		return gs.Pickup(e.ItemName)

	case InteractEvent:
		room := gs.CurrentRoom()
		if !room.HasNPC() {
			gs.notice = "There is nobody here to talk to."
			return nil
		}
		gs.Phase = PhaseDialogue
		gs.dialogueRoom = room.ID
		gs.dialogueCursor = 0
		return nil

	case ToggleInventoryEvent:
		gs.Phase = PhaseInventoryView
		return nil
	}
	return nil
}

func (gs *GameState) applyDialogue(ev Event) error {
	room, _ := gs.world.Room(gs.dialogueRoom)

	switch ev.(type) {
	case SelectUpEvent:
		if gs.dialogueCursor > 0 {
			gs.dialogueCursor--
		}
		return nil

	case SelectDownEvent:
		if gs.dialogueCursor < len(room.NPC.Choices)-1 {
			gs.dialogueCursor++
		}
		return nil

	case ConfirmEvent:
		if len(room.NPC.Choices) == 0 {
			gs.Phase = PhasePlaying
			return nil
		}
		choice := room.NPC.Choices[gs.dialogueCursor]
		gs.ChoiceHistory[room.ID] = choice.ID
		if choice.GiveItem != nil {
			gs.Player.Inventory = append(gs.Player.Inventory, *choice.GiveItem)
		}
		if choice.Reply != "" {
			gs.notice = choice.Reply
		}
		gs.Phase = PhasePlaying
		return nil

	case CancelEvent:
		gs.Phase = PhasePlaying
		return nil
	}
	return nil
}

func (gs *GameState) applyInventoryView(ev Event) error {
	switch ev.(type) {
	case ToggleInventoryEvent, CancelEvent:
		gs.Phase = PhasePlaying
	}
	return nil
}

// Pickup moves exactly one item with the given name from the current room to
// the player's inventory, preserving insertion order. Returns
// world.ErrItemNotFound (room and inventory untouched) when absent.
func (gs *GameState) Pickup(name string) error {
	room := gs.CurrentRoom()
	item, err := room.TakeItem(name)
	if err != nil {
		return err
	}
	gs.Player.Inventory = append(gs.Player.Inventory, item)
	return nil
}

// enterRoom runs the per-entry spawn roll and records the result as a notice.
func (gs *GameState) enterRoom(room *world.Room) {
	if gs.spawner == nil {
		return
	}
	if item := gs.spawner.MaybeSpawn(room); item != nil {
		gs.notice = fmt.Sprintf("Something glints nearby: a %s.", item.Name)
	}
}

package state

import "github.com/emberwood-game/emberwood/pkg/world"

// Event is one unit of player input. The presentation layer translates key
// presses into events; GameState.Apply interprets them per phase. Events that
// do not apply to the current phase are ignored without error.
type Event interface {
	isEvent()
}

// SubmitNameEvent confirms the entered player name during name entry.
type SubmitNameEvent struct {
	Name string
}

// MoveEvent requests movement through an exit of the current room.
type MoveEvent struct {
	Direction world.Direction
}

// TakeEvent picks up one named item from the current room.
type TakeEvent struct {
	ItemName string
}

// InteractEvent opens dialogue with the current room's NPC, if any.
type InteractEvent struct{}

// ToggleInventoryEvent opens or closes the inventory overlay.
type ToggleInventoryEvent struct{}

// ConfirmEvent confirms the highlighted dialogue choice.
type ConfirmEvent struct{}

// CancelEvent dismisses the current modal phase.
type CancelEvent struct{}

// SelectUpEvent moves the dialogue cursor up.
type SelectUpEvent struct{}

// SelectDownEvent moves the dialogue cursor down.
type SelectDownEvent struct{}

func (SubmitNameEvent) isEvent()      {}
func (MoveEvent) isEvent()            {}
func (TakeEvent) isEvent()            {}
func (InteractEvent) isEvent()        {}
func (ToggleInventoryEvent) isEvent() {}
func (ConfirmEvent) isEvent()         {}
func (CancelEvent) isEvent()          {}
func (SelectUpEvent) isEvent()        {}
func (SelectDownEvent) isEvent()      {}

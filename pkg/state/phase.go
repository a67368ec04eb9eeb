package state

// Phase is the top-level mode of a session. Transitions happen only inside
// GameState.Apply.
type Phase string

const (
	// PhaseNameEntry is the initial phase; only SubmitNameEvent advances it.
	PhaseNameEntry Phase = "name_entry"
	// PhasePlaying is the main exploration phase.
	PhasePlaying Phase = "playing"
	// PhaseDialogue is a modal conversation with the current room's NPC.
	PhaseDialogue Phase = "dialogue"
	// PhaseInventoryView is the modal inventory overlay.
	PhaseInventoryView Phase = "inventory_view"
)

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberwood-game/emberwood/pkg/world"
)

func testDefinition() *world.Definition {
	return &world.Definition{
		Name:  "Testwood",
		Start: "professors_lab",
		Rooms: []world.RoomDef{
			{
				ID:          "professors_lab",
				Name:        "Professor's Lab",
				Description: "A cluttered lab.",
				Items:       []world.Item{{Name: "old notebook", Description: "Field notes."}},
				Exits:       map[string]string{"north": "forest", "east": "village"},
				NPC: &world.NPC{
					Name: "Professor Alder",
					Text: "What can I do for you?",
					Choices: []world.Choice{
						{ID: "ask_woods", Label: "Ask about the forest", Reply: "Mind the cave."},
						{ID: "ask_supplies", Label: "Ask for supplies", Reply: "Take this.",
							GiveItem: &world.Item{Name: "potion", Description: "Red liquid."}},
						{ID: "say_nothing", Label: "Say nothing"},
					},
				},
			},
			{
				ID:          "forest",
				Name:        "Mysterious Forest",
				Description: "Tall pines.",
				Items:       []world.Item{{Name: "berry", Description: "A blue berry."}},
				Exits:       map[string]string{"south": "professors_lab"},
			},
			{
				ID:          "village",
				Name:        "Peaceful Village",
				Description: "Tidy cottages.",
				Exits:       map[string]string{"west": "professors_lab"},
			},
		},
	}
}

// newPlaying builds a session already past name entry, with no spawner so
// room contents stay deterministic.
func newPlaying(t *testing.T) *GameState {
	t.Helper()
	gs, err := New(testDefinition(), nil)
	require.NoError(t, err)
	require.NoError(t, gs.Apply(SubmitNameEvent{Name: "Rowan"}))
	return gs
}

func TestGameState_NameEntry(t *testing.T) {
	gs, err := New(testDefinition(), nil)
	require.NoError(t, err)
	assert.Equal(t, PhaseNameEntry, gs.Phase)
	assert.Nil(t, gs.CurrentRoom(), "no current room before name entry")

	// Non-name events are ignored in name entry.
	require.NoError(t, gs.Apply(MoveEvent{Direction: world.North}))
	assert.Equal(t, PhaseNameEntry, gs.Phase)

	err = gs.Apply(SubmitNameEvent{Name: "   "})
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, PhaseNameEntry, gs.Phase, "blank name keeps the session in name entry")

	require.NoError(t, gs.Apply(SubmitNameEvent{Name: "  Rowan  "}))
	assert.Equal(t, PhasePlaying, gs.Phase)
	assert.Equal(t, "Rowan", gs.Player.Name, "name should be trimmed")
	assert.Equal(t, "professors_lab", gs.Player.RoomID)
	assert.True(t, gs.CurrentRoom().Visited, "start room begins visited")
	assert.Empty(t, gs.Player.Inventory)
}

func TestGameState_Move(t *testing.T) {
	gs := newPlaying(t)

	require.NoError(t, gs.Apply(MoveEvent{Direction: world.North}))
	assert.Equal(t, "forest", gs.Player.RoomID)
	assert.True(t, gs.CurrentRoom().Visited, "entered room becomes visited")

	err := gs.Apply(MoveEvent{Direction: world.East})
	assert.ErrorIs(t, err, world.ErrNoExit)
	assert.Equal(t, "forest", gs.Player.RoomID, "failed move leaves the player in place")
	assert.Equal(t, PhasePlaying, gs.Phase)
}

func TestGameState_Pickup(t *testing.T) {
	gs := newPlaying(t)
	room := gs.CurrentRoom()
	itemsBefore := len(room.Items)
	invBefore := len(gs.Player.Inventory)

	require.NoError(t, gs.Apply(TakeEvent{ItemName: "old notebook"}))
	assert.Len(t, room.Items, itemsBefore-1)
	assert.Len(t, gs.Player.Inventory, invBefore+1)
	assert.Equal(t, "old notebook", gs.Player.Inventory[len(gs.Player.Inventory)-1].Name,
		"picked item appends at the end")
	assert.True(t, gs.Player.HasItem("old notebook"))

	err := gs.Apply(TakeEvent{ItemName: "lantern"})
	assert.ErrorIs(t, err, world.ErrItemNotFound)
	assert.Len(t, room.Items, itemsBefore-1, "failed pickup leaves the room unchanged")
	assert.Len(t, gs.Player.Inventory, invBefore+1, "failed pickup leaves the inventory unchanged")
}

func TestGameState_InventoryToggle(t *testing.T) {
	gs := newPlaying(t)

	require.NoError(t, gs.Apply(ToggleInventoryEvent{}))
	assert.Equal(t, PhaseInventoryView, gs.Phase)

	// Gameplay events are ignored while the inventory is open.
	require.NoError(t, gs.Apply(MoveEvent{Direction: world.North}))
	assert.Equal(t, "professors_lab", gs.Player.RoomID)

	require.NoError(t, gs.Apply(ToggleInventoryEvent{}))
	assert.Equal(t, PhasePlaying, gs.Phase)

	require.NoError(t, gs.Apply(ToggleInventoryEvent{}))
	require.NoError(t, gs.Apply(CancelEvent{}))
	assert.Equal(t, PhasePlaying, gs.Phase, "cancel also closes the inventory")
}

func TestGameState_Dialogue(t *testing.T) {
	gs := newPlaying(t)

	require.NoError(t, gs.Apply(InteractEvent{}))
	require.Equal(t, PhaseDialogue, gs.Phase)

	snap := gs.Snapshot()
	require.NotNil(t, snap.Dialogue)
	assert.Equal(t, "Professor Alder", snap.Dialogue.NPCName)
	assert.Len(t, snap.Dialogue.Options, 3)
	assert.Equal(t, 0, snap.Dialogue.Cursor)

	// Cursor clamps at both ends.
	require.NoError(t, gs.Apply(SelectUpEvent{}))
	assert.Equal(t, 0, gs.Snapshot().Dialogue.Cursor)
	for i := 0; i < 5; i++ {
		require.NoError(t, gs.Apply(SelectDownEvent{}))
	}
	assert.Equal(t, 2, gs.Snapshot().Dialogue.Cursor)

	require.NoError(t, gs.Apply(SelectUpEvent{}))
	require.NoError(t, gs.Apply(ConfirmEvent{}))
	assert.Equal(t, PhasePlaying, gs.Phase)
	assert.Equal(t, "ask_supplies", gs.ChoiceHistory["professors_lab"])
	assert.True(t, gs.Player.HasItem("potion"), "confirmed choice grants its item")
	assert.Equal(t, "Take this.", gs.Snapshot().Notice)
}

func TestGameState_DialogueCancel(t *testing.T) {
	gs := newPlaying(t)
	invBefore := len(gs.Player.Inventory)

	require.NoError(t, gs.Apply(InteractEvent{}))
	require.NoError(t, gs.Apply(SelectDownEvent{}))
	require.NoError(t, gs.Apply(CancelEvent{}))

	assert.Equal(t, PhasePlaying, gs.Phase)
	assert.Empty(t, gs.ChoiceHistory, "cancel records no choice")
	assert.Len(t, gs.Player.Inventory, invBefore, "cancel grants nothing")
}

func TestGameState_InteractWithoutNPC(t *testing.T) {
	gs := newPlaying(t)
	require.NoError(t, gs.Apply(MoveEvent{Direction: world.North}))

	require.NoError(t, gs.Apply(InteractEvent{}))
	assert.Equal(t, PhasePlaying, gs.Phase, "interact without an NPC stays in playing")
	assert.Equal(t, "There is nobody here to talk to.", gs.Snapshot().Notice)
}

func TestGameState_SpawnNotice(t *testing.T) {
	def := testDefinition()
	spawner := world.NewSpawner(1, 1.0, world.SpawnOnEntry)
	gs, err := New(def, spawner)
	require.NoError(t, err)

	require.NoError(t, gs.Apply(SubmitNameEvent{Name: "Rowan"}))
	snap := gs.Snapshot()
	assert.Contains(t, snap.Notice, "Something glints nearby", "chance 1.0 spawns on the first entry")
	assert.Len(t, snap.Room.Items, 2, "spawned item joins the authored one")
}

func TestGameState_SnapshotIsACopy(t *testing.T) {
	gs := newPlaying(t)
	require.NoError(t, gs.Apply(TakeEvent{ItemName: "old notebook"}))

	snap := gs.Snapshot()
	snap.Player.Inventory[0].Name = "mangled"
	snap.Room.Exits[world.North] = "nowhere"

	assert.Equal(t, "old notebook", gs.Player.Inventory[0].Name)
	assert.Equal(t, "forest", gs.CurrentRoom().Exits[world.North])
}

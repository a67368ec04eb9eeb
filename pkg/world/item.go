package world

// Item is an immutable thing that can sit in a room or in the player's
// inventory. Duplicate names are distinct entries; there is no stacking.
type Item struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

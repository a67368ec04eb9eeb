package world

import "errors"

// Direction is one of the four compass exits a room may define.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists all valid exit directions.
var Directions = []Direction{North, South, East, West}

// ParseDirection returns the Direction for s, or false if s is not one.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case North, South, East, West:
		return Direction(s), true
	}
	return "", false
}

var (
	// ErrNoExit is returned by Move when the room has no exit in the
	// requested direction. The caller's state is unchanged.
	ErrNoExit = errors.New("no exit in that direction")

	// ErrItemNotFound is returned when a named item is not present in a
	// room's item list. The room is unchanged.
	ErrItemNotFound = errors.New("item not found")
)

// Choice is one selectable dialogue option, with its enumerated effect.
// Effects are authored per room; there is no generic effect rule.
type Choice struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Reply    string `json:"reply,omitempty" yaml:"reply,omitempty"`
	GiveItem *Item  `json:"give_item,omitempty" yaml:"give_item,omitempty"`
}

// NPC is the single (optional) character in a room, with its dialogue choices.
type NPC struct {
	Name    string   `json:"name" yaml:"name"`
	Text    string   `json:"text" yaml:"text"`
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Room is a node in the world graph. ID, Name, Description, NPC and Exits are
// fixed at build time; Items, Visited and Spawned mutate during play and are
// restored from the save file.
type Room struct {
	ID          string
	Name        string
	Description string
	Items       []Item
	NPC         *NPC
	Exits       map[Direction]string
	Visited     bool
	Spawned     bool
}

// TakeItem removes exactly one item with the given name from the room and
// returns it. Returns ErrItemNotFound when no item matches; the item list is
// untouched in that case.
func (r *Room) TakeItem(name string) (Item, error) {
	for i, it := range r.Items {
		if it.Name == name {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// HasNPC reports whether the room defines dialogue.
func (r *Room) HasNPC() bool {
	return r.NPC != nil
}

// Choice looks up a dialogue choice by ID.
func (r *Room) Choice(id string) (Choice, bool) {
	if r.NPC == nil {
		return Choice{}, false
	}
	for _, c := range r.NPC.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

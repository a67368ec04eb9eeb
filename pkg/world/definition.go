package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Definition is the authored, serializable form of a world. It is what lives
// in the YAML files under data/worlds and what cmd/validate checks.
type Definition struct {
	Name  string    `yaml:"name" json:"name"`
	Start string    `yaml:"start" json:"start"`
	Rooms []RoomDef `yaml:"rooms" json:"rooms"`
}

// RoomDef is the authored form of a single room.
type RoomDef struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description"`
	Items       []Item            `yaml:"items,omitempty" json:"items,omitempty"`
	NPC         *NPC              `yaml:"npc,omitempty" json:"npc,omitempty"`
	Exits       map[string]string `yaml:"exits,omitempty" json:"exits,omitempty"`
}

// Validate checks the definition for structural problems: duplicate or empty
// room IDs, an unresolvable start room, exits with bad directions or dangling
// targets, and malformed dialogue choices. All problems are reported together.
func (d *Definition) Validate() error {
	el := errors.NewErrorList()

	if d.Name == "" {
		el.Add(fmt.Errorf("world name is required"))
	}
	if len(d.Rooms) == 0 {
		el.Add(fmt.Errorf("world has no rooms"))
	}

	ids := make(map[string]bool, len(d.Rooms))
	for _, r := range d.Rooms {
		if r.ID == "" {
			el.Add(fmt.Errorf("room %q has an empty id", r.Name))
			continue
		}
		if ids[r.ID] {
			el.Add(fmt.Errorf("duplicate room id %q", r.ID))
		}
		ids[r.ID] = true
	}

	if d.Start == "" {
		el.Add(fmt.Errorf("start room is required"))
	} else if !ids[d.Start] {
		el.Add(fmt.Errorf("start room %q does not exist", d.Start))
	}

	for _, r := range d.Rooms {
		for dir, target := range r.Exits {
			if _, ok := ParseDirection(dir); !ok {
				el.Add(fmt.Errorf("room %q: invalid exit direction %q", r.ID, dir))
			}
			if !ids[target] {
				el.Add(fmt.Errorf("room %q: exit %q leads to unknown room %q", r.ID, dir, target))
			}
		}
		el.Add(validateNPC(r))
	}

	return el.Err()
}

func validateNPC(r RoomDef) error {
	if r.NPC == nil {
		return nil
	}
	el := errors.NewErrorList()
	if r.NPC.Text == "" {
		el.Add(fmt.Errorf("room %q: npc %q has no dialogue text", r.ID, r.NPC.Name))
	}
	choiceIDs := make(map[string]bool, len(r.NPC.Choices))
	for _, c := range r.NPC.Choices {
		if c.ID == "" {
			el.Add(fmt.Errorf("room %q: dialogue choice with empty id", r.ID))
			continue
		}
		if choiceIDs[c.ID] {
			el.Add(fmt.Errorf("room %q: duplicate dialogue choice id %q", r.ID, c.ID))
		}
		choiceIDs[c.ID] = true
		if c.Label == "" {
			el.Add(fmt.Errorf("room %q: dialogue choice %q has no label", r.ID, c.ID))
		}
		if c.GiveItem != nil && c.GiveItem.Name == "" {
			el.Add(fmt.Errorf("room %q: dialogue choice %q grants an unnamed item", r.ID, c.ID))
		}
	}
	return el.Err()
}

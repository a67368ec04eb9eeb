package state

import "github.com/emberwood-game/emberwood/pkg/world"

// Player is the player's mutable state. Inventory preserves pickup order.
type Player struct {
	Name      string
	RoomID    string
	Inventory []world.Item
}

// HasItem reports whether the inventory holds an item with the given name.
func (p *Player) HasItem(name string) bool {
	for _, it := range p.Inventory {
		if it.Name == name {
			return true
		}
	}
	return false
}

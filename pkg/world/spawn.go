package world

import "math/rand"

// SpawnMode controls when a room qualifies for a random item draw.
type SpawnMode string

const (
	// SpawnOnEntry rolls on every room entry.
	SpawnOnEntry SpawnMode = "entry"
	// SpawnOnce stops rolling for a room after its first successful spawn.
	SpawnOnce SpawnMode = "once"
)

// DefaultSpawnChance is the probability of an item appearing on a
// qualifying room entry.
const DefaultSpawnChance = 0.30

// SpawnPool is the fixed set of item templates eligible for random placement.
var SpawnPool = []Item{
	{Name: "potion", Description: "A stoppered vial of red liquid. Smells faintly of cherries."},
	{Name: "key", Description: "A small brass key. No telling what it opens."},
	{Name: "coin", Description: "A worn gold coin stamped with an unfamiliar crest."},
	{Name: "berry", Description: "A plump blue berry, still warm from the sun."},
	{Name: "map fragment", Description: "A torn corner of parchment with half a trail inked on it."},
}

// Spawner performs the random item draw on room entry. It is not safe for
// concurrent use; the game loop is single-threaded.
type Spawner struct {
	rng    *rand.Rand
	chance float64
	mode   SpawnMode
}

// NewSpawner builds a spawner with the given seed, spawn probability and mode.
func NewSpawner(seed int64, chance float64, mode SpawnMode) *Spawner {
	if chance <= 0 {
		chance = DefaultSpawnChance
	}
	if mode == "" {
		mode = SpawnOnEntry
	}
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		chance: chance,
		mode:   mode,
	}
}

// MaybeSpawn draws a uniform [0,1) value and, on success, appends one item
// chosen uniformly from SpawnPool to the room and returns it. Returns nil
// when nothing spawned. Rooms may accumulate duplicate spawned items over
// repeated visits; there is no duplicate prevention.
func (s *Spawner) MaybeSpawn(r *Room) *Item {
	if s.mode == SpawnOnce && r.Spawned {
		return nil
	}
	if s.rng.Float64() >= s.chance {
		return nil
	}
	item := SpawnPool[s.rng.Intn(len(SpawnPool))]
	r.Items = append(r.Items, item)
	r.Spawned = true
	return &item
}

package world

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	def := validDefinition()
	w, err := New(def)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.Name != "Testwood" || w.Start != "lab" {
		t.Errorf("New() name/start = %q/%q", w.Name, w.Start)
	}
	if got := w.RoomIDs(); !reflect.DeepEqual(got, []string{"forest", "lab"}) {
		t.Errorf("RoomIDs() = %v", got)
	}

	lab, ok := w.Room("lab")
	if !ok {
		t.Fatal("Room(lab) not found")
	}
	if lab.Visited {
		t.Error("rooms should start unvisited")
	}
	if lab.Exits[North] != "forest" {
		t.Errorf("lab north exit = %q", lab.Exits[North])
	}

	// Mutating a built world must not leak into later builds.
	lab.Items = nil
	lab.Visited = true
	w2, err := New(def)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	lab2, _ := w2.Room("lab")
	if len(lab2.Items) != 1 || lab2.Visited {
		t.Errorf("second build inherited mutations: items=%d visited=%v", len(lab2.Items), lab2.Visited)
	}
}

func TestNew_InvalidDefinition(t *testing.T) {
	def := validDefinition()
	def.Rooms[0].Exits["east"] = "attic"
	if _, err := New(def); err == nil {
		t.Fatal("New() with a dangling exit should fail")
	}
}

func TestWorld_Move(t *testing.T) {
	w, err := New(validDefinition())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	lab, _ := w.Room("lab")

	forest, err := w.Move(lab, North)
	if err != nil {
		t.Fatalf("Move(north) error = %v", err)
	}
	if forest.ID != "forest" {
		t.Errorf("Move(north) landed in %q", forest.ID)
	}
	if !forest.Visited {
		t.Error("moving into a room should mark it visited")
	}

	// Visited marking is idempotent across re-entry.
	back, err := w.Move(forest, South)
	if err != nil {
		t.Fatalf("Move(south) error = %v", err)
	}
	again, err := w.Move(back, North)
	if err != nil {
		t.Fatalf("re-entering error = %v", err)
	}
	if !again.Visited {
		t.Error("room should stay visited on re-entry")
	}

	if _, err := w.Move(lab, West); !errors.Is(err, ErrNoExit) {
		t.Errorf("Move(west) error = %v, want ErrNoExit", err)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(string(d))
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %q, %v", d, got, ok)
		}
	}
	for _, bad := range []string{"up", "North", "", "northeast"} {
		if _, ok := ParseDirection(bad); ok {
			t.Errorf("ParseDirection(%q) should fail", bad)
		}
	}
}

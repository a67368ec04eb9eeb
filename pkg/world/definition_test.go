package world

import (
	"strings"
	"testing"
)

func validDefinition() *Definition {
	return &Definition{
		Name:  "Testwood",
		Start: "lab",
		Rooms: []RoomDef{
			{
				ID:          "lab",
				Name:        "Lab",
				Description: "A cluttered lab.",
				Items:       []Item{{Name: "old notebook", Description: "Field notes."}},
				Exits:       map[string]string{"north": "forest"},
				NPC: &NPC{
					Name: "Prof",
					Text: "Hello.",
					Choices: []Choice{
						{ID: "ask", Label: "Ask", Reply: "Sure."},
						{ID: "gift", Label: "Gift", GiveItem: &Item{Name: "potion", Description: "Red liquid."}},
					},
				},
			},
			{
				ID:          "forest",
				Name:        "Forest",
				Description: "Tall pines.",
				Exits:       map[string]string{"south": "lab"},
			},
		},
	}
}

func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Definition)
		wantErr string // substring; empty means valid
	}{
		{
			name:   "valid definition",
			mutate: func(d *Definition) {},
		},
		{
			name:    "missing name",
			mutate:  func(d *Definition) { d.Name = "" },
			wantErr: "world name is required",
		},
		{
			name:    "no rooms",
			mutate:  func(d *Definition) { d.Rooms = nil },
			wantErr: "world has no rooms",
		},
		{
			name:    "empty room id",
			mutate:  func(d *Definition) { d.Rooms[1].ID = "" },
			wantErr: "empty id",
		},
		{
			name:    "duplicate room id",
			mutate:  func(d *Definition) { d.Rooms[1].ID = "lab" },
			wantErr: "duplicate room id",
		},
		{
			name:    "missing start",
			mutate:  func(d *Definition) { d.Start = "" },
			wantErr: "start room is required",
		},
		{
			name:    "unknown start",
			mutate:  func(d *Definition) { d.Start = "attic" },
			wantErr: `start room "attic" does not exist`,
		},
		{
			name:    "invalid exit direction",
			mutate:  func(d *Definition) { d.Rooms[0].Exits["up"] = "forest" },
			wantErr: `invalid exit direction "up"`,
		},
		{
			name:    "dangling exit",
			mutate:  func(d *Definition) { d.Rooms[0].Exits["east"] = "attic" },
			wantErr: `leads to unknown room "attic"`,
		},
		{
			name:    "npc without text",
			mutate:  func(d *Definition) { d.Rooms[0].NPC.Text = "" },
			wantErr: "has no dialogue text",
		},
		{
			name:    "choice with empty id",
			mutate:  func(d *Definition) { d.Rooms[0].NPC.Choices[0].ID = "" },
			wantErr: "choice with empty id",
		},
		{
			name:    "duplicate choice id",
			mutate:  func(d *Definition) { d.Rooms[0].NPC.Choices[1].ID = "ask" },
			wantErr: "duplicate dialogue choice id",
		},
		{
			name:    "choice without label",
			mutate:  func(d *Definition) { d.Rooms[0].NPC.Choices[0].Label = "" },
			wantErr: "has no label",
		},
		{
			name:    "choice grants unnamed item",
			mutate:  func(d *Definition) { d.Rooms[0].NPC.Choices[1].GiveItem = &Item{} },
			wantErr: "grants an unnamed item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDefinition()
			tt.mutate(d)
			err := d.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefinition_ValidateReportsAllErrors(t *testing.T) {
	d := validDefinition()
	d.Name = ""
	d.Start = "attic"
	d.Rooms[0].Exits["west"] = "nowhere"

	err := d.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	for _, want := range []string{"world name is required", `start room "attic"`, `unknown room "nowhere"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}

package plan

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestClonePreservesEmptySlices(t *testing.T) {
	p := FloorPlan{
		Rooms: []Room{{ID: "r1", Type: RoomBedroom, Connections: []string{}}},
		Walls: []Wall{},
	}
	c := p.Clone()

	if c.Rooms[0].Connections == nil {
		t.Error("empty connections became nil")
	}
	if c.Walls == nil {
		t.Error("empty walls became nil")
	}

	// The wire shape uses [] for no adjacency, never null.
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"connections":null`) {
		t.Errorf("clone marshals connections as null: %s", data)
	}
	if !strings.Contains(string(data), `"connections":[]`) {
		t.Errorf("clone missing empty connections array: %s", data)
	}
}

func TestCloneKeepsNilNil(t *testing.T) {
	p := FloorPlan{Rooms: []Room{{ID: "r1"}}}
	c := p.Clone()

	if c.Rooms[0].Connections != nil {
		t.Error("nil connections became non-nil")
	}
	if c.Walls != nil {
		t.Error("nil walls became non-nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ww, wd := 6.4, 5.7
	p := FloorPlan{
		ID:              "p1",
		Rooms:           []Room{{ID: "r1", Connections: []string{"r2"}}},
		Walls:           []Wall{{ID: "w1", X2: 3.4}},
		GarageWingWidth: &ww,
		GarageWingDepth: &wd,
		CreatedAt:       &now,
		UpdatedAt:       &now,
	}
	c := p.Clone()

	c.Rooms[0].Connections[0] = "changed"
	c.Walls[0].X2 = 99
	*c.GarageWingWidth = 99
	*c.UpdatedAt = now.Add(time.Hour)

	if p.Rooms[0].Connections[0] != "r2" {
		t.Error("clone shares the connections slice")
	}
	if p.Walls[0].X2 != 3.4 {
		t.Error("clone shares the walls slice")
	}
	if *p.GarageWingWidth != 6.4 {
		t.Error("clone shares the wing pointer")
	}
	if !p.UpdatedAt.Equal(now) {
		t.Error("clone shares the timestamp pointer")
	}
}

func TestRoomByID(t *testing.T) {
	p := FloorPlan{Rooms: []Room{{ID: "r1", Label: "Bed 1"}, {ID: "r2", Label: "Bed 2"}}}

	if r, ok := p.RoomByID("r2"); !ok || r.Label != "Bed 2" {
		t.Errorf("RoomByID(r2) = %v, %v", r, ok)
	}
	if _, ok := p.RoomByID("missing"); ok {
		t.Error("RoomByID(missing) found a room")
	}
}

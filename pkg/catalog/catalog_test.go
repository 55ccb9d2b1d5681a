package catalog

import (
	"testing"

	"github.com/planforge/planforge/pkg/plan"
)

func TestResolve(t *testing.T) {
	cat := Default()

	tests := []struct {
		name string
		in   string
		want plan.RoomType
	}{
		{name: "known type", in: "kitchen", want: plan.RoomKitchen},
		{name: "master bedroom", in: "master_bedroom", want: plan.RoomMasterBedroom},
		{name: "unknown falls back", in: "pantry", want: FallbackType},
		{name: "empty falls back", in: "", want: FallbackType},
		{name: "case sensitive", in: "Kitchen", want: FallbackType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultCatalogComplete(t *testing.T) {
	cat := Default()

	types := cat.Types()
	if len(types) != 13 {
		t.Fatalf("expected 13 registered types, got %d", len(types))
	}

	for _, rt := range types {
		s := cat.Spec(rt)
		if s.MinWidth <= 0 || s.MinHeight <= 0 {
			t.Errorf("%s: non-positive minimum %vx%v", rt, s.MinWidth, s.MinHeight)
		}
		if s.Zone < 0 || s.Zone >= ZoneCount {
			t.Errorf("%s: zone %d out of range", rt, s.Zone)
		}
		if s.Color == "" {
			t.Errorf("%s: missing display color", rt)
		}
	}
}

func TestZoneAssignments(t *testing.T) {
	cat := Default()

	tests := []struct {
		roomType plan.RoomType
		zone     int
	}{
		{plan.RoomGarage, ZoneGarage},
		{plan.RoomLiving, ZoneLiving},
		{plan.RoomKitchen, ZoneLiving},
		{plan.RoomDining, ZoneLiving},
		{plan.RoomHallway, ZoneHallway},
		{plan.RoomCorridor, ZoneHallway},
		{plan.RoomMasterBedroom, ZonePrivate},
		{plan.RoomEnsuite, ZonePrivate},
		{plan.RoomBathroom, ZonePrivate},
		{plan.RoomLaundry, ZonePrivate},
		{plan.RoomBedroom, ZoneRear},
		{plan.RoomStudy, ZoneRear},
		{plan.RoomStorage, ZoneRear},
	}

	for _, tt := range tests {
		t.Run(string(tt.roomType), func(t *testing.T) {
			if got := cat.Zone(tt.roomType); got != tt.zone {
				t.Errorf("Zone(%s) = %d, want %d", tt.roomType, got, tt.zone)
			}
		})
	}
}

func TestHabitable(t *testing.T) {
	cat := Default()

	for _, rt := range []plan.RoomType{plan.RoomGarage, plan.RoomHallway, plan.RoomCorridor, plan.RoomStorage} {
		if cat.Habitable(rt) {
			t.Errorf("%s should not count toward habitable area", rt)
		}
	}
	for _, rt := range []plan.RoomType{plan.RoomBedroom, plan.RoomLiving, plan.RoomBathroom, plan.RoomLaundry} {
		if !cat.Habitable(rt) {
			t.Errorf("%s should count toward habitable area", rt)
		}
	}
}

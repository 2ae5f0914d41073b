package model

import (
	"encoding/json"
	"testing"

	"github.com/gentrystinson/cabquote/internal/catalog"
)

func TestNumberDecodesLegacyShapes(t *testing.T) {
	cases := map[string]float64{
		`12.5`:     12.5,
		`"12.5"`:   12.5,
		`" 8 "`:    8,
		`""`:       0,
		`"potato"`: 0,
		`null`:     0,
		`true`:     0,
	}
	for in, want := range cases {
		var n Number
		if err := n.UnmarshalJSON([]byte(in)); err != nil {
			t.Errorf("UnmarshalJSON(%s) returned error: %v", in, err)
			continue
		}
		if float64(n) != want {
			t.Errorf("UnmarshalJSON(%s) = %v, want %v", in, n, want)
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	room := NewRoom("Kitchen")
	room.Base = WallGroup{WallA: "96", WallB: "96"}
	room.Upper = WallGroup{WallA: "48"}
	room.SetSelection(catalog.BoxConstruction, "Inset")
	room.SetSelection(catalog.DrawerBox, "Dovetail")
	_ = room.AddAddon("floatingShelves", 4)

	rec := room.Record()
	clone := RoomFromRecord("Kitchen", rec)

	if clone.Base != room.Base || clone.Upper != room.Upper {
		t.Error("dimensions should survive a round trip")
	}
	if clone.Selection(catalog.BoxConstruction) != "Inset" {
		t.Errorf("expected Inset, got %q", clone.Selection(catalog.BoxConstruction))
	}
	if clone.Selection(catalog.DrawerBox) != "Dovetail" {
		t.Errorf("expected Dovetail, got %q", clone.Selection(catalog.DrawerBox))
	}
	if !clone.HasAddon("floatingShelves") {
		t.Error("addon should survive a round trip")
	}
}

func TestRecordWritesRoomID(t *testing.T) {
	room := NewRoom("Kitchen")
	_ = room.AddAddon("drawerCharging", 2)
	rec := room.Record()
	if len(rec.Addons) != 1 {
		t.Fatalf("expected 1 addon record, got %d", len(rec.Addons))
	}
	if rec.Addons[0].RoomID != room.ID {
		t.Errorf("expected addon tagged with room id %s, got %q", room.ID, rec.Addons[0].RoomID)
	}
}

func TestApplyRecordNormalizesOptionKeys(t *testing.T) {
	rec := RoomRecord{
		Options: map[string]string{
			"Box Construction": "Overlay",
			"door-style":       "Basic Shaker",
			"countertop":       "Quartz",
		},
	}
	room := NewRoom("Kitchen")
	room.ApplyRecord(rec)

	if got := room.Selection(catalog.BoxConstruction); got != "Overlay" {
		t.Errorf("display-name key should normalize, got %q", got)
	}
	if got := room.Selection(catalog.DoorStyle); got != "Basic Shaker" {
		t.Errorf("kebab key should normalize, got %q", got)
	}
	if room.Extra["countertop"] != "Quartz" {
		t.Errorf("unknown keys should be retained in Extra: %+v", room.Extra)
	}
}

func TestApplyRecordRetainedKeysRoundTrip(t *testing.T) {
	rec := RoomRecord{Options: map[string]string{"countertop": "Quartz"}}
	room := NewRoom("Kitchen")
	room.ApplyRecord(rec)
	out := room.Record()
	if out.Options["countertop"] != "Quartz" {
		t.Error("retained unknown keys should be written back verbatim")
	}
}

func TestApplyRecordCollapsesDuplicateAddons(t *testing.T) {
	rec := RoomRecord{
		Addons: []AddonRecord{
			{Key: "floatingShelves", Value: 4},
			{Key: "floatingShelves", Value: 9},
		},
	}
	room := NewRoom("Kitchen")
	room.ApplyRecord(rec)
	if len(room.Addons) != 1 {
		t.Fatalf("expected duplicates collapsed, got %d addons", len(room.Addons))
	}
	if room.Addons[0].Value != 4 {
		t.Errorf("expected first entry kept, got value %v", room.Addons[0].Value)
	}
}

func TestRoomRecordJSONShape(t *testing.T) {
	lf := Number(4)
	rec := RoomRecord{
		Dimensions: Dimensions{Base: WallGroup{WallA: "96"}},
		Options:    map[string]string{"boxConstruction": "Inset"},
		Addons:     []AddonRecord{{Key: "floatingShelves", Value: 4, LinearFeet: &lf, RoomID: "abc123"}},
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, field := range []string{"dimensions", "options", "addons"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected field %q in wire form", field)
		}
	}

	var back RoomRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if back.Addons[0].LinearFeet == nil || *back.Addons[0].LinearFeet != 4 {
		t.Error("linearFeet duplicate should round-trip")
	}
	if back.Addons[0].RoomID != "abc123" {
		t.Errorf("roomId should round-trip, got %q", back.Addons[0].RoomID)
	}
}

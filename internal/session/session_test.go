package session

import (
	"errors"
	"testing"

	"github.com/gentrystinson/cabquote/internal/catalog"
	"github.com/gentrystinson/cabquote/internal/model"
)

func TestNewSessionStartsOnFirstRoom(t *testing.T) {
	p := model.NewProject()
	s := New(p)
	if s.ActiveRoom() != p.Rooms[0] {
		t.Error("expected first room active")
	}
	if s.Dirty() {
		t.Error("fresh session should not be dirty")
	}
}

func TestSwitchRoomAppliesOutgoingStateFirst(t *testing.T) {
	p := model.NewProject()
	second := p.AddRoom()
	s := New(p)

	outgoing := model.RoomRecord{
		Dimensions: model.Dimensions{Base: model.WallGroup{WallA: "96"}},
		Options:    map[string]string{"boxConstruction": "Inset"},
	}
	incoming, err := s.SwitchRoom(second.ID, outgoing)
	if err != nil {
		t.Fatalf("SwitchRoom failed: %v", err)
	}
	if incoming != second {
		t.Error("expected the requested room back")
	}
	// The outgoing edits landed on the previously active room before the
	// switch completed.
	first := p.Rooms[0]
	if first.Base.WallA != "96" {
		t.Errorf("outgoing dimensions not applied: %+v", first.Base)
	}
	if first.Selection(catalog.BoxConstruction) != "Inset" {
		t.Errorf("outgoing selection not applied: %q", first.Selection(catalog.BoxConstruction))
	}
	if s.ActiveRoom() != second {
		t.Error("expected second room active after switch")
	}
}

func TestSwitchRoomUnknownID(t *testing.T) {
	p := model.NewProject()
	s := New(p)
	_, err := s.SwitchRoom("missing", model.RoomRecord{})
	if !errors.Is(err, model.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
	if s.ActiveRoom() != p.Rooms[0] {
		t.Error("failed switch should not change the active room")
	}
}

func TestActiveRoomFallsBackAfterDelete(t *testing.T) {
	p := model.NewProject()
	second := p.AddRoom()
	s := New(p)
	if _, err := s.SwitchRoom(second.ID, model.RoomRecord{}); err != nil {
		t.Fatalf("SwitchRoom failed: %v", err)
	}
	// Delete the active room; the session falls back to the first.
	if err := p.DeleteRoom(1); err != nil {
		t.Fatalf("DeleteRoom failed: %v", err)
	}
	if s.ActiveRoom() != p.Rooms[0] {
		t.Error("expected fallback to first room")
	}
}

func TestDirtyTracking(t *testing.T) {
	p := model.NewProject()
	s := New(p)

	p.Rooms[0].SetSelection(catalog.BoxConstruction, "Inset")
	if !s.Dirty() {
		t.Error("selection change should dirty the session")
	}

	s.MarkSaved()
	if s.Dirty() {
		t.Error("MarkSaved should clear the dirty flag")
	}

	p.Settings.Discount = 100
	if !s.Dirty() {
		t.Error("settings change should dirty the session")
	}
}

func TestDirtyIgnoresNoopEdits(t *testing.T) {
	p := model.NewProject()
	p.Rooms[0].SetSelection(catalog.BoxConstruction, "Inset")
	s := New(p)

	// Rewriting the same value is not a change.
	p.Rooms[0].SetSelection(catalog.BoxConstruction, "Inset")
	if s.Dirty() {
		t.Error("identical state should not be dirty")
	}
}

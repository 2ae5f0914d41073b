package model

import (
	"errors"
	"testing"
)

func TestNewProjectStartsWithOneRoom(t *testing.T) {
	p := NewProject()
	if len(p.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(p.Rooms))
	}
	if p.Rooms[0].Name != "Room 1" {
		t.Errorf("expected 'Room 1', got %q", p.Rooms[0].Name)
	}
	if p.Settings.TaxType != TaxNone {
		t.Errorf("expected default tax type none, got %s", p.Settings.TaxType)
	}
	if p.Settings.InstallationType != InstallSelf {
		t.Errorf("expected default self install, got %s", p.Settings.InstallationType)
	}
}

func TestAddRoomNumbersSequentially(t *testing.T) {
	p := NewProject()
	p.AddRoom()
	r := p.AddRoom()
	if r.Name != "Room 3" {
		t.Errorf("expected 'Room 3', got %q", r.Name)
	}
	if len(p.Rooms) != 3 {
		t.Errorf("expected 3 rooms, got %d", len(p.Rooms))
	}
}

func TestRoomLookup(t *testing.T) {
	p := NewProject()
	r := p.AddRoom()
	if p.Room(r.ID) != r {
		t.Error("expected room lookup by id")
	}
	if p.Room("missing") != nil {
		t.Error("unknown id should return nil")
	}
}

func TestDeleteRoomRenumbersDefaults(t *testing.T) {
	p := NewProject()
	p.AddRoom()
	third := p.AddRoom()
	if err := third.Rename("Butler's Pantry"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if err := p.DeleteRoom(0); err != nil {
		t.Fatalf("DeleteRoom failed: %v", err)
	}

	names := p.RoomNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(names))
	}
	// The remaining auto-named room renumbers to its new position.
	if names[0] != "Room 1" {
		t.Errorf("expected 'Room 1', got %q", names[0])
	}
	// Custom names are left alone.
	if names[1] != "Butler's Pantry" {
		t.Errorf("expected custom name preserved, got %q", names[1])
	}
}

func TestDeleteLastRoomRejected(t *testing.T) {
	p := NewProject()
	if err := p.DeleteRoom(0); !errors.Is(err, ErrLastRoom) {
		t.Errorf("expected ErrLastRoom, got %v", err)
	}
	if len(p.Rooms) != 1 {
		t.Error("failed delete should not remove the room")
	}
}

func TestDeleteRoomBoundsChecked(t *testing.T) {
	p := NewProject()
	p.AddRoom()
	if err := p.DeleteRoom(5); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
	if err := p.DeleteRoom(-1); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

// Package session tracks which room of a project is being edited. The room
// switch carries an ordering guarantee: the outgoing room's form state is
// written to its model record before the incoming room's record is handed
// back, so a switch can never read stale state. It also keeps the
// last-saved snapshot used to detect unsaved changes.
package session

import (
	"encoding/json"

	"github.com/gentrystinson/cabquote/internal/model"
)

// Session wraps a project with an explicit active-room pointer.
type Session struct {
	project   *model.Project
	activeID  string
	lastSaved []byte
}

// New starts a session on the project's first room and treats the current
// state as saved.
func New(p *model.Project) *Session {
	s := &Session{project: p}
	if len(p.Rooms) > 0 {
		s.activeID = p.Rooms[0].ID
	}
	s.MarkSaved()
	return s
}

// Project returns the session's project.
func (s *Session) Project() *model.Project { return s.project }

// ActiveRoom returns the room currently being edited. Falls back to the
// first room if the active room was deleted.
func (s *Session) ActiveRoom() *model.Room {
	if room := s.project.Room(s.activeID); room != nil {
		return room
	}
	if len(s.project.Rooms) > 0 {
		s.activeID = s.project.Rooms[0].ID
		return s.project.Rooms[0]
	}
	return nil
}

// SwitchRoom activates another room. The outgoing form state is applied to
// the active room's record first; only then is the incoming room returned
// for loading.
func (s *Session) SwitchRoom(id string, outgoing model.RoomRecord) (*model.Room, error) {
	incoming := s.project.Room(id)
	if incoming == nil {
		return nil, model.ErrRoomNotFound
	}
	if active := s.ActiveRoom(); active != nil {
		active.ApplyRecord(outgoing)
	}
	s.activeID = id
	return incoming, nil
}

// snapshot serializes the state that participates in dirty detection: room
// names and records in project order, plus settings.
func (s *Session) snapshot() []byte {
	type entry struct {
		Name string           `json:"name"`
		Data model.RoomRecord `json:"data"`
	}
	state := struct {
		Rooms    []entry        `json:"rooms"`
		Settings model.Settings `json:"settings"`
	}{Settings: s.project.Settings}
	for _, room := range s.project.Rooms {
		state.Rooms = append(state.Rooms, entry{Name: room.Name, Data: room.Record()})
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil
	}
	return data
}

// MarkSaved records the current state as the last saved state.
func (s *Session) MarkSaved() {
	s.lastSaved = s.snapshot()
}

// Dirty reports whether the project has changed since the last save.
func (s *Session) Dirty() bool {
	return string(s.snapshot()) != string(s.lastSaved)
}

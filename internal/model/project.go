package model

import (
	"fmt"
	"regexp"
)

// TaxType selects the sales tax treatment for a project.
type TaxType string

const (
	TaxNone    TaxType = "none"
	TaxTaxable TaxType = "taxable-jurisdiction"
)

// InstallationType selects who installs the cabinets.
type InstallationType string

const (
	InstallSelf         InstallationType = "self"
	InstallProfessional InstallationType = "professional"
)

// Settings are the project-wide pricing options. Surcharge applies only to
// professional installation; discount is a flat project-wide amount.
type Settings struct {
	TaxType               TaxType          `json:"taxType" yaml:"taxType"`
	InstallationType      InstallationType `json:"installationType" yaml:"installationType"`
	InstallationSurcharge float64          `json:"installationSurcharge" yaml:"installationSurcharge"`
	Discount              float64          `json:"discount" yaml:"discount"`
}

// DefaultSettings returns the settings a new project starts with.
func DefaultSettings() Settings {
	return Settings{
		TaxType:          TaxNone,
		InstallationType: InstallSelf,
	}
}

// Project is an ordered list of rooms plus project-wide settings. Room order
// is significant: it drives default room numbering and quote rendering.
type Project struct {
	Name     string
	Rooms    []*Room
	Settings Settings
}

// NewProject creates a project with one default room, matching the form's
// initial state.
func NewProject() *Project {
	return &Project{
		Rooms:    []*Room{NewRoom("Room 1")},
		Settings: DefaultSettings(),
	}
}

// AddRoom appends a new empty room with the next default name.
func (p *Project) AddRoom() *Room {
	room := NewRoom(fmt.Sprintf("Room %d", len(p.Rooms)+1))
	p.Rooms = append(p.Rooms, room)
	return room
}

// Room returns the room with the given id, or nil.
func (p *Project) Room(id string) *Room {
	for _, r := range p.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// defaultNamePattern matches auto-generated room names like "Room 3".
var defaultNamePattern = regexp.MustCompile(`^Room (\d+)$`)

// DeleteRoom removes the room at index. Deleting the only remaining room is
// rejected. Remaining rooms that still carry an auto-generated name are
// renumbered to their new position; user-customized names are left alone.
func (p *Project) DeleteRoom(index int) error {
	if len(p.Rooms) <= 1 {
		return ErrLastRoom
	}
	if index < 0 || index >= len(p.Rooms) {
		return ErrRoomNotFound
	}
	p.Rooms = append(p.Rooms[:index], p.Rooms[index+1:]...)
	for i, r := range p.Rooms {
		if defaultNamePattern.MatchString(r.Name) {
			r.Name = fmt.Sprintf("Room %d", i+1)
		}
	}
	return nil
}

// RoomNames returns the display names in project order.
func (p *Project) RoomNames() []string {
	names := make([]string, len(p.Rooms))
	for i, r := range p.Rooms {
		names[i] = r.Name
	}
	return names
}

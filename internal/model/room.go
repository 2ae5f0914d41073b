// Package model holds the in-memory state of a cabinetry order: rooms with
// their wall measurements, option selections and add-ons, and the project
// that groups them with project-wide settings.
//
// Model operations never fail on data-shape problems. Unknown options and
// add-on keys are carried verbatim and price to zero downstream; only
// user-facing validation (empty names, duplicate add-ons, deleting the last
// room) returns errors.
package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gentrystinson/cabquote/internal/catalog"
)

// WallGroup holds up to four named wall lengths in inches, stored exactly as
// entered. Empty or unparseable entries measure zero.
type WallGroup struct {
	WallA string `json:"wallA" yaml:"wallA"`
	WallB string `json:"wallB" yaml:"wallB"`
	WallC string `json:"wallC" yaml:"wallC"`
	WallD string `json:"wallD" yaml:"wallD"`
}

// inches parses a wall entry leniently: blank or invalid input is zero,
// negative input is clamped to zero.
func inches(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// LinearFeet converts the group's summed wall lengths from inches to linear
// feet. Always >= 0.
func (g WallGroup) LinearFeet() float64 {
	return (inches(g.WallA) + inches(g.WallB) + inches(g.WallC) + inches(g.WallD)) / 12
}

// IsEmpty reports whether no wall has been entered.
func (g WallGroup) IsEmpty() bool {
	return strings.TrimSpace(g.WallA) == "" && strings.TrimSpace(g.WallB) == "" &&
		strings.TrimSpace(g.WallC) == "" && strings.TrimSpace(g.WallD) == ""
}

// AddonInstance is one add-on attached to a room. Value semantics depend on
// the add-on kind: linear feet for linear add-ons, a unit count for quantity
// add-ons.
type AddonInstance struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Room is one cabinetry area: measurements for the base and upper runs, one
// selection per option category, and any attached add-ons.
type Room struct {
	ID         string
	Name       string
	Base       WallGroup
	Upper      WallGroup
	Selections map[catalog.Category]string
	// Extra carries persisted option keys that no longer exist in the
	// catalog. They survive round-trips but always price to zero.
	Extra  map[string]string
	Addons []AddonInstance
}

// NewRoom creates an empty room with a generated id.
func NewRoom(name string) *Room {
	return &Room{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Selections: map[catalog.Category]string{},
	}
}

// LinearFeet is the room's total cabinet run: base plus upper.
func (r *Room) LinearFeet() float64 {
	return r.Base.LinearFeet() + r.Upper.LinearFeet()
}

// IsSet reports whether a selection label counts as chosen. Empty strings,
// whitespace and the "-" placeholder are all unset.
func IsSet(label string) bool {
	trimmed := strings.TrimSpace(label)
	return trimmed != "" && trimmed != "-"
}

// SetSelection stores a selection label verbatim. Labels are not validated
// against the catalog here; invalid values degrade to zero cost at pricing
// time instead of failing a save.
func (r *Room) SetSelection(cat catalog.Category, label string) {
	if r.Selections == nil {
		r.Selections = map[catalog.Category]string{}
	}
	r.Selections[cat] = label
}

// Selection returns the stored label for a category, or "" when unset.
func (r *Room) Selection(cat catalog.Category) string {
	return r.Selections[cat]
}

// Rename sets the room's display name. The trimmed name must be non-empty.
func (r *Room) Rename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	r.Name = trimmed
	return nil
}

// AddAddon attaches an add-on to the room. A room holds at most one instance
// per add-on key; duplicates are rejected and the room is left unchanged.
func (r *Room) AddAddon(key string, value float64) error {
	for _, a := range r.Addons {
		if a.Key == key {
			return ErrDuplicateAddon
		}
	}
	r.Addons = append(r.Addons, AddonInstance{Key: key, Value: value})
	return nil
}

// RemoveAddon detaches an add-on by key. Removing an absent key is a no-op.
func (r *Room) RemoveAddon(key string) {
	for i, a := range r.Addons {
		if a.Key == key {
			r.Addons = append(r.Addons[:i], r.Addons[i+1:]...)
			return
		}
	}
}

// SetAddonValue updates the value of an attached add-on. Unknown keys are
// ignored.
func (r *Room) SetAddonValue(key string, value float64) {
	for i := range r.Addons {
		if r.Addons[i].Key == key {
			r.Addons[i].Value = value
			return
		}
	}
}

// HasAddon reports whether an add-on key is attached to the room.
func (r *Room) HasAddon(key string) bool {
	for _, a := range r.Addons {
		if a.Key == key {
			return true
		}
	}
	return false
}

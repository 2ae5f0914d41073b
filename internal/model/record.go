package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gentrystinson/cabquote/internal/catalog"
)

// Number is a float64 that tolerates the shapes legacy records stored
// numeric values in: JSON numbers, numeric strings, empty strings and null.
// Anything unparseable decodes to zero.
type Number float64

// UnmarshalJSON implements lenient numeric decoding.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Dimensions groups the base and upper wall measurements of a room record.
type Dimensions struct {
	Base  WallGroup `json:"base" yaml:"base"`
	Upper WallGroup `json:"upper" yaml:"upper"`
}

// AddonRecord is the persisted form of an add-on instance. LinearFeet is a
// historical duplicate of Value written for linear add-ons; RoomID is absent
// in legacy quotes where add-ons were stored only at the quote level.
type AddonRecord struct {
	Key        string  `json:"key" yaml:"key"`
	Value      Number  `json:"value" yaml:"value"`
	LinearFeet *Number `json:"linearFeet,omitempty" yaml:"linearFeet,omitempty"`
	RoomID     string  `json:"roomId,omitempty" yaml:"roomId,omitempty"`
}

// RoomRecord is the plain record exchanged with the host store for one room.
// The core reads and writes these wholesale; key naming inside options is
// normalized on read, never branched on elsewhere.
type RoomRecord struct {
	Dimensions Dimensions        `json:"dimensions" yaml:"dimensions"`
	Options    map[string]string `json:"options" yaml:"options"`
	Addons     []AddonRecord     `json:"addons,omitempty" yaml:"addons,omitempty"`
}

// Record snapshots the room into its wire form. Selections are written under
// their canonical category identifiers; retained unknown keys are written
// back verbatim.
func (r *Room) Record() RoomRecord {
	options := make(map[string]string, len(r.Selections)+len(r.Extra))
	for cat, label := range r.Selections {
		options[string(cat)] = label
	}
	for key, label := range r.Extra {
		options[key] = label
	}
	rec := RoomRecord{
		Dimensions: Dimensions{Base: r.Base, Upper: r.Upper},
		Options:    options,
	}
	for _, a := range r.Addons {
		rec.Addons = append(rec.Addons, AddonRecord{
			Key:    a.Key,
			Value:  Number(a.Value),
			RoomID: r.ID,
		})
	}
	return rec
}

// ApplyRecord merges a record into the room, replacing measurements,
// selections and add-ons. Option keys are normalized through the catalog;
// keys that no longer resolve are retained in Extra and price to zero.
func (r *Room) ApplyRecord(rec RoomRecord) {
	r.Base = rec.Dimensions.Base
	r.Upper = rec.Dimensions.Upper
	r.Selections = make(map[catalog.Category]string, len(rec.Options))
	r.Extra = nil
	for key, label := range rec.Options {
		if cat, ok := catalog.ParseCategory(key); ok {
			r.Selections[cat] = label
			continue
		}
		if r.Extra == nil {
			r.Extra = map[string]string{}
		}
		r.Extra[key] = label
	}
	r.Addons = nil
	for _, a := range rec.Addons {
		// Duplicate keys in a corrupt record collapse to the first entry.
		_ = r.AddAddon(a.Key, float64(a.Value))
	}
}

// RoomFromRecord builds a new room from a persisted record.
func RoomFromRecord(name string, rec RoomRecord) *Room {
	room := NewRoom(name)
	room.ApplyRecord(rec)
	return room
}

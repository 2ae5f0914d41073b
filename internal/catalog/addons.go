package catalog

import "sort"

// AddonKind distinguishes how an add-on's user-entered value is priced.
type AddonKind string

const (
	// AddonLinear add-ons are priced per linear foot of the entered run.
	AddonLinear AddonKind = "linear"
	// AddonQuantity add-ons are priced per unit count.
	AddonQuantity AddonKind = "quantity"
)

// Addon is a static definition of an optional extra that can be attached to
// a room. Definitions are never mutated at runtime.
type Addon struct {
	Key   string    `json:"key"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Kind  AddonKind `json:"kind"`
	Unit  string    `json:"unit"`
}

func defaultAddons() map[string]Addon {
	addons := []Addon{
		{Key: "baseInteriorLighting", Name: "Base Interior Cabinet Lighting", Price: 9.375, Kind: AddonLinear, Unit: "linear ft."},
		{Key: "toeKickLighting", Name: "Toe-Kick Lighting", Price: 9.375, Kind: AddonLinear, Unit: "linear ft."},
		{Key: "drawerCharging", Name: "Drawer Hidden Charging Station", Price: 635.00, Kind: AddonQuantity, Unit: "quantity"},
		{Key: "trashPulloutSoft", Name: "Base Trash Pullout w/ Soft Close", Price: 550.00, Kind: AddonQuantity, Unit: "quantity"},
		{Key: "trashPulloutBasic", Name: "Basic Trash Pullout", Price: 300.00, Kind: AddonQuantity, Unit: "quantity"},
		{Key: "underCabinetLighting", Name: "Under-Cabinet Lighting", Price: 9.375, Kind: AddonLinear, Unit: "linear ft."},
		{Key: "upperInteriorLighting", Name: "Upper Interior Cabinet Lighting", Price: 9.375, Kind: AddonLinear, Unit: "linear ft."},
		{Key: "floatingShelves", Name: "Floating Shelves", Price: 50.00, Kind: AddonLinear, Unit: "linear ft."},
		{Key: "floatingShelvesLED", Name: "Floating Shelves + LED Lighting", Price: 60.00, Kind: AddonLinear, Unit: "linear ft."},
		{Key: "upperPulloutRack", Name: "Upper 4-Shelf Pullout Rack w/ Soft Close", Price: 300.00, Kind: AddonQuantity, Unit: "quantity"},
	}
	m := make(map[string]Addon, len(addons))
	for _, a := range addons {
		m[a.Key] = a
	}
	return m
}

// Addon returns the definition for a key. Unknown keys return false; callers
// treat them as zero-cost rather than failing.
func (pb *PriceBook) Addon(key string) (Addon, bool) {
	a, ok := pb.Addons[key]
	return a, ok
}

// AddonKeys returns all add-on keys, sorted for stable display order.
func (pb *PriceBook) AddonKeys() []string {
	keys := make([]string, 0, len(pb.Addons))
	for k := range pb.Addons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

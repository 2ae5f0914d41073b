package catalog

import "sort"

// InstallRate is the fraction of the box construction line applied as the
// professional installation charge per room.
const InstallRate = 0.10

// TaxableRate is the sales tax rate applied in a taxable jurisdiction (8.6%).
const TaxableRate = 0.086

// PriceBook holds the option cost tables and add-on definitions used by the
// pricing engine. A zero or missing entry always prices to zero; lookups
// never fail.
type PriceBook struct {
	Options map[Category]map[string]float64 `json:"options"`
	Addons  map[string]Addon                `json:"addons"`
}

// Default returns the production price book.
func Default() *PriceBook {
	return &PriceBook{
		Options: map[Category]map[string]float64{
			BoxConstruction: {
				"Inset":   600,
				"Overlay": 410,
				"Framed":  480,
			},
			BoxMaterial: {
				"MDF":            0,
				"White Birch":    0,
				"White Rift Oak": 65,
				"Hickory":        65,
				"Cherry":         50,
				"Mahogany":       80,
				"Cedar":          20,
				"White Oak":      25,
			},
			DoorMaterial: {
				"Maple":          0,
				"White Rift Oak": 65,
				"Hickory":        65,
				"Cherry":         50,
				"Mahogany":       80,
				"Cedar":          20,
				"White Oak":      25,
				"Walnut":         80,
				"Laminate":       0,
			},
			DoorStyle: {
				"Basic Shaker":                   0,
				"Flat Panel":                     0,
				"Shaker w/ Moulding":             10,
				"Raised Shaker":                  25,
				"Flat Panel High Gloss Laminate": 75,
			},
			Finish: {
				"Basic Stain":       0,
				"Basic Paint":       0,
				"Glaze":             55,
				"Color Match Stain": 30,
				"Color Match Paint": 30,
				"Distressed":        55,
				"Laminate":          0,
			},
			InteriorFinish: {
				"White Birch": 0,
				"Stain":       60,
				"Paint":       60,
				"Glaze":       110,
				"Distressed":  110,
				"Laminate":    0,
				"MDF":         0,
			},
			// Multipliers against the computed box construction cost.
			DrawerBox: {
				"Dovetail": 0.05,
				"Rabbet":   0.0,
			},
			DrawerStyle: {
				"Basic Shaker":                   0,
				"Flat Panel":                     0,
				"Shaker w/ Moulding":             0,
				"Raised Shaker":                  0,
				"Flat Panel High Gloss Laminate": 0,
			},
			Hardware: {"None": 0},
			Edgeband: {"None": 0},
		},
		Addons: defaultAddons(),
	}
}

// UnitCost returns the per-linear-foot cost (or drawer box multiplier) for a
// label within a category. Unknown categories or labels cost zero.
func (pb *PriceBook) UnitCost(cat Category, label string) float64 {
	table, ok := pb.Options[cat]
	if !ok {
		return 0
	}
	return table[label]
}

// HasLabel reports whether a label exists in the category's cost table.
func (pb *PriceBook) HasLabel(cat Category, label string) bool {
	table, ok := pb.Options[cat]
	if !ok {
		return false
	}
	_, ok = table[label]
	return ok
}

// Labels returns the selectable labels for a category, sorted.
func (pb *PriceBook) Labels(cat Category) []string {
	table, ok := pb.Options[cat]
	if !ok {
		return nil
	}
	labels := make([]string, 0, len(table))
	for l := range table {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// InstallBaseRate returns the installation base rate for a box construction
// label. The rate is the box construction table entry itself; unknown labels
// rate zero.
func (pb *PriceBook) InstallBaseRate(boxConstruction string) float64 {
	return pb.UnitCost(BoxConstruction, boxConstruction)
}

// Merge overlays another price book onto this one. Individual labels and
// add-ons from the overlay replace or extend the originals; tables not
// mentioned are untouched. Used for customer-specific price overrides.
func (pb *PriceBook) Merge(overlay *PriceBook) {
	if overlay == nil {
		return
	}
	for cat, table := range overlay.Options {
		if pb.Options[cat] == nil {
			pb.Options[cat] = map[string]float64{}
		}
		for label, cost := range table {
			pb.Options[cat][label] = cost
		}
	}
	for key, addon := range overlay.Addons {
		if addon.Key == "" {
			addon.Key = key
		}
		pb.Addons[key] = addon
	}
}

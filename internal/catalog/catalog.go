// Package catalog holds the static pricing tables for cabinet options and
// add-ons. Costs are US dollars per linear foot unless noted otherwise:
// drawer box entries are multipliers applied to the computed box construction
// cost, and hardware/edgeband selections are informational with no cost.
package catalog

import "strings"

// Category identifies one of the ten cabinet option categories.
type Category string

const (
	BoxConstruction Category = "boxConstruction"
	BoxMaterial     Category = "boxMaterial"
	DoorMaterial    Category = "doorMaterial"
	DoorStyle       Category = "doorStyle"
	Finish          Category = "finish"
	InteriorFinish  Category = "interiorFinish"
	DrawerBox       Category = "drawerBox"
	DrawerStyle     Category = "drawerStyle"
	Hardware        Category = "hardware"
	Edgeband        Category = "edgeband"
)

// categories lists every category in display and evaluation order.
var categories = []Category{
	BoxConstruction,
	BoxMaterial,
	DoorMaterial,
	DoorStyle,
	Finish,
	InteriorFinish,
	DrawerBox,
	DrawerStyle,
	Hardware,
	Edgeband,
}

// Categories returns all option categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// displayNames maps each category to its user-facing label.
var displayNames = map[Category]string{
	BoxConstruction: "Box Construction",
	BoxMaterial:     "Box Material",
	DoorMaterial:    "Door Material",
	DoorStyle:       "Door Style",
	Finish:          "Finish",
	InteriorFinish:  "Interior Finish",
	DrawerBox:       "Drawer Box",
	DrawerStyle:     "Drawer Style",
	Hardware:        "Hardware",
	Edgeband:        "Edgeband",
}

// DisplayName returns the user-facing label for a category.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// normalize folds a raw option key down to a comparable form: lower case with
// spaces, hyphens and underscores removed.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, s)
}

// parseTable is built once from the canonical identifiers; both the
// identifier and the display-name spellings normalize to the same key.
var parseTable = func() map[string]Category {
	t := make(map[string]Category, len(categories))
	for _, c := range categories {
		t[normalize(string(c))] = c
	}
	return t
}()

// ParseCategory resolves any historical spelling of an option key
// ("Box Construction", "boxConstruction", "box-construction") to its
// canonical Category. Unknown keys return false rather than an error.
func ParseCategory(s string) (Category, bool) {
	c, ok := parseTable[normalize(s)]
	return c, ok
}

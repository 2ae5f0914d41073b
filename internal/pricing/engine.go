// Package pricing turns room state into dollar amounts. The engine is pure:
// identical input state always produces identical totals, so callers may
// recompute on every change without side effects.
package pricing

import (
	"github.com/gentrystinson/cabquote/internal/catalog"
	"github.com/gentrystinson/cabquote/internal/model"
)

// Engine computes per-category costs, room subtotals and project totals
// against a price book.
type Engine struct {
	book *catalog.PriceBook
}

// NewEngine creates an engine over the given price book. A nil book uses the
// default production tables.
func NewEngine(book *catalog.PriceBook) *Engine {
	if book == nil {
		book = catalog.Default()
	}
	return &Engine{book: book}
}

// Book exposes the engine's price book for display lookups.
func (e *Engine) Book() *catalog.PriceBook { return e.book }

// CategoryCost prices a single selection. The drawer box category multiplies
// the already-computed box construction cost for the room rather than
// scaling with linear footage; boxConstructionCost carries that dependency
// explicitly. Hardware and edgeband selections are informational and always
// cost zero. Unset or unknown labels cost zero.
func (e *Engine) CategoryCost(cat catalog.Category, label string, linearFeet, boxConstructionCost float64) float64 {
	if !model.IsSet(label) {
		return 0
	}
	switch cat {
	case catalog.Hardware, catalog.Edgeband:
		return 0
	case catalog.DrawerBox:
		return e.book.UnitCost(cat, label) * boxConstructionCost
	default:
		return e.book.UnitCost(cat, label) * linearFeet
	}
}

// boxConstructionCost computes the room's box construction line, which both
// the drawer box category and the installation charge derive from.
func (e *Engine) boxConstructionCost(room *model.Room) float64 {
	return e.CategoryCost(catalog.BoxConstruction, room.Selection(catalog.BoxConstruction), room.LinearFeet(), 0)
}

// RoomSubtotal sums every category cost for the room plus its add-ons. The
// box construction cost is computed first so the drawer box multiplier has
// its input; beyond that, category order does not affect the total.
func (e *Engine) RoomSubtotal(room *model.Room) float64 {
	lf := room.LinearFeet()
	boxCost := e.boxConstructionCost(room)

	total := 0.0
	for _, cat := range catalog.Categories() {
		total += e.CategoryCost(cat, room.Selection(cat), lf, boxCost)
	}
	return total + e.AddonsCost(room)
}

// AddonsCost sums the room's add-on charges: unit price times the entered
// value. Unknown add-on keys contribute zero.
func (e *Engine) AddonsCost(room *model.Room) float64 {
	total := 0.0
	for _, inst := range room.Addons {
		addon, ok := e.book.Addon(inst.Key)
		if !ok {
			continue
		}
		total += addon.Price * inst.Value
	}
	return total
}

// InstallationCost is the professional installation charge for one room:
// the box construction base rate times the room's linear footage times the
// installation rate. It is an additional line item derived from the same
// rate table, not a share of the subtotal. Rooms without a box construction
// selection charge zero.
func (e *Engine) InstallationCost(room *model.Room) float64 {
	label := room.Selection(catalog.BoxConstruction)
	if !model.IsSet(label) {
		return 0
	}
	return e.book.InstallBaseRate(label) * room.LinearFeet() * catalog.InstallRate
}

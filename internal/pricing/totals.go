package pricing

import (
	"github.com/gentrystinson/cabquote/internal/catalog"
	"github.com/gentrystinson/cabquote/internal/model"
)

// Totals is the project-level price summary. Amounts are unrounded; round
// only when displaying. A discount larger than the subtotal drives the
// discounted subtotal, tax and total negative; nothing clamps it.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	Installation float64 `json:"installation"`
	Total        float64 `json:"total"`
}

// ProjectTotals prices a whole project: the sum of room subtotals, the
// installation charge (zero for self-install, per-room charges plus the
// flat surcharge for professional), tax on the discounted subtotal, and the
// final total.
func (e *Engine) ProjectTotals(p *model.Project) Totals {
	subtotal := 0.0
	for _, room := range p.Rooms {
		subtotal += e.RoomSubtotal(room)
	}

	installation := 0.0
	if p.Settings.InstallationType == model.InstallProfessional {
		for _, room := range p.Rooms {
			installation += e.InstallationCost(room)
		}
		installation += p.Settings.InstallationSurcharge
	}

	taxRate := 0.0
	if p.Settings.TaxType == model.TaxTaxable {
		taxRate = catalog.TaxableRate
	}

	discounted := subtotal - p.Settings.Discount
	tax := discounted * taxRate

	return Totals{
		Subtotal:     subtotal,
		Discount:     p.Settings.Discount,
		Tax:          tax,
		Installation: installation,
		Total:        discounted + tax + installation,
	}
}

// Line is one priced category selection in a breakdown.
type Line struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
	Cost     float64          `json:"cost"`
}

// AddonLine is one priced add-on in a breakdown.
type AddonLine struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Cost  float64 `json:"cost"`
}

// RoomBreakdown itemizes one room: its set selections, add-ons and subtotal.
// Unset selections are excluded.
type RoomBreakdown struct {
	RoomID     string      `json:"roomId"`
	RoomName   string      `json:"roomName"`
	LinearFeet float64     `json:"linearFeet"`
	Lines      []Line      `json:"lines"`
	Addons     []AddonLine `json:"addons"`
	Subtotal   float64     `json:"subtotal"`
}

// ProjectBreakdown is the full recompute payload handed back to callers
// after any state change.
type ProjectBreakdown struct {
	Rooms  []RoomBreakdown `json:"rooms"`
	Totals Totals          `json:"totals"`
}

// RoomBreakdown itemizes the priced selections and add-ons of one room.
func (e *Engine) RoomBreakdown(room *model.Room) RoomBreakdown {
	lf := room.LinearFeet()
	boxCost := e.boxConstructionCost(room)

	bd := RoomBreakdown{
		RoomID:     room.ID,
		RoomName:   room.Name,
		LinearFeet: lf,
	}
	for _, cat := range catalog.Categories() {
		label := room.Selection(cat)
		if !model.IsSet(label) {
			continue
		}
		bd.Lines = append(bd.Lines, Line{
			Category: cat,
			Label:    label,
			Cost:     e.CategoryCost(cat, label, lf, boxCost),
		})
	}
	for _, inst := range room.Addons {
		addon, ok := e.book.Addon(inst.Key)
		if !ok {
			continue
		}
		bd.Addons = append(bd.Addons, AddonLine{
			Key:   inst.Key,
			Name:  addon.Name,
			Value: inst.Value,
			Unit:  addon.Unit,
			Cost:  addon.Price * inst.Value,
		})
	}
	bd.Subtotal = e.RoomSubtotal(room)
	return bd
}

// ProjectBreakdown itemizes every room and the project totals.
func (e *Engine) ProjectBreakdown(p *model.Project) ProjectBreakdown {
	pb := ProjectBreakdown{Totals: e.ProjectTotals(p)}
	for _, room := range p.Rooms {
		pb.Rooms = append(pb.Rooms, e.RoomBreakdown(room))
	}
	return pb
}

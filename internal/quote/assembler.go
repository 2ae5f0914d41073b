package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/gentrystinson/cabquote/internal/model"
	"github.com/gentrystinson/cabquote/internal/pricing"
)

// Assemble snapshots a project into a quote record: every room's data, the
// project settings, and the totals computed at this moment. An empty id is
// allowed; the host assigns one on save. A blank project name is rejected.
func Assemble(p *model.Project, engine *pricing.Engine, id, projectName string, ts time.Time) (*Quote, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, model.ErrMissingProjectName
	}

	totals := engine.ProjectTotals(p)
	q := &Quote{
		ID:                    id,
		ProjectName:           strings.TrimSpace(projectName),
		Timestamp:             ts,
		ProjectTotal:          totals.Subtotal,
		Tax:                   totals.Tax,
		TaxType:               p.Settings.TaxType,
		InstallationType:      p.Settings.InstallationType,
		InstallationCost:      totals.Installation,
		InstallationSurcharge: p.Settings.InstallationSurcharge,
		Discount:              p.Settings.Discount,
		FinalTotal:            totals.Total,
	}
	for _, room := range p.Rooms {
		rec := room.Record()
		q.Rooms = append(q.Rooms, RoomEntry{Name: room.Name, Data: rec})
		// The flat add-on list duplicates the per-room lists; older hosts
		// read only this.
		q.Addons = append(q.Addons, rec.Addons...)
	}
	return q, nil
}

// Warning is a non-fatal problem found while restoring a quote.
type Warning struct {
	Code    string
	Message string
}

// LegacyAddonWarning marks add-ons stored without a room association that
// were assigned to the first room.
const LegacyAddonWarning = "legacy-addon"

// Restore rebuilds project state from a saved quote. Rooms come back in the
// quote's stored order with their persisted records applied; project
// settings and name are restored from the quote header. The per-room add-on
// lists are authoritative; flat quote-level add-ons are folded in afterward,
// routed by roomId when present and otherwise assigned to the first room
// with a warning. Duplicates collapse under the one-per-(key, room) rule.
func Restore(q *Quote) (*model.Project, []Warning) {
	p := &model.Project{
		Name: q.ProjectName,
		Settings: model.Settings{
			TaxType:               q.TaxType,
			InstallationType:      q.InstallationType,
			InstallationSurcharge: q.InstallationSurcharge,
			Discount:              q.Discount,
		},
	}

	// byOldID maps the room ids the records were saved under to the rebuilt
	// rooms, for routing the flat add-on list.
	byOldID := make(map[string]*model.Room)
	for i, entry := range q.Rooms {
		name := entry.Name
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Room %d", i+1)
		}
		room := model.RoomFromRecord(name, entry.Data)
		p.Rooms = append(p.Rooms, room)
		for _, a := range entry.Data.Addons {
			if a.RoomID != "" {
				byOldID[a.RoomID] = room
			}
		}
	}
	if len(p.Rooms) == 0 {
		p.Rooms = []*model.Room{model.NewRoom("Room 1")}
	}

	var warnings []Warning
	for _, a := range q.Addons {
		if a.RoomID != "" {
			if room, ok := byOldID[a.RoomID]; ok {
				_ = room.AddAddon(a.Key, float64(a.Value))
				continue
			}
		}
		first := p.Rooms[0]
		if err := first.AddAddon(a.Key, float64(a.Value)); err == nil {
			warnings = append(warnings, Warning{
				Code:    LegacyAddonWarning,
				Message: fmt.Sprintf("add-on %q had no resolvable room association; assigned to %q", a.Key, first.Name),
			})
		}
	}
	return p, warnings
}

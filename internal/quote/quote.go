// Package quote snapshots project state into immutable quote records for
// handoff to the host application, and rebuilds project state from records
// loaded back.
package quote

import (
	"fmt"
	"time"

	"github.com/gentrystinson/cabquote/internal/model"
)

// RoomEntry pairs a room's display name with its persisted record.
type RoomEntry struct {
	Name string           `json:"name"`
	Data model.RoomRecord `json:"data"`
}

// Quote is a named, timestamped, priced snapshot of an entire project. It is
// created on save and read back wholesale on load; the computed totals are
// frozen at save time.
type Quote struct {
	ID                    string                 `json:"id"`
	ProjectName           string                 `json:"projectName"`
	Timestamp             time.Time              `json:"timestamp"`
	Rooms                 []RoomEntry            `json:"rooms"`
	ProjectTotal          float64                `json:"projectTotal"`
	Tax                   float64                `json:"tax"`
	TaxType               model.TaxType          `json:"taxType"`
	InstallationType      model.InstallationType `json:"installationType"`
	InstallationCost      float64                `json:"installationCost"`
	InstallationSurcharge float64                `json:"installationSurcharge"`
	Discount              float64                `json:"discount"`
	FinalTotal            float64                `json:"finalTotal"`
	Addons                []model.AddonRecord    `json:"addons"`
	Status                string                 `json:"status,omitempty"`
}

// Summary is the listing row the host returns for saved quotes.
type Summary struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"projectName"`
	Timestamp   time.Time `json:"timestamp"`
	FinalTotal  float64   `json:"finalTotal"`
	Status      string    `json:"status"`
}

// FormatID renders a sequential quote id like "Q0001".
func FormatID(seq int) string {
	return fmt.Sprintf("Q%04d", seq)
}

// Package export writes quote records to spreadsheet files for sharing
// outside the order form.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gentrystinson/cabquote/internal/pricing"
	"github.com/gentrystinson/cabquote/internal/quote"
)

const sheetName = "Quote"

// ExportXLSX writes a quote workbook: a header block, one section per room
// with its measurements, selections and add-ons, and the totals block.
// Amounts are rounded to cents for display.
func ExportXLSX(path string, q *quote.Quote, breakdown pricing.ProjectBreakdown) error {
	if len(breakdown.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)
	_ = f.SetColWidth(sheetName, "A", "A", 36)
	_ = f.SetColWidth(sheetName, "B", "C", 18)

	row := 1
	set := func(col string, v any) {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v)
	}

	set("A", "Cabinet Quote")
	row++
	set("A", "Quote ID")
	set("B", q.ID)
	row++
	set("A", "Project")
	set("B", q.ProjectName)
	row++
	set("A", "Date")
	set("B", q.Timestamp.Format("2006-01-02"))
	row += 2

	for _, room := range breakdown.Rooms {
		set("A", room.RoomName)
		set("B", fmt.Sprintf("%.2f linear ft.", room.LinearFeet))
		set("C", pricing.Round2(room.Subtotal))
		row++
		for _, line := range room.Lines {
			set("A", "  "+line.Category.DisplayName())
			set("B", line.Label)
			set("C", pricing.Round2(line.Cost))
			row++
		}
		for _, addon := range room.Addons {
			set("A", "  "+addon.Name)
			set("B", fmt.Sprintf("%g %s", addon.Value, addon.Unit))
			set("C", pricing.Round2(addon.Cost))
			row++
		}
		row++
	}

	set("A", "Project Sub-Total")
	set("C", pricing.Round2(breakdown.Totals.Subtotal))
	row++
	if breakdown.Totals.Discount != 0 {
		set("A", "Discount")
		set("C", -pricing.Round2(breakdown.Totals.Discount))
		row++
	}
	set("A", "Tax")
	set("C", pricing.Round2(breakdown.Totals.Tax))
	row++
	set("A", "Installation")
	set("C", pricing.Round2(breakdown.Totals.Installation))
	row++
	set("A", "Project Total")
	set("C", pricing.Round2(breakdown.Totals.Total))

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

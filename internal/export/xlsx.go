package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/panelwright/wallplan/internal/model"
)

// ExportXLSX writes the plan to an Excel workbook with Panels, Leftovers,
// and Summary sheets.
func ExportXLSX(path string, result model.PlanResult) error {
	if len(result.Manifest) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const panelsSheet = "Panels"
	if err := f.SetSheetName("Sheet1", panelsSheet); err != nil {
		return err
	}

	panelHeaders := []interface{}{"Wall", "Application", "Type", "Width (mm)", "Length (mm)", "Joint", "Leftover", "Note"}
	if err := f.SetSheetRow(panelsSheet, "A1", &panelHeaders); err != nil {
		return err
	}
	for i, rec := range result.Manifest {
		p := rec.Panel
		row := []interface{}{
			rec.WallID,
			string(rec.Application),
			string(p.Kind),
			p.EffectiveWidth(),
			rec.Length,
			string(p.JointType),
			p.LeftoverID,
			p.Note,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(panelsSheet, cell, &row); err != nil {
			return err
		}
	}

	const leftoversSheet = "Leftovers"
	if _, err := f.NewSheet(leftoversSheet); err != nil {
		return err
	}
	leftoverHeaders := []interface{}{"ID", "Thickness (mm)", "Longer Face (mm)", "Shorter Face (mm)", "Left Edge", "Right Edge"}
	if err := f.SetSheetRow(leftoversSheet, "A1", &leftoverHeaders); err != nil {
		return err
	}
	for i, l := range result.Leftovers {
		row := []interface{}{
			l.ID,
			l.WallThickness,
			l.LongerFace,
			l.ShorterFace,
			string(l.LeftEdge),
			string(l.RightEdge),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(leftoversSheet, cell, &row); err != nil {
			return err
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	a := result.Analysis
	summary := [][]interface{}{
		{"Full panels", a.FullPanels},
		{"Cut panels", a.CutPanels},
		{"Leftover-derived panels", a.LeftoverPanels},
		{"Full panels opened for cutting", a.FullPanelsUsedForCutting},
		{"Total panels", a.TotalPanels},
		{"Remaining leftovers", len(result.Leftovers)},
		{"Rejected walls", len(result.WallErrors)},
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		r := row
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// Package export provides functionality for exporting panel plans to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/panelwright/wallplan/internal/model"
)

// panelColor represents an RGB fill for a drawn panel.
type panelColor struct {
	R, G, B int
}

var kindColors = map[model.PanelKind]panelColor{
	model.PanelFull:     {R: 76, G: 175, B: 80},  // green
	model.PanelSide:     {R: 255, G: 152, B: 0},  // orange
	model.PanelLeftover: {R: 33, G: 150, B: 243}, // blue
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	barHeight    = 40.0
)

// ExportPDF generates a PDF document for a panel plan. Each wall is rendered
// on its own page as a scaled cut diagram, followed by a summary page with
// the analysis counters and the remaining leftover inventory.
func ExportPDF(path string, walls []model.Wall, result model.PlanResult) error {
	if len(result.Manifest) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pageNum := 0
	for _, w := range walls {
		records := result.PanelsFor(w.ID)
		if len(records) == 0 {
			continue
		}
		pageNum++
		pdf.AddPage()
		renderWallPage(pdf, w, records, pageNum)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderWallPage draws one wall's panel sequence as a horizontal bar scaled
// to the page width.
func renderWallPage(pdf *fpdf.Fpdf, w model.Wall, records []model.PanelRecord, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Wall %d: %s (%.0f mm x %.0f mm, %s)", pageNum, w.ID, w.Length(), w.Height, w.Application)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Panels: %d | Thickness: %.0f mm", len(records), w.Thickness)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / w.Length()
	y := drawAreaTop + 10

	x := marginLeft
	for _, rec := range records {
		p := rec.Panel
		pw := p.EffectiveWidth() * scale

		col := kindColors[p.Kind]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, y, pw, barHeight, "FD")

		if pw > 10 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw))
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%.0f", p.EffectiveWidth())
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-1 {
				pdf.SetXY(x+(pw-labelW)/2, y+barHeight/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if p.JointType != "" && pw > 16 {
				joint := string(p.JointType)
				jointW := pdf.GetStringWidth(joint)
				if jointW < pw-1 {
					pdf.SetXY(x+(pw-jointW)/2, y+barHeight/2+3)
					pdf.CellFormat(jointW, 4, joint, "", 0, "C", false, 0, "")
				}
			}
		}

		x += pw
	}

	// Dimension annotation below the bar
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	dim := fmt.Sprintf("%.0f mm", w.Length())
	dimW := pdf.GetStringWidth(dim)
	pdf.SetXY(marginLeft+(drawWidth-dimW)/2, y+barHeight+2)
	pdf.CellFormat(dimW, 4, dim, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	drawKindLegend(pdf, y+barHeight+12)

	// Per-panel table
	tableY := y + barHeight + 24
	colWidths := []float64{15, 30, 30, 30, 30, 80}
	headers := []string{"#", "Type", "Width", "Length", "Joint", "Note"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, tableY)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	tableY += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, rec := range records {
		p := rec.Panel
		row := []string{
			fmt.Sprintf("%d", i+1),
			string(p.Kind),
			fmt.Sprintf("%.0f mm", p.EffectiveWidth()),
			fmt.Sprintf("%.0f mm", rec.Length),
			string(p.JointType),
			p.Note,
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, tableY)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		tableY += 6
		if tableY > pageHeight-marginBottom-6 {
			break
		}
	}
}

// drawKindLegend renders the panel kind color swatches.
func drawKindLegend(pdf *fpdf.Fpdf, y float64) {
	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft
	for _, kind := range []model.PanelKind{model.PanelFull, model.PanelSide, model.PanelLeftover} {
		col := kindColors[kind]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, y+0.5, 3, 3, "F")
		label := string(kind)
		pdf.SetXY(xPos+4, y)
		pdf.CellFormat(pdf.GetStringWidth(label)+4, 4, label, "", 0, "L", false, 0, "")
		xPos += pdf.GetStringWidth(label) + 14
	}
}

// renderSummaryPage draws the final page with overall statistics and the
// remaining leftover inventory.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PlanResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Panel Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	a := result.Analysis

	summaryItems := []struct {
		label string
		value string
	}{
		{"Full Panels", fmt.Sprintf("%d", a.FullPanels)},
		{"Cut Panels", fmt.Sprintf("%d", a.CutPanels)},
		{"Leftover-Derived Panels", fmt.Sprintf("%d", a.LeftoverPanels)},
		{"Full Panels Opened For Cutting", fmt.Sprintf("%d", a.FullPanelsUsedForCutting)},
		{"Total Panels", fmt.Sprintf("%d", a.TotalPanels)},
		{"Remaining Leftovers", fmt.Sprintf("%d", len(result.Leftovers))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(70, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if len(result.Leftovers) > 0 {
		y += 5
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Unused Leftovers", "", 0, "L", false, 0, "")
		y += 9

		colWidths := []float64{30, 30, 35, 35, 30, 30}
		headers := []string{"ID", "Thickness", "Longer Face", "Shorter Face", "Left Edge", "Right Edge"}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6

		pdf.SetFont("Helvetica", "", 9)
		for i, l := range result.Leftovers {
			row := []string{
				l.ID,
				fmt.Sprintf("%.0f mm", l.WallThickness),
				fmt.Sprintf("%.0f mm", l.LongerFace),
				fmt.Sprintf("%.0f mm", l.ShorterFace),
				string(l.LeftEdge),
				string(l.RightEdge),
			}
			if i%2 == 0 {
				pdf.SetFillColor(245, 245, 245)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}
			xPos = marginLeft
			for j, cell := range row {
				pdf.SetXY(xPos, y)
				pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
				xPos += colWidths[j]
			}
			y += 6
			if y > pageHeight-marginBottom-20 {
				break
			}
		}
	}

	if len(result.WallErrors) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Rejected Walls", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, we := range result.WallErrors {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, fmt.Sprintf("- %s: %s", we.WallID, we.Message), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by WallPlan - Wall Panel Planner", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size for a bar of the given width.
func labelFontSize(w float64) float64 {
	switch {
	case math.Min(w, barHeight) > 40:
		return 8
	case math.Min(w, barHeight) > 20:
		return 7
	default:
		return 6
	}
}

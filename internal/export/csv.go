package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/panelwright/wallplan/internal/model"
)

// WriteManifestCSV writes the panel manifest as CSV rows.
func WriteManifestCSV(w io.Writer, result model.PlanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"wall_id", "application", "type", "width_mm", "length_mm", "joint", "leftover_id", "note"}); err != nil {
		return err
	}
	for _, rec := range result.Manifest {
		p := rec.Panel
		row := []string{
			rec.WallID,
			string(rec.Application),
			string(p.Kind),
			fmt.Sprintf("%.1f", p.EffectiveWidth()),
			fmt.Sprintf("%.1f", rec.Length),
			string(p.JointType),
			p.LeftoverID,
			p.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLeftoversCSV writes the remaining leftover inventory as CSV rows.
func WriteLeftoversCSV(w io.Writer, result model.PlanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "wall_thickness_mm", "longer_face_mm", "shorter_face_mm", "left_edge", "right_edge"}); err != nil {
		return err
	}
	for _, l := range result.Leftovers {
		row := []string{
			l.ID,
			fmt.Sprintf("%.1f", l.WallThickness),
			fmt.Sprintf("%.1f", l.LongerFace),
			fmt.Sprintf("%.1f", l.ShorterFace),
			string(l.LeftEdge),
			string(l.RightEdge),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the panel manifest to a CSV file.
func ExportCSV(path string, result model.PlanResult) error {
	if len(result.Manifest) == 0 {
		return fmt.Errorf("no panels to export")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteManifestCSV(f, result)
}

// ExportLeftoversCSV writes the leftover inventory to a CSV file.
func ExportLeftoversCSV(path string, result model.PlanResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteLeftoversCSV(f, result)
}

package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/panelwright/wallplan/internal/model"
)

// minSegmentLength is the shortest DXF segment accepted as a wall, in mm.
// CAD exports routinely contain sliver segments from snapped endpoints.
const minSegmentLength = 1.0

// ImportDXF imports walls from a DXF floor plan. Each LINE entity becomes a
// wall; LWPOLYLINE entities are broken into one wall per segment. Thickness,
// height, and application come from defaults since DXF lines carry no such
// attributes.
func ImportDXF(path string, defaults Defaults) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			start := model.Point2D{X: e.Start[0], Y: e.Start[1]}
			end := model.Point2D{X: e.End[0], Y: e.End[1]}
			addWall(&result, start, end, defaults)

		case *entity.LwPolyline:
			n := len(e.Vertices)
			if n < 2 {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			last := n - 1
			if e.Closed {
				last = n
			}
			for i := 0; i < last; i++ {
				v := e.Vertices[i]
				next := e.Vertices[(i+1)%n]
				start := model.Point2D{X: v[0], Y: v[1]}
				end := model.Point2D{X: next[0], Y: next[1]}
				addWall(&result, start, end, defaults)
			}

		default:
			// Unsupported entity types are silently skipped
		}
	}

	if len(result.Walls) == 0 {
		result.Errors = append(result.Errors, "No usable line segments found in DXF file")
	}

	return result
}

// addWall appends a wall built from a DXF segment, skipping slivers.
func addWall(result *ImportResult, start, end model.Point2D, defaults Defaults) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if math.Sqrt(dx*dx+dy*dy) < minSegmentLength {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped degenerate segment at (%.1f, %.1f)", start.X, start.Y))
		return
	}

	w := model.NewWall(start, end, defaults.Thickness, defaults.Height)
	w.Application = defaults.Application
	result.Walls = append(result.Walls, w)
}

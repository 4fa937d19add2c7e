package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ApplicationType tags which surface a wall's panels cover.
type ApplicationType string

const (
	ApplicationWall    ApplicationType = "wall"
	ApplicationCeiling ApplicationType = "ceiling"
)

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wall represents one straight wall segment in plan view. All dimensions in mm.
type Wall struct {
	ID          string          `json:"id"`
	Start       Point2D         `json:"start"`
	End         Point2D         `json:"end"`
	Thickness   float64         `json:"thickness"` // panel/wall material thickness
	Height      float64         `json:"height"`    // vertical extent, becomes panel length
	Application ApplicationType `json:"application"`
}

// NewWall creates a Wall with a generated ID.
func NewWall(start, end Point2D, thickness, height float64) Wall {
	return Wall{
		ID:          uuid.New().String()[:8],
		Start:       start,
		End:         end,
		Thickness:   thickness,
		Height:      height,
		Application: ApplicationWall,
	}
}

// Length returns the wall's run length in mm.
func (w Wall) Length() float64 {
	dx := w.End.X - w.Start.X
	dy := w.End.Y - w.Start.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Horizontal reports whether the wall runs horizontally: |dy| < |dx|.
// Ties and true diagonals classify as vertical. Diagonal walls therefore get
// their joint ends assigned on the Y axis, a known limitation.
func (w Wall) Horizontal() bool {
	return math.Abs(w.End.Y-w.Start.Y) < math.Abs(w.End.X-w.Start.X)
}

// LeftToRight reports whether a horizontal wall is drawn left to right.
func (w Wall) LeftToRight() bool {
	return w.End.X > w.Start.X
}

// BottomToTop reports whether a vertical wall is drawn bottom to top.
func (w Wall) BottomToTop() bool {
	return w.End.Y > w.Start.Y
}

// Validate checks the wall for degenerate or corrupt geometry. Walls that
// fail validation must be filtered out before planning.
func (w Wall) Validate() error {
	for _, v := range []float64{w.Start.X, w.Start.Y, w.End.X, w.End.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("wall %s: non-finite coordinate", w.ID)
		}
	}
	if math.Abs(w.End.X-w.Start.X) < PointEpsilon && math.Abs(w.End.Y-w.Start.Y) < PointEpsilon {
		return fmt.Errorf("wall %s: degenerate segment (start equals end)", w.ID)
	}
	if w.Thickness <= 0 {
		return fmt.Errorf("wall %s: thickness must be positive, got %.3f", w.ID, w.Thickness)
	}
	if w.Height <= 0 {
		return fmt.Errorf("wall %s: height must be positive, got %.3f", w.ID, w.Height)
	}
	return nil
}

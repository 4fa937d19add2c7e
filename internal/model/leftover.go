package model

import (
	"time"

	"github.com/google/uuid"
)

// Leftover is an offcut remnant retained for reuse on a later wall.
//
// ShorterFace is the usable length on a straight (butt) edge. LongerFace is
// the usable length measured to the outer tip of a 45 degree bevel when the
// left edge is mitred; the two differ by exactly the wall thickness while a
// bevel is active and are equal when both edges are straight.
type Leftover struct {
	ID            string   `json:"id"`
	WallThickness float64  `json:"wall_thickness"`
	LongerFace    float64  `json:"longer_face"`
	ShorterFace   float64  `json:"shorter_face"`
	LeftEdge      EdgeType `json:"left_edge"`
	RightEdge     EdgeType `json:"right_edge"`
	Created       time.Time `json:"created"`
}

// NewLeftover creates a leftover with a generated ID and creation timestamp.
func NewLeftover(thickness, longerFace, shorterFace float64, left, right EdgeType) Leftover {
	return Leftover{
		ID:            uuid.New().String()[:8],
		WallThickness: thickness,
		LongerFace:    longerFace,
		ShorterFace:   shorterFace,
		LeftEdge:      left,
		RightEdge:     right,
		Created:       time.Now(),
	}
}

// Usable reports whether the leftover still has material on both faces.
func (l Leftover) Usable() bool {
	return l.LongerFace > 0 && l.ShorterFace > 0
}

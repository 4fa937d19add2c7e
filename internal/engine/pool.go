package engine

import (
	"fmt"

	"github.com/panelwright/wallplan/internal/model"
)

// LeftoverPool is the mutable inventory of offcut remnants shared by every
// wall in one planning run. Insertion order is significant: matching is
// first-fit, so the earliest-donated compatible leftover always wins.
//
// The pool is not safe for concurrent use. Wall processing order determines
// which leftover a wall can consume, so callers must process walls in a
// stable order; anything parallel has to serialize pool access and preserve
// submission order or the plan output changes.
type LeftoverPool struct {
	items []model.Leftover
}

// NewLeftoverPool returns an empty pool.
func NewLeftoverPool() *LeftoverPool {
	return &LeftoverPool{}
}

// NewLeftoverPoolFrom seeds a pool with previously persisted leftovers,
// preserving their order. Unusable entries are dropped on entry.
func NewLeftoverPoolFrom(items []model.Leftover) *LeftoverPool {
	p := &LeftoverPool{}
	for _, l := range items {
		if l.Usable() {
			p.items = append(p.items, l)
		}
	}
	return p
}

// Len returns the number of leftovers currently pooled.
func (p *LeftoverPool) Len() int {
	return len(p.items)
}

// Items returns a snapshot copy of the pool contents in insertion order.
func (p *LeftoverPool) Items() []model.Leftover {
	out := make([]model.Leftover, len(p.items))
	copy(out, p.items)
	return out
}

// FindCompatible returns the first leftover that can donate a side panel of
// the needed width, or false. The leftover's thickness must equal the wall's
// exactly. A mitred need matches on the longer face regardless of the current
// left edge profile (a straight leftover can still be mitred on demand); a
// butt need requires a straight right edge and enough shorter face, since an
// already-mitred edge cannot serve a flush joint without re-cutting.
//
// The returned value is a copy; call Consume with its ID to take material.
func (p *LeftoverPool) FindCompatible(neededWidth, wallThickness float64, joint model.JointType) (model.Leftover, bool) {
	for i := range p.items {
		l := p.items[i]
		if l.WallThickness != wallThickness {
			continue
		}
		switch joint {
		case model.JointCut45:
			if l.LongerFace >= neededWidth {
				return l, true
			}
		case model.JointButtIn:
			if l.RightEdge == model.EdgeStraight && l.ShorterFace >= neededWidth {
				return l, true
			}
		}
	}
	return model.Leftover{}, false
}

// Consume takes cutWidth of material from the identified leftover, mutating
// it in place. Collapsed leftovers are removed afterwards.
//
// Consuming an unknown leftover is a programming bug and panics: a corrupted
// pool would silently miscalculate every subsequent wall.
func (p *LeftoverPool) Consume(id string, cutWidth, wallThickness float64, joint model.JointType) {
	idx := -1
	for i := range p.items {
		if p.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Sprintf("leftover pool: consume of unknown leftover %q", id))
	}

	l := &p.items[idx]
	if l.WallThickness != wallThickness {
		panic(fmt.Sprintf("leftover pool: leftover %q thickness %.1f consumed for wall thickness %.1f", id, l.WallThickness, wallThickness))
	}

	switch joint {
	case model.JointCut45:
		if l.LeftEdge == model.EdgeCut45 {
			// The existing bevel is consumed along with the cut; the fresh
			// cut face left behind is straight.
			l.LongerFace -= cutWidth
			l.ShorterFace = l.LongerFace
			l.LeftEdge = model.EdgeStraight
		} else {
			// Cutting a new bevel: the remnant keeps the complementary 45
			// profile, so its outer tip gains one wall thickness over the cut.
			l.LongerFace = l.LongerFace - cutWidth + wallThickness
			l.ShorterFace = l.LongerFace - wallThickness
			l.LeftEdge = model.EdgeCut45
		}
	case model.JointButtIn:
		l.LongerFace -= cutWidth
		l.ShorterFace = l.LongerFace
		l.RightEdge = model.EdgeStraight
	default:
		panic(fmt.Sprintf("leftover pool: consume with unknown joint type %q", joint))
	}

	p.cleanup()
}

// Donate appends a freshly created leftover to the end of the pool.
func (p *LeftoverPool) Donate(l model.Leftover) {
	p.items = append(p.items, l)
}

// cleanup drops leftovers whose faces have collapsed to zero or below.
func (p *LeftoverPool) cleanup() {
	kept := p.items[:0]
	for _, l := range p.items {
		if l.Usable() {
			kept = append(kept, l)
		}
	}
	p.items = kept
}

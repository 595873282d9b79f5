package triangulation

import (
	"fmt"

	"github.com/pradeep-pyro/triangle"

	"github.com/notargets/stlgrid/geometry"
)

// Ring triangulation strategy names, selectable in the parameter file
const (
	StrategyStrip    = "strip"
	StrategyDelaunay = "delaunay"
)

// RingStrategy triangulates the frame between an outer CCW rectangle and a
// concentric rectangular hole. Implementations must return the combined
// 8-vertex loop (outer then reversed inner) and a watertight cover of the
// frame region with the hole left open.
type RingStrategy interface {
	Name() string
	Ring(outer, inner [][2]float64) (combined [][2]float64, tris [][3]int32, err error)
}

// NewRingStrategy maps a strategy name to an implementation. The empty name
// selects the manual strip, which is the correctness baseline.
func NewRingStrategy(name string) (rs RingStrategy, err error) {
	switch name {
	case StrategyStrip, "":
		rs = StripStrategy{}
	case StrategyDelaunay:
		rs = DelaunayStrategy{}
	default:
		err = fmt.Errorf("%w: triangulation strategy must be %q or %q, got %q",
			geometry.ErrConfiguration, StrategyStrip, StrategyDelaunay, name)
	}
	return
}

// StripStrategy is the manual per-edge strip construction of TriangulateRing.
// It has a fixed, verified 8-triangle output for the nested-rectangle case
// and no external dependency.
type StripStrategy struct{}

func (StripStrategy) Name() string { return StrategyStrip }

func (StripStrategy) Ring(outer, inner [][2]float64) ([][2]float64, [][3]int32, error) {
	return TriangulateRing(outer, inner)
}

// DelaunayStrategy covers the frame with a constrained Delaunay
// triangulation (Shewchuk's Triangle via the pradeep-pyro bindings). Both
// rectangle loops become constraint segments and the hole interior is
// marked by a seed point at the inner rectangle's center.
type DelaunayStrategy struct{}

func (DelaunayStrategy) Name() string { return StrategyDelaunay }

func (DelaunayStrategy) Ring(outer, inner [][2]float64) (combined [][2]float64, tris [][3]int32, err error) {
	if combined, err = combineRingLoops(outer, inner); err != nil {
		return
	}
	segs := make([][2]int32, 0, 8)
	for i := int32(0); i < 4; i++ {
		next := (i + 1) % 4
		segs = append(segs,
			[2]int32{i, next},
			[2]int32{4 + i, 4 + next})
	}
	var holeU, holeV float64
	for _, p := range inner {
		holeU += p[0] / 4
		holeV += p[1] / 4
	}
	// The "Qzp" switches keep the input points intact, so the returned
	// vertices are the combined loop unchanged
	combined, tris = triangle.ConstrainedDelaunay(combined, segs, [][2]float64{{holeU, holeV}})
	return
}

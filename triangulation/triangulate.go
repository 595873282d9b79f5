package triangulation

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/stlgrid/geometry"
)

const degenerateTol = 1e-10

// TriangulateSolid splits a CCW rectangle into two triangles fanned from
// vertex 0: (0,1,2) and (0,2,3).
func TriangulateSolid(verts [][2]float64) (tris [][3]int32, err error) {
	if len(verts) != 4 {
		err = fmt.Errorf("%w: expected 4 rectangle vertices, got %d",
			geometry.ErrConfiguration, len(verts))
		return
	}
	tris = [][3]int32{
		{0, 1, 2},
		{0, 2, 3},
	}
	return
}

// TriangulateRing triangulates a rectangle with a concentric rectangular
// hole. Both loops arrive CCW; the inner loop is reversed to CW (hole
// orientation convention) and appended after the outer loop, so combined
// indices 0-3 are the outer corners and 4-7 the reversed inner corners.
//
// The frame between the loops is covered by a strip of two triangles per
// outer edge: for edge i with next=(i+1)%4, (i, 4+i, next) and
// (next, 4+i, 4+next). Eight triangles total, the hole is a true opening.
func TriangulateRing(outer, inner [][2]float64) (combined [][2]float64, tris [][3]int32, err error) {
	if combined, err = combineRingLoops(outer, inner); err != nil {
		return
	}
	tris = make([][3]int32, 0, 8)
	for i := int32(0); i < 4; i++ {
		next := (i + 1) % 4
		tris = append(tris,
			[3]int32{i, 4 + i, next},
			[3]int32{next, 4 + i, 4 + next})
	}
	return
}

// combineRingLoops validates both loops, reverses the inner loop to CW and
// concatenates outer ++ reversed(inner).
func combineRingLoops(outer, inner [][2]float64) (combined [][2]float64, err error) {
	if len(outer) != 4 || len(inner) != 4 {
		err = fmt.Errorf("%w: expected 4 outer and 4 inner vertices, got %d and %d",
			geometry.ErrConfiguration, len(outer), len(inner))
		return
	}
	combined = make([][2]float64, 0, 8)
	combined = append(combined, outer...)
	for i := 3; i >= 0; i-- {
		combined = append(combined, inner[i])
	}
	return
}

// TriangleNormal computes the unit normal of triangle (v0, v1, v2) by the
// right-hand rule on (v1-v0)x(v2-v0). A degenerate (collinear) triangle
// yields the zero vector rather than a division by ~zero.
func TriangleNormal(v0, v1, v2 r3.Vec) (normal r3.Vec) {
	normal = r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
	if r3.Norm(normal) <= degenerateTol {
		return r3.Vec{}
	}
	return r3.Unit(normal)
}

// FixWinding reorders each triangle's vertices so its normal agrees with
// targetNormal: when the dot product is negative the last two indices are
// swapped. Degenerate triangles have a zero normal, dot exactly 0, and are
// deliberately left unmodified.
func FixWinding(tris [][3]int32, verts []r3.Vec, targetNormal r3.Vec) (fixed [][3]int32) {
	fixed = make([][3]int32, len(tris))
	for n, tri := range tris {
		fixed[n] = tri
		normal := TriangleNormal(verts[tri[0]], verts[tri[1]], verts[tri[2]])
		if r3.Dot(normal, targetNormal) < 0 {
			fixed[n] = [3]int32{tri[0], tri[2], tri[1]}
		}
	}
	return
}

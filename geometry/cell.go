package geometry

import (
	"fmt"
)

// Inner rectangle sizing modes
const (
	SizeModeRelative = "relative" // inner half-dim = outer half-dim * s
	SizeModeAbsolute = "absolute" // inner half-dim = s / 2
)

// minHalfDim is the floor applied to inner half-dimensions. Requested
// zero/near-zero sizes are silently clamped up, never rejected.
const minHalfDim = 1e-10

// CellBounds computes the local bounds (u0, u1, v0, v1) of cell (i, j) in a
// nx x ny grid spanning a W x H rectangle centered at the local origin,
// shrunk on all sides by borderGap. Indices are not range-checked:
// out-of-range (i, j) deterministically produce bounds outside the nominal
// rectangle.
func CellBounds(i, j, nx, ny int, W, H, borderGap float64) (u0, u1, v0, v1 float64, err error) {
	var (
		du = W / float64(nx)
		dv = H / float64(ny)
	)
	u0 = -W/2 + float64(i)*du
	u1 = u0 + du
	v0 = -H/2 + float64(j)*dv
	v1 = v0 + dv
	if borderGap > 0 {
		u0 += borderGap
		u1 -= borderGap
		v0 += borderGap
		v1 -= borderGap
		if u1 <= u0 || v1 <= v0 {
			err = fmt.Errorf("%w: border gap %g too large for cell size %g x %g",
				ErrConfiguration, borderGap, du, dv)
			return
		}
	}
	return
}

// InnerRectangleSize computes the hole rectangle's half-dimensions from the
// outer half-dimensions and the (sx, sy) size parameters. The result is
// clamped per-axis to [1e-10, outer half-dimension].
func InnerRectangleSize(outerHalfWidth, outerHalfHeight, sx, sy float64, sizeMode string) (innerHalfWidth, innerHalfHeight float64, err error) {
	switch sizeMode {
	case SizeModeRelative:
		innerHalfWidth = outerHalfWidth * sx
		innerHalfHeight = outerHalfHeight * sy
	case SizeModeAbsolute:
		innerHalfWidth = sx / 2
		innerHalfHeight = sy / 2
	default:
		err = fmt.Errorf("%w: inner size mode must be %q or %q, got %q",
			ErrConfiguration, SizeModeRelative, SizeModeAbsolute, sizeMode)
		return
	}
	innerHalfWidth = clamp(innerHalfWidth, minHalfDim, outerHalfWidth)
	innerHalfHeight = clamp(innerHalfHeight, minHalfDim, outerHalfHeight)
	return
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

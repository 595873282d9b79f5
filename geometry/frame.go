package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrConfiguration marks invalid or out-of-range generation parameters.
// All parameter validation errors wrap this sentinel.
var ErrConfiguration = errors.New("invalid configuration")

const degenerateTol = 1e-10

// CoordinateFrame is an orthonormal (u, v, normal) basis for one of the
// three axis-aligned planes, optionally rotated in-plane. It maps local 2D
// panel coordinates into 3D world space and is immutable once constructed.
type CoordinateFrame struct {
	Orientation string // "x", "y" or "z" - the axis the normal points along
	NormalSign  int
	RotateDeg   float64
	uAxis       r3.Vec
	vAxis       r3.Vec
	normal      r3.Vec
}

func NewCoordinateFrame(orientation string, normalSign int, rotateDeg float64) (cf *CoordinateFrame, err error) {
	cf = &CoordinateFrame{
		Orientation: orientation,
		NormalSign:  normalSign,
		RotateDeg:   rotateDeg,
	}
	if normalSign != 1 && normalSign != -1 {
		return nil, fmt.Errorf("%w: normal sign must be +1 or -1, got %d",
			ErrConfiguration, normalSign)
	}
	ns := float64(normalSign)
	var uBase, vBase r3.Vec
	switch orientation {
	case "z":
		uBase = r3.Vec{X: 1}
		vBase = r3.Vec{Y: 1}
		cf.normal = r3.Vec{Z: ns}
	case "x":
		uBase = r3.Vec{Y: 1}
		vBase = r3.Vec{Z: 1}
		cf.normal = r3.Vec{X: ns}
	case "y":
		uBase = r3.Vec{X: 1}
		vBase = r3.Vec{Z: 1}
		cf.normal = r3.Vec{Y: ns}
	default:
		return nil, fmt.Errorf("%w: orientation must be \"x\", \"y\" or \"z\", got %q",
			ErrConfiguration, orientation)
	}
	if math.Abs(rotateDeg) > degenerateTol {
		var (
			theta  = rotateDeg * math.Pi / 180.
			cosRot = math.Cos(theta)
			sinRot = math.Sin(theta)
		)
		// Rotation stays within the u-v plane, the normal is unaffected
		cf.uAxis = r3.Add(r3.Scale(cosRot, uBase), r3.Scale(sinRot, vBase))
		cf.vAxis = r3.Add(r3.Scale(-sinRot, uBase), r3.Scale(cosRot, vBase))
	} else {
		cf.uAxis = uBase
		cf.vAxis = vBase
	}
	return cf, nil
}

// LocalToWorld maps local plane coordinates (u, v) to a world position:
// origin + u*uAxis + v*vAxis.
func (cf *CoordinateFrame) LocalToWorld(u, v float64, origin r3.Vec) r3.Vec {
	return r3.Add(origin, r3.Add(r3.Scale(u, cf.uAxis), r3.Scale(v, cf.vAxis)))
}

func (cf *CoordinateFrame) UAxis() r3.Vec { return cf.uAxis }

func (cf *CoordinateFrame) VAxis() r3.Vec { return cf.vAxis }

// Normal returns the plane's unit normal, constant for the frame's lifetime.
func (cf *CoordinateFrame) Normal() r3.Vec { return cf.normal }

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func vecNear(t *testing.T, expected, got r3.Vec, tol float64) {
	t.Helper()
	assert.InDelta(t, expected.X, got.X, tol)
	assert.InDelta(t, expected.Y, got.Y, tol)
	assert.InDelta(t, expected.Z, got.Z, tol)
}

func TestCoordinateFrame(t *testing.T) {
	{ // Orthonormal basis for every orientation and normal sign
		for _, orientation := range []string{"x", "y", "z"} {
			for _, sign := range []int{1, -1} {
				for _, rot := range []float64{0, 17.5, 90, -33} {
					cf, err := NewCoordinateFrame(orientation, sign, rot)
					assert.NoError(t, err)
					assert.InDelta(t, 1., r3.Norm(cf.UAxis()), 1.e-12)
					assert.InDelta(t, 1., r3.Norm(cf.VAxis()), 1.e-12)
					assert.InDelta(t, 1., r3.Norm(cf.Normal()), 1.e-12)
					assert.InDelta(t, 0., r3.Dot(cf.UAxis(), cf.VAxis()), 1.e-12)
					assert.InDelta(t, 0., r3.Dot(cf.UAxis(), cf.Normal()), 1.e-12)
					assert.InDelta(t, 0., r3.Dot(cf.VAxis(), cf.Normal()), 1.e-12)
				}
			}
		}
	}
	{ // Normal is the base vector scaled by the sign, rotation never moves it
		cf, _ := NewCoordinateFrame("x", -1, 45)
		vecNear(t, r3.Vec{X: -1}, cf.Normal(), 1.e-12)
		cf, _ = NewCoordinateFrame("y", 1, 123)
		vecNear(t, r3.Vec{Y: 1}, cf.Normal(), 1.e-12)
		cf, _ = NewCoordinateFrame("z", -1, 0)
		vecNear(t, r3.Vec{Z: -1}, cf.Normal(), 1.e-12)
	}
	{ // Zero rotation keeps the base axes exactly
		cf, _ := NewCoordinateFrame("z", 1, 0)
		assert.Equal(t, r3.Vec{X: 1}, cf.UAxis())
		assert.Equal(t, r3.Vec{Y: 1}, cf.VAxis())
	}
	{ // 90 degrees maps u onto the v base direction and v onto -u
		cf, _ := NewCoordinateFrame("z", 1, 90)
		vecNear(t, r3.Vec{Y: 1}, cf.UAxis(), 1.e-12)
		vecNear(t, r3.Vec{X: -1}, cf.VAxis(), 1.e-12)
	}
	{ // LocalToWorld is origin + u*uAxis + v*vAxis
		cf, _ := NewCoordinateFrame("z", 1, 0)
		world := cf.LocalToWorld(4, 5, r3.Vec{X: 1, Y: 2, Z: 3})
		vecNear(t, r3.Vec{X: 5, Y: 7, Z: 3}, world, 1.e-12)
	}
	{ // x orientation places u along Y and v along Z
		cf, _ := NewCoordinateFrame("x", 1, 0)
		world := cf.LocalToWorld(2, 3, r3.Vec{})
		vecNear(t, r3.Vec{Y: 2, Z: 3}, world, 1.e-12)
	}
	{ // Invalid orientation and normal sign are configuration errors
		_, err := NewCoordinateFrame("w", 1, 0)
		assert.ErrorIs(t, err, ErrConfiguration)
		_, err = NewCoordinateFrame("z", 2, 0)
		assert.ErrorIs(t, err, ErrConfiguration)
		_, err = NewCoordinateFrame("z", 0, 0)
		assert.ErrorIs(t, err, ErrConfiguration)
	}
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellBounds(t *testing.T) {
	{ // First cell of a 2x2 grid over a 4x6 rectangle
		u0, u1, v0, v1, err := CellBounds(0, 0, 2, 2, 4, 6, 0)
		assert.NoError(t, err)
		assert.InDelta(t, -2., u0, 1.e-12)
		assert.InDelta(t, 0., u1, 1.e-12)
		assert.InDelta(t, -3., v0, 1.e-12)
		assert.InDelta(t, 0., v1, 1.e-12)
	}
	{ // Border gap shrinks all four bounds inward
		u0, u1, v0, v1, err := CellBounds(0, 0, 1, 1, 2, 2, 0.2)
		assert.NoError(t, err)
		assert.InDelta(t, -0.8, u0, 1.e-12)
		assert.InDelta(t, 0.8, u1, 1.e-12)
		assert.InDelta(t, -0.8, v0, 1.e-12)
		assert.InDelta(t, 0.8, v1, 1.e-12)
	}
	{ // A gap consuming the whole cell is a configuration error
		_, _, _, _, err := CellBounds(0, 0, 2, 2, 4, 6, 1.0)
		assert.ErrorIs(t, err, ErrConfiguration)
		_, _, _, _, err = CellBounds(0, 0, 1, 1, 2, 2, 1.0)
		assert.ErrorIs(t, err, ErrConfiguration)
	}
	{ // Out-of-range indices are deterministic, not checked
		u0, u1, _, _, err := CellBounds(2, 0, 2, 2, 4, 6, 0)
		assert.NoError(t, err)
		assert.InDelta(t, 2., u0, 1.e-12)
		assert.InDelta(t, 4., u1, 1.e-12)
	}
}

func TestInnerRectangleSize(t *testing.T) {
	{ // Relative mode scales the outer half-dimensions
		hw, hh, err := InnerRectangleSize(2, 3, 0.5, 0.8, SizeModeRelative)
		assert.NoError(t, err)
		assert.InDelta(t, 1.0, hw, 1.e-12)
		assert.InDelta(t, 2.4, hh, 1.e-12)
	}
	{ // Absolute mode halves the requested full size
		hw, hh, err := InnerRectangleSize(2, 3, 1.5, 2.0, SizeModeAbsolute)
		assert.NoError(t, err)
		assert.InDelta(t, 0.75, hw, 1.e-12)
		assert.InDelta(t, 1.0, hh, 1.e-12)
	}
	{ // Result never exceeds the outer half-dimension
		hw, hh, err := InnerRectangleSize(1, 1, 3.0, 5.0, SizeModeAbsolute)
		assert.NoError(t, err)
		assert.InDelta(t, 1.0, hw, 1.e-12)
		assert.InDelta(t, 1.0, hh, 1.e-12)
	}
	{ // Near-zero request is clamped up to the floor, not rejected
		hw, hh, err := InnerRectangleSize(1, 1, 1.e-15, 1.e-15, SizeModeRelative)
		assert.NoError(t, err)
		assert.Equal(t, 1.e-10, hw)
		assert.Equal(t, 1.e-10, hh)
	}
	{ // Unrecognized mode is a configuration error
		_, _, err := InnerRectangleSize(1, 1, 0.5, 0.5, "fractional")
		assert.ErrorIs(t, err, ErrConfiguration)
	}
}

func TestRectangleVertices(t *testing.T) {
	verts := RectangleVertices(1, 2, 0.5, 0.25)
	assert.Equal(t, [][2]float64{
		{0.5, 1.75}, // bottom-left
		{1.5, 1.75}, // bottom-right
		{1.5, 2.25}, // top-right
		{0.5, 2.25}, // top-left
	}, verts)
}

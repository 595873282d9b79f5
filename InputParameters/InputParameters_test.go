package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/stlgrid/geometry"
)

func validParameters() *Parameters {
	ip := NewParameters()
	ip.Nx, ip.Ny = 3, 2
	ip.Width, ip.Height = 10, 8
	return ip
}

func TestParse(t *testing.T) {
	ip := NewParameters()
	data := []byte(`
Title: "Laser Grid"
Nx: 4
Ny: 3
Width: 12.
Height: 9.
Orientation: x
NormalSign: -1
Sx: 0.25
Sy: 0.75
Origin: [1., 2., 3.]
STLAscii: true
`)
	assert.NoError(t, ip.Parse(data))
	assert.Equal(t, "Laser Grid", ip.Title)
	assert.Equal(t, 4, ip.Nx)
	assert.Equal(t, 3, ip.Ny)
	assert.Equal(t, 12., ip.Width)
	assert.Equal(t, "x", ip.Orientation)
	assert.Equal(t, -1, ip.NormalSign)
	assert.Equal(t, [3]float64{1, 2, 3}, ip.Origin)
	assert.True(t, ip.STLAscii)
	// Keys absent from the file keep their defaults
	assert.Equal(t, "output", ip.OutDir)
	assert.Equal(t, geometry.SizeModeRelative, ip.InnerSizeMode)
	assert.NoError(t, ip.Validate())
}

func TestParseExampleFile(t *testing.T) {
	ip := NewParameters()
	assert.NoError(t, ip.Parse([]byte(ExampleFile)))
	assert.NoError(t, ip.Validate())
	assert.Equal(t, 3, ip.Nx)
	assert.Equal(t, 2, ip.Ny)
	assert.Equal(t, 0.7, ip.Sx)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validParameters().Validate())

	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero nx", func(ip *Parameters) { ip.Nx = 0 }},
		{"negative ny", func(ip *Parameters) { ip.Ny = -1 }},
		{"zero width", func(ip *Parameters) { ip.Width = 0 }},
		{"negative height", func(ip *Parameters) { ip.Height = -2 }},
		{"zero sx", func(ip *Parameters) { ip.Sx = 0 }},
		{"negative sy", func(ip *Parameters) { ip.Sy = -0.5 }},
		{"relative sx over 1", func(ip *Parameters) { ip.Sx = 1.5 }},
		{"negative border gap", func(ip *Parameters) { ip.BorderGap = -0.1 }},
		{"border gap too large", func(ip *Parameters) { ip.BorderGap = 2.0 }},
		{"bad orientation", func(ip *Parameters) { ip.Orientation = "q" }},
		{"bad normal sign", func(ip *Parameters) { ip.NormalSign = 0 }},
		{"bad size mode", func(ip *Parameters) { ip.InnerSizeMode = "scaled" }},
		{"bad triangulation", func(ip *Parameters) { ip.Triangulation = "earcut" }},
		{"solid pattern missing {j}", func(ip *Parameters) { ip.SolidPattern = "solid_{i}.stl" }},
		{"ring pattern missing {i}", func(ip *Parameters) { ip.RingPattern = "ring_{j}.stl" }},
	}
	for _, tc := range cases {
		ip := validParameters()
		tc.mutate(ip)
		assert.ErrorIs(t, ip.Validate(), geometry.ErrConfiguration, tc.name)
	}

	{ // Absolute mode allows sizes over 1, they clamp at generation time
		ip := validParameters()
		ip.InnerSizeMode = geometry.SizeModeAbsolute
		ip.Sx, ip.Sy = 5, 5
		assert.NoError(t, ip.Validate())
	}
}

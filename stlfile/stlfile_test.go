package stlfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	squareVerts = []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	squareTris = [][3]int32{{0, 1, 2}, {0, 2, 3}}
	up         = r3.Vec{Z: 1}
)

func TestWriteBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel_0_0.stl")
	assert.NoError(t, Write(path, squareVerts, squareTris, up, false))

	{ // Byte-exact layout: 80-byte header + 4-byte count + 50 bytes per triangle
		fi, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, int64(84+50*len(squareTris)), fi.Size())
	}

	header, facets, err := ReadBinaryFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(facets))
	assert.True(t, strings.HasPrefix(string(header[:]), "STL generated by stlgrid panel_0_0"))
	for _, f := range facets {
		// Facet normals are recomputed from the vertices, CCW square -> +Z
		assert.Equal(t, [3]float32{0, 0, 1}, f.Normal)
	}
	assert.Equal(t, [3]float32{0, 0, 0}, facets[0].Verts[0])
	assert.Equal(t, [3]float32{1, 0, 0}, facets[0].Verts[1])
	assert.Equal(t, [3]float32{1, 1, 0}, facets[0].Verts[2])
}

func TestWriteBinaryDegenerateFallback(t *testing.T) {
	// Collinear triangle: the persisted facet normal is the target normal,
	// never the zero vector
	verts := []r3.Vec{{}, {X: 1}, {X: 2}}
	path := filepath.Join(t.TempDir(), "degen.stl")
	target := r3.Vec{X: 0, Y: 0, Z: -1}
	assert.NoError(t, Write(path, verts, [][3]int32{{0, 1, 2}}, target, false))
	_, facets, err := ReadBinaryFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(facets))
	assert.Equal(t, [3]float32{0, 0, -1}, facets[0].Normal)
}

func TestWriteASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel_1_2.stl")
	assert.NoError(t, Write(path, squareVerts, squareTris, up, true))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "solid panel_1_2\n"))
	assert.True(t, strings.HasSuffix(text, "endsolid panel_1_2\n"))
	assert.Equal(t, len(squareTris), strings.Count(text, "facet normal"))
	assert.Equal(t, 3*len(squareTris), strings.Count(text, "      vertex"))
	assert.Equal(t, len(squareTris), strings.Count(text, "    outer loop\n"))
	// Scientific notation with 6 digits after the decimal point
	assert.Contains(t, text, "facet normal 0.000000e+00 0.000000e+00 1.000000e+00")
	assert.Contains(t, text, "vertex 1.000000e+00 1.000000e+00 0.000000e+00")
}

func TestStem(t *testing.T) {
	assert.Equal(t, "cell_ring_x0_y1", Stem("/tmp/out/cell_ring_x0_y1.stl"))
	assert.Equal(t, "noext", Stem("noext"))
}

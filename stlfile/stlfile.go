// Package stlfile serializes triangle meshes in the stereolithography (STL)
// file format, binary or ASCII.
package stlfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	headerSize    = 80 // fixed ASCII header, bytes 0-79
	recordSize    = 50 // normal + 3 vertices as float32 triples + attribute count
	signature     = "STL generated by stlgrid"
	degenerateTol = 1e-10 // below this cross-product magnitude the facet is degenerate
)

// Write serializes the mesh to path. Each facet's normal is recomputed from
// its own vertices; a degenerate facet falls back to targetNormal so the
// persisted normal is never the zero vector. The solid name is the file's
// base name without extension.
func Write(path string, verts []r3.Vec, tris [][3]int32, targetNormal r3.Vec, ascii bool) (err error) {
	var file *os.File
	if file, err = os.Create(path); err != nil {
		return fmt.Errorf("unable to create STL file %s: %w", path, err)
	}
	w := bufio.NewWriter(file)
	if ascii {
		err = writeASCII(w, Stem(path), verts, tris, targetNormal)
	} else {
		err = writeBinary(w, Stem(path), verts, tris, targetNormal)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = fmt.Errorf("unable to write STL file %s: %w", path, err)
	}
	return
}

// Stem returns the file's base name without its extension, used as the STL
// solid name and embedded in the binary header.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func normalFor(v0, v1, v2, fallback r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
	if r3.Norm(n) <= degenerateTol {
		return fallback
	}
	return r3.Unit(n)
}

func writeASCII(w *bufio.Writer, name string, verts []r3.Vec, tris [][3]int32, targetNormal r3.Vec) (err error) {
	if _, err = fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return
	}
	for _, tri := range tris {
		var (
			v0 = verts[tri[0]]
			v1 = verts[tri[1]]
			v2 = verts[tri[2]]
			n  = normalFor(v0, v1, v2, targetNormal)
		)
		fmt.Fprintf(w, "  facet normal %.6e %.6e %.6e\n", n.X, n.Y, n.Z)
		fmt.Fprintf(w, "    outer loop\n")
		fmt.Fprintf(w, "      vertex %.6e %.6e %.6e\n", v0.X, v0.Y, v0.Z)
		fmt.Fprintf(w, "      vertex %.6e %.6e %.6e\n", v1.X, v1.Y, v1.Z)
		fmt.Fprintf(w, "      vertex %.6e %.6e %.6e\n", v2.X, v2.Y, v2.Z)
		fmt.Fprintf(w, "    endloop\n")
		if _, err = fmt.Fprintf(w, "  endfacet\n"); err != nil {
			return
		}
	}
	_, err = fmt.Fprintf(w, "endsolid %s\n", name)
	return
}

func writeBinary(w *bufio.Writer, name string, verts []r3.Vec, tris [][3]int32, targetNormal r3.Vec) (err error) {
	var header [headerSize + 4]byte
	text := signature + " " + name
	if len(text) > headerSize {
		text = text[:headerSize]
	}
	copy(header[:headerSize], text)
	for i := len(text); i < headerSize; i++ {
		header[i] = ' '
	}
	binary.LittleEndian.PutUint32(header[headerSize:], uint32(len(tris)))
	if _, err = w.Write(header[:]); err != nil {
		return
	}
	var buf [recordSize]byte
	for _, tri := range tris {
		var (
			v0 = verts[tri[0]]
			v1 = verts[tri[1]]
			v2 = verts[tri[2]]
			n  = normalFor(v0, v1, v2, targetNormal)
		)
		put3F32(buf[0:], n)
		put3F32(buf[12:], v0)
		put3F32(buf[24:], v1)
		put3F32(buf[36:], v2)
		binary.LittleEndian.PutUint16(buf[48:], 0) // attribute byte count
		if _, err = w.Write(buf[:]); err != nil {
			return
		}
	}
	return
}

func put3F32(b []byte, v r3.Vec) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

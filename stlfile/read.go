package stlfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Facet is one decoded binary STL record.
type Facet struct {
	Normal [3]float32
	Verts  [3][3]float32
}

// ReadBinary decodes a binary STL stream: the 80-byte header, the declared
// triangle count and one 50-byte record per triangle.
func ReadBinary(r io.Reader) (header [headerSize]byte, facets []Facet, err error) {
	if _, err = io.ReadFull(r, header[:]); err != nil {
		err = fmt.Errorf("unable to read STL header: %w", err)
		return
	}
	var count uint32
	if err = binary.Read(r, binary.LittleEndian, &count); err != nil {
		err = fmt.Errorf("unable to read STL triangle count: %w", err)
		return
	}
	facets = make([]Facet, count)
	var buf [recordSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err = io.ReadFull(r, buf[:]); err != nil {
			err = fmt.Errorf("unable to read STL facet %d of %d: %w", i+1, count, err)
			return
		}
		get3F32(buf[0:], &facets[i].Normal)
		get3F32(buf[12:], &facets[i].Verts[0])
		get3F32(buf[24:], &facets[i].Verts[1])
		get3F32(buf[36:], &facets[i].Verts[2])
	}
	return
}

// ReadBinaryFile decodes the binary STL file at path.
func ReadBinaryFile(path string) (header [headerSize]byte, facets []Facet, err error) {
	var file *os.File
	if file, err = os.Open(path); err != nil {
		return
	}
	defer file.Close()
	return ReadBinary(file)
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

// Package generator orchestrates STL grid generation: it walks the cell
// grid, builds the solid and ring meshes for each cell and writes two STL
// files per cell.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/stlgrid/InputParameters"
	"github.com/notargets/stlgrid/geometry"
	"github.com/notargets/stlgrid/stlfile"
	"github.com/notargets/stlgrid/triangulation"
)

type GridGenerator struct {
	Params   *InputParameters.Parameters
	Frame    *geometry.CoordinateFrame
	Origin   r3.Vec
	Strategy triangulation.RingStrategy
	log      *zap.SugaredLogger
}

// NewGridGenerator validates the full parameter set and constructs the
// coordinate frame and ring strategy. Nothing touches the filesystem until
// GenerateAll or GenerateParallel is called.
func NewGridGenerator(ip *InputParameters.Parameters, log *zap.SugaredLogger) (gg *GridGenerator, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	gg = &GridGenerator{
		Params: ip,
		Origin: r3.Vec{X: ip.Origin[0], Y: ip.Origin[1], Z: ip.Origin[2]},
		log:    log,
	}
	if gg.Frame, err = geometry.NewCoordinateFrame(ip.Orientation, ip.NormalSign, ip.RotateDeg); err != nil {
		return nil, err
	}
	if gg.Strategy, err = triangulation.NewRingStrategy(ip.Triangulation); err != nil {
		return nil, err
	}
	return
}

// ensureOutDir idempotently creates the output directory before any writes.
func (gg *GridGenerator) ensureOutDir() (err error) {
	if err = os.MkdirAll(gg.Params.OutDir, 0o755); err != nil {
		err = fmt.Errorf("unable to create output directory %s: %w", gg.Params.OutDir, err)
	}
	return
}

// GenerateAll writes the solid and ring STL files for every cell in
// row-major order (all j for a given i) and returns the number of files
// written. The first write error aborts the run; files already written are
// left in place.
func (gg *GridGenerator) GenerateAll() (filesWritten int, err error) {
	if err = gg.ensureOutDir(); err != nil {
		return
	}
	for i := 0; i < gg.Params.Nx; i++ {
		for j := 0; j < gg.Params.Ny; j++ {
			if err = gg.GenerateCell(i, j); err != nil {
				return
			}
			filesWritten += 2
		}
	}
	return
}

// GenerateCell writes cell (i, j)'s solid panel and ring panel files.
func (gg *GridGenerator) GenerateCell(i, j int) (err error) {
	if err = gg.generateSolid(i, j); err != nil {
		return
	}
	return gg.generateRing(i, j)
}

// cellRects computes cell (i, j)'s outer rectangle (center and half
// extents) and the inner hole's half extents.
func (gg *GridGenerator) cellRects(i, j int) (centerU, centerV, outerHW, outerHH, innerHW, innerHH float64, err error) {
	var (
		ip             = gg.Params
		u0, u1, v0, v1 float64
	)
	if u0, u1, v0, v1, err = geometry.CellBounds(i, j, ip.Nx, ip.Ny, ip.Width, ip.Height, ip.BorderGap); err != nil {
		return
	}
	centerU, centerV = (u0+u1)/2, (v0+v1)/2
	outerHW, outerHH = (u1-u0)/2, (v1-v0)/2
	innerHW, innerHH, err = geometry.InnerRectangleSize(outerHW, outerHH, ip.Sx, ip.Sy, ip.InnerSizeMode)
	return
}

func (gg *GridGenerator) generateSolid(i, j int) (err error) {
	centerU, centerV, outerHW, outerHH, _, _, err := gg.cellRects(i, j)
	if err != nil {
		return
	}
	verts2d := geometry.RectangleVertices(centerU, centerV, outerHW, outerHH)
	tris, err := triangulation.TriangulateSolid(verts2d)
	if err != nil {
		return
	}
	return gg.writeMesh(gg.Params.SolidPattern, i, j, verts2d, tris)
}

func (gg *GridGenerator) generateRing(i, j int) (err error) {
	centerU, centerV, outerHW, outerHH, innerHW, innerHH, err := gg.cellRects(i, j)
	if err != nil {
		return
	}
	var (
		outer2d = geometry.RectangleVertices(centerU, centerV, outerHW, outerHH)
		inner2d = geometry.RectangleVertices(centerU, centerV, innerHW, innerHH)
	)
	combined2d, tris, err := gg.Strategy.Ring(outer2d, inner2d)
	if err != nil {
		return
	}
	return gg.writeMesh(gg.Params.RingPattern, i, j, combined2d, tris)
}

// writeMesh lifts the 2D vertices into world space, normalizes the winding
// against the frame normal and writes the STL file.
func (gg *GridGenerator) writeMesh(pattern string, i, j int, verts2d [][2]float64, tris [][3]int32) (err error) {
	verts3d := make([]r3.Vec, len(verts2d))
	for n, v := range verts2d {
		verts3d[n] = gg.Frame.LocalToWorld(v[0], v[1], gg.Origin)
	}
	targetNormal := gg.Frame.Normal()
	tris = triangulation.FixWinding(tris, verts3d, targetNormal)
	path := filepath.Join(gg.Params.OutDir, CellFilename(pattern, i, j))
	if err = stlfile.Write(path, verts3d, tris, targetNormal, gg.Params.STLAscii); err != nil {
		return
	}
	gg.log.Debugw("wrote STL file", "path", path, "triangles", len(tris))
	return
}

// CellFilename substitutes the cell indices into a filename pattern
// containing {i} and {j} placeholders.
func CellFilename(pattern string, i, j int) string {
	name := strings.ReplaceAll(pattern, "{i}", strconv.Itoa(i))
	return strings.ReplaceAll(name, "{j}", strconv.Itoa(j))
}

// CellInfo describes one cell's computed geometry without writing files.
type CellInfo struct {
	I, J        int
	LocalBounds [4]float64 // u0, u1, v0, v1
	LocalCenter [2]float64
	WorldCenter r3.Vec
	OuterSize   [2]float64 // full width and height, not half extents
	InnerSize   [2]float64
	Orientation string
	Normal      r3.Vec
}

// CellInfo is a pure introspection query for cell (i, j), usable for
// preview and validation. Indices are not range-checked.
func (gg *GridGenerator) CellInfo(i, j int) (info CellInfo, err error) {
	var (
		ip             = gg.Params
		u0, u1, v0, v1 float64
	)
	if u0, u1, v0, v1, err = geometry.CellBounds(i, j, ip.Nx, ip.Ny, ip.Width, ip.Height, ip.BorderGap); err != nil {
		return
	}
	centerU, centerV := (u0+u1)/2, (v0+v1)/2
	outerHW, outerHH := (u1-u0)/2, (v1-v0)/2
	innerHW, innerHH, err := geometry.InnerRectangleSize(outerHW, outerHH, ip.Sx, ip.Sy, ip.InnerSizeMode)
	if err != nil {
		return
	}
	info = CellInfo{
		I:           i,
		J:           j,
		LocalBounds: [4]float64{u0, u1, v0, v1},
		LocalCenter: [2]float64{centerU, centerV},
		WorldCenter: gg.Frame.LocalToWorld(centerU, centerV, gg.Origin),
		OuterSize:   [2]float64{2 * outerHW, 2 * outerHH},
		InnerSize:   [2]float64{2 * innerHW, 2 * innerHH},
		Orientation: ip.Orientation,
		Normal:      gg.Frame.Normal(),
	}
	return
}

func (info CellInfo) Print() {
	fmt.Printf("Cell (%d, %d):\n", info.I, info.J)
	fmt.Printf("  Local bounds:  (%g, %g, %g, %g)\n",
		info.LocalBounds[0], info.LocalBounds[1], info.LocalBounds[2], info.LocalBounds[3])
	fmt.Printf("  Local center:  (%g, %g)\n", info.LocalCenter[0], info.LocalCenter[1])
	fmt.Printf("  World center:  (%g, %g, %g)\n", info.WorldCenter.X, info.WorldCenter.Y, info.WorldCenter.Z)
	fmt.Printf("  Outer size:    %g x %g\n", info.OuterSize[0], info.OuterSize[1])
	fmt.Printf("  Inner size:    %g x %g\n", info.InnerSize[0], info.InnerSize[1])
	fmt.Printf("  Normal:        (%g, %g, %g)\n", info.Normal.X, info.Normal.Y, info.Normal.Z)
}

package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/stlgrid/geometry"
	"github.com/notargets/stlgrid/triangulation"
)

// Parameters obtained from the YAML input file and/or command line flags
type Parameters struct {
	Title         string     `yaml:"Title"`
	Nx            int        `yaml:"Nx"`
	Ny            int        `yaml:"Ny"`
	Width         float64    `yaml:"Width"`
	Height        float64    `yaml:"Height"`
	Orientation   string     `yaml:"Orientation"`
	NormalSign    int        `yaml:"NormalSign"`
	RotateDeg     float64    `yaml:"RotateDeg"`
	Sx            float64    `yaml:"Sx"`
	Sy            float64    `yaml:"Sy"`
	InnerSizeMode string     `yaml:"InnerSizeMode"`
	Origin        [3]float64 `yaml:"Origin"`
	BorderGap     float64    `yaml:"BorderGap"`
	OutDir        string     `yaml:"OutDir"`
	SolidPattern  string     `yaml:"SolidPattern"`
	RingPattern   string     `yaml:"RingPattern"`
	STLAscii      bool       `yaml:"STLAscii"`
	Triangulation string     `yaml:"Triangulation"`
}

// NewParameters returns the default parameter set: a hole of half the cell
// size, z-up plane at the world origin, binary STL into ./output.
func NewParameters() *Parameters {
	return &Parameters{
		Title:         "STL Grid",
		Nx:            1,
		Ny:            1,
		Orientation:   "z",
		NormalSign:    1,
		Sx:            0.5,
		Sy:            0.5,
		InnerSizeMode: geometry.SizeModeRelative,
		OutDir:        "output",
		SolidPattern:  "cell_solid_x{i}_y{j}.stl",
		RingPattern:   "cell_ring_x{i}_y{j}.stl",
		Triangulation: triangulation.StrategyStrip,
	}
}

func (ip *Parameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate checks every parameter eagerly so that generation either starts
// with a fully valid configuration or not at all.
func (ip *Parameters) Validate() (err error) {
	wrap := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", geometry.ErrConfiguration, fmt.Sprintf(format, args...))
	}
	if ip.Nx < 1 || ip.Ny < 1 {
		return wrap("Nx and Ny must be >= 1, got %d x %d", ip.Nx, ip.Ny)
	}
	if ip.Width <= 0 || ip.Height <= 0 {
		return wrap("Width and Height must be > 0, got %g x %g", ip.Width, ip.Height)
	}
	if ip.Sx <= 0 || ip.Sy <= 0 {
		return wrap("Sx and Sy must be > 0, got %g, %g", ip.Sx, ip.Sy)
	}
	if ip.InnerSizeMode == geometry.SizeModeRelative && (ip.Sx > 1 || ip.Sy > 1) {
		return wrap("for relative inner size mode, Sx and Sy must be <= 1, got %g, %g", ip.Sx, ip.Sy)
	}
	if ip.BorderGap < 0 {
		return wrap("BorderGap must be >= 0, got %g", ip.BorderGap)
	}
	// Frame construction validates Orientation and NormalSign
	if _, err = geometry.NewCoordinateFrame(ip.Orientation, ip.NormalSign, ip.RotateDeg); err != nil {
		return
	}
	// Inner sizing validates InnerSizeMode
	if _, _, err = geometry.InnerRectangleSize(1, 1, ip.Sx, ip.Sy, ip.InnerSizeMode); err != nil {
		return
	}
	// A border gap that consumes a whole cell is a configuration error, not
	// a generation-time surprise
	if _, _, _, _, err = geometry.CellBounds(0, 0, ip.Nx, ip.Ny, ip.Width, ip.Height, ip.BorderGap); err != nil {
		return
	}
	if _, err = triangulation.NewRingStrategy(ip.Triangulation); err != nil {
		return
	}
	for _, pattern := range []string{ip.SolidPattern, ip.RingPattern} {
		if !strings.Contains(pattern, "{i}") || !strings.Contains(pattern, "{j}") {
			return wrap("filename pattern %q must contain both {i} and {j} placeholders", pattern)
		}
	}
	return nil
}

func (ip *Parameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Grid Dimensions\n", ip.Nx, ip.Ny)
	fmt.Printf("%g x %g\t\t= Rectangle Size\n", ip.Width, ip.Height)
	fmt.Printf("[%s] (%+d)\t\t= Orientation (Normal Sign)\n", ip.Orientation, ip.NormalSign)
	fmt.Printf("%8.3f\t\t= Rotation (degrees)\n", ip.RotateDeg)
	fmt.Printf("(%g, %g, %g)\t= Origin\n", ip.Origin[0], ip.Origin[1], ip.Origin[2])
	fmt.Printf("%g x %g [%s]\t= Inner Size (Mode)\n", ip.Sx, ip.Sy, ip.InnerSizeMode)
	if ip.BorderGap > 0 {
		fmt.Printf("%8.3f\t\t= Border Gap\n", ip.BorderGap)
	}
	fmt.Printf("[%s]\t\t= Output Directory\n", ip.OutDir)
	format := "Binary"
	if ip.STLAscii {
		format = "ASCII"
	}
	fmt.Printf("[%s]\t\t= STL Format\n", format)
	fmt.Printf("[%s]\t\t= Ring Triangulation\n", ip.Triangulation)
	fmt.Printf("[%d]\t\t\t= Files To Generate\n", 2*ip.Nx*ip.Ny)
}

// ExampleFile is a complete parameter file with the default values, written
// out by the exampleconfig command.
const ExampleFile = `########################################
Title: "Test Grid"
Nx: 3
Ny: 2
Width: 10.
Height: 8.
Orientation: z # Can be "x", "y" or "z"
NormalSign: 1 # Can be 1 or -1
RotateDeg: 0.
Sx: 0.7
Sy: 0.7
InnerSizeMode: relative # Can be "absolute"
Origin: [0., 0., 0.]
BorderGap: 0.
OutDir: output
SolidPattern: cell_solid_x{i}_y{j}.stl
RingPattern: cell_ring_x{i}_y{j}.stl
STLAscii: false
Triangulation: strip # Can be "delaunay"
########################################
`

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/stlgrid/InputParameters"
	"github.com/notargets/stlgrid/geometry"
)

// registerParameterFlags adds the shared generation parameter flags used by
// the generate and info commands.
func registerParameterFlags(c *cobra.Command) {
	c.Flags().StringP("parametersFile", "I", "", "YAML parameter file; flags override file values")
	c.Flags().Int("nx", 1, "number of cells along the u axis (>= 1)")
	c.Flags().Int("ny", 1, "number of cells along the v axis (>= 1)")
	c.Flags().Float64P("width", "W", 0, "total panel width along the u axis (> 0)")
	c.Flags().Float64P("height", "H", 0, "total panel height along the v axis (> 0)")
	c.Flags().String("orientation", "z", "plane normal axis: \"x\", \"y\" or \"z\"")
	c.Flags().Int("normalSign", 1, "normal direction: 1 or -1")
	c.Flags().Float64("rotateDeg", 0, "in-plane rotation in degrees")
	c.Flags().Float64("sx", 0.5, "inner rectangle u-size parameter")
	c.Flags().Float64("sy", 0.5, "inner rectangle v-size parameter")
	c.Flags().String("innerSizeMode", "relative", "inner size mode: \"relative\" (fraction) or \"absolute\" (units)")
	c.Flags().Float64Slice("origin", []float64{0, 0, 0}, "world origin coordinates x,y,z")
	c.Flags().Float64("borderGap", 0, "gap to shrink each cell's bounds")
	c.Flags().String("outDir", "output", "output directory")
	c.Flags().String("solidPattern", "cell_solid_x{i}_y{j}.stl", "filename pattern for solid panels, must contain {i} and {j}")
	c.Flags().String("ringPattern", "cell_ring_x{i}_y{j}.stl", "filename pattern for ring panels, must contain {i} and {j}")
	c.Flags().Bool("stlAscii", false, "write ASCII STL instead of binary")
	c.Flags().String("triangulation", "strip", "ring triangulation backend: \"strip\" or \"delaunay\"")
	c.Flags().BoolP("verbose", "v", false, "verbose output")
}

// buildParameters starts from the defaults, overlays the YAML parameter
// file when given, then overlays any flag the user set. The result is fully
// validated before any generation work begins.
func buildParameters(cmd *cobra.Command) (ip *InputParameters.Parameters, err error) {
	ip = InputParameters.NewParameters()
	flags := cmd.Flags()
	if pf, _ := flags.GetString("parametersFile"); pf != "" {
		var data []byte
		if data, err = os.ReadFile(pf); err != nil {
			return nil, fmt.Errorf("unable to read parameters file %s: %w", pf, err)
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse parameters file %s: %w", pf, err)
		}
	}
	if flags.Changed("nx") {
		ip.Nx, _ = flags.GetInt("nx")
	}
	if flags.Changed("ny") {
		ip.Ny, _ = flags.GetInt("ny")
	}
	if flags.Changed("width") {
		ip.Width, _ = flags.GetFloat64("width")
	}
	if flags.Changed("height") {
		ip.Height, _ = flags.GetFloat64("height")
	}
	if flags.Changed("orientation") {
		ip.Orientation, _ = flags.GetString("orientation")
	}
	if flags.Changed("normalSign") {
		ip.NormalSign, _ = flags.GetInt("normalSign")
	}
	if flags.Changed("rotateDeg") {
		ip.RotateDeg, _ = flags.GetFloat64("rotateDeg")
	}
	if flags.Changed("sx") {
		ip.Sx, _ = flags.GetFloat64("sx")
	}
	if flags.Changed("sy") {
		ip.Sy, _ = flags.GetFloat64("sy")
	}
	if flags.Changed("innerSizeMode") {
		ip.InnerSizeMode, _ = flags.GetString("innerSizeMode")
	}
	if flags.Changed("origin") {
		origin, _ := flags.GetFloat64Slice("origin")
		if len(origin) != 3 {
			return nil, fmt.Errorf("%w: origin needs exactly 3 coordinates, got %d",
				geometry.ErrConfiguration, len(origin))
		}
		copy(ip.Origin[:], origin)
	}
	if flags.Changed("borderGap") {
		ip.BorderGap, _ = flags.GetFloat64("borderGap")
	}
	if flags.Changed("outDir") {
		ip.OutDir, _ = flags.GetString("outDir")
	}
	if flags.Changed("solidPattern") {
		ip.SolidPattern, _ = flags.GetString("solidPattern")
	}
	if flags.Changed("ringPattern") {
		ip.RingPattern, _ = flags.GetString("ringPattern")
	}
	if flags.Changed("stlAscii") {
		ip.STLAscii, _ = flags.GetBool("stlAscii")
	}
	if flags.Changed("triangulation") {
		ip.Triangulation, _ = flags.GetString("triangulation")
	}
	err = ip.Validate()
	return
}

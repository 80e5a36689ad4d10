// Command ndrender renders an N-dimensional wireframe to an SVG, DXF or PNG
// file without opening a window. The stl format instead reduces the
// wireframe to three dimensions and writes it as a printable strut model.
//
// Usage:
//
//	ndrender -dims 4 -preset hypercube -plane 0,3 -rotate 18 -format svg -out tesseract.svg
//	ndrender -dims 4 -preset hypercube -format stl -radius 6
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/ndwire/pkg/engine"
	"github.com/chazu/ndwire/pkg/kernel/sdfx"
	"github.com/chazu/ndwire/pkg/render"
	"github.com/chazu/ndwire/pkg/render/dxf"
	"github.com/chazu/ndwire/pkg/render/raster"
	"github.com/chazu/ndwire/pkg/render/svg"
	"github.com/chazu/ndwire/pkg/rotate"
	"github.com/chazu/ndwire/pkg/scene"
	"github.com/chazu/ndwire/pkg/shapefile"
	"github.com/chazu/ndwire/pkg/tessellate"
)

// options holds the parsed command line.
type options struct {
	dims        int
	preset      string
	load        string
	script      string
	plane       string
	rotate      int
	perspective float64
	noScale     bool
	format      string
	out         string
	palette     int
	info        bool
	radius      float64
	cells       int
}

func parseFlags(args []string) (options, error) {
	cfg := scene.DefaultConfig()
	var o options
	fs := flag.NewFlagSet("ndrender", flag.ContinueOnError)
	fs.IntVar(&o.dims, "dims", cfg.Dimensions, "number of dimensions")
	fs.StringVar(&o.preset, "preset", "", "preset shape (hypercube, hyperpyramid)")
	fs.StringVar(&o.load, "load", "", "saved wireframe file to load")
	fs.StringVar(&o.script, "script", "", "command script to run after loading")
	fs.StringVar(&o.plane, "plane", "", "rotation plane as two axes, e.g. 0,3")
	fs.IntVar(&o.rotate, "rotate", 0, "rotation steps; negative turns backward")
	fs.Float64Var(&o.perspective, "perspective", cfg.Perspective, "perspective depth (0 is orthogonal)")
	fs.BoolVar(&o.noScale, "no-scale", false, "disable scale correction")
	fs.StringVar(&o.format, "format", "svg", "output format: svg, dxf, png or stl")
	fs.StringVar(&o.out, "out", "", "output file (default wireframe.<format>)")
	fs.IntVar(&o.palette, "palette", 0, "palette index for svg and png")
	fs.BoolVar(&o.info, "info", false, "draw the info overlay")
	fs.Float64Var(&o.radius, "radius", tessellate.DefaultRadius, "strut radius for stl")
	fs.IntVar(&o.cells, "cells", 120, "marching cubes resolution for stl")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.format = strings.ToLower(o.format)
	if o.out == "" {
		o.out = "wireframe." + o.format
	}
	return o, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	sc, err := build(o)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	if err := write(sc, o); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[SUCCESS] %d lines rendered to {%s}.", sc.Len(), o.out)
}

// build assembles the scene described by the options.
func build(o options) (*scene.Scene, error) {
	cfg := scene.DefaultConfig()
	cfg.Dimensions = o.dims
	if o.dims < 2 {
		return nil, fmt.Errorf("%w: got %d", scene.ErrDimensions, o.dims)
	}
	cfg.Perspective = o.perspective
	cfg.ScaleCorrection = !o.noScale
	sc := scene.New(cfg)

	if o.preset != "" {
		if _, err := sc.Preset(o.preset); err != nil {
			return nil, err
		}
	}
	if o.load != "" {
		f, err := os.Open(o.load)
		if err != nil {
			return nil, err
		}
		lines, err := shapefile.Read(f, sc.Dimensions())
		f.Close()
		if err != nil {
			return nil, err
		}
		if err := sc.AddLines(lines); err != nil {
			return nil, err
		}
	}
	if o.script != "" {
		src, err := os.ReadFile(o.script)
		if err != nil {
			return nil, err
		}
		res, err := engine.NewEngine().Evaluate(string(src), sc)
		if err != nil {
			return nil, err
		}
		if len(res.Errors) > 0 {
			return nil, res.Errors[0]
		}
		for _, l := range res.Log {
			log.Print(l)
		}
		sc = res.Scene
	}
	if o.plane != "" {
		a, b, err := parsePlane(o.plane)
		if err != nil {
			return nil, err
		}
		if err := sc.SetPlane(a, b); err != nil {
			return nil, err
		}
	}

	dir := rotate.Forward
	steps := o.rotate
	if steps < 0 {
		dir, steps = rotate.Backward, -steps
	}
	for i := 0; i < steps; i++ {
		sc.Rotate(dir)
	}
	return sc, nil
}

// parsePlane reads "a,b" or "a b".
func parsePlane(s string) (int, int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: plane needs two axes, got %q", scene.ErrValidation, s)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: plane axis %q", scene.ErrValidation, fields[0])
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: plane axis %q", scene.ErrValidation, fields[1])
	}
	return a, b, nil
}

// surfaceFor returns the backend for the requested format.
func surfaceFor(format, out string) (render.Surface, error) {
	switch format {
	case "svg":
		return svg.Create(out)
	case "dxf":
		return dxf.New(out), nil
	case "png":
		return raster.NewFile(out), nil
	}
	return nil, fmt.Errorf("unknown format %q (want svg, dxf, png or stl)", format)
}

func write(sc *scene.Scene, o options) error {
	if o.format == "stl" {
		return writeSolid(sc, o)
	}
	surf, err := surfaceFor(o.format, o.out)
	if err != nil {
		return err
	}
	frame := render.NewPipeline(sc.Params()).Render(sc.Lines())
	if frame.Hidden > 0 {
		log.Printf("[NOTICE] %d lines not visible at this perspective.", frame.Hidden)
	}
	var overlay []string
	if o.info {
		overlay = sc.Snapshot().Info()
	}
	return render.Draw(surf, frame, render.PaletteAt(o.palette), overlay)
}

// writeSolid thickens the wireframe into struts and saves it as STL.
func writeSolid(sc *scene.Scene, o options) error {
	st, err := tessellate.Export(sc.Lines(), sc.Params(), sdfx.NewWithCells(o.cells), o.radius, o.out)
	if err != nil {
		return err
	}
	if st.Hidden > 0 {
		log.Printf("[NOTICE] %d lines not visible at this perspective.", st.Hidden)
	}
	log.Printf("[LOG:VIEW] Meshed %d struts and %d joints into %d triangles.", st.Struts, st.Joints, st.Triangles)
	return nil
}

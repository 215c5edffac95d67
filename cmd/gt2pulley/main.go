// Command gt2pulley writes the outline of a GT2 timing belt pulley.
//
// Usage:
//
//	gt2pulley -teeth 20 -format dxf -o gt2_20.dxf
//
// Formats are dxf (true arcs), dxf-poly (flattened line segments),
// png and svg (previews).
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/soypat/pulley"
	"github.com/soypat/pulley/render"
)

type config struct {
	teeth    int
	min, max int
	output   string
	format   string
	facets   int
	swapXY   bool
	size     int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gt2pulley: ")
	var cfg config
	flag.IntVar(&cfg.teeth, "teeth", 20, "number of pulley teeth")
	flag.IntVar(&cfg.min, "min", pulley.DefaultToothRange.Min, "minimum accepted tooth count")
	flag.IntVar(&cfg.max, "max", pulley.DefaultToothRange.Max, "maximum accepted tooth count")
	flag.StringVar(&cfg.output, "o", "", "output file (default GT2_<teeth>T.<ext>)")
	flag.StringVar(&cfg.format, "format", "dxf", "output format: dxf, dxf-poly, png or svg")
	flag.IntVar(&cfg.facets, "facets", 8, "line segments per arc for flattened formats")
	flag.BoolVar(&cfg.swapXY, "swapxy", true, "exchange x and y coordinates on output")
	flag.IntVar(&cfg.size, "size", 800, "preview side in pixels")
	flag.Parse()
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	rng := pulley.ToothRange{Min: cfg.min, Max: cfg.max}
	if err := rng.Check(cfg.teeth); err != nil {
		return err
	}
	spec := pulley.GT2()
	d, err := spec.Diameters(cfg.teeth)
	if err != nil {
		return err
	}
	log.Printf("%d teeth: pitch diameter %.4fmm, outer %.4fmm, inner %.4fmm", d.Teeth, d.Pitch, d.Outer, d.Inner)
	arcs, err := pulley.Profile(spec, cfg.teeth)
	if err != nil {
		return err
	}

	ext := cfg.format
	if ext == "dxf-poly" {
		ext = "dxf"
	}
	output := cfg.output
	if output == "" {
		output = fmt.Sprintf("GT2_%dT.%s", cfg.teeth, ext)
	}
	output = filepath.Join(filepath.Dir(output), render.SanitizeFilename(filepath.Base(output)))

	switch cfg.format {
	case "dxf":
		sk, err := render.NewDXFSketch(output)
		if err != nil {
			return err
		}
		err = render.Draw(sk, arcs, cfg.swapXY)
		if err != nil {
			return err
		}
	case "dxf-poly":
		if cfg.swapXY {
			for i := range arcs {
				arcs[i] = render.SwapXY(arcs[i])
			}
		}
		err = render.DXFPolyline(output, arcs, cfg.facets)
		if err != nil {
			return err
		}
	case "png", "svg":
		pv := render.NewPreview(render.PreviewConfig{
			Title:  fmt.Sprintf("GT2 %d teeth", cfg.teeth),
			Size:   cfg.size,
			Facets: cfg.facets,
		})
		err = render.Draw(pv, arcs, cfg.swapXY)
		if err != nil {
			return err
		}
		err = pv.Save(output)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	log.Printf("wrote %d arcs to %s", len(arcs), output)
	return nil
}

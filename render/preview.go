package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/soypat/pulley"
	"github.com/soypat/pulley/internal/d2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const screenDPI = 96

// PreviewConfig configures a Preview.
type PreviewConfig struct {
	Title string
	// Size is the side of the square output in pixels.
	Size int
	// Supersample renders PNGs at Supersample times the resolution
	// and downsamples the result for antialiasing.
	Supersample int
	// Facets is the number of segments each arc is drawn with.
	Facets int
	// Joints marks the endpoints of every arc.
	Joints bool
}

// DefaultPreviewConfig returns the configuration used by NewPreview when
// fields are left zero.
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Size:        800,
		Supersample: 2,
		Facets:      8,
	}
}

// Preview is a Sketch that plots the outline to an image.
type Preview struct {
	cfg  PreviewConfig
	arcs []pulley.Arc
	plot *plot.Plot
}

// NewPreview returns an empty preview sketch.
func NewPreview(cfg PreviewConfig) *Preview {
	def := DefaultPreviewConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = def.Supersample
	}
	if cfg.Facets <= 0 {
		cfg.Facets = def.Facets
	}
	return &Preview{cfg: cfg}
}

// AddArc buffers an arc. It is drawn on the next Recompute.
func (p *Preview) AddArc(a pulley.Arc) error {
	p.arcs = append(p.arcs, a)
	p.plot = nil
	return nil
}

// Recompute builds the plot of all arcs added so far.
func (p *Preview) Recompute() error {
	pts, err := Polyline(p.arcs, p.cfg.Facets)
	if err != nil {
		return err
	}
	outline := make(plotter.XYs, len(pts)+1)
	for i, v := range pts {
		outline[i].X, outline[i].Y = v.X, v.Y
	}
	outline[len(pts)] = outline[0]

	plt := plot.New()
	plt.Title.Text = p.cfg.Title
	plt.X.Label.Text = "x [mm]"
	plt.Y.Label.Text = "y [mm]"
	line, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
	plt.Add(plotter.NewGrid(), line)
	if p.cfg.Joints {
		joints := make(plotter.XYs, len(p.arcs))
		for i, a := range p.arcs {
			joints[i].X, joints[i].Y = a.Start.X, a.Start.Y
		}
		sc, err := plotter.NewScatter(joints)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Radius = vg.Points(1.5)
		plt.Add(sc)
	}
	// Equal axis scaling so the pulley is not distorted.
	bb := d2.BoxOf(pts).Square(0.05 * d2.BoxOf(pts).Size().X)
	plt.X.Min, plt.X.Max = bb.Min.X, bb.Max.X
	plt.Y.Min, plt.Y.Max = bb.Min.Y, bb.Max.Y
	p.plot = plt
	return nil
}

func (p *Preview) built() (*plot.Plot, error) {
	if p.plot == nil {
		return nil, errors.New("preview not recomputed")
	}
	return p.plot, nil
}

// side returns the output side length.
func (p *Preview) side() vg.Length {
	return vg.Length(p.cfg.Size) * vg.Inch / screenDPI
}

// WritePNG encodes the preview as a PNG image of Size by Size pixels.
func (p *Preview) WritePNG(w io.Writer) error {
	plt, err := p.built()
	if err != nil {
		return err
	}
	ss := p.cfg.Supersample
	c := vgimg.NewWith(vgimg.UseWH(p.side(), p.side()), vgimg.UseDPI(screenDPI*ss))
	plt.Draw(draw.New(c))
	var img image.Image = c.Image()
	if ss > 1 {
		// downsample image for antialiasing
		img = resize.Resize(uint(p.cfg.Size), uint(p.cfg.Size), img, resize.Bilinear)
	}
	return png.Encode(w, img)
}

// WriteSVG encodes the preview as an SVG document.
func (p *Preview) WriteSVG(w io.Writer) error {
	plt, err := p.built()
	if err != nil {
		return err
	}
	c := vgsvg.New(p.side(), p.side())
	plt.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// Save writes the preview to path in the format given by its extension,
// either .png or .svg.
func (p *Preview) Save(path string) error {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = p.WritePNG
	case ".svg":
		write = p.WriteSVG
	default:
		return fmt.Errorf("unsupported preview format %q", ext)
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(fp)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

package render

import (
	"errors"
	"math"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/pulley"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
	"gonum.org/v1/gonum/spatial/r2"
)

const profileLayer = "Profile"

// DXFSketch is a Sketch that stores arcs as DXF ARC entities. The file is
// written on Recompute.
type DXFSketch struct {
	path    string
	drawing *drawing.Drawing
	arcs    int
}

// NewDXFSketch returns an empty DXF sketch that saves to path.
func NewDXFSketch(path string) (*DXFSketch, error) {
	if path == "" {
		return nil, errors.New("empty dxf path")
	}
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(profileLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return nil, err
	}
	return &DXFSketch{path: path, drawing: d}, nil
}

// AddArc adds a DXF ARC entity. DXF arcs run counter-clockwise so clockwise
// arcs are stored with their endpoints exchanged.
func (s *DXFSketch) AddArc(a pulley.Arc) error {
	c, r, err := a.Circle()
	if err != nil {
		return err
	}
	sweep, err := a.Sweep()
	if err != nil {
		return err
	}
	start := r2dAngle(r2.Sub(a.Start, c))
	end := r2dAngle(r2.Sub(a.End, c))
	if sweep < 0 {
		start, end = end, start
	}
	if _, err := s.drawing.Arc(c.X, c.Y, 0, r, start, end); err != nil {
		return err
	}
	s.arcs++
	return nil
}

// Recompute saves the drawing to the sketch path.
func (s *DXFSketch) Recompute() error {
	return s.drawing.SaveAs(s.path)
}

// Len returns the number of arcs added.
func (s *DXFSketch) Len() int { return s.arcs }

// DXFPolyline saves the outline flattened to line segments as a DXF file.
func DXFPolyline(path string, arcs []pulley.Arc, facets int) error {
	pts, err := Polyline(arcs, facets)
	if err != nil {
		return err
	}
	set := make(sdf.V2Set, 0, len(pts)+1)
	for _, p := range pts {
		set = append(set, sdf.V2{X: p.X, Y: p.Y})
	}
	set = append(set, set[0])
	d := sdfxrender.NewDXF(path)
	d.Lines(set)
	return d.Save()
}

// SDF2 returns the signed distance function of the outline flattened to a
// polygon. It is negative inside the pulley.
func SDF2(arcs []pulley.Arc, facets int) (sdf.SDF2, error) {
	pts, err := Polyline(arcs, facets)
	if err != nil {
		return nil, err
	}
	vertex := make([]sdf.V2, len(pts))
	for i, p := range pts {
		vertex[i] = sdf.V2{X: p.X, Y: p.Y}
	}
	return sdf.Polygon2D(vertex)
}

// r2dAngle returns the polar angle of v in degrees in [0, 360).
func r2dAngle(v r2.Vec) float64 {
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

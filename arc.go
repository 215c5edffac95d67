package pulley

import (
	"errors"
	"math"

	"github.com/soypat/pulley/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Arc is a circular arc described by three points on it. Mid lies on the
// arc between Start and End and need not be the arc midpoint.
type Arc struct {
	Start, Mid, End r2.Vec
}

var errCollinear = errors.New("arc points are collinear")

// Circle returns the center and radius of the circle through the arc's points.
func (a Arc) Circle() (center r2.Vec, radius float64, err error) {
	// See https://en.wikipedia.org/wiki/Circumscribed_circle#Cartesian_coordinates_2
	b := r2.Sub(a.Mid, a.Start)
	c := r2.Sub(a.End, a.Start)
	d := 2 * r2.Cross(b, c)
	if math.Abs(d) <= 1e-12*r2.Norm(b)*r2.Norm(c) {
		return r2.Vec{}, 0, &DegenerateGeometryError{Step: "arc circle", Reason: errCollinear.Error()}
	}
	b2, c2 := r2.Norm2(b), r2.Norm2(c)
	u := r2.Vec{
		X: (c.Y*b2 - b.Y*c2) / d,
		Y: (b.X*c2 - c.X*b2) / d,
	}
	return r2.Add(a.Start, u), r2.Norm(u), nil
}

// Sweep returns the signed angle swept from Start to End passing through Mid.
// It is positive for counter-clockwise arcs.
func (a Arc) Sweep() (float64, error) {
	c, _, err := a.Circle()
	if err != nil {
		return 0, err
	}
	a0 := d2.Angle(r2.Sub(a.Start, c))
	a1 := d2.Angle(r2.Sub(a.End, c))
	ccw := r2.Cross(r2.Sub(a.Mid, a.Start), r2.Sub(a.End, a.Mid)) > 0
	if ccw {
		return positiveAngle(a1 - a0), nil
	}
	return -positiveAngle(a0 - a1), nil
}

// Points flattens the arc into facets segments. The first and last points
// are exactly Start and End.
func (a Arc) Points(facets int) ([]r2.Vec, error) {
	if facets < 1 {
		return nil, errors.New("need at least one facet")
	}
	c, _, err := a.Circle()
	if err != nil {
		return nil, err
	}
	sweep, err := a.Sweep()
	if err != nil {
		return nil, err
	}
	pts := make([]r2.Vec, facets+1)
	pts[0] = a.Start
	rv := r2.Sub(a.Start, c)
	for i := 1; i < facets; i++ {
		pts[i] = r2.Add(c, d2.Rotate(rv, sweep*float64(i)/float64(facets)))
	}
	pts[facets] = a.End
	return pts, nil
}

func (a Arc) finite() bool {
	return d2.IsFinite(a.Start) && d2.IsFinite(a.Mid) && d2.IsFinite(a.End)
}

// positiveAngle wraps x to [0, 2π).
func positiveAngle(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

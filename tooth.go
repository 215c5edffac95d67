package pulley

import (
	"fmt"
	"math"

	"github.com/soypat/pulley/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ArcsPerTooth is the number of arcs that make up a single tooth outline.
const ArcsPerTooth = 7

// Side selects one flank of a tooth gap.
type Side int

const (
	// Leading is the flank traversed first, at the lower polar angle.
	Leading Side = iota
	// Trailing is the mirror of Leading across the tooth center ray.
	Trailing
)

func (s Side) String() string {
	switch s {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Construction holds the construction points of a single tooth, in the
// pulley frame with the origin at the pulley axis.
//
// The tooth gap is bounded by the outer diameter, one R1 fillet and one R2
// flank per side and the R3 gap bottom. R2 centers are indexed by Side in the
// direction they are offset: R2Centers[Leading] lies at the higher polar angle
// and its circle forms the leading flank.
type Construction struct {
	Teeth, Tooth int
	Diameters    Diameters
	Angle        float64 // central polar angle of the tooth gap
	Start, End   float64 // boundary polar angles

	Apex      r2.Vec    // innermost point of the tooth gap, on the inner diameter
	R1Centers [2]r2.Vec // fillet centers
	R2Centers [2]r2.Vec // flank centers
	R3Center  r2.Vec    // gap bottom center
}

// Construct computes the construction points of tooth t of a pulley with n teeth.
func Construct(s Spec, n, t int) (Construction, error) {
	d, err := s.Diameters(n)
	if err != nil {
		return Construction{}, err
	}
	if t < 0 || t >= n {
		return Construction{}, fmt.Errorf("tooth index %d out of range [0,%d)", t, n)
	}
	c := Construction{
		Teeth:     n,
		Tooth:     t,
		Diameters: d,
		Angle:     Angle(n, t),
		Start:     boundaryAngle(n, t),
		End:       boundaryAngle(n, t+1),
	}
	ri := d.Inner / 2
	c.Apex = d2.PolarToXY(ri, c.Angle)
	c.R3Center = d2.PolarToXY(ri+s.Fillet3Radius, c.Angle)

	// R2 centers are offset perpendicular to the tooth ray.
	base := d2.PolarToXY(ri+s.ToothHeight, c.Angle)
	perp := r2.Scale(s.SideOffset/r2.Norm(base), d2.Perp(base))
	c.R2Centers[Leading] = r2.Add(base, perp)
	c.R2Centers[Trailing] = r2.Sub(base, perp)

	// R1 is internally tangent to the outer diameter and externally tangent to R2.
	ra := d.Outer/2 - s.Fillet1Radius
	rb := s.Fillet2Radius + s.Fillet1Radius
	if ra <= 0 {
		return Construction{}, c.errorf("R1 center", "fillet 1 radius %g does not fit in outer radius %g", s.Fillet1Radius, d.Outer/2)
	}
	for _, side := range []Side{Leading, Trailing} {
		c2 := c.R2Centers[side]
		x, y, ok := d2.IntersectCircles(ra, rb, r2.Norm(c2))
		if !ok {
			return Construction{}, c.errorf("R1 center", "%s R1 circle can not reach R2 circle", side)
		}
		// Local frame has x along the R2 center direction. The leading fillet
		// lies towards lower angles, away from the tooth gap.
		if side == Leading {
			y = -y
		}
		theta := d2.Angle(c2)
		u := d2.PolarToXY(1, theta)
		c.R1Centers[side] = r2.Add(r2.Scale(x, u), r2.Scale(y, d2.Perp(u)))
	}
	return c, nil
}

// Arcs assembles the seven arcs of the tooth outline in order of increasing
// polar angle: outer diameter, R1, R2, gap bottom, R2, R1, outer diameter.
func (c Construction) Arcs(s Spec) ([]Arc, error) {
	ro := c.Diameters.Outer / 2
	anchor := c.Diameters.AngleIncrement / 100

	// Tangency of R1 with the outer diameter.
	var outerTan [2]r2.Vec
	for side, c1 := range c.R1Centers {
		outerTan[side] = d2.PolarToXY(ro, d2.Angle(c1))
	}
	if land := angleDiff(d2.Angle(outerTan[Leading]), c.Start); land <= anchor {
		return nil, c.errorf("outer land", "leading land %.4g rad too narrow", land)
	}
	if land := angleDiff(c.End, d2.Angle(outerTan[Trailing])); land <= anchor {
		return nil, c.errorf("outer land", "trailing land %.4g rad too narrow", land)
	}

	var r1r2, r2r3, r1Mid, r2Mid [2]r2.Vec
	for _, side := range []Side{Leading, Trailing} {
		c1, c2 := c.R1Centers[side], c.R2Centers[side]
		// External tangency lies on the segment joining the centers.
		r1r2[side] = r2.Add(c1, r2.Scale(s.Fillet1Radius, r2.Unit(r2.Sub(c2, c1))))
		toR3 := r2.Sub(c.R3Center, c2)
		if r2.Norm(toR3) == 0 {
			return nil, c.errorf("R3 tangency", "%s R2 and R3 centers coincide", side)
		}
		// R3 sits inside R2, tangency lies beyond the R3 center.
		r2r3[side] = r2.Add(c2, r2.Scale(s.Fillet2Radius, r2.Unit(toR3)))

		var ok bool
		r1Mid[side], ok = d2.ArcMid(c1, s.Fillet1Radius, outerTan[side], r1r2[side])
		if !ok {
			return nil, c.errorf("R1 arc", "%s fillet arc endpoints are opposed", side)
		}
		r2Mid[side], ok = d2.ArcMid(c2, s.Fillet2Radius, r1r2[side], r2r3[side])
		if !ok {
			return nil, c.errorf("R2 arc", "%s flank arc endpoints are opposed", side)
		}
	}

	arcs := []Arc{
		{
			Start: d2.PolarToXY(ro, c.Start),
			Mid:   d2.PolarToXY(ro, c.Start+anchor),
			End:   outerTan[Leading],
		},
		{Start: outerTan[Leading], Mid: r1Mid[Leading], End: r1r2[Leading]},
		{Start: r1r2[Leading], Mid: r2Mid[Leading], End: r2r3[Leading]},
		{Start: r2r3[Leading], Mid: c.Apex, End: r2r3[Trailing]},
		{Start: r2r3[Trailing], Mid: r2Mid[Trailing], End: r1r2[Trailing]},
		{Start: r1r2[Trailing], Mid: r1Mid[Trailing], End: outerTan[Trailing]},
		{
			Start: outerTan[Trailing],
			Mid:   d2.PolarToXY(ro, c.End-anchor),
			End:   d2.PolarToXY(ro, c.End),
		},
	}
	for i := range arcs {
		if !arcs[i].finite() {
			return nil, c.errorf("arc assembly", "arc %d has non-finite coordinates", i)
		}
	}
	return arcs, nil
}

// ToothArcs returns the seven arcs of tooth t of a pulley with n teeth.
func ToothArcs(s Spec, n, t int) ([]Arc, error) {
	c, err := Construct(s, n, t)
	if err != nil {
		return nil, err
	}
	return c.Arcs(s)
}

func (c Construction) errorf(step, format string, args ...interface{}) error {
	return &DegenerateGeometryError{
		Teeth:  c.Teeth,
		Tooth:  c.Tooth,
		Step:   step,
		Reason: fmt.Sprintf(format, args...),
	}
}

// angleDiff returns a-b wrapped to (-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func IsFinite(a r2.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// Perp returns a rotated 90 degrees counter-clockwise.
func Perp(a r2.Vec) r2.Vec {
	return r2.Vec{X: -a.Y, Y: a.X}
}

// Angle returns the polar angle of a in radians.
func Angle(a r2.Vec) float64 {
	return math.Atan2(a.Y, a.X)
}

// Rotate rotates a counter-clockwise about the origin by theta radians.
func Rotate(a r2.Vec, theta float64) r2.Vec {
	s, c := math.Sincos(theta)
	return r2.Vec{X: c*a.X - s*a.Y, Y: s*a.X + c*a.Y}
}

// Reflect mirrors a across the line through the origin at polar angle theta.
func Reflect(a r2.Vec, theta float64) r2.Vec {
	u := Pol{R: 1, Theta: theta}.PolarToCartesian()
	return r2.Sub(r2.Scale(2*r2.Dot(a, u), u), a)
}

type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}

// CartesianToPolar converts a cartesian to a polar coordinate.
func CartesianToPolar(a r2.Vec) Pol {
	return Pol{r2.Norm(a), math.Atan2(a.Y, a.X)}
}

// PolarToXY converts polar to cartesian coordinates.
func PolarToXY(r, theta float64) r2.Vec {
	return Pol{r, theta}.PolarToCartesian()
}

// IntersectCircles intersects a circle of radius ra centered at the origin
// with a circle of radius rb centered at (d, 0). It returns the intersection
// with non-negative y, the other being (x, -y). ok is false when the centers
// coincide or the circles do not meet.
func IntersectCircles(ra, rb, d float64) (x, y float64, ok bool) {
	if d == 0 {
		return 0, 0, false
	}
	k := d*d - rb*rb + ra*ra
	disc := 4*d*d*ra*ra - k*k
	if disc < 0 || math.IsNaN(disc) {
		return 0, 0, false
	}
	x = k / (2 * d)
	y = math.Sqrt(disc) / (2 * d)
	return x, y, true
}

// ArcMid returns the point on the circle of center c and radius r that bisects
// the angle between a and b as seen from c. It is the normalized sum of the
// unit vectors from c towards a and b. ok is false when a and b are
// diametrically opposed or coincide with c.
func ArcMid(c r2.Vec, r float64, a, b r2.Vec) (mid r2.Vec, ok bool) {
	ua := r2.Sub(a, c)
	ub := r2.Sub(b, c)
	na, nb := r2.Norm(ua), r2.Norm(ub)
	if na == 0 || nb == 0 {
		return r2.Vec{}, false
	}
	sum := r2.Add(r2.Scale(1/na, ua), r2.Scale(1/nb, ub))
	n := r2.Norm(sum)
	if n < 1e-12 {
		return r2.Vec{}, false
	}
	return r2.Add(c, r2.Scale(r/n, sum)), true
}

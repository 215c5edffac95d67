package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// BoxOf returns the smallest box containing all points in s.
func BoxOf(s Set) Box {
	if len(s) == 0 {
		return Box{}
	}
	return Box{Min: s.Min(), Max: s.Max()}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Square returns the smallest square box sharing a's center that contains a,
// grown by margin on every side.
func (a Box) Square(margin float64) Box {
	sz := a.Size()
	half := 0.5*math.Max(sz.X, sz.Y) + margin
	c := a.Center()
	h := r2.Vec{X: half, Y: half}
	return Box{Min: r2.Sub(c, h), Max: r2.Add(c, h)}
}


package render

import (
	"errors"
	"fmt"

	"github.com/soypat/pulley"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrNoActiveSketch is returned when there is no sketch to draw into.
	ErrNoActiveSketch = errors.New("no active sketch")
	// ErrEmptySelection is returned when there is nothing to draw.
	ErrEmptySelection = errors.New("no arcs selected")
)

// Sketch receives 3-point arcs as curve geometry. Implementations may buffer
// arcs and only commit them on Recompute.
type Sketch interface {
	AddArc(a pulley.Arc) error
	// Recompute commits and refreshes the sketch after arcs were added.
	Recompute() error
}

// Draw appends arcs to sk in order then recomputes it. When swapXY is set
// the x and y coordinates of every point are exchanged before drawing, which
// is the convention of CAD hosts that lay the pulley out with its first
// tooth on the y axis. Every arc is checked before the first one is added.
func Draw(sk Sketch, arcs []pulley.Arc, swapXY bool) error {
	if sk == nil {
		return ErrNoActiveSketch
	}
	if len(arcs) == 0 {
		return ErrEmptySelection
	}
	out := arcs
	if swapXY {
		out = make([]pulley.Arc, len(arcs))
		for i, a := range arcs {
			out[i] = SwapXY(a)
		}
	}
	for i, a := range out {
		if _, _, err := a.Circle(); err != nil {
			return fmt.Errorf("arc %d: %w", i, err)
		}
	}
	for i, a := range out {
		if err := sk.AddArc(a); err != nil {
			return fmt.Errorf("adding arc %d: %w", i, err)
		}
	}
	return sk.Recompute()
}

// SwapXY exchanges the x and y coordinates of the arc's points.
func SwapXY(a pulley.Arc) pulley.Arc {
	swap := func(v r2.Vec) r2.Vec { return r2.Vec{X: v.Y, Y: v.X} }
	return pulley.Arc{Start: swap(a.Start), Mid: swap(a.Mid), End: swap(a.End)}
}

package render

import (
	"fmt"

	"github.com/soypat/pulley"
	"github.com/soypat/pulley/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// joinTol is the distance under which consecutive arc endpoints are merged.
const joinTol = 1e-9

// Polyline flattens arcs into a list of vertices, each arc split into facets
// segments. Shared endpoints of consecutive arcs appear once and the closing
// vertex of a closed outline is not repeated.
func Polyline(arcs []pulley.Arc, facets int) ([]r2.Vec, error) {
	if len(arcs) == 0 {
		return nil, ErrEmptySelection
	}
	if facets < 1 {
		return nil, fmt.Errorf("need at least one facet, got %d", facets)
	}
	pts := make([]r2.Vec, 0, len(arcs)*facets+1)
	for i, a := range arcs {
		ap, err := a.Points(facets)
		if err != nil {
			return nil, fmt.Errorf("arc %d: %w", i, err)
		}
		if len(pts) > 0 && d2.EqualWithin(pts[len(pts)-1], ap[0], joinTol) {
			ap = ap[1:]
		}
		pts = append(pts, ap...)
	}
	if len(pts) > 1 && d2.EqualWithin(pts[0], pts[len(pts)-1], joinTol) {
		pts = pts[:len(pts)-1]
	}
	return pts, nil
}

package pulley

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateGeometry matches any *DegenerateGeometryError with errors.Is.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrInvalidToothCount matches any *InvalidToothCountError with errors.Is.
	ErrInvalidToothCount = errors.New("invalid tooth count")
)

// DegenerateGeometryError is returned when a construction step has no real
// solution, such as two circles which do not intersect.
type DegenerateGeometryError struct {
	Teeth  int
	Tooth  int
	Step   string
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("tooth %d of %d: %s: %s", e.Tooth, e.Teeth, e.Step, e.Reason)
}

func (e *DegenerateGeometryError) Is(target error) bool { return target == ErrDegenerateGeometry }

// InvalidToothCountError is returned for a tooth count that can not produce
// a pulley profile or that lies outside of the accepted range.
type InvalidToothCountError struct {
	N      int
	Reason string
}

func (e *InvalidToothCountError) Error() string {
	return fmt.Sprintf("invalid tooth count %d: %s", e.N, e.Reason)
}

func (e *InvalidToothCountError) Is(target error) bool { return target == ErrInvalidToothCount }

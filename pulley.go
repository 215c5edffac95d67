package pulley

import (
	"errors"
	"fmt"
	"math"
)

// Spec stores the physical constants that define a timing belt tooth
// profile as seen by the pulley. All lengths are in millimetres.
type Spec struct {
	Pitch             float64 // tooth to tooth distance along the belt pitch line
	PitchLineDiameter float64 // radial offset between belt pitch line and pulley outer diameter
	OverallHeight     float64 // belt overall height
	ToothHeight       float64 // depth of the tooth gap
	SideOffset        float64 // b: perpendicular offset of the R2 fillet centers
	Fillet1Radius     float64 // R1: fillet between outer diameter and R2
	Fillet2Radius     float64 // R2: tooth gap flank
	Fillet3Radius     float64 // R3: tooth gap bottom
}

// GT2 returns the 2mm pitch GT2 profile.
func GT2() Spec {
	return Spec{
		Pitch:             2.0,
		PitchLineDiameter: 0.254,
		OverallHeight:     1.38,
		ToothHeight:       0.750,
		SideOffset:        0.400,
		Fillet1Radius:     0.150,
		Fillet2Radius:     1.0,
		Fillet3Radius:     0.555,
	}
}

// Validate checks all constants are positive and finite.
func (s Spec) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"pitch", s.Pitch},
		{"pitch line diameter", s.PitchLineDiameter},
		{"overall height", s.OverallHeight},
		{"tooth height", s.ToothHeight},
		{"side offset", s.SideOffset},
		{"fillet 1 radius", s.Fillet1Radius},
		{"fillet 2 radius", s.Fillet2Radius},
		{"fillet 3 radius", s.Fillet3Radius},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("%s is not finite", v.name)
		}
		if v.val <= 0 {
			return fmt.Errorf("%s must be positive, got %g", v.name, v.val)
		}
	}
	return nil
}

// Diameters are the scalar quantities of a pulley with a given tooth count.
type Diameters struct {
	Teeth          int
	Circumference  float64 // along the pitch line
	Pitch          float64 // pitch diameter
	Outer          float64 // outer diameter, tips of the pulley teeth
	Inner          float64 // bottom of the tooth gaps
	AngleIncrement float64 // angle between consecutive teeth in radians
}

// Diameters derives the pulley diameters for n teeth. It fails with an
// *InvalidToothCountError if n does not produce Outer > Inner > 0.
func (s Spec) Diameters(n int) (Diameters, error) {
	if err := s.Validate(); err != nil {
		return Diameters{}, err
	}
	if n < 3 {
		return Diameters{}, &InvalidToothCountError{N: n, Reason: "need at least 3 teeth"}
	}
	d := s.diameters(n)
	if !(d.Outer > d.Inner && d.Inner > 0) {
		return Diameters{}, &InvalidToothCountError{
			N:      n,
			Reason: fmt.Sprintf("outer diameter %.4g and inner diameter %.4g are not ordered and positive", d.Outer, d.Inner),
		}
	}
	return d, nil
}

// diameters calculates without validation.
func (s Spec) diameters(n int) Diameters {
	c := s.Pitch * float64(n)
	pd := c / math.Pi
	outer := pd - 2*s.PitchLineDiameter
	return Diameters{
		Teeth:          n,
		Circumference:  c,
		Pitch:          pd,
		Outer:          outer,
		Inner:          outer - 2*s.ToothHeight,
		AngleIncrement: 2 * math.Pi / float64(n),
	}
}

// Angle returns the central polar angle of tooth t on a pulley with n teeth.
// Tooth t spans the angles Angle(n,t)-inc/2 through Angle(n,t)+inc/2
// where inc is 2π/n.
func Angle(n, t int) float64 {
	return float64(t)*(2*math.Pi/float64(n)) - math.Pi/float64(n)
}

// boundaryAngle returns the angle at which tooth t begins. The end of tooth
// t is boundaryAngle(n, t+1) so consecutive teeth share the exact same value.
func boundaryAngle(n, t int) float64 {
	return Angle(n, t) - math.Pi/float64(n)
}

// ToothRange is an inclusive range of accepted tooth counts.
type ToothRange struct {
	Min, Max int
}

// DefaultToothRange is the range of tooth counts offered to users.
var DefaultToothRange = ToothRange{Min: 12, Max: 120}

// Check returns an *InvalidToothCountError if n lies outside of r.
func (r ToothRange) Check(n int) error {
	if r.Min > r.Max {
		return errors.New("tooth range minimum exceeds maximum")
	}
	if n < r.Min || n > r.Max {
		return &InvalidToothCountError{N: n, Reason: fmt.Sprintf("outside of range [%d,%d]", r.Min, r.Max)}
	}
	return nil
}

package pulley

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/pulley/internal/d2"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const adjacencyTol = 1e-9

var testTeeth = []int{6, 12, 13, 16, 20, 37, 60, 99, 120}

func TestGT2Diameters(t *testing.T) {
	d, err := GT2().Diameters(20)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name      string
		got, want float64
	}{
		{"circumference", d.Circumference, 40},
		{"pitch", d.Pitch, 40 / math.Pi},
		{"outer", d.Outer, 40/math.Pi - 0.508},
		{"inner", d.Inner, 40/math.Pi - 0.508 - 1.5},
		{"increment", d.AngleIncrement, math.Pi / 10},
	} {
		if !scalar.EqualWithinAbs(test.got, test.want, 1e-12) {
			t.Errorf("%s: got %g, want %g", test.name, test.got, test.want)
		}
	}
	if !scalar.EqualWithinAbs(d.Outer, 12.2244, 1e-4) || !scalar.EqualWithinAbs(d.Inner, 10.7244, 1e-4) {
		t.Errorf("got outer=%.5f inner=%.5f", d.Outer, d.Inner)
	}
}

func TestDiametersOrdered(t *testing.T) {
	spec := GT2()
	for n := DefaultToothRange.Min; n <= DefaultToothRange.Max; n++ {
		d, err := spec.Diameters(n)
		if err != nil {
			t.Fatalf("n=%d: %s", n, err)
		}
		if !(d.Outer > d.Inner && d.Inner > 0) {
			t.Errorf("n=%d: outer=%g inner=%g", n, d.Outer, d.Inner)
		}
	}
}

func TestInvalidToothCount(t *testing.T) {
	spec := GT2()
	for _, n := range []int{-1, 0, 2, 3} {
		_, err := spec.Diameters(n)
		if !errors.Is(err, ErrInvalidToothCount) {
			t.Errorf("n=%d: expected invalid tooth count, got %v", n, err)
		}
		arcs, err := Profile(spec, n)
		if arcs != nil || !errors.Is(err, ErrInvalidToothCount) {
			t.Errorf("n=%d: profile expected invalid tooth count, got %v", n, err)
		}
	}
	var target *InvalidToothCountError
	_, err := spec.Diameters(3)
	if !errors.As(err, &target) || target.N != 3 {
		t.Errorf("expected *InvalidToothCountError for n=3, got %#v", err)
	}
	if _, err := ToothArcs(spec, 20, 20); err == nil {
		t.Error("expected error for tooth index out of range")
	}
}

func TestSpecValidate(t *testing.T) {
	if err := GT2().Validate(); err != nil {
		t.Fatal(err)
	}
	for _, mutate := range []func(*Spec){
		func(s *Spec) { s.Pitch = 0 },
		func(s *Spec) { s.ToothHeight = -1 },
		func(s *Spec) { s.Fillet1Radius = math.NaN() },
		func(s *Spec) { s.SideOffset = math.Inf(1) },
	} {
		s := GT2()
		mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("expected error for %+v", s)
		}
		if _, err := ToothArcs(s, 20, 0); err == nil {
			t.Errorf("expected tooth error for %+v", s)
		}
	}
}

func TestToothRange(t *testing.T) {
	for _, test := range []struct {
		n  int
		ok bool
	}{
		{11, false}, {12, true}, {60, true}, {120, true}, {121, false},
	} {
		err := DefaultToothRange.Check(test.n)
		if (err == nil) != test.ok {
			t.Errorf("n=%d: got %v", test.n, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidToothCount) {
			t.Errorf("n=%d: expected invalid tooth count, got %v", test.n, err)
		}
	}
	if err := (ToothRange{Min: 10, Max: 5}).Check(7); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestAngle(t *testing.T) {
	if got := Angle(20, 0); !scalar.EqualWithinAbs(got, -math.Pi/20, 1e-15) {
		t.Errorf("got %g, want %g", got, -math.Pi/20)
	}
	for _, n := range testTeeth {
		for tooth := 0; tooth < n; tooth++ {
			if boundaryAngle(n, tooth+1) <= boundaryAngle(n, tooth) {
				t.Fatalf("n=%d t=%d: boundaries not increasing", n, tooth)
			}
			mid := (boundaryAngle(n, tooth) + boundaryAngle(n, tooth+1)) / 2
			if !scalar.EqualWithinAbs(mid, Angle(n, tooth), 1e-12) {
				t.Errorf("n=%d t=%d: tooth not centered on its angle", n, tooth)
			}
		}
	}
}

func TestToothArcs(t *testing.T) {
	spec := GT2()
	for _, n := range testTeeth {
		ro := spec.diameters(n).Outer / 2
		for tooth := 0; tooth < n; tooth++ {
			arcs, err := ToothArcs(spec, n, tooth)
			if err != nil {
				t.Fatalf("n=%d t=%d: %s", n, tooth, err)
			}
			if len(arcs) != ArcsPerTooth {
				t.Fatalf("n=%d t=%d: got %d arcs", n, tooth, len(arcs))
			}
			for i := 0; i < len(arcs)-1; i++ {
				if !d2.EqualWithin(arcs[i].End, arcs[i+1].Start, adjacencyTol) {
					t.Errorf("n=%d t=%d: arc %d end %v != arc %d start %v", n, tooth, i, arcs[i].End, i+1, arcs[i+1].Start)
				}
			}
			for i, wantRadius := range []float64{
				ro, spec.Fillet1Radius, spec.Fillet2Radius, spec.Fillet3Radius,
				spec.Fillet2Radius, spec.Fillet1Radius, ro,
			} {
				_, r, err := arcs[i].Circle()
				if err != nil {
					t.Fatalf("n=%d t=%d arc %d: %s", n, tooth, i, err)
				}
				tol := 1e-6
				if i == 3 {
					// Gap bottom passes through R2 tangencies and the apex.
					tol = 1e-3
				}
				if !scalar.EqualWithinAbs(r, wantRadius, tol) {
					t.Errorf("n=%d t=%d arc %d: radius %g, want %g", n, tooth, i, r, wantRadius)
				}
			}
		}
	}
}

func TestToothArcsGT2Twenty(t *testing.T) {
	spec := GT2()
	d, _ := spec.Diameters(20)
	arcs, err := ToothArcs(spec, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	start := d2.CartesianToPolar(arcs[0].Start)
	if !scalar.EqualWithinAbs(start.R, d.Outer/2, 1e-12) {
		t.Errorf("start radius %g, want %g", start.R, d.Outer/2)
	}
	if !scalar.EqualWithinAbs(start.Theta, Angle(20, 0)-math.Pi/20, 1e-12) {
		t.Errorf("start angle %g, want %g", start.Theta, -math.Pi/10)
	}
	end := d2.CartesianToPolar(arcs[6].End)
	if !scalar.EqualWithinAbs(end.Theta, 0, 1e-12) {
		t.Errorf("end angle %g, want 0", end.Theta)
	}
	apex := d2.CartesianToPolar(arcs[3].Mid)
	if !scalar.EqualWithinAbs(apex.R, d.Inner/2, 1e-12) || !scalar.EqualWithinAbs(apex.Theta, -math.Pi/20, 1e-12) {
		t.Errorf("apex at %+v", apex)
	}
	// Every point of the tooth lies between inner and outer diameter.
	for i, a := range arcs {
		for _, p := range []r2.Vec{a.Start, a.Mid, a.End} {
			r := r2.Norm(p)
			if r < d.Inner/2-1e-9 || r > d.Outer/2+1e-9 {
				t.Errorf("arc %d point %v radius %g outside [%g,%g]", i, p, r, d.Inner/2, d.Outer/2)
			}
		}
	}
}

func TestConstructionSymmetry(t *testing.T) {
	spec := GT2()
	for _, n := range testTeeth {
		for _, tooth := range []int{0, 1, n / 2, n - 1} {
			c, err := Construct(spec, n, tooth)
			if err != nil {
				t.Fatal(err)
			}
			for _, pair := range []struct {
				name string
				v    [2]r2.Vec
			}{
				{"R1", c.R1Centers},
				{"R2", c.R2Centers},
			} {
				mirror := d2.Reflect(pair.v[Leading], c.Angle)
				if !d2.EqualWithin(mirror, pair.v[Trailing], 1e-9) {
					t.Errorf("n=%d t=%d: %s centers %v and %v not symmetric", n, tooth, pair.name, pair.v[Leading], pair.v[Trailing])
				}
			}
			if angleDiff(d2.Angle(c.R1Centers[Leading]), c.Angle) >= 0 {
				t.Errorf("n=%d t=%d: leading fillet not at lower angle", n, tooth)
			}
			if angleDiff(d2.Angle(c.R2Centers[Leading]), c.Angle) <= 0 {
				t.Errorf("n=%d t=%d: leading flank center not offset counter-clockwise", n, tooth)
			}
			ri := c.Diameters.Inner / 2
			if !scalar.EqualWithinAbs(r2.Norm(c.R3Center), ri+spec.Fillet3Radius, 1e-12) {
				t.Errorf("n=%d t=%d: R3 center radius %g", n, tooth, r2.Norm(c.R3Center))
			}
			ra := c.Diameters.Outer/2 - spec.Fillet1Radius
			for side, c1 := range c.R1Centers {
				if !scalar.EqualWithinAbs(r2.Norm(c1), ra, 1e-9) {
					t.Errorf("n=%d t=%d: R1 center %d not tangent to outer diameter", n, tooth, side)
				}
				dist := r2.Norm(r2.Sub(c1, c.R2Centers[side]))
				if !scalar.EqualWithinAbs(dist, spec.Fillet1Radius+spec.Fillet2Radius, 1e-9) {
					t.Errorf("n=%d t=%d: R1 center %d not tangent to R2", n, tooth, side)
				}
			}
		}
	}
}

func TestProfileClosure(t *testing.T) {
	spec := GT2()
	for _, n := range testTeeth {
		arcs, err := Profile(spec, n)
		if err != nil {
			t.Fatal(err)
		}
		if len(arcs) != ArcsPerTooth*n {
			t.Fatalf("n=%d: got %d arcs, want %d", n, len(arcs), ArcsPerTooth*n)
		}
		for i := 0; i < len(arcs)-1; i++ {
			if arcs[i].End != arcs[i+1].Start {
				t.Errorf("n=%d: arc %d end %v != arc %d start %v", n, i, arcs[i].End, i+1, arcs[i+1].Start)
			}
		}
		if !d2.EqualWithin(arcs[len(arcs)-1].End, arcs[0].Start, adjacencyTol) {
			t.Errorf("n=%d: profile does not close: %v != %v", n, arcs[len(arcs)-1].End, arcs[0].Start)
		}
	}
}

func TestProfileConcurrent(t *testing.T) {
	spec := GT2()
	for _, n := range testTeeth {
		want, err := Profile(spec, n)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ProfileConcurrent(spec, n)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(want) {
			t.Fatalf("n=%d: length mismatch", n)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("n=%d arc %d: got %v, want %v", n, i, got[i], want[i])
			}
		}
	}
	spec.SideOffset = 5
	if _, err := ProfileConcurrent(spec, 20); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("expected degenerate geometry, got %v", err)
	}
}

func TestToothArcsIdempotent(t *testing.T) {
	spec := GT2()
	a, err := ToothArcs(spec, 37, 11)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ToothArcs(spec, 37, 11)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("arc %d differs between calls: %v != %v", i, a[i], b[i])
		}
	}
}

func TestDegenerateGeometry(t *testing.T) {
	for _, test := range []struct {
		name   string
		n      int
		mutate func(*Spec)
	}{
		{name: "side offset out of reach", n: 20, mutate: func(s *Spec) { s.SideOffset = 5 }},
		{name: "flank too small", n: 20, mutate: func(s *Spec) { s.Fillet2Radius = 0.001 }},
		{name: "no outer land", n: 4, mutate: func(s *Spec) {}},
	} {
		spec := GT2()
		test.mutate(&spec)
		arcs, err := ToothArcs(spec, test.n, 0)
		if !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: expected degenerate geometry, got %v", test.name, err)
			continue
		}
		if arcs != nil {
			t.Errorf("%s: got arcs alongside error", test.name)
		}
		var dge *DegenerateGeometryError
		if !errors.As(err, &dge) || dge.Teeth != test.n || dge.Tooth != 0 {
			t.Errorf("%s: bad error detail %#v", test.name, err)
		}
		full, err := Profile(spec, test.n)
		if full != nil || !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: profile expected degenerate geometry, got %v", test.name, err)
		}
	}
}

func BenchmarkProfile(b *testing.B) {
	spec := GT2()
	for i := 0; i < b.N; i++ {
		_, err := Profile(spec, 120)
		if err != nil {
			b.Fatal(err)
		}
	}
}

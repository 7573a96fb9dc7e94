package orbital

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestElementsRV2COE(t *testing.T) {
	// Vallado's RV2COE reference case, rescaled to meters.
	R := []float64{6524.834e3, 6862.875e3, 6448.296e3}
	V := []float64{4901.327, 5533.756, -1976.341}
	o, err := NewElementsFromRV(R, V, Earth)
	if err != nil {
		t.Fatalf("unexpected singularity: %s", err)
	}
	oT := NewElementsFromOE(36127.343e3, 0.832853, 87.869126, 227.898260, 53.384931, 92.335157, Earth)
	if ok, err := o.Equals(*oT); !ok {
		t.Logf("\no0: %s\no1: %s", o, oT)
		t.Fatalf("orbits differ: %s", err)
	}
	_, _, _, _, _, ν := o.Elements()
	if ok, err := anglesEqual(Deg2rad(92.335157), ν); !ok {
		t.Fatalf("true anomaly invalid: %s", err)
	}
	if o.Regime() != RegimeElliptical {
		t.Fatalf("regime invalid: %s", o.Regime())
	}
	if !o.AxisDefined() {
		t.Fatal("axis must be defined for an elliptical orbit")
	}
}

func TestElementsCircular(t *testing.T) {
	// Circular equatorial orbit: ν, ω and Ω all degrade to the zero fallback.
	r := 7e6
	v := math.Sqrt(Earth.μ / r)
	o, err := NewElementsFromRV([]float64{r, 0, 0}, []float64{0, v, 0}, Earth)
	if err != nil {
		t.Fatalf("unexpected singularity: %s", err)
	}
	a, e, i, Ω, ω, ν := o.Elements()
	if !floats.EqualWithinRel(a, r, 1e-6) {
		t.Fatalf("semi major axis invalid: %f", a)
	}
	if e > eccentricityε {
		t.Fatalf("eccentricity invalid: %f", e)
	}
	if !floats.EqualWithinAbs(i, 0, angleε) {
		t.Fatalf("inclination invalid: %f", i)
	}
	if Ω != 0 || ω != 0 || ν != 0 {
		t.Fatalf("equatorial/circular fallbacks not applied: Ω=%f ω=%f ν=%f", Ω, ω, ν)
	}
}

func TestElementsParabolic(t *testing.T) {
	// Exactly the escape speed makes the specific energy zero: the semi major
	// axis is undefined and must be reported, never ±Inf.
	r := 7e6
	v := math.Sqrt(2 * Earth.μ / r)
	o, err := NewElementsFromRV([]float64{r, 0, 0}, []float64{0, v, 0}, Earth)
	if err != ErrParabolicOrbit {
		t.Fatalf("expected ErrParabolicOrbit, got %v", err)
	}
	a, _, _, _, _, _ := o.Elements()
	if a != 0 || math.IsInf(a, 0) || math.IsNaN(a) {
		t.Fatalf("parabolic semi major axis fallback invalid: %f", a)
	}
	if o.AxisDefined() {
		t.Fatal("axis must not be defined for a parabolic orbit")
	}
	if o.Regime() != RegimeParabolic {
		t.Fatalf("regime invalid: %s", o.Regime())
	}
}

func TestElementsHyperbolic(t *testing.T) {
	r := 7e6
	v := 1.2 * math.Sqrt(2*Earth.μ/r)
	o, err := NewElementsFromRV([]float64{r, 0, 0}, []float64{0, v, 0}, Earth)
	if err != nil {
		t.Fatalf("unexpected singularity: %s", err)
	}
	if o.Regime() != RegimeHyperbolic {
		t.Fatalf("regime invalid: %s", o.Regime())
	}
	a, e, _, _, _, _ := o.Elements()
	if a >= 0 {
		t.Fatalf("hyperbolic semi major axis must be negative: %f", a)
	}
	if e <= 1 {
		t.Fatalf("hyperbolic eccentricity must exceed 1: %f", e)
	}
	if o.Period() != 0 {
		t.Fatalf("period of an open orbit must be 0: %f", o.Period())
	}
}

func TestElementsDerived(t *testing.T) {
	o := NewElementsFromOE(7.5e6, 1./15, 10, 20, 30, 0, Earth)
	if !floats.EqualWithinRel(o.Periapsis(), 7e6, 1e-9) {
		t.Fatalf("periapsis invalid: %f", o.Periapsis())
	}
	if !floats.EqualWithinRel(o.Apoapsis(), 8e6, 1e-9) {
		t.Fatalf("apoapsis invalid: %f", o.Apoapsis())
	}
	expectedPeriod := 2 * math.Pi * math.Sqrt(math.Pow(7.5e6, 3)/Earth.μ)
	if !floats.EqualWithinRel(o.Period(), expectedPeriod, 1e-9) {
		t.Fatalf("period invalid: %f", o.Period())
	}
	// Vis-viva at periapsis.
	vp := math.Sqrt(Earth.μ * (2/o.Periapsis() - 1/7.5e6))
	if !floats.EqualWithinRel(o.VNorm(), vp, 1e-9) {
		t.Fatalf("VNorm invalid: %f != %f", o.VNorm(), vp)
	}
}

func TestRadii2ae(t *testing.T) {
	a, e := Radii2ae(8e6, 7e6)
	if !floats.EqualWithinRel(a, 7.5e6, 1e-12) || !floats.EqualWithinRel(e, 1./15, 1e-12) {
		t.Fatalf("Radii2ae invalid: a=%f e=%f", a, e)
	}
	assertPanic(t, func() {
		Radii2ae(7e6, 8e6)
	})
}

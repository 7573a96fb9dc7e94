package orbital

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e4                          // 20 km
	energyε       = 1e-9                         // specific energy, m²/s²... parabolic guard
)

// OrbitRegime classifies an orbit by its eccentricity.
type OrbitRegime uint8

const (
	// RegimeElliptical for e < 1.
	RegimeElliptical OrbitRegime = iota + 1
	// RegimeParabolic for e == 1 (within tolerance). The semi major axis is
	// undefined in this regime and reported as zero.
	RegimeParabolic
	// RegimeHyperbolic for e > 1.
	RegimeHyperbolic
)

func (r OrbitRegime) String() string {
	switch r {
	case RegimeElliptical:
		return "elliptical"
	case RegimeParabolic:
		return "parabolic"
	case RegimeHyperbolic:
		return "hyperbolic"
	}
	panic("cannot stringify unknown orbit regime")
}

// ErrParabolicOrbit is returned when the specific energy is zero and the
// semi major axis therefore undefined.
var ErrParabolicOrbit = errors.New("parabolic orbit: semi major axis undefined")

// Elements defines an orbit via its classical orbital elements.
type Elements struct {
	a, e, i, Ω, ω, ν float64
	Origin           CelestialBody // Orbit origin
}

// Elements returns the six classical orbital elements.
func (o Elements) Elements() (a, e, i, Ω, ω, ν float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.ν
}

// Regime returns the orbit regime for these elements.
func (o Elements) Regime() OrbitRegime {
	if floats.EqualWithinAbs(o.e, 1, eccentricityε) {
		return RegimeParabolic
	}
	if o.e > 1 {
		return RegimeHyperbolic
	}
	return RegimeElliptical
}

// AxisDefined returns whether the semi major axis is defined: it is not for
// parabolic orbits.
func (o Elements) AxisDefined() bool {
	return o.Regime() != RegimeParabolic
}

// Energyξ returns the specific mechanical energy ξ.
func (o Elements) Energyξ() float64 {
	return -o.Origin.μ / (2 * o.a)
}

// SemiParameter returns the semi parameter p.
func (o Elements) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// Apoapsis returns the apoapsis radius.
func (o Elements) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the periapsis radius.
func (o Elements) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// Period returns the period of this orbit in seconds, or 0 if the orbit is
// not closed (a ≤ 0 or non elliptical regime).
func (o Elements) Period() float64 {
	if o.a <= 0 || o.Regime() != RegimeElliptical {
		return 0
	}
	return 2 * math.Pi * math.Sqrt(math.Pow(o.a, 3)/o.Origin.μ)
}

// RNorm returns the orbital radius at the current true anomaly.
func (o Elements) RNorm() float64 {
	return o.SemiParameter() / (1 + o.e*math.Cos(o.ν))
}

// VNorm returns the orbital speed at the current true anomaly via vis-viva.
func (o Elements) VNorm() float64 {
	if floats.EqualWithinAbs(o.e, 0, eccentricityε) {
		return math.Sqrt(o.Origin.μ / o.RNorm())
	}
	if floats.EqualWithinAbs(o.e, 1, eccentricityε) {
		return math.Sqrt(2 * o.Origin.μ / o.RNorm())
	}
	return math.Sqrt(2 * (o.Origin.μ/o.RNorm() + o.Energyξ()))
}

// String implements the stringer interface (hence the value receiver).
func (o Elements) String() string {
	return fmt.Sprintf("a=%.1f e=%.6f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.ν))
}

// Equals returns whether two element sets describe the same orbit with free
// true anomaly.
func (o Elements) Equals(o1 Elements) (bool, error) {
	if !o.Origin.Equals(o1.Origin) {
		return false, errors.New("different origin")
	}
	if !floats.EqualWithinAbs(o.a, o1.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(o.e, o1.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(o.i, o1.i, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !floats.EqualWithinAbs(math.Mod(o.Ω+2*math.Pi, 2*math.Pi), math.Mod(o1.Ω+2*math.Pi, 2*math.Pi), angleε) {
		return false, errors.New("RAAN invalid")
	}
	if o.e > eccentricityε && !floats.EqualWithinAbs(math.Mod(o.ω+2*math.Pi, 2*math.Pi), math.Mod(o1.ω+2*math.Pi, 2*math.Pi), angleε) {
		return false, errors.New("argument of periapsis invalid")
	}
	return true, nil
}

// NewElementsFromOE creates orbital elements from the provided values.
// WARNING: Angles must be in degrees not radians.
func NewElementsFromOE(a, e, i, Ω, ω, ν float64, c CelestialBody) *Elements {
	// Making an approximation for circular and equatorial orbits.
	if e < eccentricityε {
		e = eccentricityε
	}
	if i < angleε {
		i = angleε
	}
	return &Elements{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(ν), c}
}

// NewElementsFromRV returns orbital elements from the R and V vectors (in m
// and m/s). The error is ErrParabolicOrbit when the specific energy is zero,
// in which case the returned elements carry a zero semi major axis; all other
// singular geometries (circular, equatorial) degrade to the documented zero
// fallbacks and return no error.
func NewElementsFromRV(R, V []float64, c CelestialBody) (*Elements, error) {
	// From Vallado's RV2COE, page 113.
	hVec := cross(R, V)
	n := cross([]float64{0, 0, 1}, hVec)
	v := norm(V)
	r := norm(R)
	ξ := (v*v)/2 - c.μ/r

	eVec := make([]float64, 3)
	for j := 0; j < 3; j++ {
		eVec[j] = ((v*v-c.μ/r)*R[j] - dot(R, V)*V[j]) / c.μ
	}
	e := norm(eVec)

	var a float64
	var err error
	if floats.EqualWithinAbs(ξ, 0, energyε*c.μ/r) || floats.EqualWithinAbs(e, 1, eccentricityε) {
		// Zero specific energy makes the semi major axis undefined. Report it
		// explicitly instead of letting the division blow up to ±Inf.
		a = 0
		err = ErrParabolicOrbit
	} else {
		a = -c.μ / (2 * ξ)
	}

	i := math.Acos(hVec[2] / norm(hVec))

	var Ω, ω float64
	if norm(n) > 1e-12 {
		Ω = math.Acos(n[0] / norm(n))
		if math.IsNaN(Ω) {
			Ω = 0
		}
		if n[1] < 0 {
			Ω = 2*math.Pi - Ω
		}
		if e > eccentricityε {
			ω = math.Acos(dot(n, eVec) / (norm(n) * e))
			if math.IsNaN(ω) {
				ω = 0
			}
			if eVec[2] < 0 {
				ω = 2*math.Pi - ω
			}
		}
	}
	// Equatorial orbits have no node: Ω and ω fall back to zero.

	var ν float64
	if e > eccentricityε {
		// ν in (-π, π] from the cross/dot of ê and r̂ projected along ĥ.
		eHat := unit(eVec)
		rHat := unit(R)
		cosν := dot(eHat, rHat)
		sinν := dot(cross(eHat, rHat), unit(hVec))
		ν = math.Atan2(sinν, cosν)
	}
	// Circular orbits have no periapsis: ν falls back to zero.

	// Fix rounding errors.
	i = math.Mod(i, 2*math.Pi)
	Ω = math.Mod(Ω, 2*math.Pi)
	ω = math.Mod(ω, 2*math.Pi)

	return &Elements{a, e, i, Ω, ω, ν, c}, err
}

// Radii2ae returns the semi major axis and the eccentricity from the radii.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}

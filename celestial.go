package orbital

import (
	"fmt"
	"strings"
)

// G is the gravitational constant in m³/kg/s². It may be overridden via the
// configuration file, in which case the builtin bodies are rebuilt with it.
const G = 6.67430e-11

// CelestialBody defines an attracting body. Position and velocity are fixed:
// bodies do not propagate themselves, the velocity is informational only.
// Bodies are configuration data, immutable after construction.
type CelestialBody struct {
	Name   string
	R, V   []float64 // inertial position (m) and velocity (m/s)
	Mass   float64   // kg
	Radius float64   // m
	μ      float64   // gravitational parameter, m³/s²
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialBody) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialBody) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial body is the same.
func (c CelestialBody) Equals(b CelestialBody) bool {
	return c.Name == b.Name && c.Mass == b.Mass && c.Radius == b.Radius && c.μ == b.μ
}

// NewBody returns a celestial body with μ derived from the provided
// gravitational constant.
func NewBody(name string, R, V []float64, mass, radius, g float64) CelestialBody {
	return CelestialBody{name, R, V, mass, radius, g * mass}
}

/* Builtin bodies. Earth sits at the frame origin and is the primary. */

// Earth is the primary attracting body.
var Earth = NewBody("Earth", []float64{0, 0, 0}, []float64{0, 0, 0}, 5.972e24, 6.371e6, G)

// Moon at its mean Earth distance.
var Moon = NewBody("Moon", []float64{3.844e8, 0, 0}, []float64{0, 1022, 0}, 7.342e22, 1.737e6, G)

// Mars at a representative Earth distance.
var Mars = NewBody("Mars", []float64{2.25e11, 0, 0}, []float64{0, 24000, 0}, 6.39e23, 3.389e6, G)

// Jupiter at a representative Earth distance.
var Jupiter = NewBody("Jupiter", []float64{7.78e11, 0, 0}, []float64{0, 13000, 0}, 1.898e27, 6.9911e7, G)

// Saturn at a representative Earth distance.
var Saturn = NewBody("Saturn", []float64{1.427e12, 0, 0}, []float64{0, 9600, 0}, 5.683e26, 5.8232e7, G)

// SolarSystem returns the builtin attracting-body table. The first entry is
// the primary used for altitude and event thresholds.
func SolarSystem() []CelestialBody {
	return []CelestialBody{Earth, Moon, Mars, Jupiter, Saturn}
}

// BodyFromName returns the builtin body of that name.
func BodyFromName(name string) CelestialBody {
	switch strings.ToLower(name) {
	case "earth":
		return Earth
	case "moon":
		return Moon
	case "mars":
		return Mars
	case "jupiter":
		return Jupiter
	case "saturn":
		return Saturn
	default:
		panic(fmt.Errorf("unknown body `%s`", name))
	}
}

package orbital

import (
	"math"
)

// Piecewise standard-atmosphere constants. The boundary densities are the
// model values at the top of the layer below.
const (
	seaLevelDensity     = 1.225   // kg/m³
	tropopauseAltitude  = 11000.0 // m
	tropopauseDensity   = 0.3639  // kg/m³
	stratoAltitude      = 20000.0 // m
	stratoDensity       = 0.088   // kg/m³
	tropoLapseRate      = 0.0065  // K/m
	seaLevelTemperature = 288.15  // K
	tropoExponent       = 4.256
	tropopauseScaleH    = 6341.62 // m
	stratoScaleH        = 7400.0  // m
)

// AtmosphericDensity returns the atmospheric density in kg/m³ at the provided
// altitude in meters above the primary body surface. Negative altitudes clamp
// to the sea level value.
func AtmosphericDensity(altitude float64) float64 {
	switch {
	case altitude < 0:
		return seaLevelDensity
	case altitude < tropopauseAltitude:
		return seaLevelDensity * math.Pow(1-tropoLapseRate*altitude/seaLevelTemperature, tropoExponent)
	case altitude < stratoAltitude:
		return tropopauseDensity * math.Exp(-(altitude-tropopauseAltitude)/tropopauseScaleH)
	default:
		return stratoDensity * math.Exp(-(altitude-stratoAltitude)/stratoScaleH)
	}
}

// DragAcceleration returns the drag acceleration vector opposing the provided
// velocity, for a vehicle of the given drag coefficient, cross section (m²)
// and mass (kg).
func DragAcceleration(V []float64, altitude, cd, area, mass float64) []float64 {
	ρ := AtmosphericDensity(altitude)
	v := norm(V)
	if ρ == 0 || v == 0 || mass == 0 {
		return []float64{0, 0, 0}
	}
	force := 0.5 * ρ * cd * area * v * v
	vHat := unit(V)
	return []float64{-vHat[0] * force / mass, -vHat[1] * force / mass, -vHat[2] * force / mass}
}

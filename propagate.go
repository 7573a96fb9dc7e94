package orbital

import (
	"errors"
	"math"
)

// ErrUnsupportedRegime is returned when asked to propagate a parabolic or
// hyperbolic orbit analytically. Only the elliptical closed form is
// implemented; callers get this explicit signal rather than stale state.
var ErrUnsupportedRegime = errors.New("analytic propagation only supports elliptical orbits")

// Propagate returns the inertial position and velocity of the orbit after the
// provided elapsed time in seconds. Elapsed time is measured from the epoch
// at which the elements were last computed, not from a per-tick delta:
// recomputing the elements resets this epoch.
func Propagate(o *Elements, elapsed float64) (R, V []float64, err error) {
	if o.Regime() != RegimeElliptical || o.a <= 0 {
		return nil, nil, ErrUnsupportedRegime
	}
	// Mean motion and mean anomaly since epoch.
	n := math.Sqrt(o.Origin.μ / math.Pow(o.a, 3))
	M := n * elapsed
	E := SolveKepler(M, o.e)
	// True anomaly from the eccentric anomaly.
	ν := 2 * math.Atan(math.Sqrt((1+o.e)/(1-o.e))*math.Tan(E/2))
	p := o.SemiParameter()
	sinν, cosν := math.Sincos(ν)
	r := p / (1 + o.e*cosν)

	R = []float64{r * cosν, r * sinν, 0}
	// Perifocal velocity consistent with vis-viva.
	V = []float64{-math.Sqrt(o.Origin.μ/p) * sinν, math.Sqrt(o.Origin.μ/p) * (o.e + cosν), 0}

	R = PQW2ECI(o.i, o.ω, o.Ω, R)
	V = PQW2ECI(o.i, o.ω, o.Ω, V)
	return R, V, nil
}

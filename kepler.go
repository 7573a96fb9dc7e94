package orbital

import (
	"math"
)

const (
	keplerTolerance     = 1e-6
	keplerMaxIterations = 10
)

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E via Newton-Raphson, starting from E₀ = M. The iteration count is
// capped: on non convergence the last estimate is returned, so the call is
// bounded and never fails.
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	E, converged := solveKepler(meanAnomaly, eccentricity)
	if !converged {
		keplerCapHits.Inc()
	}
	return E
}

func solveKepler(M, e float64) (E float64, converged bool) {
	E = M
	for i := 0; i < keplerMaxIterations; i++ {
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < keplerTolerance {
			return E, true
		}
		fPrime := 1 - e*math.Cos(E)
		E -= f / fPrime
	}
	// Check whether the final Newton step happened to land within tolerance.
	return E, math.Abs(E-e*math.Sin(E)-M) < keplerTolerance
}

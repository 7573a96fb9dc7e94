package orbital

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

const (
	r2d = 180 / math.Pi
	d2r = 1 / r2d
)

// Station defines a ground station observing the vehicle. Measurements are
// range and range rate with additive Gaussian noise, gated by an elevation
// mask.
type Station struct {
	Name                       string
	R, V                       []float64 // position and velocity in ECEF
	LatΦ, Longθ                float64   // these are stored in radians!
	Altitude, Elevation        float64   // m, degrees
	RangeNoise, RangeRateNoise *distmv.Normal // Station noise
	Planet                     CelestialBody
}

// NewStation returns a new station. Angles in degrees, altitude in m,
// variances in m² and (m/s)².
func NewStation(name string, altitude, elevation, latΦ, longθ, σρ, σρDot float64) Station {
	R := GEO2ECEF(altitude, latΦ*d2r, longθ*d2r)
	V := cross([]float64{0, 0, EarthRotationRate}, R)
	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	ρNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{σρ}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	ρDotNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{σρDot}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	return Station{name, R, V, latΦ * d2r, longθ * d2r, altitude, elevation, ρNoise, ρDotNoise, Earth}
}

// PerformMeasurement returns the measurement of the provided inertial state
// for the θgst given in radians, including whether the vehicle was visible.
func (s Station) PerformMeasurement(θgst float64, R, V []float64) Measurement {
	// The station vectors are in ECEF, so let's convert the state to ECEF.
	rECEF := ECI2ECEF(R, θgst)
	vECEF := ECI2ECEF(V, θgst)
	ρECEF, ρ, el, _ := s.RangeElAz(rECEF)
	vDiffECEF := make([]float64, 3)
	for i := 0; i < 3; i++ {
		vDiffECEF[i] = (vECEF[i] - s.V[i]) / ρ
	}
	ρDot := mat64.Dot(mat64.NewVector(3, ρECEF), mat64.NewVector(3, vDiffECEF))
	ρNoisy := ρ + s.RangeNoise.Rand(nil)[0]
	ρDotNoisy := ρDot + s.RangeRateNoise.Rand(nil)[0]
	return Measurement{el >= s.Elevation, ρNoisy, ρDotNoisy, ρ, ρDot, θgst, s}
}

// RangeElAz returns the range vector (in the SEZ frame), the range (m), and
// the elevation and azimuth (in degrees) of a given R vector in ECEF.
func (s Station) RangeElAz(rECEF []float64) (ρECEF []float64, ρ, el, az float64) {
	ρECEF = make([]float64, 3)
	for i := 0; i < 3; i++ {
		ρECEF[i] = rECEF[i] - s.R[i]
	}
	ρ = norm(ρECEF)
	rSEZ := MxV33(R3(s.Longθ), ρECEF)
	rSEZ = MxV33(R2(math.Pi/2-s.LatΦ), rSEZ)
	el = math.Asin(rSEZ[2]/ρ) * r2d
	az = (2*math.Pi + math.Atan2(rSEZ[1], -rSEZ[0])) * r2d
	return
}

func (s Station) String() string {
	return fmt.Sprintf("%s (%f,%f); alt = %f m; el = %f deg", s.Name, s.LatΦ/d2r, s.Longθ/d2r, s.Altitude, s.Elevation)
}

// Measurement stores a measurement of a station.
type Measurement struct {
	Visible                  bool    // Stores whether or not the attempted measurement was visible from the station.
	Range, RangeRate         float64 // Store the noisy range (m) and range rate (m/s)
	TrueRange, TrueRangeRate float64 // Store the true range and range rate
	Timeθgst                 float64
	Station                  Station
}

// StateVector returns the measurement as a mat64.Vector.
func (m Measurement) StateVector() *mat64.Vector {
	return mat64.NewVector(2, []float64{m.Range, m.RangeRate})
}

// CSV returns the data as CSV (does *not* include the new line).
func (m Measurement) CSV() string {
	return fmt.Sprintf("%f,%f,%f,%f,", m.TrueRange, m.TrueRangeRate, m.Range, m.RangeRate)
}

func (m Measurement) String() string {
	return fmt.Sprintf("%s@θgst=%f", m.Station.Name, m.Timeθgst)
}

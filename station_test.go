package orbital

import (
	"math"
	"strings"
	"testing"

	"github.com/gonum/floats"
)

func TestStationZenithPass(t *testing.T) {
	// A station at (0,0) with the vehicle straight overhead at θgst=0: the
	// pass is at zenith, the range is the altitude difference, and a purely
	// tangential velocity has no range rate.
	st := NewStation("zenith", 0, 10, 0, 0, 1e-6, 1e-6)
	r := 7e6
	v := math.Sqrt(Earth.μ / r)
	R := []float64{r, 0, 0}
	V := []float64{0, v, 0}
	m := st.PerformMeasurement(0, R, V)
	if !m.Visible {
		t.Fatal("overhead vehicle must be visible")
	}
	if !floats.EqualWithinAbs(m.TrueRange, r-Earth.Radius, 1) {
		t.Fatalf("zenith range invalid: %f", m.TrueRange)
	}
	_, _, el, _ := st.RangeElAz(ECI2ECEF(R, 0))
	if !floats.EqualWithinAbs(el, 90, 1e-6) {
		t.Fatalf("zenith elevation invalid: %f", el)
	}
	// Range rate is the projection of the relative velocity on the line of
	// sight; the station's own rotation velocity is orthogonal too.
	if math.Abs(m.TrueRangeRate) > 1 {
		t.Fatalf("zenith range rate invalid: %f", m.TrueRangeRate)
	}
	if !floats.EqualWithinAbs(m.Range, m.TrueRange, 1e-1) {
		t.Fatalf("noise variance 1e-6 must barely move the range: %f vs %f", m.Range, m.TrueRange)
	}
}

func TestStationBelowHorizon(t *testing.T) {
	st := NewStation("horizon", 0, 5, 0, 0, 1e-6, 1e-6)
	// Antipodal vehicle: elevation is -90 degrees.
	m := st.PerformMeasurement(0, []float64{-7e6, 0, 0}, []float64{0, -7000, 0})
	if m.Visible {
		t.Fatal("antipodal vehicle must not be visible")
	}
	_, _, el, _ := st.RangeElAz(ECI2ECEF([]float64{-7e6, 0, 0}, 0))
	if !floats.EqualWithinAbs(el, -90, 1e-6) {
		t.Fatalf("antipodal elevation invalid: %f", el)
	}
}

func TestStationStrings(t *testing.T) {
	st := NewStation("DSS-13", 1071, 10, 35.2471635, -116.8903611, 5e-3, 5e-6)
	if !strings.Contains(st.String(), "DSS-13") {
		t.Fatalf("station string invalid: %s", st)
	}
	m := st.PerformMeasurement(0, []float64{7e6, 0, 0}, []float64{0, 7500, 0})
	if !strings.Contains(m.String(), "DSS-13") {
		t.Fatalf("measurement string invalid: %s", m)
	}
	if cnt := strings.Count(m.CSV(), ","); cnt != 4 {
		t.Fatalf("measurement CSV must have four commas, got %d", cnt)
	}
	vec := m.StateVector()
	if vec.Len() != 2 {
		t.Fatalf("state vector must have two rows, got %d", vec.Len())
	}
	if vec.At(0, 0) != m.Range || vec.At(1, 0) != m.RangeRate {
		t.Fatal("state vector order invalid")
	}
}

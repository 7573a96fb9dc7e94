package orbital

// ForceModel aggregates the perturbing accelerations acting on the vehicle:
// point-mass gravity from every attracting body, commanded thrust, and
// atmospheric drag about the primary. Each call returns a fresh vector; the
// result never accumulates across ticks.
type ForceModel struct {
	Bodies       []CelestialBody // Bodies[0] is the primary
	DragCd       float64
	CrossSection float64
}

// Primary returns the primary attracting body.
func (f ForceModel) Primary() CelestialBody {
	return f.Bodies[0]
}

// Acceleration computes the total acceleration in m/s² on a vehicle at
// position R with velocity V, applying thrust of the provided magnitude (N)
// along the thrust unit vector.
func (f ForceModel) Acceleration(R, V, thrustVector []float64, thrustMagnitude, vehicleMass float64) []float64 {
	acc := make([]float64, 3)
	// Gravity, accumulated over the body table.
	for _, body := range f.Bodies {
		toBody := []float64{body.R[0] - R[0], body.R[1] - R[1], body.R[2] - R[2]}
		d := norm(toBody)
		if d == 0 {
			continue
		}
		g := body.μ / (d * d)
		dir := unit(toBody)
		for j := 0; j < 3; j++ {
			acc[j] += g * dir[j]
		}
	}
	// Thrust.
	if thrustMagnitude > 0 && vehicleMass > 0 {
		for j := 0; j < 3; j++ {
			acc[j] += thrustVector[j] * thrustMagnitude / vehicleMass
		}
	}
	// Drag about the primary.
	altitude := norm(R) - f.Primary().Radius
	drag := DragAcceleration(V, altitude, f.DragCd, f.CrossSection, vehicleMass)
	for j := 0; j < 3; j++ {
		acc[j] += drag[j]
	}
	return acc
}

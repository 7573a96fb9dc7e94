package orbital

import (
	"math"
)

// TransferOrbit is the immutable result of a two-impulse transfer sizing.
type TransferOrbit struct {
	SemiMajorAxis float64 // m
	Eccentricity  float64
	TransferTime  float64 // s, half the transfer orbit period
	DeltaV        float64 // m/s, departure burn
}

// Hohmann sizes the transfer between two circular coplanar orbits of radii
// rI and rF about the provided body. Only the radial magnitudes matter: the
// plane-change cost of a true 3-D transfer is not modeled.
func Hohmann(rI, rF float64, body CelestialBody) TransferOrbit {
	aTransfer := 0.5 * (rI + rF)
	vCircular := math.Sqrt(body.GM() / rI)
	vDeparture := math.Sqrt(body.GM() * (2/rI - 1/aTransfer))
	return TransferOrbit{
		SemiMajorAxis: aTransfer,
		Eccentricity:  (rF - rI) / (rF + rI),
		TransferTime:  math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/body.GM()),
		DeltaV:        vDeparture - vCircular,
	}
}

// PlanHohmannTransfer sizes a Hohmann transfer from the current position to
// the target position about the engine's primary and publishes the result on
// the bus. It has no other side effect: the maneuver is not executed.
func (e *Engine) PlanHohmannTransfer(targetPosition []float64) TransferOrbit {
	transfer := Hohmann(norm(e.state.R), norm(targetPosition), e.force.Primary())
	e.bus.Publish(TransferEvent{e.clock.Elapsed(), transfer})
	return transfer
}

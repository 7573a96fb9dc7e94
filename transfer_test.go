package orbital

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestHohmannLEO2GEO(t *testing.T) {
	// Classic LEO to GEO transfer, checked against the textbook values.
	rLEO := 6.671e6
	rGEO := 4.2164e7
	xfer := Hohmann(rLEO, rGEO, Earth)
	if !floats.EqualWithinRel(xfer.SemiMajorAxis, (rLEO+rGEO)/2, 1e-9) {
		t.Fatalf("transfer semi major axis invalid: %f", xfer.SemiMajorAxis)
	}
	if !floats.EqualWithinRel(xfer.Eccentricity, (rGEO-rLEO)/(rGEO+rLEO), 1e-9) {
		t.Fatalf("transfer eccentricity invalid: %f", xfer.Eccentricity)
	}
	if !floats.EqualWithinRel(xfer.DeltaV, 2440, 2e-2) {
		t.Fatalf("injection ΔV invalid: %f", xfer.DeltaV)
	}
	if !floats.EqualWithinRel(xfer.TransferTime, 18900, 2e-2) {
		t.Fatalf("transfer time invalid: %f", xfer.TransferTime)
	}
}

func TestHohmannLowering(t *testing.T) {
	// Lowering transfer: the injection burn is retrograde.
	xfer := Hohmann(4.2164e7, 6.671e6, Earth)
	if xfer.DeltaV >= 0 {
		t.Fatalf("lowering transfer must have a negative ΔV, got %f", xfer.DeltaV)
	}
	if !floats.EqualWithinRel(xfer.TransferTime, 18900, 2e-2) {
		t.Fatalf("transfer time must not depend on direction: %f", xfer.TransferTime)
	}
}

func TestHohmannTransferTimeIsHalfPeriod(t *testing.T) {
	xfer := Hohmann(7e6, 9e6, Earth)
	half := math.Pi * math.Sqrt(math.Pow(xfer.SemiMajorAxis, 3)/Earth.μ)
	if !floats.EqualWithinRel(xfer.TransferTime, half, 1e-9) {
		t.Fatalf("transfer time must be half the transfer period: %f vs %f", xfer.TransferTime, half)
	}
}

func TestEnginePlanHohmannTransfer(t *testing.T) {
	r := 6.671e6
	v := math.Sqrt(Earth.μ / r)
	e := NewEngine(newTestVehicle([]float64{r, 0, 0}, []float64{0, v, 0}), leoForceModel(), NewClock(DefaultStep), nil)
	fired := 0
	var published TransferOrbit
	e.Bus().Subscribe(TransferComputed, func(evt Event) {
		fired++
		published = evt.(TransferEvent).Transfer
	})
	xfer := e.PlanHohmannTransfer([]float64{0, 4.2164e7, 0})
	if fired != 1 {
		t.Fatalf("plan must publish exactly one event, got %d", fired)
	}
	if published != xfer {
		t.Fatal("published transfer differs from the returned one")
	}
	if !floats.EqualWithinRel(xfer.DeltaV, 2440, 2e-2) {
		t.Fatalf("injection ΔV invalid: %f", xfer.DeltaV)
	}
}

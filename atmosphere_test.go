package orbital

import (
	"testing"

	"github.com/gonum/floats"
)

func TestAtmosphericDensity(t *testing.T) {
	if AtmosphericDensity(-10) != seaLevelDensity {
		t.Fatal("negative altitude must clamp to sea level")
	}
	if AtmosphericDensity(0) != seaLevelDensity {
		t.Fatal("sea level density invalid")
	}
	// The power law meets the exponential tier near the tropopause boundary value.
	if !floats.EqualWithinRel(AtmosphericDensity(tropopauseAltitude), tropopauseDensity, 5e-3) {
		t.Fatalf("tropopause boundary mismatch: %f", AtmosphericDensity(tropopauseAltitude))
	}
	// Monotonic decay through all tiers.
	prev := AtmosphericDensity(0)
	for _, h := range []float64{1000, 5000, 10000, 11000, 15000, 20000, 25000, 50000, 100000} {
		ρ := AtmosphericDensity(h)
		if ρ >= prev {
			t.Fatalf("density is not decaying at %f m: %f >= %f", h, ρ, prev)
		}
		prev = ρ
	}
}

func TestDragAcceleration(t *testing.T) {
	V := []float64{7500, 0, 0}
	sea := DragAcceleration(V, 0, 2.0, 10, 1000)
	high := DragAcceleration(V, 25000, 2.0, 10, 1000)
	if norm(sea) <= norm(high) {
		t.Fatalf("drag at sea level (%e) must exceed drag at 25 km (%e)", norm(sea), norm(high))
	}
	// Drag opposes the velocity.
	if sea[0] >= 0 || sea[1] != 0 || sea[2] != 0 {
		t.Fatalf("drag direction invalid: %+v", sea)
	}
	if norm(DragAcceleration([]float64{0, 0, 0}, 0, 2.0, 10, 1000)) != 0 {
		t.Fatal("drag with zero velocity must be zero")
	}
}

package orbital

import (
	"testing"

	"github.com/gonum/floats"
)

func TestCelestialBody(t *testing.T) {
	if !floats.EqualWithinRel(Earth.GM(), 3.9859e14, 1e-3) {
		t.Fatalf("Earth μ invalid: %e", Earth.GM())
	}
	if !Earth.Equals(BodyFromName("earth")) {
		t.Fatal("Earth does not equal itself")
	}
	if Earth.Equals(Moon) {
		t.Fatal("Earth equals Moon")
	}
	if Earth.String() != "Earth body" {
		t.Fatalf("invalid string: %s", Earth)
	}
	assertPanic(t, func() {
		BodyFromName("Krypton")
	})
}

func TestSolarSystem(t *testing.T) {
	bodies := SolarSystem()
	if len(bodies) != 5 {
		t.Fatalf("expected 5 builtin bodies, got %d", len(bodies))
	}
	if bodies[0].Name != "Earth" {
		t.Fatal("the primary must be Earth")
	}
	for _, b := range bodies {
		if b.μ != G*b.Mass {
			t.Fatalf("%s: μ does not match G·mass", b.Name)
		}
	}
}

package orbital

import (
	"os"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	if os.Getenv("ORBITAL_CONFIG") != "" {
		t.Skip("ORBITAL_CONFIG is set, skipping defaults test")
	}
	conf := orbitalConfig()
	if conf.Step != 1./60 {
		t.Fatalf("default step invalid: %f", conf.Step)
	}
	if conf.G != G {
		t.Fatalf("default G invalid: %e", conf.G)
	}
	if conf.VehicleMass != 1000 || conf.DragCd != 2.0 || conf.CrossSection != 10 {
		t.Fatal("default vehicle constants invalid")
	}
	if len(conf.Bodies) != 5 {
		t.Fatalf("default bodies invalid: %d", len(conf.Bodies))
	}
}

package orbital

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _orbitalconfig{}
)

// _orbitalconfig is a "hidden" struct, just use `orbitalConfig`.
type _orbitalconfig struct {
	Step         float64 // physics step, seconds
	G            float64 // gravitational constant
	VehicleMass  float64 // kg
	DragCd       float64 // drag coefficient
	CrossSection float64 // m²
	Bodies       []CelestialBody
}

// orbitalConfig returns the engine configuration. The configuration file is
// located via the ORBITAL_CONFIG environment variable (a directory holding
// conf.toml); when unset, the builtin defaults are used so the package works
// out of the box.
func orbitalConfig() _orbitalconfig {
	if cfgLoaded {
		return config
	}
	config = defaultConfig()
	confPath := os.Getenv("ORBITAL_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	if viper.IsSet("physics.step") {
		config.Step = viper.GetFloat64("physics.step")
	}
	if viper.IsSet("physics.gravitational_constant") {
		config.G = viper.GetFloat64("physics.gravitational_constant")
	}
	if viper.IsSet("vehicle.mass") {
		config.VehicleMass = viper.GetFloat64("vehicle.mass")
	}
	if viper.IsSet("vehicle.drag_coefficient") {
		config.DragCd = viper.GetFloat64("vehicle.drag_coefficient")
	}
	if viper.IsSet("vehicle.cross_section") {
		config.CrossSection = viper.GetFloat64("vehicle.cross_section")
	}
	if viper.IsSet("bodies") {
		config.Bodies = bodiesFromViper(config.G)
	}
	cfgLoaded = true
	return config
}

func defaultConfig() _orbitalconfig {
	return _orbitalconfig{
		Step:         1. / 60,
		G:            G,
		VehicleMass:  1000,
		DragCd:       2.0,
		CrossSection: 10,
		Bodies:       SolarSystem(),
	}
}

// bodiesFromViper reads the [[bodies]] array of tables. Each entry carries
// name, position, velocity, mass and radius.
func bodiesFromViper(g float64) []CelestialBody {
	var raw []struct {
		Name     string
		Position []float64
		Velocity []float64
		Mass     float64
		Radius   float64
	}
	if err := viper.UnmarshalKey("bodies", &raw); err != nil {
		panic(fmt.Errorf("could not parse bodies: %s", err))
	}
	bodies := make([]CelestialBody, len(raw))
	for i, b := range raw {
		if len(b.Position) != 3 || len(b.Velocity) != 3 {
			panic(fmt.Errorf("body %s: position and velocity must be 3x1 vectors", b.Name))
		}
		bodies[i] = NewBody(b.Name, b.Position, b.Velocity, b.Mass, b.Radius, g)
	}
	return bodies
}

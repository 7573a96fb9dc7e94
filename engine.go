package orbital

import (
	"math"

	kitlog "github.com/go-kit/kit/log"
)

// Event detection thresholds.
const (
	apsisThreshold = 1000.0   // m around the periapsis/apoapsis radius
	entryAltitude  = 100000.0 // m above the primary surface
)

// Vehicle is the narrow capability interface the engine depends on. The host
// supplies the initial state and the per-tick thrust command, and receives
// the propagated state back. It must not mutate the engine's state directly.
type Vehicle interface {
	Position() []float64
	Velocity() []float64
	SetPosition(R []float64)
	SetVelocity(V []float64)
	ThrustVector() []float64  // unit direction
	ThrustMagnitude() float64 // N
	Mass() float64            // kg
}

// State is the Cartesian state owned exclusively by the engine. The
// acceleration is recomputed every tick and zeroed after integration; it
// never persists across ticks.
type State struct {
	R, V, A []float64
}

// Engine owns the vehicle state and orchestrates force computation,
// integration, element conversion and event detection each tick.
type Engine struct {
	vehicle  Vehicle
	force    ForceModel
	clock    *Clock
	bus      *Bus
	state    State
	elements *Elements
	epoch    float64 // elapsed sim time at which elements were last computed
	logger   kitlog.Logger
	histChan chan<- HistoryEntry
	collided bool
}

// NewEngine attaches an engine to the provided vehicle, seeding the Cartesian
// state from the vehicle's current position and velocity. The first body of
// the force model is the primary used for altitude and entry detection.
func NewEngine(vehicle Vehicle, force ForceModel, clock *Clock, logger kitlog.Logger) *Engine {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	e := &Engine{
		vehicle: vehicle,
		force:   force,
		clock:   clock,
		bus:     NewBus(),
		state: State{
			R: append([]float64{}, vehicle.Position()...),
			V: append([]float64{}, vehicle.Velocity()...),
			A: make([]float64, 3),
		},
		logger: logger,
	}
	e.recomputeElements()
	logger.Log("level", "info", "subsys", "astro", "attached", vehicle.Mass(), "orbit", e.elements)
	return e
}

// NewEngineFromConfig attaches an engine built from the configuration
// surface (physics step, bodies, drag constants).
func NewEngineFromConfig(vehicle Vehicle, logger kitlog.Logger) *Engine {
	conf := orbitalConfig()
	force := ForceModel{Bodies: conf.Bodies, DragCd: conf.DragCd, CrossSection: conf.CrossSection}
	return NewEngine(vehicle, force, NewClock(conf.Step), logger)
}

// Bus returns the engine's event bus for subscriptions.
func (e *Engine) Bus() *Bus {
	return e.bus
}

// Clock returns the engine's simulation clock.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// SetTimeAcceleration clamps and stores the time acceleration factor and
// returns the stored value. The scheduler picks up the new tick interval at
// the end of the running tick.
func (e *Engine) SetTimeAcceleration(a float64) float64 {
	return e.clock.SetTimeAcceleration(a)
}

// SetHistoryChannel sets a channel receiving one entry per tick, for state
// history streaming. The channel must be drained by the receiver.
func (e *Engine) SetHistoryChannel(ch chan<- HistoryEntry) {
	e.histChan = ch
}

// Position returns a copy of the current inertial position in m.
func (e *Engine) Position() []float64 {
	return append([]float64{}, e.state.R...)
}

// Velocity returns a copy of the current inertial velocity in m/s.
func (e *Engine) Velocity() []float64 {
	return append([]float64{}, e.state.V...)
}

// Altitude returns the altitude above the primary body surface in m.
func (e *Engine) Altitude() float64 {
	return norm(e.state.R) - e.force.Primary().Radius
}

// Period returns the orbital period in seconds, or 0 when the orbit is not
// closed.
func (e *Engine) Period() float64 {
	return e.elements.Period()
}

// Elements returns a copy of the current orbital elements.
func (e *Engine) Elements() Elements {
	return *e.elements
}

// AnalyticState returns the position and velocity at the provided simulation
// time from the analytic propagator, using the elements of the last
// recomputation epoch. Returns ErrUnsupportedRegime outside the elliptical
// regime.
func (e *Engine) AnalyticState(simTime float64) (R, V []float64, err error) {
	return Propagate(e.elements, simTime-e.epoch)
}

// Step advances the simulation by one fixed physics step scaled by the time
// acceleration: force aggregation, semi-implicit Euler integration, element
// recomputation and event detection, then state push-back to the vehicle.
func (e *Engine) Step() {
	thrustMag := e.vehicle.ThrustMagnitude()
	e.state.A = e.force.Acceleration(e.state.R, e.state.V, e.vehicle.ThrustVector(), thrustMag, e.vehicle.Mass())

	dt := e.clock.ScaledStep()
	e.clock.Advance()

	// Semi-implicit Euler: velocity first, then position with the new velocity.
	for j := 0; j < 3; j++ {
		e.state.V[j] += e.state.A[j] * dt
		e.state.R[j] += e.state.V[j] * dt
		e.state.A[j] = 0
	}

	// Elements are fully recomputed from the new state. A thrust command has
	// materially changed the velocity, so this also resets the analytic epoch.
	e.recomputeElements()
	e.detectEvents()

	e.vehicle.SetPosition(e.Position())
	e.vehicle.SetVelocity(e.Velocity())

	if e.histChan != nil {
		e.histChan <- HistoryEntry{e.clock.Elapsed(), e.Position(), e.Velocity(), *e.elements}
	}
	ticksTotal.Inc()
}

func (e *Engine) recomputeElements() {
	el, err := NewElementsFromRV(e.state.R, e.state.V, e.force.Primary())
	if err != nil {
		e.logger.Log("level", "warning", "subsys", "astro", "orbit", "parabolic", "t", e.clock.Elapsed())
	}
	e.elements = el
	e.epoch = e.clock.Elapsed()

	// Collision sanity checks, with a 10% dead zone before reporting revival.
	rNorm := norm(e.state.R)
	if !e.collided && rNorm < e.force.Primary().Radius {
		e.collided = true
		e.logger.Log("level", "critical", "subsys", "astro", "collided", e.force.Primary().Name, "t", e.clock.Elapsed(), "r", rNorm, "radius", e.force.Primary().Radius)
	} else if e.collided && rNorm > e.force.Primary().Radius*1.1 {
		e.collided = false
		e.logger.Log("level", "critical", "subsys", "astro", "revived", e.force.Primary().Name, "t", e.clock.Elapsed())
	}
}

// detectEvents runs the level-triggered checks after every integration and
// element recomputation. Each condition fires on every tick it holds.
func (e *Engine) detectEvents() {
	r := norm(e.state.R)
	v := norm(e.state.V)
	t := e.clock.Elapsed()
	primary := e.force.Primary()

	if e.elements.e > eccentricityε && e.elements.AxisDefined() {
		if math.Abs(r-e.elements.Periapsis()) < apsisThreshold {
			e.bus.Publish(TickEvent{PeriapsisReached, t, r, v})
		}
		if math.Abs(r-e.elements.Apoapsis()) < apsisThreshold {
			e.bus.Publish(TickEvent{ApoapsisReached, t, r, v})
		}
	}
	if r < primary.Radius+entryAltitude {
		e.bus.Publish(TickEvent{AtmosphericEntry, t, r, v})
	}
	if v > math.Sqrt(2*primary.μ/r) {
		e.bus.Publish(TickEvent{EscapeVelocityReached, t, r, v})
	}
}

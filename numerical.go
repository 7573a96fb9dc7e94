package orbital

import (
	"fmt"
	"math"

	"github.com/ChristopherRabotin/ode"
	kitlog "github.com/go-kit/kit/log"
)

/* Handles the high fidelity Cartesian propagation. */

// NumericalPropagation integrates the full force model with an RK4 scheme.
// It serves as the reference trajectory against which the fixed-step Euler
// engine is validated, and for runs where per-tick latency does not matter.
type NumericalPropagation struct {
	R, V      []float64
	Elements  *Elements
	force     ForceModel
	mass      float64
	thrustVec []float64
	thrustMag float64
	step      float64 // s
	elapsed   float64 // s
	duration  float64 // s
	stopChan  chan bool
	logger    kitlog.Logger
	collided  bool
}

// NewNumericalPropagation returns a propagation from the provided initial
// Cartesian state. Thrust is a constant command for the whole arc; pass a
// zero magnitude for a coast.
func NewNumericalPropagation(R, V []float64, force ForceModel, mass float64, thrustVec []float64, thrustMag, step float64, logger kitlog.Logger) *NumericalPropagation {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	if thrustVec == nil {
		thrustVec = []float64{0, 0, 0}
	}
	el, _ := NewElementsFromRV(R, V, force.Primary())
	return &NumericalPropagation{
		R:         append([]float64{}, R...),
		V:         append([]float64{}, V...),
		Elements:  el,
		force:     force,
		mass:      mass,
		thrustVec: thrustVec,
		thrustMag: thrustMag,
		step:      step,
		stopChan:  make(chan bool, 1),
		logger:    logger,
	}
}

// PropagateFor integrates for the provided duration in seconds. Blocking.
func (p *NumericalPropagation) PropagateFor(duration float64) {
	p.duration = p.elapsed + duration
	p.logger.Log("level", "info", "subsys", "astro", "t", p.elapsed, "orbit", p.Elements)
	ode.NewRK4(0, p.step, p).Solve()
	p.logger.Log("level", "notice", "subsys", "astro", "status", "finished", "t", p.elapsed, "orbit", p.Elements)
}

// StopPropagation stops the propagation before the duration is reached.
func (p *NumericalPropagation) StopPropagation() {
	p.stopChan <- true
}

// GetState returns the state for the integrator.
func (p *NumericalPropagation) GetState() (s []float64) {
	s = make([]float64, 6)
	for i := 0; i < 3; i++ {
		s[i] = p.R[i]
		s[i+3] = p.V[i]
	}
	return
}

// SetState sets the updated state at time t.
func (p *NumericalPropagation) SetState(t float64, s []float64) {
	p.R = []float64{s[0], s[1], s[2]}
	p.V = []float64{s[3], s[4], s[5]}
	p.Elements, _ = NewElementsFromRV(p.R, p.V, p.force.Primary())
	p.elapsed += p.step

	// Orbit sanity checks and warnings.
	rNorm := norm(p.R)
	if !p.collided && rNorm < p.force.Primary().Radius {
		p.collided = true
		p.logger.Log("level", "critical", "subsys", "astro", "collided", p.force.Primary().Name, "t", p.elapsed, "r", rNorm)
	} else if p.collided && rNorm > p.force.Primary().Radius*1.1 {
		p.collided = false
		p.logger.Log("level", "critical", "subsys", "astro", "revived", p.force.Primary().Name, "t", p.elapsed)
	}
}

// Stop implements the stop call of the integrator.
func (p *NumericalPropagation) Stop(t float64) bool {
	select {
	case <-p.stopChan:
		return true
	default:
		return p.elapsed >= p.duration
	}
}

// Func is the integration function: the derivative of the Cartesian state
// under the aggregated force model.
func (p *NumericalPropagation) Func(t float64, f []float64) (fDot []float64) {
	fDot = make([]float64, 6)
	R := []float64{f[0], f[1], f[2]}
	V := []float64{f[3], f[4], f[5]}
	acc := p.force.Acceleration(R, V, p.thrustVec, p.thrustMag, p.mass)
	// d\vec{R}/dt
	fDot[0] = f[3]
	fDot[1] = f[4]
	fDot[2] = f[5]
	// d\vec{V}/dt
	fDot[3] = acc[0]
	fDot[4] = acc[1]
	fDot[5] = acc[2]
	for i := 0; i < 6; i++ {
		if math.IsNaN(fDot[i]) {
			panic(fmt.Errorf("fDot[%d]=NaN @ t=%f R=%+v V=%+v", i, t, R, V))
		}
	}
	return
}

package orbital

import (
	"time"
)

const (
	// MinTimeAcceleration is the lower clamp of the time acceleration factor.
	MinTimeAcceleration = 0.1
	// MaxTimeAcceleration is the upper clamp of the time acceleration factor.
	MaxTimeAcceleration = 1000.0
	// DefaultStep is the default physics step in seconds.
	DefaultStep = 1. / 60
)

// Clock tracks elapsed simulation time. Elapsed time grows monotonically by
// the physics step scaled by the time acceleration factor.
type Clock struct {
	elapsed float64 // s of simulation time
	step    float64 // fixed physics step, s
	accel   float64 // clamped to [MinTimeAcceleration, MaxTimeAcceleration]
}

// NewClock returns a clock with the provided physics step and a time
// acceleration of 1.
func NewClock(step float64) *Clock {
	if step <= 0 {
		step = DefaultStep
	}
	return &Clock{step: step, accel: 1}
}

// Elapsed returns the elapsed simulation time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Step returns the fixed physics step in seconds.
func (c *Clock) Step() float64 {
	return c.step
}

// TimeAcceleration returns the current time acceleration factor.
func (c *Clock) TimeAcceleration() float64 {
	return c.accel
}

// SetTimeAcceleration stores the clamped factor and returns it.
func (c *Clock) SetTimeAcceleration(a float64) float64 {
	if a < MinTimeAcceleration {
		a = MinTimeAcceleration
	} else if a > MaxTimeAcceleration {
		a = MaxTimeAcceleration
	}
	c.accel = a
	return a
}

// ScaledStep returns the simulation time advanced per tick.
func (c *Clock) ScaledStep() float64 {
	return c.step * c.accel
}

// Advance moves the clock forward by one scaled step.
func (c *Clock) Advance() {
	c.elapsed += c.ScaledStep()
}

// TickInterval returns the wall-clock interval between ticks: the physics
// step divided by the time acceleration.
func (c *Clock) TickInterval() time.Duration {
	return time.Duration(c.step / c.accel * float64(time.Second))
}

// Scheduler drives an engine at the clock's tick interval. All ticks run on
// the scheduler goroutine, so the engine never sees concurrent mutation.
// Changing the time acceleration reschedules the ticker at the end of the
// running tick, never from within it, without losing or duplicating a tick.
type Scheduler struct {
	engine   *Engine
	stopChan chan bool
	doneChan chan bool
}

// NewScheduler returns a scheduler for the provided engine.
func NewScheduler(e *Engine) *Scheduler {
	return &Scheduler{engine: e, stopChan: make(chan bool, 1), doneChan: make(chan bool)}
}

// Run drives the engine until Stop is called. Blocking.
func (s *Scheduler) Run() {
	defer close(s.doneChan)
	interval := s.engine.clock.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.engine.Step()
			// Deferred reschedule: pick up a time acceleration change only
			// once the tick has fully completed.
			if newInterval := s.engine.clock.TickInterval(); newInterval != interval {
				ticker.Stop()
				interval = newInterval
				ticker = time.NewTicker(interval)
			}
		}
	}
}

// Stop detaches the scheduler from its engine and waits for the running tick
// (if any) to complete: once Stop returns, the engine state is quiescent.
// Safe to call once.
func (s *Scheduler) Stop() {
	s.stopChan <- true
	<-s.doneChan
}

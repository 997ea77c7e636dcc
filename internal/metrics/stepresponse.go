// Package metrics computes step-response diagnostics over a simulation run.
package metrics

import "math"

// Metric observes one (t, u, y) sample per step and reduces the run to a
// single diagnostic value.
type Metric interface {
	Name() string
	Observe(t, u, y float64)
	Value() float64
	Reset()
}

// Overshoot reports how far the output exceeded the target, relative to the
// target. Zero when the response never crossed it.
type Overshoot struct {
	target float64
	max    float64
}

func NewOvershoot(target float64) *Overshoot {
	return &Overshoot{target: target, max: math.Inf(-1)}
}

func (o *Overshoot) Name() string { return "overshoot" }

func (o *Overshoot) Observe(t, u, y float64) {
	if y > o.max {
		o.max = y
	}
}

func (o *Overshoot) Value() float64 {
	if o.target == 0 || o.max <= o.target {
		return 0
	}
	return (o.max - o.target) / math.Abs(o.target)
}

func (o *Overshoot) Reset() { o.max = math.Inf(-1) }

// SettlingTime reports the last instant the output was outside the band
// target*(1±band). Zero when the output never left the band.
type SettlingTime struct {
	target  float64
	band    float64
	lastOut float64
}

func NewSettlingTime(target, band float64) *SettlingTime {
	return &SettlingTime{target: target, band: band}
}

func (s *SettlingTime) Name() string { return "settling_time" }

func (s *SettlingTime) Observe(t, u, y float64) {
	if math.Abs(y-s.target) > s.band*math.Abs(s.target) {
		s.lastOut = t
	}
}

func (s *SettlingTime) Value() float64 { return s.lastOut }

func (s *SettlingTime) Reset() { s.lastOut = 0 }

// SteadyStateError reports |target - y| at the final observed sample.
type SteadyStateError struct {
	target float64
	last   float64
}

func NewSteadyStateError(target float64) *SteadyStateError {
	return &SteadyStateError{target: target}
}

func (e *SteadyStateError) Name() string { return "steady_state_error" }

func (e *SteadyStateError) Observe(t, u, y float64) { e.last = y }

func (e *SteadyStateError) Value() float64 { return math.Abs(e.target - e.last) }

func (e *SteadyStateError) Reset() { e.last = 0 }

// Package sim drives plant elements through a time range, one input sample
// per step, collecting the response.
package sim

import "fmt"

// Config fixes the sampling grid of a run.
type Config struct {
	Dt       float64
	Duration float64
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %g", c.Duration)
	}
	return nil
}

// Observer is notified after every step with the sample time, the plant
// input and the plant output.
type Observer interface {
	OnStep(t, u, y float64)
}

// Metric reduces a run to a single named value; see package metrics.
type Metric interface {
	Name() string
	Observe(t, u, y float64)
	Value() float64
	Reset()
}

// Result holds the recorded trajectories of one run.
type Result struct {
	Times   []float64
	Inputs  []float64
	Outputs []float64
	Metrics map[string]float64
}

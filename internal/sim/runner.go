package sim

import (
	"context"

	"github.com/san-kum/controlbox/internal/control"
	"github.com/san-kum/controlbox/internal/element"
	"github.com/san-kum/controlbox/internal/signal"
)

// Runner feeds a signal through a plant element and records the response.
// The plant is exclusively owned by the runner for the duration of a run;
// fan out with element.Clone before sharing a configuration across runs.
type Runner struct {
	plant     element.Element
	source    signal.Signal
	metrics   []Metric
	observers []Observer
}

func New(plant element.Element, source signal.Signal) *Runner {
	return &Runner{plant: plant, source: source}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run performs an open-loop run: each sample of the source drives the plant
// directly. The context is checked once per step.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	return r.run(ctx, cfg, func(t, y float64) float64 {
		return r.source.At(t)
	})
}

// RunClosedLoop wires a controller between the source (acting as setpoint)
// and the plant: u = ctrl(setpoint - y), with y the previous plant output.
func (r *Runner) RunClosedLoop(ctx context.Context, cfg Config, ctrl control.Controller) (*Result, error) {
	ctrl.Reset()
	return r.run(ctx, cfg, func(t, y float64) float64 {
		return ctrl.Compute(r.source.At(t)-y, t)
	})
}

func (r *Runner) run(ctx context.Context, cfg Config, input func(t, y float64) float64) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tr := signal.TimeRange{Start: 0, Stop: cfg.Duration, Dt: cfg.Dt}
	steps := tr.Steps()
	result := &Result{
		Times:   make([]float64, 0, steps),
		Inputs:  make([]float64, 0, steps),
		Outputs: make([]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	y := 0.0
	for _, t := range tr.Times() {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		u := input(t, y)
		y = r.plant.Step(u)

		for _, m := range r.metrics {
			m.Observe(t, u, y)
		}
		for _, obs := range r.observers {
			obs.OnStep(t, u, y)
		}

		result.Times = append(result.Times, t)
		result.Inputs = append(result.Inputs, u)
		result.Outputs = append(result.Outputs, y)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

package metrics

import (
	"math"
	"testing"
)

func feed(m Metric, ys ...float64) {
	for i, y := range ys {
		m.Observe(float64(i)*0.1, 1.0, y)
	}
}

func TestOvershoot(t *testing.T) {
	m := NewOvershoot(2.0)
	feed(m, 0, 1.4, 2.5, 2.1, 2.0)

	if got := m.Value(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected overshoot 0.25, got %g", got)
	}
}

func TestOvershootNeverCrossed(t *testing.T) {
	m := NewOvershoot(2.0)
	feed(m, 0, 0.8, 1.5, 1.9)

	if got := m.Value(); got != 0 {
		t.Errorf("expected 0 for monotone approach, got %g", got)
	}
}

func TestOvershootZeroTarget(t *testing.T) {
	m := NewOvershoot(0)
	feed(m, 0, 0.5, 1.0)

	if got := m.Value(); got != 0 {
		t.Errorf("expected 0 for zero target, got %g", got)
	}
}

func TestOvershootReset(t *testing.T) {
	m := NewOvershoot(1.0)
	feed(m, 3.0)
	m.Reset()
	feed(m, 1.0)

	if got := m.Value(); got != 0 {
		t.Errorf("expected reset to clear peak, got %g", got)
	}
}

func TestSettlingTime(t *testing.T) {
	m := NewSettlingTime(1.0, 0.05)
	// Enters the 5% band at t=0.3 and stays there.
	feed(m, 0, 0.6, 0.9, 0.97, 0.99, 1.0)

	if got := m.Value(); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("expected last excursion at t=0.2, got %g", got)
	}
}

func TestSettlingTimeReentry(t *testing.T) {
	m := NewSettlingTime(1.0, 0.05)
	// Settles, then a late disturbance pushes it back out.
	feed(m, 0, 0.98, 1.0, 1.0, 1.2, 1.0)

	if got := m.Value(); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("expected settling time to track the late excursion, got %g", got)
	}
}

func TestSettlingTimeNeverLeft(t *testing.T) {
	m := NewSettlingTime(1.0, 0.05)
	feed(m, 0.98, 1.0, 1.01)

	if got := m.Value(); got != 0 {
		t.Errorf("expected 0 when always in band, got %g", got)
	}
}

func TestSteadyStateError(t *testing.T) {
	m := NewSteadyStateError(2.0)
	feed(m, 0, 1.0, 1.9, 1.95)

	if got := m.Value(); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("expected final error 0.05, got %g", got)
	}
}

func TestMetricNames(t *testing.T) {
	names := map[string]Metric{
		"overshoot":          NewOvershoot(1),
		"settling_time":      NewSettlingTime(1, 0.05),
		"steady_state_error": NewSteadyStateError(1),
	}
	for want, m := range names {
		if got := m.Name(); got != want {
			t.Errorf("expected name %q, got %q", want, got)
		}
	}
}

package element

import (
	"errors"
	"math"
	"testing"
)

func TestPT2FirstStepIsZero(t *testing.T) {
	// From rest the output only moves once the derivative state has picked
	// up drive, so the first sample is still zero.
	p, err := NewPT2(1.0, 1.0, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewPT2 failed: %v", err)
	}
	if got := p.Step(1000); got != 0 {
		t.Errorf("expected 0 on first step, got %g", got)
	}
}

func TestPT2FromTimeConstants(t *testing.T) {
	p, err := NewPT2FromTimeConstants(0.1, 1.0, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewPT2FromTimeConstants failed: %v", err)
	}
	if math.Abs(p.Omega-1.0) > 1e-12 {
		t.Errorf("expected omega 1, got %g", p.Omega)
	}
	if math.Abs(p.Damping-1.0) > 1e-12 {
		t.Errorf("expected damping 1, got %g", p.Damping)
	}

	p2, err := NewPT2FromTimeConstants(0.1, 2.0, 0.5, 1.0)
	if err != nil {
		t.Fatalf("NewPT2FromTimeConstants failed: %v", err)
	}
	if math.Abs(p2.Omega-1.0) > 1e-12 {
		t.Errorf("expected omega 1, got %g", p2.Omega)
	}
	if math.Abs(p2.Damping-1.25) > 1e-12 {
		t.Errorf("expected damping 1.25, got %g", p2.Damping)
	}
}

func TestPT2Regimes(t *testing.T) {
	tests := []struct {
		damping float64
		regime  DampingRegime
	}{
		{0.3, Underdamped},
		{1.0, CriticallyDamped},
		{2.5, Overdamped},
	}

	for _, tt := range tests {
		p, _ := NewPT2(0.01, 1.0, tt.damping, 1.0)
		if got := p.Regime(); got != tt.regime {
			t.Errorf("damping %g: expected %v, got %v", tt.damping, tt.regime, got)
		}
	}
}

func TestPT2StepResponseSettles(t *testing.T) {
	// Critically damped, dt well below 1/omega: the step response must
	// approach Kp*u without oscillating past it by more than a few percent.
	p, _ := NewPT2(0.01, 1.0, 1.0, 2.0)

	var out, peak float64
	for i := 0; i < 5000; i++ {
		out = p.Step(10)
		if out > peak {
			peak = out
		}
	}
	if math.Abs(out-20) > 0.1 {
		t.Errorf("expected settling near 20, got %g", out)
	}
	if peak > 20.5 {
		t.Errorf("critically damped response overshot to %g", peak)
	}
}

func TestPT2UnderdampedOscillates(t *testing.T) {
	p, _ := NewPT2(0.01, 1.0, 0.2, 1.0)

	peak := 0.0
	for i := 0; i < 2000; i++ {
		if out := p.Step(10); out > peak {
			peak = out
		}
	}
	if peak <= 10.5 {
		t.Errorf("underdamped response should overshoot the target, peak %g", peak)
	}
}

func TestPT2InvalidParams(t *testing.T) {
	tests := []struct {
		name                           string
		sampleTime, omega, damping, kp float64
	}{
		{"zero sample time", 0, 1, 1, 1},
		{"zero omega", 1, 0, 1, 1},
		{"negative omega", 1, -1, 1, 1},
		{"negative damping", 1, 1, -0.5, 1},
		{"zero gain", 1, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPT2(tt.sampleTime, tt.omega, tt.damping, tt.kp)
			if !errors.Is(err, ErrParameter) {
				t.Errorf("expected ErrParameter, got %v", err)
			}
		})
	}

	if _, err := NewPT2FromTimeConstants(1, 0, 1, 1); !errors.Is(err, ErrParameter) {
		t.Errorf("expected ErrParameter for zero time constant, got %v", err)
	}
}

func TestPT2CloneIndependence(t *testing.T) {
	p, _ := NewPT2(0.01, 1.0, 1.0, 1.0)
	for i := 0; i < 10; i++ {
		p.Step(5)
	}

	clone := p.Clone()
	if !p.Equal(clone) {
		t.Fatal("clone should equal original before divergence")
	}

	clone.Step(100)
	if p.Equal(clone) {
		t.Error("stepping the clone must not keep it equal to the original")
	}
}

package element

import (
	"errors"
	"math"
	"testing"
)

func TestPT1UnityAlphaIsIdentity(t *testing.T) {
	// time constant == sample time gives alpha = 1 and gain 1: the filter
	// passes inputs through unchanged from rest.
	p, err := NewPT1(1.0, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewPT1 failed: %v", err)
	}

	for _, u := range []float64{1000, -3, 0.5, 0} {
		if got := p.Step(u); got != u {
			t.Errorf("expected identity, got %g for input %g", got, u)
		}
	}
}

func TestPT1ConvergesToGainTimesInput(t *testing.T) {
	p, _ := NewPT1(0.1, 1.0, 2.0)

	var out float64
	for i := 0; i < 200; i++ {
		out = p.Step(10)
	}
	if math.Abs(out-20) > 1e-6 {
		t.Errorf("expected convergence to 20, got %g", out)
	}
}

func TestPT1FirstStepFraction(t *testing.T) {
	// From rest, the first output is alpha*Kp*u.
	p, _ := NewPT1(1.0, 4.0, 1.0)
	if got := p.Step(1000); got != 250 {
		t.Errorf("expected 250, got %g", got)
	}
}

func TestPT1ZeroTimeConstantIsInstantaneous(t *testing.T) {
	p, err := NewPT1(0.5, 0, 3.0)
	if err != nil {
		t.Fatalf("NewPT1 failed: %v", err)
	}
	if got := p.Step(2); got != 6 {
		t.Errorf("expected 6, got %g", got)
	}
	if got := p.Step(-1); got != -3 {
		t.Errorf("expected -3, got %g", got)
	}
}

func TestPT1InvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		sampleTime float64
		t1         float64
		kp         float64
	}{
		{"zero sample time", 0, 1, 1},
		{"time constant below sample time", 1, 0.5, 1},
		{"zero gain", 1, 1, 0},
		{"negative gain", 1, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPT1(tt.sampleTime, tt.t1, tt.kp)
			if !errors.Is(err, ErrParameter) {
				t.Errorf("expected ErrParameter, got %v", err)
			}
		})
	}
}

func TestPT1CloneIndependence(t *testing.T) {
	p, _ := NewPT1(0.1, 1.0, 1.0)
	p.Step(5)

	clone := p.Clone()
	before := p.Clone()

	clone.Step(100)
	clone.Step(100)

	// The original's next output is unchanged by stepping the clone.
	want := before.Step(5)
	if got := p.Step(5); got != want {
		t.Errorf("original diverged after clone stepping: got %g, want %g", got, want)
	}
}

package element

import "fmt"

// PT1 is a first-order lag: single-pole exponential smoothing with gain.
//
//	y[k] = y[k-1] + alpha*(Kp*u[k] - y[k-1]),  alpha = Ts/T1
//
// Forward Euler discretization. With T1 == Ts (alpha = 1) the filter is an
// instantaneous gain element.
type PT1 struct {
	SampleTime float64
	T1         float64
	Kp         float64

	prev float64
}

// NewPT1 builds a first-order lag. t1 == 0 selects the instantaneous gain
// degenerate (alpha treated as 1); any other t1 below the sample time is
// rejected because the explicit update would overshoot the pole.
func NewPT1(sampleTime, t1, kp float64) (*PT1, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("%w: PT1 sample time must be positive, got %g", ErrParameter, sampleTime)
	}
	if t1 != 0 && t1 < sampleTime {
		return nil, fmt.Errorf("%w: PT1 time constant %g below sample time %g", ErrParameter, t1, sampleTime)
	}
	if kp <= 0 {
		return nil, fmt.Errorf("%w: PT1 gain must be positive, got %g", ErrParameter, kp)
	}
	return &PT1{SampleTime: sampleTime, T1: t1, Kp: kp}, nil
}

func (p *PT1) alpha() float64 {
	if p.T1 == 0 {
		return 1
	}
	return p.SampleTime / p.T1
}

func (p *PT1) Step(u float64) float64 {
	out := p.prev + p.alpha()*(p.Kp*u-p.prev)
	p.prev = out
	return out
}

func (p *PT1) Name() string { return "PT1" }

func (p *PT1) Clone() Element {
	c := *p
	return &c
}

func (p *PT1) Equal(other Element) bool {
	o, ok := other.(*PT1)
	return ok && *p == *o
}

func (p *PT1) String() string {
	return fmt.Sprintf("PT1(dt=%g, t1=%g, kp=%g)", p.SampleTime, p.T1, p.Kp)
}

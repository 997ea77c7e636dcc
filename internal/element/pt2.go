package element

import (
	"fmt"
	"math"
)

// DampingRegime classifies a second-order system by its damping factor.
type DampingRegime int

const (
	Underdamped       DampingRegime = iota // D < 1, oscillatory
	CriticallyDamped                       // D = 1, fastest non-oscillatory
	Overdamped                             // D > 1
)

func (r DampingRegime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	default:
		return "overdamped"
	}
}

// PT2 is a second-order lag/oscillator integrated by explicit forward Euler:
//
//	x2[k] = x2[k-1] + Ts*(-2*D*w*x2[k-1] - w^2*x1[k-1] + Kp*w^2*u[k])
//	x1[k] = x1[k-1] + Ts*w*x2[k-1]
//
// where x1 is the output and x2 its (scaled) derivative. Stability of the
// explicit scheme is the caller's concern: Ts must be chosen small relative
// to 1/w. The element does not validate it.
type PT2 struct {
	SampleTime float64
	Omega      float64
	Damping    float64
	Kp         float64

	prev     float64
	prevDiff float64
}

// NewPT2 builds a second-order lag from natural frequency and damping.
func NewPT2(sampleTime, omega, damping, kp float64) (*PT2, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("%w: PT2 sample time must be positive, got %g", ErrParameter, sampleTime)
	}
	if omega <= 0 {
		return nil, fmt.Errorf("%w: PT2 natural frequency must be positive, got %g", ErrParameter, omega)
	}
	if damping < 0 {
		return nil, fmt.Errorf("%w: PT2 damping must be non-negative, got %g", ErrParameter, damping)
	}
	if kp <= 0 {
		return nil, fmt.Errorf("%w: PT2 gain must be positive, got %g", ErrParameter, kp)
	}
	return &PT2{SampleTime: sampleTime, Omega: omega, Damping: damping, Kp: kp}, nil
}

// NewPT2FromTimeConstants derives natural frequency and damping from the two
// time constants of the equivalent series form:
//
//	w = 1/sqrt(t1*t2),  D = (t1+t2)/(2*t1*t2)
func NewPT2FromTimeConstants(sampleTime, t1, t2, kp float64) (*PT2, error) {
	if t1 <= 0 || t2 <= 0 {
		return nil, fmt.Errorf("%w: PT2 time constants must be positive, got t1=%g t2=%g", ErrParameter, t1, t2)
	}
	omega := 1 / math.Sqrt(t1*t2)
	damping := (t1 + t2) / (2 * t1 * t2)
	return NewPT2(sampleTime, omega, damping, kp)
}

// Regime reports which damping regime the element operates in.
func (p *PT2) Regime() DampingRegime {
	switch {
	case p.Damping < 1:
		return Underdamped
	case p.Damping == 1:
		return CriticallyDamped
	default:
		return Overdamped
	}
}

func (p *PT2) Step(u float64) float64 {
	w := p.Omega
	w2 := w * w
	diff := p.prevDiff + p.SampleTime*(-2*p.Damping*w*p.prevDiff-w2*p.prev+p.Kp*w2*u)
	out := p.prev + p.SampleTime*w*p.prevDiff
	p.prevDiff = diff
	p.prev = out
	return out
}

func (p *PT2) Name() string { return "PT2" }

func (p *PT2) Clone() Element {
	c := *p
	return &c
}

func (p *PT2) Equal(other Element) bool {
	o, ok := other.(*PT2)
	return ok && *p == *o
}

func (p *PT2) String() string {
	return fmt.Sprintf("PT2(dt=%g, omega=%g, damping=%g, kp=%g)",
		p.SampleTime, p.Omega, p.Damping, p.Kp)
}

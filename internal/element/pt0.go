package element

import (
	"fmt"
	"math"
)

// MaxDelaySamples bounds the PT0 history buffer. Requested delays beyond
// this are rejected when the element is built, so a misconfigured delay can
// never abort a running simulation.
const MaxDelaySamples = 4096

// PT0 is a zero-order lag: a pure transport delay with static gain.
//
//	y[k] = Kp * u[k - floor(T0/Ts)]
//
// The history buffer is pre-seeded with zeros, so the element outputs zero
// until the first amplified sample has travelled through the delay line.
type PT0 struct {
	SampleTime float64
	DelayTime  float64
	Kp         float64

	history []float64
}

// NewPT0 builds a transport delay. delayTime == 0 degenerates to a pure gain
// element whose output is Kp*u on the same step.
func NewPT0(sampleTime, delayTime, kp float64) (*PT0, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("%w: PT0 sample time must be positive, got %g", ErrParameter, sampleTime)
	}
	if delayTime < 0 {
		return nil, fmt.Errorf("%w: PT0 delay time must be non-negative, got %g", ErrParameter, delayTime)
	}
	if kp <= 0 {
		return nil, fmt.Errorf("%w: PT0 gain must be positive, got %g", ErrParameter, kp)
	}
	n := int(math.Floor(delayTime / sampleTime))
	if n > MaxDelaySamples {
		return nil, fmt.Errorf("%w: PT0 needs %d samples, maximum is %d", ErrCapacity, n, MaxDelaySamples)
	}
	return &PT0{
		SampleTime: sampleTime,
		DelayTime:  delayTime,
		Kp:         kp,
		history:    make([]float64, n),
	}, nil
}

// DelaySamples reports the length of the delay line in samples.
func (p *PT0) DelaySamples() int { return len(p.history) }

func (p *PT0) Step(u float64) float64 {
	p.history = append(p.history, u*p.Kp)
	out := p.history[0]
	p.history = p.history[1:]
	return out
}

func (p *PT0) Name() string { return "PT0" }

func (p *PT0) Clone() Element {
	c := *p
	c.history = make([]float64, len(p.history))
	copy(c.history, p.history)
	return &c
}

func (p *PT0) Equal(other Element) bool {
	o, ok := other.(*PT0)
	if !ok {
		return false
	}
	if p.SampleTime != o.SampleTime || p.DelayTime != o.DelayTime || p.Kp != o.Kp {
		return false
	}
	if len(p.history) != len(o.history) {
		return false
	}
	for i := range p.history {
		if p.history[i] != o.history[i] {
			return false
		}
	}
	return true
}

func (p *PT0) String() string {
	return fmt.Sprintf("PT0(dt=%g, delay=%g, kp=%g)", p.SampleTime, p.DelayTime, p.Kp)
}

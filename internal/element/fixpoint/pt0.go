package fixpoint

import (
	"fmt"
	"math"
)

// MaxDelaySamples bounds the PT0 history buffer, checked at construction.
const MaxDelaySamples = 4096

// PT0 is the Q10 transport delay. The gain is pre-scaled by Scale, stored
// products live in the delay line in the Q10 domain, and the head sample is
// shifted back to true scale on output.
type PT0 struct {
	SampleTime float64
	DelayTime  float64

	kp      int64
	history []int64
}

func NewPT0(sampleTime, delayTime float64, kp int32) (*PT0, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("%w: PT0 sample time must be positive, got %g", ErrParameter, sampleTime)
	}
	if delayTime < 0 {
		return nil, fmt.Errorf("%w: PT0 delay time must be non-negative, got %g", ErrParameter, delayTime)
	}
	if kp <= 0 {
		return nil, fmt.Errorf("%w: PT0 gain must be positive, got %d", ErrParameter, kp)
	}
	n := int(math.Floor(delayTime / sampleTime))
	if n > MaxDelaySamples {
		return nil, fmt.Errorf("%w: PT0 needs %d samples, maximum is %d", ErrCapacity, n, MaxDelaySamples)
	}
	return &PT0{
		SampleTime: sampleTime,
		DelayTime:  delayTime,
		kp:         int64(kp) * Scale,
		history:    make([]int64, n),
	}, nil
}

func (p *PT0) DelaySamples() int { return len(p.history) }

func (p *PT0) Step(u int32) int32 {
	p.history = append(p.history, int64(u)*p.kp)
	out := p.history[0]
	p.history = p.history[1:]
	return int32(out >> ShiftBits)
}

func (p *PT0) Name() string { return "PT0" }

func (p *PT0) Clone() Element {
	c := *p
	c.history = make([]int64, len(p.history))
	copy(c.history, p.history)
	return &c
}

func (p *PT0) Equal(other Element) bool {
	o, ok := other.(*PT0)
	if !ok || p.SampleTime != o.SampleTime || p.DelayTime != o.DelayTime || p.kp != o.kp {
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
	return fmt.Sprintf("PT0(dt=%g, delay=%g, kp=%d/1024)", p.SampleTime, p.DelayTime, p.kp)
}

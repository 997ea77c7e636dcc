package fixpoint

import "fmt"

// PT1 is the Q10 first-order lag. Both the gain and the smoothing factor
// alpha = Ts/T1 are pre-scaled, and the filter state is kept in the Q10
// domain: the Q20 product alpha*(Kp*u - prev) is shifted down once into
// state, and the state is shifted once more to true scale on output.
type PT1 struct {
	SampleTime float64
	T1         float64

	kp    int64
	alpha int64
	prev  int64
}

func NewPT1(sampleTime, t1 float64, kp int32) (*PT1, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("%w: PT1 sample time must be positive, got %g", ErrParameter, sampleTime)
	}
	if t1 != 0 && t1 < sampleTime {
		return nil, fmt.Errorf("%w: PT1 time constant %g below sample time %g", ErrParameter, t1, sampleTime)
	}
	if kp <= 0 {
		return nil, fmt.Errorf("%w: PT1 gain must be positive, got %d", ErrParameter, kp)
	}
	alpha := int64(Scale)
	if t1 != 0 {
		alpha = quantize(sampleTime / t1)
	}
	return &PT1{
		SampleTime: sampleTime,
		T1:         t1,
		kp:         int64(kp) * Scale,
		alpha:      alpha,
	}, nil
}

func (p *PT1) Step(u int32) int32 {
	diff := int64(u)*p.kp - p.prev        // Q10
	p.prev += p.alpha * diff >> ShiftBits // Q20 product, one shift back to Q10
	return int32(p.prev >> ShiftBits)
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
	return fmt.Sprintf("PT1(dt=%g, t1=%g, kp=%d/1024)", p.SampleTime, p.T1, p.kp)
}

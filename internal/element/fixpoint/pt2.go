package fixpoint

import "fmt"

// PT2 is the Q10 second-order lag. All coefficients (sample time, natural
// frequency, damping, gain) are quantized once at construction; both state
// variables stay in the Q10 domain and every Q20 product is shifted back
// down immediately, keeping intermediates within int64 range for the sample
// magnitudes the embedded targets use.
type PT2 struct {
	SampleTime float64
	Omega      float64
	Damping    float64

	dt       int64
	omega    int64
	damping  int64
	kp       int64
	prev     int64
	prevDiff int64
}

func NewPT2(sampleTime, omega, damping float64, kp int32) (*PT2, error) {
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
		return nil, fmt.Errorf("%w: PT2 gain must be positive, got %d", ErrParameter, kp)
	}
	return &PT2{
		SampleTime: sampleTime,
		Omega:      omega,
		Damping:    damping,
		dt:         quantize(sampleTime),
		omega:      quantize(omega),
		damping:    quantize(damping),
		kp:         int64(kp) * Scale,
	}, nil
}

func (p *PT2) Step(u int32) int32 {
	omegaSq := (p.omega * p.omega) >> ShiftBits // Q10

	friction := (2 * p.damping * p.omega) >> ShiftBits  // Q10 of 2*D*w
	friction = (friction * p.prevDiff) >> ShiftBits     // Q10
	spring := (omegaSq * p.prev) >> ShiftBits           // Q10
	drive := (p.kp * int64(u) * omegaSq) >> ShiftBits   // Q10*1*Q10 -> Q20, back to Q10

	diff := p.prevDiff + ((p.dt * (-friction - spring + drive)) >> ShiftBits)
	velocity := (p.dt * p.omega) >> ShiftBits // Q10 of Ts*w
	out := p.prev + ((velocity * p.prevDiff) >> ShiftBits)
	p.prevDiff = diff
	p.prev = out
	return int32(out >> ShiftBits)
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
	return fmt.Sprintf("PT2(dt=%g, omega=%g, damping=%g, kp=%d/1024)",
		p.SampleTime, p.Omega, p.Damping, p.kp)
}

// Package control provides scalar controllers for closing the loop around a
// plant element.
package control

// Controller maps a tracking error to a control value, one sample per call.
type Controller interface {
	Compute(err, t float64) float64
	Reset()
}

// PID is a scalar proportional-integral-derivative controller.
type PID struct {
	Kp float64
	Ki float64
	Kd float64

	integral float64
	prevErr  float64
	prevT    float64
	first    bool
}

func NewPID(kp, ki, kd float64) *PID {
	return &PID{Kp: kp, Ki: ki, Kd: kd, first: true}
}

func (p *PID) Compute(err, t float64) float64 {
	if p.first {
		p.prevErr = err
		p.prevT = t
		p.first = false
		return p.Kp * err
	}

	dt := t - p.prevT
	if dt <= 0 {
		return p.Kp * err
	}

	p.integral += err * dt
	derivative := (err - p.prevErr) / dt
	p.prevErr = err
	p.prevT = t

	return p.Kp*err + p.Ki*p.integral + p.Kd*derivative
}

func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.prevT = 0
	p.first = true
}

// None passes the error through unchanged, turning a closed-loop run into a
// plain setpoint-driven one.
type None struct{}

func NewNone() *None { return &None{} }

func (n *None) Compute(err, t float64) float64 { return err }
func (n *None) Reset()                         {}

// Package signal provides the input sources fed into plant elements: pure
// functions of time sampled by the run loop, one value per step.
package signal

import "fmt"

// Signal maps a point in time to a sample value. Implementations are
// stateless; the run loop owns the clock.
type Signal interface {
	At(t float64) float64
	Name() string
	fmt.Stringer
}

// Constant yields the same value at every instant.
type Constant float64

func (c Constant) At(t float64) float64 { return float64(c) }
func (c Constant) Name() string         { return "Constant" }
func (c Constant) String() string       { return fmt.Sprintf("Constant(%g)", float64(c)) }

// Superposition is the pointwise sum of two signals.
type Superposition struct {
	A Signal
	B Signal
}

func (s Superposition) At(t float64) float64 { return s.A.At(t) + s.B.At(t) }
func (s Superposition) Name() string         { return "Superposition" }

func (s Superposition) String() string {
	return fmt.Sprintf("Superposition(%s + %s)", s.A, s.B)
}

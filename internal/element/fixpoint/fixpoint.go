package fixpoint

import (
	"errors"
	"fmt"
)

const (
	// ShiftBits is the number of fractional bits in the Q10 representation.
	ShiftBits = 10
	// Scale is the fixed-point unit: a true value x is stored as x*Scale.
	Scale = 1 << ShiftBits
)

var (
	ErrParameter = errors.New("fixpoint: parameter out of valid range")
	ErrCapacity  = errors.New("fixpoint: delay exceeds buffer capacity")
)

// Element mirrors element.Element for the integer representation. Inputs and
// outputs are true-scale int32 samples; all pre-scaled state stays internal.
type Element interface {
	Step(u int32) int32
	Name() string
	Clone() Element
	Equal(other Element) bool
	fmt.Stringer
}

// quantize converts a true-scale coefficient to Q10, truncating toward zero
// the way the embedded targets do.
func quantize(v float64) int64 {
	return int64(v * Scale)
}

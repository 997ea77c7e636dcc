package element

import "fmt"

// branch records which segment of a hysteresis element was last active.
type branch int

const (
	fromLower branch = iota
	fromUpper
)

// Hysteresis is a two-state switching nonlinearity built from two linear
// segments and two thresholds. Inputs below the lower threshold lock in the
// lower segment, inputs above the upper threshold lock in the upper segment,
// and inputs inside the band replay whichever segment was last active. That
// stored branch is the memory effect that defines hysteresis.
type Hysteresis struct {
	lowerFn LinearFunc
	upperFn LinearFunc
	lower   float64
	upper   float64
	active  branch
}

func (h *Hysteresis) Step(u float64) float64 {
	if u < h.lower {
		h.active = fromLower
		return h.lowerFn.Eval(u)
	}
	if u > h.upper {
		h.active = fromUpper
		return h.upperFn.Eval(u)
	}
	if h.active == fromUpper {
		return h.upperFn.Eval(u)
	}
	return h.lowerFn.Eval(u)
}

// Thresholds returns the switching band as (lower, upper).
func (h *Hysteresis) Thresholds() (float64, float64) { return h.lower, h.upper }

func (h *Hysteresis) Name() string { return "Hysteresis" }

func (h *Hysteresis) Clone() Element {
	c := *h
	return &c
}

func (h *Hysteresis) Equal(other Element) bool {
	o, ok := other.(*Hysteresis)
	return ok && *h == *o
}

func (h *Hysteresis) String() string {
	return fmt.Sprintf("Hysteresis(lower=%g:%s, upper=%g:%s)",
		h.lower, h.lowerFn, h.upper, h.upperFn)
}

// HysteresisBuilder derives a consistent threshold pair from any of several
// parameterizations: explicit input-domain thresholds, a spread around a
// midpoint (in input or output units), the crossing point of the two
// segments, or an input threshold solved from a vertical offset between the
// segments. Derivations that divide by the slope difference fail when both
// slopes are equal; such failures accumulate and surface at Build.
type HysteresisBuilder struct {
	lowerFn  LinearFunc
	upperFn  LinearFunc
	lower    *float64
	upper    *float64
	midpoint float64
	spread   float64
	active   branch
	err      error
}

// NewHysteresisBuilder starts a derivation from the two branch segments.
func NewHysteresisBuilder(lowerFn, upperFn LinearFunc) *HysteresisBuilder {
	return &HysteresisBuilder{lowerFn: lowerFn, upperFn: upperFn}
}

// LowerX sets the lower threshold explicitly, in input units.
func (b *HysteresisBuilder) LowerX(x float64) *HysteresisBuilder {
	b.lower = &x
	return b
}

// UpperX sets the upper threshold explicitly, in input units.
func (b *HysteresisBuilder) UpperX(x float64) *HysteresisBuilder {
	b.upper = &x
	return b
}

// SpreadX sets the band width in input units.
func (b *HysteresisBuilder) SpreadX(s float64) *HysteresisBuilder {
	b.spread = s
	return b
}

// SpreadY sets the band width in output units, converted to input units by
// the difference of the segment slopes.
func (b *HysteresisBuilder) SpreadY(s float64) *HysteresisBuilder {
	if b.lowerFn.M == b.upperFn.M {
		b.fail("SpreadY undefined for equal segment slopes")
		return b
	}
	b.spread = s / (b.upperFn.M - b.lowerFn.M)
	return b
}

// Cross centers the band on the input value where the two segments
// intersect.
func (b *HysteresisBuilder) Cross() *HysteresisBuilder {
	if b.lowerFn.M == b.upperFn.M {
		b.fail("Cross undefined for equal segment slopes")
		return b
	}
	b.midpoint = (b.lowerFn.N - b.upperFn.N) / (b.upperFn.M - b.lowerFn.M)
	return b
}

// LowerY sets the lower threshold to the input where the lower segment,
// raised by deltaY, meets the upper segment.
func (b *HysteresisBuilder) LowerY(deltaY float64) *HysteresisBuilder {
	x, ok := b.solveOffset(deltaY)
	if !ok {
		b.fail("LowerY undefined for equal segment slopes")
		return b
	}
	b.lower = &x
	return b
}

// UpperY is the vertical-offset derivation for the upper threshold.
func (b *HysteresisBuilder) UpperY(deltaY float64) *HysteresisBuilder {
	x, ok := b.solveOffset(deltaY)
	if !ok {
		b.fail("UpperY undefined for equal segment slopes")
		return b
	}
	b.upper = &x
	return b
}

// StartFromUpper makes the upper segment the initially active branch instead
// of the default lower one.
func (b *HysteresisBuilder) StartFromUpper() *HysteresisBuilder {
	b.active = fromUpper
	return b
}

// solveOffset finds x with lowerFn(x) + deltaY == upperFn(x).
func (b *HysteresisBuilder) solveOffset(deltaY float64) (float64, bool) {
	if b.lowerFn.M == b.upperFn.M {
		return 0, false
	}
	return (b.lowerFn.N - b.upperFn.N + deltaY) / (b.upperFn.M - b.lowerFn.M), true
}

func (b *HysteresisBuilder) fail(msg string) {
	if b.err == nil {
		b.err = fmt.Errorf("%w: Hysteresis %s", ErrParameter, msg)
	}
}

// Build resolves missing thresholds and validates the band. When only one
// threshold is explicit the other sits one spread away from it; when neither
// is, both sit half a spread from the midpoint.
func (b *HysteresisBuilder) Build() (*Hysteresis, error) {
	if b.err != nil {
		return nil, b.err
	}

	var lower, upper float64
	switch {
	case b.lower != nil:
		lower = *b.lower
	case b.upper != nil:
		lower = *b.upper - b.spread
	default:
		lower = b.midpoint - b.spread/2
	}
	switch {
	case b.upper != nil:
		upper = *b.upper
	case b.lower != nil:
		upper = *b.lower + b.spread
	default:
		upper = b.midpoint + b.spread/2
	}

	if lower > upper {
		return nil, fmt.Errorf("%w: Hysteresis lower threshold %g above upper %g", ErrParameter, lower, upper)
	}
	return &Hysteresis{
		lowerFn: b.lowerFn,
		upperFn: b.upperFn,
		lower:   lower,
		upper:   upper,
		active:  b.active,
	}, nil
}

package element

import "fmt"

// Element is the uniform handle over the plant-element catalog. A value held
// behind this interface can be stepped, cloned, displayed and compared
// without knowing its concrete kind.
//
// Clone returns a deep copy whose subsequent stepping does not affect the
// original; it exists to fan a configured element out into independent
// simulation branches. Equal is kind-sensitive: two elements of different
// concrete kinds are never equal, even when their parameters coincide
// numerically.
type Element interface {
	// Step consumes one input sample and returns one output sample,
	// advancing internal state. It never fails.
	Step(u float64) float64

	// Name is a short stable identifier for the concrete kind ("PT1", ...),
	// independent of instance state.
	Name() string

	Clone() Element
	Equal(other Element) bool
	fmt.Stringer
}

// Chain composes elements in series: the output of each member feeds the
// input of the next. An empty chain is the identity. Chain itself satisfies
// Element, so chains nest and can be stored alongside single elements.
type Chain []Element

func (c Chain) Step(u float64) float64 {
	for _, e := range c {
		u = e.Step(u)
	}
	return u
}

func (c Chain) Name() string { return "Chain" }

func (c Chain) Clone() Element {
	out := make(Chain, len(c))
	for i, e := range c {
		out[i] = e.Clone()
	}
	return out
}

func (c Chain) Equal(other Element) bool {
	o, ok := other.(Chain)
	if !ok || len(o) != len(c) {
		return false
	}
	for i, e := range c {
		if !e.Equal(o[i]) {
			return false
		}
	}
	return true
}

func (c Chain) String() string {
	s := "Chain("
	for i, e := range c {
		if i > 0 {
			s += " -> "
		}
		s += e.String()
	}
	return s + ")"
}

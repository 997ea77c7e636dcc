// Package fixpoint provides Q10 integer variants of the plant elements for
// embedded-style arithmetic without floating point.
//
// Values carry 10 fractional bits: a quantity x is stored as x*1024. Gains
// and coefficients are pre-scaled at construction, so multiplying two stored
// quantities yields a doubly-scaled (Q20) intermediate that must be shifted
// right by ShiftBits exactly once before it re-enters the Q10 domain, and
// once more when a Q10 quantity leaves as a true-scale output. Each state
// update therefore shifts once into state and once on output, never twice
// in a row on the same quantity. The float elements in the parent package
// are the numeric reference; the cross-check tests pin the two paths
// together within quantization error.
package fixpoint

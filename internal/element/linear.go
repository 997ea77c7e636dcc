package element

import "fmt"

// LinearFunc is the affine map y = M*u + N. It is a stateless building block,
// used in pairs by Hysteresis for its two branches.
type LinearFunc struct {
	M float64
	N float64
}

func (f LinearFunc) Eval(u float64) float64 { return f.M*u + f.N }

func (f LinearFunc) String() string {
	return fmt.Sprintf("%g*u%+g", f.M, f.N)
}

package simplify

import "errors"

// DefaultEpsilon is the default magnitude below which a merged
// coefficient is treated as zero and its term dropped.
const DefaultEpsilon = 1e-10

// ErrBadEpsilon indicates a negative or non-finite Options.Epsilon.
var ErrBadEpsilon = errors.New("simplify: epsilon must be a finite value >= 0")

// Options configures simplification.
//
// Fields:
//   - Epsilon — terms whose merged coefficient has absolute value below
//     this threshold are dropped. 0 disables dropping entirely;
//     negative or non-finite values are rejected with ErrBadEpsilon.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the documented defaults (Epsilon = DefaultEpsilon).
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

package integrate

import "errors"

// DefaultSteps is the default interval count for Simpson quadrature.
const DefaultSteps = 1000

// Sentinel errors returned by integration.
var (
	// ErrLogarithmicIntegral indicates the power rule hit exponent -1,
	// whose antiderivative (ln|x|) is outside this library's scope.
	ErrLogarithmicIntegral = errors.New("integrate: exponent -1 integrates to a logarithm")

	// ErrUnsupportedIntegral indicates symbolic integration was requested
	// on a fraction with a polynomial denominator; use Numerical instead.
	ErrUnsupportedIntegral = errors.New("integrate: polynomial denominator requires numerical integration")

	// ErrBadSteps indicates Options.Steps below 1.
	ErrBadSteps = errors.New("integrate: step count must be >= 1")

	// ErrBadInterval indicates an integration interval with lower > upper.
	ErrBadInterval = errors.New("integrate: lower bound exceeds upper bound")
)

// Options configures numerical quadrature.
//
// Fields:
//   - Steps — number of subintervals for composite Simpson's rule.
//     Odd values are rounded up to the next even value (Simpson's rule
//     needs an even interval count); values below 1 are rejected with
//     ErrBadSteps.
type Options struct {
	Steps int
}

// DefaultOptions returns the documented defaults (Steps = DefaultSteps).
func DefaultOptions() Options {
	return Options{Steps: DefaultSteps}
}

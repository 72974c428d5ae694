package integrate

import (
	"github.com/katalvlaran/ratfunc/core"
	"github.com/katalvlaran/ratfunc/eval"
)

// Numerical approximates ∫[lower,upper] f dv with composite Simpson's
// rule and returns the area as a constant term.
//
// Algorithm outline:
//  1. Round opts.Steps up to the next even value if odd (Simpson's rule
//     pairs subintervals), h = (upper-lower)/steps.
//  2. Sample f at x_i = lower + i·h for i = 0..steps, binding {v: x_i};
//     endpoints weigh 1, odd interior points 4, even interior points 2.
//  3. Area = (h/3) · Σ weight_i · f(x_i).
//
// Any variable of f other than v must already be absent; a leftover
// variable surfaces as eval.ErrMissingVariable from the sample
// evaluation, and a pole inside the interval as eval.ErrDivisionByZero.
// No partial area is ever returned.
//
// Errors: ErrBadSteps when opts.Steps < 1; ErrBadInterval when
// lower > upper; eval errors as above. Equal bounds yield the constant 0.
//
// Complexity: O(steps) fraction evaluations.
func Numerical(f core.Fraction, lower, upper float64, v string, opts Options) (core.Term, error) {
	if opts.Steps < 1 {
		return core.Term{}, ErrBadSteps
	}
	if lower > upper {
		return core.Term{}, ErrBadInterval
	}
	if lower == upper {
		return core.Constant(0), nil
	}
	steps := opts.Steps
	if steps%2 == 1 {
		steps++
	}
	h := (upper - lower) / float64(steps)
	sum := 0.0
	for i := 0; i <= steps; i++ {
		y, err := eval.Fraction(f, eval.Bindings{v: lower + float64(i)*h})
		if err != nil {
			return core.Term{}, err
		}
		switch {
		case i == 0 || i == steps:
			sum += y
		case i%2 == 1:
			sum += 4 * y
		default:
			sum += 2 * y
		}
	}
	return core.Constant(h / 3 * sum), nil
}

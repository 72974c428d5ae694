package eval

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ratfunc/core"
)

// Sentinel errors returned by evaluation.
var (
	// ErrMissingVariable indicates a variable required by the expression
	// has no entry in the supplied bindings.
	ErrMissingVariable = errors.New("eval: missing variable binding")

	// ErrDivisionByZero indicates a fraction's denominator evaluated to
	// exactly zero at the requested point.
	ErrDivisionByZero = errors.New("eval: denominator evaluates to zero")
)

// Bindings maps variable names to the real values they take at the
// evaluation point.
type Bindings map[string]float64

// Term evaluates a single term: coefficient times bindings[v]^exponent for
// every variable v of the term.
//
// Errors: ErrMissingVariable (wrapped with the variable's name) when a
// required variable is absent from b.
func Term(t core.Term, b Bindings) (float64, error) {
	val := t.Coef()
	for _, v := range t.Variables() {
		x, ok := b[v]
		if !ok {
			return 0, fmt.Errorf("eval: variable %q has no binding: %w", v, ErrMissingVariable)
		}
		val *= math.Pow(x, float64(t.Exponent(v)))
	}
	return val, nil
}

// Polynomial sums Term over all terms; the empty polynomial evaluates to 0.
func Polynomial(p core.Polynomial, b Bindings) (float64, error) {
	sum := 0.0
	for i := 0; i < p.Len(); i++ {
		v, err := Term(p.Term(i), b)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// Fraction divides the evaluated numerator by the evaluated denominator,
// dispatching on the denominator tag (scalar vs. polynomial).
//
// Errors: ErrMissingVariable from either side; ErrDivisionByZero when the
// denominator evaluates to exactly 0.
func Fraction(f core.Fraction, b Bindings) (float64, error) {
	num, err := Polynomial(f.Numerator(), b)
	if err != nil {
		return 0, err
	}
	den := f.Denominator()
	d := den.Scalar()
	if !den.IsScalar() {
		if d, err = Polynomial(den.Polynomial(), b); err != nil {
			return 0, err
		}
	}
	if d == 0 {
		return 0, ErrDivisionByZero
	}
	return num / d, nil
}

// Product multiplies Fraction over all factors; the empty product
// evaluates to 1.
func Product(p core.Product, b Bindings) (float64, error) {
	prod := 1.0
	for i := 0; i < p.Len(); i++ {
		v, err := Fraction(p.Fraction(i), b)
		if err != nil {
			return 0, err
		}
		prod *= v
	}
	return prod, nil
}

// Equation sums Product over all summands; the empty equation evaluates
// to 0.
func Equation(e core.Equation, b Bindings) (float64, error) {
	sum := 0.0
	for i := 0; i < e.Len(); i++ {
		v, err := Product(e.Product(i), b)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

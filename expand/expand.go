package expand

import (
	"errors"

	"github.com/katalvlaran/ratfunc/core"
	"github.com/katalvlaran/ratfunc/simplify"
)

// ErrUnsupportedExpansion indicates expansion was requested on a fraction
// whose denominator is not the scalar 1.
var ErrUnsupportedExpansion = errors.New("expand: expansion requires denominator 1")

// Fractions multiplies two polynomial fractions: the numerators are
// crossed term-by-term (FOIL) and the result is simplified. Both operands
// must be fractions over scalar 1.
//
// Errors: ErrUnsupportedExpansion when either denominator is not the
// scalar 1.
func Fractions(a, b core.Fraction) (core.Fraction, error) {
	if !isUnit(a.Denominator()) || !isUnit(b.Denominator()) {
		return core.Fraction{}, ErrUnsupportedExpansion
	}
	crossed := core.NewFraction(core.Mul(a.Numerator(), b.Numerator()), core.One())
	return simplify.Fraction(crossed, simplify.DefaultOptions())
}

// Product folds Fractions across the whole product from the left. The
// empty product expands to the constant 1; a single-element product is
// returned unchanged, whatever its denominator.
func Product(p core.Product) (core.Fraction, error) {
	switch p.Len() {
	case 0:
		return core.PolynomialFraction(core.Constant(1)), nil
	case 1:
		return p.Fraction(0), nil
	}
	acc := p.Fraction(0)
	for i := 1; i < p.Len(); i++ {
		next, err := Fractions(acc, p.Fraction(i))
		if err != nil {
			return core.Fraction{}, err
		}
		acc = next
	}
	return acc, nil
}

func isUnit(d core.Denominator) bool {
	return d.IsScalar() && d.Scalar() == 1
}

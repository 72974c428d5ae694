package integrate

import (
	"math"

	"github.com/katalvlaran/ratfunc/core"
)

// Term applies the power rule to a single term: with n the current
// exponent of v (0 when v is absent), the result has coefficient
// coef/(n+1) and v's exponent raised to n+1.
//
// Errors: ErrLogarithmicIntegral when n = -1. Stored terms keep
// non-negative exponents, so the guard only fires for hand-built inputs,
// but the refusal is part of the contract.
func Term(t core.Term, v string) (core.Term, error) {
	n := t.Exponent(v)
	if n == -1 {
		return core.Term{}, ErrLogarithmicIntegral
	}
	return t.WithCoef(t.Coef() / float64(n+1)).WithExponent(v, n+1), nil
}

// Polynomial integrates term-wise.
func Polynomial(p core.Polynomial, v string) (core.Polynomial, error) {
	ts := make([]core.Term, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		it, err := Term(p.Term(i), v)
		if err != nil {
			return core.Polynomial{}, err
		}
		ts = append(ts, it)
	}
	return core.NewPolynomial(ts...), nil
}

// Fraction integrates a fraction symbolically. Only the scalar-denominator
// tag is supported: the numerator is integrated term-wise and the
// denominator kept.
//
// Errors: ErrUnsupportedIntegral for a polynomial denominator (general
// rational functions need substitution or partial fractions, both
// non-goals here — use Numerical); ErrLogarithmicIntegral from Term.
func Fraction(f core.Fraction, v string) (core.Fraction, error) {
	den := f.Denominator()
	if !den.IsScalar() {
		return core.Fraction{}, ErrUnsupportedIntegral
	}
	num, err := Polynomial(f.Numerator(), v)
	if err != nil {
		return core.Fraction{}, err
	}
	return core.NewFraction(num, den), nil
}

// DefiniteTerm integrates t over [lower, upper] with respect to v. The
// term is integrated indefinitely, the v-factor alone is evaluated at the
// bounds, and v is removed from the result — a definite integral is
// constant with respect to v, while any other variables stay untouched.
//
// So for t = c·xⁿ·yᵐ and v = "x":
//
//	∫[a,b] t dx = c/(n+1)·(b^(n+1) - a^(n+1))·yᵐ
//
// Errors: ErrBadInterval when lower > upper; ErrLogarithmicIntegral from
// the power rule.
func DefiniteTerm(t core.Term, lower, upper float64, v string) (core.Term, error) {
	if lower > upper {
		return core.Term{}, ErrBadInterval
	}
	it, err := Term(t, v)
	if err != nil {
		return core.Term{}, err
	}
	p := float64(it.Exponent(v))
	span := math.Pow(upper, p) - math.Pow(lower, p)
	return it.WithCoef(it.Coef() * span).WithExponent(v, 0), nil
}

// DefinitePolynomial integrates p over [lower, upper] term-wise.
func DefinitePolynomial(p core.Polynomial, lower, upper float64, v string) (core.Polynomial, error) {
	ts := make([]core.Term, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		dt, err := DefiniteTerm(p.Term(i), lower, upper, v)
		if err != nil {
			return core.Polynomial{}, err
		}
		ts = append(ts, dt)
	}
	return core.NewPolynomial(ts...), nil
}

// DefiniteFraction integrates a fraction over [lower, upper], dispatching
// on the denominator tag: a scalar denominator integrates term-wise, a
// polynomial denominator delegates to Simpson quadrature (opts.Steps
// controls the resolution; opts is ignored on the symbolic path).
//
// Either way the result is a fraction whose numerator holds only
// constants with respect to v.
func DefiniteFraction(f core.Fraction, lower, upper float64, v string, opts Options) (core.Fraction, error) {
	den := f.Denominator()
	if den.IsScalar() {
		num, err := DefinitePolynomial(f.Numerator(), lower, upper, v)
		if err != nil {
			return core.Fraction{}, err
		}
		return core.NewFraction(num, den), nil
	}
	area, err := Numerical(f, lower, upper, v, opts)
	if err != nil {
		return core.Fraction{}, err
	}
	return core.PolynomialFraction(area), nil
}

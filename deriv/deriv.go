package deriv

import (
	"github.com/katalvlaran/ratfunc/core"
	"github.com/katalvlaran/ratfunc/expand"
	"github.com/katalvlaran/ratfunc/simplify"
)

// Term applies the power rule to a single term. When v occurs with
// exponent n, the result has coefficient coef·n and v's exponent lowered
// to n-1 (v leaves the map entirely at n=1). When v does not occur the
// term is constant with respect to v and the result is the zero term.
func Term(t core.Term, v string) core.Term {
	n := t.Exponent(v)
	if n == 0 {
		return core.Constant(0)
	}
	return t.WithCoef(t.Coef() * float64(n)).WithExponent(v, n-1)
}

// Polynomial differentiates term-wise and drops the zero terms produced
// by constants. This is a cheap filter, not like-term merging — use
// package simplify for that.
func Polynomial(p core.Polynomial, v string) core.Polynomial {
	ts := make([]core.Term, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		if dt := Term(p.Term(i), v); !dt.IsZero() {
			ts = append(ts, dt)
		}
	}
	return core.NewPolynomial(ts...)
}

// Fraction differentiates a fraction, dispatching on the denominator tag.
//
// Scalar denominator k: d/dx(f/k) = f'/k — differentiate the numerator,
// keep the denominator.
//
// Polynomial denominator g: full quotient rule. Both derivatives f' and
// g' are computed before any multiplication, then
//
//	numerator   = simplify(f'·g - f·g')
//	denominator = g·g
//
// The squared denominator stays a polynomial denominator; no factor
// cancellation is attempted.
func Fraction(f core.Fraction, v string) (core.Fraction, error) {
	den := f.Denominator()
	if den.IsScalar() {
		return core.NewFraction(Polynomial(f.Numerator(), v), den), nil
	}
	num := f.Numerator()
	g := den.Polynomial()
	dnum := Polynomial(num, v)
	dg := Polynomial(g, v)
	top, err := simplify.Polynomial(core.Sub(core.Mul(dnum, g), core.Mul(num, dg)), simplify.DefaultOptions())
	if err != nil {
		return core.Fraction{}, err
	}
	return core.NewFraction(top, core.PolynomialDenominator(core.Mul(g, g))), nil
}

// Product differentiates a multi-factor product via the generalized
// product rule: for factors f₁…fₖ the derivative is
//
//	Σᵢ  fᵢ' · Π_{j≠i} fⱼ
//
// where each Π_{j≠i} is collapsed to a single fraction by expand.Product.
// The result is an Equation with one summand per factor. An empty product
// differentiates to the zero equation; a single-factor product delegates
// to Fraction.
//
// Errors: expand.ErrUnsupportedExpansion when three or more factors are
// present and the untouched factors are not all fractions over 1.
func Product(p core.Product, v string) (core.Equation, error) {
	switch p.Len() {
	case 0:
		return core.Equation{}, nil
	case 1:
		df, err := Fraction(p.Fraction(0), v)
		if err != nil {
			return core.Equation{}, err
		}
		return core.NewEquation(core.NewProduct(df)), nil
	}
	factors := p.Fractions()
	summands := make([]core.Product, 0, len(factors))
	for i := range factors {
		df, err := Fraction(factors[i], v)
		if err != nil {
			return core.Equation{}, err
		}
		rest := make([]core.Fraction, 0, len(factors)-1)
		rest = append(rest, factors[:i]...)
		rest = append(rest, factors[i+1:]...)
		collapsed, err := expand.Product(core.NewProduct(rest...))
		if err != nil {
			return core.Equation{}, err
		}
		summands = append(summands, core.NewProduct(df, collapsed))
	}
	return core.NewEquation(summands...), nil
}

// Equation differentiates summand-by-summand and concatenates the
// resulting sums (differentiation is linear over addition).
func Equation(e core.Equation, v string) (core.Equation, error) {
	var products []core.Product
	for i := 0; i < e.Len(); i++ {
		de, err := Product(e.Product(i), v)
		if err != nil {
			return core.Equation{}, err
		}
		products = append(products, de.Products()...)
	}
	return core.NewEquation(products...), nil
}

package core

import (
	"strconv"
	"strings"
)

// Fraction is a polynomial numerator over a Denominator (scalar or
// polynomial). Fractions are never required to be in lowest terms;
// reduction is an explicit operation in package simplify.
type Fraction struct {
	num Polynomial
	den Denominator
}

// NewFraction builds a Fraction from a numerator and a denominator; both
// are copied.
func NewFraction(num Polynomial, den Denominator) Fraction {
	return Fraction{num: num.Clone(), den: cloneDenominator(den)}
}

// PolynomialFraction wraps the given terms as a fraction over 1, the
// canonical embedding of a plain polynomial into the fraction model.
func PolynomialFraction(terms ...Term) Fraction {
	return Fraction{num: NewPolynomial(terms...), den: One()}
}

func cloneDenominator(d Denominator) Denominator {
	if d.kind == denomPolynomial {
		return Denominator{kind: denomPolynomial, poly: d.poly.Clone()}
	}
	return d
}

// Numerator returns a copy of the numerator polynomial.
func (f Fraction) Numerator() Polynomial { return f.num.Clone() }

// Denominator returns a copy of the denominator.
func (f Fraction) Denominator() Denominator { return cloneDenominator(f.den) }

// String renders "(num)" when the denominator is scalar 1, "(num)/k" for
// another scalar k, and "(num)/(den)" for a polynomial denominator.
func (f Fraction) String() string {
	n := "(" + f.num.String() + ")"
	if f.den.kind == denomScalar {
		if f.den.scalar == 1 {
			return n
		}
		return n + "/" + strconv.FormatFloat(f.den.scalar, 'g', -1, 64)
	}
	return n + "/(" + f.den.poly.String() + ")"
}

// Product is an ordered sequence of Fractions, multiplied. The zero value
// (no fractions) is the multiplicative identity 1.
type Product struct {
	fractions []Fraction
}

// NewProduct builds a Product from the given fractions; the slice is copied.
func NewProduct(fractions ...Fraction) Product {
	if len(fractions) == 0 {
		return Product{}
	}
	fs := make([]Fraction, len(fractions))
	for i, f := range fractions {
		fs[i] = NewFraction(f.num, f.den)
	}
	return Product{fractions: fs}
}

// Len returns the number of factor fractions.
func (p Product) Len() int { return len(p.fractions) }

// Fraction returns the i-th factor.
func (p Product) Fraction(i int) Fraction { return p.fractions[i] }

// Fractions returns a copy of the factor sequence.
func (p Product) Fractions() []Fraction {
	if len(p.fractions) == 0 {
		return nil
	}
	fs := make([]Fraction, len(p.fractions))
	for i, f := range p.fractions {
		fs[i] = NewFraction(f.num, f.den)
	}
	return fs
}

// String joins the factor strings with " * "; the empty product renders "1".
func (p Product) String() string {
	if len(p.fractions) == 0 {
		return "1"
	}
	parts := make([]string, len(p.fractions))
	for i, f := range p.fractions {
		parts[i] = f.String()
	}
	return strings.Join(parts, " * ")
}

// Package core: sentinel errors and the Denominator tagged variant.
// All construction-time validation failures return one of the sentinels
// below; callers match them via errors.Is. No constructor panics on
// user-supplied input.
package core

import "errors"

// Sentinel errors for value construction.
var (
	// ErrNegativeExponent indicates an exponent below zero was supplied;
	// the model covers polynomials only (non-negative integer exponents).
	ErrNegativeExponent = errors.New("core: exponent must be non-negative")

	// ErrEmptyVariable indicates an exponent map keyed by the empty string.
	ErrEmptyVariable = errors.New("core: variable name is empty")

	// ErrNonFinite indicates a NaN or ±Inf coefficient or denominator scalar.
	ErrNonFinite = errors.New("core: coefficient must be finite")
)

// denomKind discriminates the two shapes a Denominator can take.
type denomKind int

const (
	denomScalar denomKind = iota
	denomPolynomial
)

// Denominator is a tagged variant: either a scalar constant or a whole
// Polynomial. The zero value is the scalar 0; constructors always produce
// a definite tag, and every Fraction-consuming algorithm dispatches on
// IsScalar rather than on runtime type inspection.
type Denominator struct {
	kind   denomKind
	scalar float64
	poly   Polynomial
}

// ScalarDenominator returns a Denominator holding the scalar k.
func ScalarDenominator(k float64) Denominator {
	return Denominator{kind: denomScalar, scalar: k}
}

// PolynomialDenominator returns a Denominator holding the polynomial p.
func PolynomialDenominator(p Polynomial) Denominator {
	return Denominator{kind: denomPolynomial, poly: p.Clone()}
}

// One returns the multiplicative-identity denominator (scalar 1).
func One() Denominator { return ScalarDenominator(1) }

// IsScalar reports whether the denominator is a scalar constant.
func (d Denominator) IsScalar() bool { return d.kind == denomScalar }

// Scalar returns the scalar value; meaningful only when IsScalar is true.
func (d Denominator) Scalar() float64 { return d.scalar }

// Polynomial returns a copy of the denominator polynomial; meaningful only
// when IsScalar is false.
func (d Denominator) Polynomial() Polynomial { return d.poly.Clone() }

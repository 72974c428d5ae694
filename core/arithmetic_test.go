package core_test

import (
	"testing"

	"github.com/katalvlaran/ratfunc/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMulTerms verifies the algebraic rule x^m * x^n = x^(m+n): shared
// exponents add, disjoint variables merge, coefficients multiply.
func TestMulTerms(t *testing.T) {
	a, err := core.NewTerm(2, map[string]int{"x": 2, "y": 1})
	require.NoError(t, err)
	b, err := core.NewTerm(3, map[string]int{"x": 1, "z": 4})
	require.NoError(t, err)

	p := core.MulTerms(a, b)

	assert.Equal(t, 6.0, p.Coef())
	assert.Equal(t, 3, p.Exponent("x"), "shared exponents add, never replace")
	assert.Equal(t, 1, p.Exponent("y"))
	assert.Equal(t, 4, p.Exponent("z"))
}

// TestMulTerms_Constants verifies the degenerate constant*constant case.
func TestMulTerms_Constants(t *testing.T) {
	p := core.MulTerms(core.Constant(4), core.Constant(-2))
	assert.Equal(t, -8.0, p.Coef())
	assert.True(t, p.IsConstant())
}

// TestAdd_ConcatenatesWithoutMerging verifies Add defers like-term
// combination to package simplify.
func TestAdd_ConcatenatesWithoutMerging(t *testing.T) {
	p := core.NewPolynomial(mono(t, 1, "x", 1))
	q := core.NewPolynomial(mono(t, 2, "x", 1))

	sum := core.Add(p, q)

	require.Equal(t, 2, sum.Len(), "Add must concatenate, never merge")
	assert.Equal(t, 1.0, sum.Term(0).Coef())
	assert.Equal(t, 2.0, sum.Term(1).Coef())
}

// TestSub_NegatesRightOperand verifies Sub = Add(p, Neg(q)).
func TestSub_NegatesRightOperand(t *testing.T) {
	p := core.NewPolynomial(mono(t, 5, "x", 2))
	q := core.NewPolynomial(mono(t, 3, "x", 2), core.Constant(1))

	diff := core.Sub(p, q)

	require.Equal(t, 3, diff.Len())
	assert.Equal(t, 5.0, diff.Term(0).Coef())
	assert.Equal(t, -3.0, diff.Term(1).Coef())
	assert.Equal(t, -1.0, diff.Term(2).Coef())
}

// TestMul_CartesianProduct verifies the FOIL cross product: |p|·|q|
// terms before simplification.
func TestMul_CartesianProduct(t *testing.T) {
	// (x + 1) * (x - 1) = x² - x + x - 1, four raw terms.
	p := core.NewPolynomial(mono(t, 1, "x", 1), core.Constant(1))
	q := core.NewPolynomial(mono(t, 1, "x", 1), core.Constant(-1))

	prod := core.Mul(p, q)

	require.Equal(t, 4, prod.Len(), "FOIL yields |p|*|q| raw terms")
	assert.Equal(t, 2, prod.Term(0).Exponent("x"))
	assert.Equal(t, -1.0, prod.Term(3).Coef())
}

// TestMul_ZeroAnnihilates verifies multiplication by the empty
// polynomial yields the empty polynomial.
func TestMul_ZeroAnnihilates(t *testing.T) {
	p := core.NewPolynomial(mono(t, 1, "x", 1))
	assert.True(t, core.Mul(p, core.Polynomial{}).IsZero())
	assert.True(t, core.Mul(core.Polynomial{}, p).IsZero())
}

// TestScale verifies scalar multiplication of every coefficient.
func TestScale(t *testing.T) {
	p := core.NewPolynomial(mono(t, 2, "x", 1), core.Constant(3))

	s := core.Scale(p, -2)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, -4.0, s.Term(0).Coef())
	assert.Equal(t, -6.0, s.Term(1).Coef())
	assert.Equal(t, 2.0, p.Term(0).Coef(), "input untouched")
}

// TestNeg verifies coefficient sign flip without structural change.
func TestNeg(t *testing.T) {
	p := core.NewPolynomial(mono(t, 2, "x", 3), core.Constant(-1))

	n := core.Neg(p)

	require.Equal(t, 2, n.Len())
	assert.Equal(t, -2.0, n.Term(0).Coef())
	assert.Equal(t, 1.0, n.Term(1).Coef())
	assert.Equal(t, 3, n.Term(0).Exponent("x"), "exponents unchanged")
}

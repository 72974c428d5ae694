package integrate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ratfunc/core"
	"github.com/katalvlaran/ratfunc/deriv"
	"github.com/katalvlaran/ratfunc/eval"
	"github.com/katalvlaran/ratfunc/integrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mono(t *testing.T, coef float64, v string, exp int) core.Term {
	t.Helper()
	tm, err := core.NewTerm(coef, map[string]int{v: exp})
	require.NoError(t, err)
	return tm
}

// oneOverOnePlusXSquared builds 1/(1+x²), the Simpson fixture whose
// integral over [0,1] is π/4.
func oneOverOnePlusXSquared(t *testing.T) core.Fraction {
	t.Helper()
	return core.NewFraction(
		core.NewPolynomial(core.Constant(1)),
		core.PolynomialDenominator(core.NewPolynomial(core.Constant(1), mono(t, 1, "x", 2))),
	)
}

// TestTerm_PowerRule verifies ∫c·xⁿ dx = c/(n+1)·x^(n+1), including the
// absent-variable (n = 0) case.
func TestTerm_PowerRule(t *testing.T) {
	it, err := integrate.Term(mono(t, 6, "x", 2), "x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, it.Coef())
	assert.Equal(t, 3, it.Exponent("x"))

	it, err = integrate.Term(core.Constant(5), "x")
	require.NoError(t, err)
	assert.Equal(t, 5.0, it.Coef())
	assert.Equal(t, 1, it.Exponent("x"), "constants integrate to c·x")
}

// TestTerm_RoundTripWithDerivative verifies the power-rule round trip:
// differentiating the antiderivative restores the original term's value
// at sample points.
func TestTerm_RoundTripWithDerivative(t *testing.T) {
	for _, tm := range []core.Term{
		mono(t, 3, "x", 2),
		mono(t, -0.5, "x", 5),
		core.Constant(4),
	} {
		it, err := integrate.Term(tm, "x")
		require.NoError(t, err)
		back := deriv.Term(it, "x")

		for _, x := range []float64{-2, 0.5, 1, 3} {
			want, err := eval.Term(tm, eval.Bindings{"x": x})
			require.NoError(t, err)
			got, err := eval.Term(back, eval.Bindings{"x": x})
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9, "d/dx ∫ t dx must equal t")
		}
	}
}

// TestPolynomial_TermWise verifies ∫(3x² + 2x) dx = x³ + x².
func TestPolynomial_TermWise(t *testing.T) {
	p := core.NewPolynomial(mono(t, 3, "x", 2), mono(t, 2, "x", 1))

	ip, err := integrate.Polynomial(p, "x")
	require.NoError(t, err)

	require.Equal(t, 2, ip.Len())
	assert.Equal(t, 1.0, ip.Term(0).Coef())
	assert.Equal(t, 3, ip.Term(0).Exponent("x"))
	assert.Equal(t, 1.0, ip.Term(1).Coef())
	assert.Equal(t, 2, ip.Term(1).Exponent("x"))
}

// TestFraction_ScalarDenominator verifies the symbolic path keeps the
// scalar denominator.
func TestFraction_ScalarDenominator(t *testing.T) {
	f := core.NewFraction(core.NewPolynomial(mono(t, 4, "x", 1)), core.ScalarDenominator(2))

	fi, err := integrate.Fraction(f, "x")
	require.NoError(t, err)

	assert.Equal(t, 2.0, fi.Numerator().Term(0).Coef())
	assert.Equal(t, 2, fi.Numerator().Term(0).Exponent("x"))
	assert.Equal(t, 2.0, fi.Denominator().Scalar())
}

// TestFraction_PolynomialDenominatorRefused verifies the symbolic family
// refuses general rational functions and points at quadrature instead.
func TestFraction_PolynomialDenominatorRefused(t *testing.T) {
	_, err := integrate.Fraction(oneOverOnePlusXSquared(t), "x")
	assert.ErrorIs(t, err, integrate.ErrUnsupportedIntegral)
}

// TestDefiniteTerm verifies ∫[0,2] 3x² dx = 8 as a pure constant: the
// integration variable leaves the result entirely.
func TestDefiniteTerm(t *testing.T) {
	dt, err := integrate.DefiniteTerm(mono(t, 3, "x", 2), 0, 2, "x")
	require.NoError(t, err)

	assert.InDelta(t, 8.0, dt.Coef(), 1e-12)
	assert.Equal(t, 0, dt.Exponent("x"), "v is removed from the result")
	assert.True(t, dt.IsConstant())
}

// TestDefiniteTerm_RetainsOtherVariables verifies ∫[0,2] 3x²y dx = 8y:
// only the integration variable collapses.
func TestDefiniteTerm_RetainsOtherVariables(t *testing.T) {
	tm, err := core.NewTerm(3, map[string]int{"x": 2, "y": 1})
	require.NoError(t, err)

	dt, err := integrate.DefiniteTerm(tm, 0, 2, "x")
	require.NoError(t, err)

	assert.InDelta(t, 8.0, dt.Coef(), 1e-12)
	assert.Equal(t, 0, dt.Exponent("x"))
	assert.Equal(t, 1, dt.Exponent("y"), "bystander variables stay")
}

// TestDefiniteTerm_BadInterval verifies interval validation.
func TestDefiniteTerm_BadInterval(t *testing.T) {
	_, err := integrate.DefiniteTerm(mono(t, 1, "x", 1), 2, 0, "x")
	assert.ErrorIs(t, err, integrate.ErrBadInterval)
}

// TestDefiniteFraction_ScalarPath verifies ∫[0,2] 6x/3 dx = 4 termwise.
func TestDefiniteFraction_ScalarPath(t *testing.T) {
	f := core.NewFraction(core.NewPolynomial(mono(t, 6, "x", 1)), core.ScalarDenominator(3))

	df, err := integrate.DefiniteFraction(f, 0, 2, "x", integrate.DefaultOptions())
	require.NoError(t, err)

	val, err := eval.Fraction(df, nil)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, val, 1e-12)
}

// TestDefiniteFraction_DelegatesToQuadrature verifies the polynomial-
// denominator path routes through Simpson's rule.
func TestDefiniteFraction_DelegatesToQuadrature(t *testing.T) {
	df, err := integrate.DefiniteFraction(oneOverOnePlusXSquared(t), 0, 1, "x", integrate.DefaultOptions())
	require.NoError(t, err)

	val, err := eval.Fraction(df, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, val, 1e-4)
}

// Package integrate computes antiderivatives and definite integrals of
// entities of the core model, symbolically where the power rule applies
// and numerically (composite Simpson's rule) where it does not.
//
// Symbolic integration covers terms, polynomials, and fractions over a
// scalar denominator: ∫c·xⁿ dx = c/(n+1)·x^(n+1). Two refusals are
// explicit and deliberate:
//
//   - ErrLogarithmicIntegral — the power rule breaks at exponent -1
//     (∫x⁻¹ dx = ln|x| needs a transcendental this library excludes);
//   - ErrUnsupportedIntegral — a fraction with a polynomial denominator
//     has no power-rule antiderivative; use Numerical (or
//     DefiniteFraction, which delegates to it) instead.
//
// Numerical quadrature samples the fraction across [lower, upper] with
// Simpson's alternating 1/4/2 weights and returns a constant term, so the
// result composes with the rest of the model. The step count is explicit
// Options state, never an ambient constant; DefaultSteps is the single
// source of truth for the default.
package integrate

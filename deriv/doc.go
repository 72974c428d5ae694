// Package deriv differentiates entities of the core model with respect to
// a single variable.
//
// Three classical rules cover the whole model:
//
//   - power rule for terms and polynomials: d/dx(c·xⁿ) = c·n·x^(n-1);
//   - quotient rule for fractions with a polynomial denominator:
//     d/dx(f/g) = (f'g - fg') / g²;
//   - generalized product rule for multi-factor products: the derivative
//     of f₁·…·fₖ is the sum over i of fᵢ' times the remaining factors.
//
// Fractions over a scalar denominator take the degenerate quotient-rule
// path (g' = 0): the numerator is differentiated and the denominator kept.
// Quotient-rule numerators come back simplified; everything else is
// returned structurally and may be simplified by the caller.
package deriv

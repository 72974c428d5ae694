// Package expand performs FOIL-style algebraic expansion: it multiplies
// polynomial fractions out into a single simplified fraction.
//
// Expansion is polynomial-only — every operand must be a fraction over
// scalar 1. Anything else (a scalar denominator other than 1, or a
// polynomial denominator) is rejected with ErrUnsupportedExpansion, since
// multiplying general rational functions out would require polynomial
// division this library does not attempt.
package expand

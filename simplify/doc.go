// Package simplify normalizes entities of the core model: it merges like
// terms, drops numerically negligible terms, orders polynomials by
// descending total degree, and reduces scalar-denominator fractions by the
// integer GCD of their coefficients.
//
// Simplification is always explicit — package core's arithmetic never
// merges terms on its own — and idempotent: simplifying an already
// simplified entity returns an identical term sequence.
//
// The numeric tolerance is not ambient state: every entry point takes an
// Options value whose Epsilon controls the drop threshold, so tests and
// callers can vary it deterministically. DefaultEpsilon is the single
// source of truth for the default.
//
// Known limitation (deliberate): fractions with a polynomial denominator
// have both sides simplified independently, but common polynomial factors
// are never cancelled — (x²-1)/(x-1) stays as written. Polynomial
// GCD/factoring is out of scope.
package simplify

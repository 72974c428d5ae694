// Package core defines the value types of the rational-function model —
// Term, Polynomial, Denominator, Fraction, Product, and Equation — together
// with the polynomial arithmetic primitives every higher-level package
// (eval, simplify, deriv, integrate, expand) is built on.
//
// The model is a pure tree of immutable values:
//
//	Equation            Σ products
//	└── Product         Π fractions
//	    └── Fraction    numerator / denominator
//	        ├── Polynomial   Σ terms
//	        │   └── Term     coefficient · Π variable^exponent
//	        └── Denominator  scalar | polynomial (tagged variant)
//
// Every constructor deep-copies externally supplied data (exponent maps,
// term slices), and no operation ever mutates an existing value: anything
// that "modifies" a Term or Polynomial returns a new one. Mutating a
// caller-owned input after construction can therefore never corrupt a
// constructed entity, and all values are safe to share across goroutines.
//
// The Denominator tagged variant is the central modeling decision: every
// algorithm that consumes a Fraction dispatches on Denominator.IsScalar()
// rather than on runtime type inspection.
//
// Normalization invariants (enforced at construction):
//   - a variable with exponent 0 never appears in a Term's exponent map;
//   - exponents are non-negative (ErrNegativeExponent otherwise);
//   - variable names are non-empty (ErrEmptyVariable otherwise);
//   - coefficients are finite (ErrNonFinite otherwise);
//   - an empty Polynomial is the constant 0, an empty Product is 1,
//     an empty Equation is 0.
package core

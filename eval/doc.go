// Package eval numerically evaluates any entity of the core model under a
// set of variable bindings.
//
// A Bindings map supplies one real value per variable name. Evaluation is
// strict: a variable missing from the bindings is never coerced to 0 but
// reported as ErrMissingVariable, and a denominator that evaluates to
// exactly 0 is reported as ErrDivisionByZero. Either the whole entity
// evaluates, or an error is returned — there are no partial results.
//
// Empty sequences evaluate to their algebraic identities: an empty
// Polynomial or Equation to 0, an empty Product to 1.
package eval

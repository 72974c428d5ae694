// Package ratfunc is your in-memory toolkit for building, evaluating,
// and transforming rational functions — ratios of multi-variable
// polynomials — with symbolic calculus on top.
//
// 🚀 What is ratfunc?
//
//	A small, deterministic computer-algebra kernel that brings together:
//		• Core value model: terms, polynomials, tagged denominators,
//		  fractions, products, equations — immutable trees, deep-copied
//		  on construction
//		• Evaluation: strict numeric evaluation under variable bindings
//		• Simplification: like-term merging, epsilon drop, GCD reduction
//		• Differentiation: power rule, quotient rule, n-ary product rule
//		• Integration: power-rule antiderivatives, definite integrals,
//		  Simpson's-rule quadrature for the rest
//		• Expansion: FOIL multiplication of polynomial products
//
// ✨ Why choose ratfunc?
//
//   - Explicit everywhere – tagged denominator variant, sentinel errors,
//     epsilon and step counts as options instead of ambient globals
//   - Value semantics – no operation mutates its input, every entity is
//     safe to share across goroutines
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under six subpackages:
//
//	core/      — Term, Polynomial, Denominator, Fraction, Product, Equation + arithmetic
//	eval/      — numeric evaluation under Bindings
//	simplify/  — like-term merging, ordering, GCD reduction
//	deriv/     — differentiation (power / quotient / product rules)
//	integrate/ — symbolic + Simpson numerical integration
//	expand/    — FOIL expansion of fraction products
//
// Quick example:
//
//	x² over (x+1), differentiated at x = 1:
//
//	x2, _ := core.NewTerm(1, map[string]int{"x": 2})
//	x1, _ := core.NewTerm(1, map[string]int{"x": 1})
//	f := core.NewFraction(
//	    core.NewPolynomial(x2),
//	    core.PolynomialDenominator(core.NewPolynomial(x1, core.Constant(1))),
//	)
//	df, _ := deriv.Fraction(f, "x")
//	y, _ := eval.Fraction(df, eval.Bindings{"x": 1})
//
// Dive into the per-package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/ratfunc
package ratfunc

package deriv_test

import (
	"fmt"

	"github.com/katalvlaran/ratfunc/core"
	"github.com/katalvlaran/ratfunc/deriv"
	"github.com/katalvlaran/ratfunc/eval"
)

// ExampleFraction demonstrates the quotient rule on f(x) = x/(x+1):
// f'(x) = 1/(x+1)², so f'(1) = 0.25.
func ExampleFraction() {
	x, _ := core.NewTerm(1, map[string]int{"x": 1})
	f := core.NewFraction(
		core.NewPolynomial(x),
		core.PolynomialDenominator(core.NewPolynomial(x, core.Constant(1))),
	)

	df, err := deriv.Fraction(f, "x")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	slope, err := eval.Fraction(df, eval.Bindings{"x": 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("f'  = %s\nf'(1) = %.2f\n", df, slope)
	// Output:
	// f'  = (1)/(1*x^2 + 1*x + 1*x + 1)
	// f'(1) = 0.25
}

// ExamplePolynomial demonstrates the power rule on 2x³ - 5x + 1.
func ExamplePolynomial() {
	x3, _ := core.NewTerm(2, map[string]int{"x": 3})
	x1, _ := core.NewTerm(-5, map[string]int{"x": 1})
	p := core.NewPolynomial(x3, x1, core.Constant(1))

	fmt.Println(deriv.Polynomial(p, "x"))
	// Output:
	// 6*x^2 + -5
}

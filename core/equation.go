package core

import "strings"

// Equation is the top-level expression: an ordered sequence of Products,
// summed. The zero value (no products) is the additive identity 0.
type Equation struct {
	products []Product
}

// NewEquation builds an Equation from the given products; the slice is
// copied.
func NewEquation(products ...Product) Equation {
	if len(products) == 0 {
		return Equation{}
	}
	ps := make([]Product, len(products))
	for i, p := range products {
		ps[i] = NewProduct(p.fractions...)
	}
	return Equation{products: ps}
}

// FromPolynomial embeds a plain polynomial into the expression model:
// each term becomes a single-fraction, denominator-1 product.
func FromPolynomial(p Polynomial) Equation {
	if p.IsZero() {
		return Equation{}
	}
	ps := make([]Product, 0, p.Len())
	for _, t := range p.Terms() {
		ps = append(ps, NewProduct(PolynomialFraction(t)))
	}
	return Equation{products: ps}
}

// Len returns the number of summand products.
func (e Equation) Len() int { return len(e.products) }

// Product returns the i-th summand.
func (e Equation) Product(i int) Product { return e.products[i] }

// Products returns a copy of the summand sequence.
func (e Equation) Products() []Product {
	if len(e.products) == 0 {
		return nil
	}
	ps := make([]Product, len(e.products))
	for i, p := range e.products {
		ps[i] = NewProduct(p.fractions...)
	}
	return ps
}

// String joins the product strings with " + "; the empty equation renders "0".
func (e Equation) String() string {
	if len(e.products) == 0 {
		return "0"
	}
	parts := make([]string, len(e.products))
	for i, p := range e.products {
		parts[i] = p.String()
	}
	return strings.Join(parts, " + ")
}

package core

// Polynomial arithmetic primitives. These are the raw structural
// operations: Add and Sub concatenate without merging like terms, and Mul
// expands the full Cartesian cross product. Like-term combination and
// ordering live in package simplify and are always an explicit, separate
// step.

// MulTerms multiplies two terms: coefficients multiply, and the exponent
// maps merge with exponents of shared variables added (x^m * x^n = x^(m+n)).
func MulTerms(a, b Term) Term {
	m := a.Exponents()
	if m == nil && len(b.exps) > 0 {
		m = make(map[string]int, len(b.exps))
	}
	for v, e := range b.exps {
		m[v] += e
	}
	return Term{coef: a.coef * b.coef, exps: m}
}

// Neg returns a copy of p with every coefficient negated.
func Neg(p Polynomial) Polynomial {
	ts := p.Terms()
	for i := range ts {
		ts[i].coef = -ts[i].coef
	}
	return Polynomial{terms: ts}
}

// Add returns p + q as the plain concatenation of their term sequences.
// No like-term merging happens here.
func Add(p, q Polynomial) Polynomial {
	if p.IsZero() {
		return q.Clone()
	}
	if q.IsZero() {
		return p.Clone()
	}
	ts := make([]Term, 0, len(p.terms)+len(q.terms))
	ts = append(ts, p.Terms()...)
	ts = append(ts, q.Terms()...)
	return Polynomial{terms: ts}
}

// Sub returns p - q, implemented as Add(p, Neg(q)).
func Sub(p, q Polynomial) Polynomial {
	return Add(p, Neg(q))
}

// Mul returns p * q: the Cartesian product of the term sequences, each
// pair combined via MulTerms. This is the FOIL expansion and produces
// len(p)*len(q) terms before simplification.
func Mul(p, q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	ts := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			ts = append(ts, MulTerms(a, b))
		}
	}
	return Polynomial{terms: ts}
}

// Scale returns a copy of p with every coefficient multiplied by k.
func Scale(p Polynomial, k float64) Polynomial {
	ts := p.Terms()
	for i := range ts {
		ts[i].coef *= k
	}
	return Polynomial{terms: ts}
}

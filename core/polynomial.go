package core

import "strings"

// Polynomial is an ordered sequence of Terms, summed. Order is insertion
// order, not canonical — degree-descending layout is a display concern that
// simplify takes care of. The zero value (no terms) is the polynomial 0.
type Polynomial struct {
	terms []Term
}

// NewPolynomial builds a Polynomial from the given terms. The term slice
// is copied, so the caller may reuse or mutate its own slice afterwards.
func NewPolynomial(terms ...Term) Polynomial {
	if len(terms) == 0 {
		return Polynomial{}
	}
	ts := make([]Term, len(terms))
	for i, t := range terms {
		ts[i] = t.Clone()
	}
	return Polynomial{terms: ts}
}

// Len returns the number of terms.
func (p Polynomial) Len() int { return len(p.terms) }

// Term returns the i-th term in insertion order.
func (p Polynomial) Term(i int) Term { return p.terms[i] }

// Terms returns a deep copy of the term sequence; callers may modify it
// freely without affecting the polynomial.
func (p Polynomial) Terms() []Term {
	if len(p.terms) == 0 {
		return nil
	}
	ts := make([]Term, len(p.terms))
	for i, t := range p.terms {
		ts[i] = t.Clone()
	}
	return ts
}

// IsZero reports whether the polynomial has no terms.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Clone returns a deep copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	return Polynomial{terms: p.Terms()}
}

// String joins the term strings with " + "; negative coefficients carry
// their own sign. The empty polynomial renders as "0".
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

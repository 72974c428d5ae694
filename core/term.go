package core

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Term is one summand of a polynomial: a real coefficient times a product
// of variables raised to non-negative integer powers. A Term with an empty
// exponent map is a constant. Terms are immutable values; the zero value
// is the constant 0.
type Term struct {
	coef float64
	exps map[string]int
}

// NewTerm builds a Term from a coefficient and an exponent map. The map is
// deep-copied, so the caller may keep mutating its own copy afterwards.
// Exponents equal to 0 are normalized away (x^0 = 1).
//
// Errors:
//   - ErrNonFinite        — coef is NaN or ±Inf.
//   - ErrEmptyVariable    — a key of exps is the empty string.
//   - ErrNegativeExponent — a value of exps is below zero.
func NewTerm(coef float64, exps map[string]int) (Term, error) {
	if math.IsNaN(coef) || math.IsInf(coef, 0) {
		return Term{}, ErrNonFinite
	}
	var m map[string]int
	for v, e := range exps {
		if v == "" {
			return Term{}, ErrEmptyVariable
		}
		if e < 0 {
			return Term{}, ErrNegativeExponent
		}
		if e == 0 {
			continue
		}
		if m == nil {
			m = make(map[string]int, len(exps))
		}
		m[v] = e
	}
	return Term{coef: coef, exps: m}, nil
}

// Constant returns the constant term c (empty exponent map).
func Constant(c float64) Term { return Term{coef: c} }

// Coef returns the term's coefficient.
func (t Term) Coef() float64 { return t.coef }

// Exponent returns the exponent of v, or 0 when v does not occur.
func (t Term) Exponent(v string) int { return t.exps[v] }

// Exponents returns a copy of the exponent map (nil for a constant).
func (t Term) Exponents() map[string]int {
	if len(t.exps) == 0 {
		return nil
	}
	m := make(map[string]int, len(t.exps))
	for v, e := range t.exps {
		m[v] = e
	}
	return m
}

// Variables returns the term's variable names in lexicographic order.
func (t Term) Variables() []string {
	if len(t.exps) == 0 {
		return nil
	}
	vs := make([]string, 0, len(t.exps))
	for v := range t.exps {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

// Degree returns the total degree: the sum of all exponents.
func (t Term) Degree() int {
	d := 0
	for _, e := range t.exps {
		d += e
	}
	return d
}

// IsZero reports whether the coefficient is exactly 0.
func (t Term) IsZero() bool { return t.coef == 0 }

// IsConstant reports whether the term carries no variables.
func (t Term) IsConstant() bool { return len(t.exps) == 0 }

// Signature returns the canonical like-term key: the exponent map rendered
// in sorted variable order, independent of the coefficient. Two terms are
// like terms exactly when their signatures are equal. A constant's
// signature is the empty string.
func (t Term) Signature() string {
	if len(t.exps) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, v := range t.Variables() {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(v)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(t.exps[v]))
	}
	return sb.String()
}

// Clone returns a deep copy of the term.
func (t Term) Clone() Term {
	return Term{coef: t.coef, exps: t.Exponents()}
}

// WithCoef returns a copy of the term with the coefficient replaced.
func (t Term) WithCoef(c float64) Term {
	return Term{coef: c, exps: t.exps}
}

// WithExponent returns a copy of the term with v's exponent set to exp;
// exp 0 removes v from the map. Negative exp is a programmer error and
// panics (callers derive exp from existing non-negative exponents).
func (t Term) WithExponent(v string, exp int) Term {
	if exp < 0 {
		panic("core: WithExponent called with negative exponent")
	}
	m := t.Exponents()
	if exp == 0 {
		delete(m, v)
	} else {
		if m == nil {
			m = make(map[string]int, 1)
		}
		m[v] = exp
	}
	return Term{coef: t.coef, exps: m}
}

// String renders the term as coef[*var[^exp]]... with variables in sorted
// order, e.g. "3*x^2*y" or "-0.5*x" or "8" for a constant.
func (t Term) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(t.coef, 'g', -1, 64))
	for _, v := range t.Variables() {
		sb.WriteByte('*')
		sb.WriteString(v)
		if e := t.exps[v]; e != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(e))
		}
	}
	return sb.String()
}

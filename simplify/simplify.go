package simplify

import (
	"math"
	"sort"

	"github.com/katalvlaran/ratfunc/core"
)

// Polynomial merges like terms and normalizes term order.
//
// Algorithm outline:
//  1. Group terms by their variable signature (core.Term.Signature);
//     the empty signature is the shared key of all constants.
//  2. Sum coefficients within each group; the group keeps the position
//     of its first occurrence.
//  3. Drop every group whose summed coefficient has absolute value
//     below opts.Epsilon.
//  4. Sort the survivors by descending total degree; ties keep
//     first-occurrence order (stable sort).
//
// The result is canonical for display and idempotent: simplifying the
// result again yields an identical term sequence.
//
// Complexity: O(n) grouping + O(k log k) sorting, n terms, k groups.
func Polynomial(p core.Polynomial, opts Options) (core.Polynomial, error) {
	if err := validate(opts); err != nil {
		return core.Polynomial{}, err
	}
	index := make(map[string]int, p.Len())
	groups := make([]core.Term, 0, p.Len())
	sums := make([]float64, 0, p.Len())
	for _, t := range p.Terms() {
		sig := t.Signature()
		if i, ok := index[sig]; ok {
			sums[i] += t.Coef()
			continue
		}
		index[sig] = len(groups)
		groups = append(groups, t)
		sums = append(sums, t.Coef())
	}
	merged := make([]core.Term, 0, len(groups))
	for i, t := range groups {
		if math.Abs(sums[i]) < opts.Epsilon {
			continue
		}
		merged = append(merged, t.WithCoef(sums[i]))
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Degree() > merged[j].Degree()
	})
	return core.NewPolynomial(merged...), nil
}

// Fraction simplifies the numerator and then reduces by the denominator
// tag:
//
//   - scalar denominator — when every numerator coefficient and the scalar
//     are (near-)integers, divide all of them by their collective integer
//     GCD, e.g. (6x²+9x)/3 → (2x²+3x)/1;
//   - polynomial denominator — simplify the denominator polynomial too.
//     Common polynomial factors are never cancelled (see the package doc).
func Fraction(f core.Fraction, opts Options) (core.Fraction, error) {
	num, err := Polynomial(f.Numerator(), opts)
	if err != nil {
		return core.Fraction{}, err
	}
	den := f.Denominator()
	if !den.IsScalar() {
		dp, err := Polynomial(den.Polynomial(), opts)
		if err != nil {
			return core.Fraction{}, err
		}
		return core.NewFraction(num, core.PolynomialDenominator(dp)), nil
	}
	scalar := den.Scalar()
	if g := coefficientGCD(num, scalar); g > 1 {
		terms := num.Terms()
		for i, t := range terms {
			terms[i] = t.WithCoef(t.Coef() / float64(g))
		}
		num = core.NewPolynomial(terms...)
		scalar /= float64(g)
	}
	return core.NewFraction(num, core.ScalarDenominator(scalar)), nil
}

// Product simplifies each factor fraction in place.
func Product(p core.Product, opts Options) (core.Product, error) {
	fs := p.Fractions()
	for i, f := range fs {
		sf, err := Fraction(f, opts)
		if err != nil {
			return core.Product{}, err
		}
		fs[i] = sf
	}
	return core.NewProduct(fs...), nil
}

// Equation simplifies each summand product in place.
func Equation(e core.Equation, opts Options) (core.Equation, error) {
	ps := e.Products()
	for i, p := range ps {
		sp, err := Product(p, opts)
		if err != nil {
			return core.Equation{}, err
		}
		ps[i] = sp
	}
	return core.NewEquation(ps...), nil
}

func validate(opts Options) error {
	if opts.Epsilon < 0 || math.IsNaN(opts.Epsilon) || math.IsInf(opts.Epsilon, 0) {
		return ErrBadEpsilon
	}
	return nil
}

// integerTolerance bounds how far a float64 may sit from the nearest
// integer and still participate in GCD reduction.
const integerTolerance = 1e-9

// coefficientGCD returns the collective integer GCD of the numerator
// coefficients and the scalar denominator, or 0 when any of them is not
// (near) an integer. gcd(0,0) is 1 by convention, so the result is never
// a zero divisor.
func coefficientGCD(num core.Polynomial, scalar float64) int64 {
	g, ok := asInteger(scalar)
	if !ok {
		return 0
	}
	if g < 0 {
		g = -g
	}
	for i := 0; i < num.Len(); i++ {
		c, ok := asInteger(num.Term(i).Coef())
		if !ok {
			return 0
		}
		g = gcd(g, c)
	}
	return g
}

// asInteger reports the nearest integer to v when v is within
// integerTolerance of it.
func asInteger(v float64) (int64, bool) {
	r := math.Round(v)
	if math.Abs(v-r) > integerTolerance || math.Abs(r) > math.MaxInt32 {
		return 0, false
	}
	return int64(r), true
}

// gcd is Euclid's algorithm on absolute values, with gcd(0,0) = 1.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

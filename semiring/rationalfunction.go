// SPDX-License-Identifier: MIT
package semiring

import "math/big"

// Polynomial is a single-variable polynomial with exact rational
// coefficients, coefficient i multiplying x^i. A nil or empty Polynomial
// represents the zero polynomial. Polynomials returned by this package are
// always trimmed: the highest-index coefficient, if any, is non-zero.
type Polynomial []*big.Rat

func trim(p Polynomial) Polynomial {
	n := len(p)
	for n > 0 && (p[n-1] == nil || p[n-1].Sign() == 0) {
		n--
	}

	return p[:n]
}

func polyAdd(a, b Polynomial) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial, n)
	for i := range out {
		out[i] = new(big.Rat)
		if i < len(a) && a[i] != nil {
			out[i].Add(out[i], a[i])
		}
		if i < len(b) && b[i] != nil {
			out[i].Add(out[i], b[i])
		}
	}

	return trim(out)
}

func polyNeg(a Polynomial) Polynomial {
	out := make(Polynomial, len(a))
	for i, c := range a {
		out[i] = new(big.Rat).Neg(c)
	}

	return trim(out)
}

func polySub(a, b Polynomial) Polynomial {
	return polyAdd(a, polyNeg(b))
}

func polyMul(a, b Polynomial) Polynomial {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(Polynomial, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	for i, ac := range a {
		if ac.Sign() == 0 {
			continue
		}
		for j, bc := range b {
			out[i+j].Add(out[i+j], new(big.Rat).Mul(ac, bc))
		}
	}

	return trim(out)
}

func polyIsZero(a Polynomial) bool {
	return len(trim(a)) == 0
}

func polyEqual(a, b Polynomial) bool {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// ConstPolynomial returns the degree-0 polynomial with value v.
func ConstPolynomial(v *big.Rat) Polynomial {
	return trim(Polynomial{new(big.Rat).Set(v)})
}

// Var1 returns the degree-1 polynomial "x" (coefficients [0, 1]), useful for
// building a rate expressed as a single free parameter (e.g. a failure rate
// lambda left symbolic).
func Var1() Polynomial {
	return Polynomial{new(big.Rat), new(big.Rat).SetInt64(1)}
}

// RationalFunctionValue is a ratio of two Polynomials (numerator over
// denominator), the concrete value type of the RationalFunction semiring.
// This is the Go counterpart of storm::RationalFunction: rates that remain
// symbolic expressions in a model parameter rather than collapsing to a
// concrete number until the elimination solver finishes.
type RationalFunctionValue struct {
	Num, Den Polynomial
}

// NewRationalFunctionValue builds num/den; den must not be the zero
// polynomial (callers needing a constant should pass a degree-0
// denominator of 1, e.g. via ConstPolynomial(big.NewRat(1, 1))).
func NewRationalFunctionValue(num, den Polynomial) RationalFunctionValue {
	return RationalFunctionValue{Num: trim(num), Den: trim(den)}
}

// RationalFunction implements Semiring[RationalFunctionValue] — the ring
// the solver factory (package solver) always selects the Elimination
// solver for, per spec.md §4.5, since no iterative numerical solver can
// return exact results over a field of rational functions.
type RationalFunction struct{}

// NewRationalFunction returns the rational-function semiring.
func NewRationalFunction() RationalFunction { return RationalFunction{} }

func (RationalFunction) Zero() RationalFunctionValue {
	return RationalFunctionValue{Num: nil, Den: ConstPolynomial(big.NewRat(1, 1))}
}

func (RationalFunction) One() RationalFunctionValue {
	one := ConstPolynomial(big.NewRat(1, 1))

	return RationalFunctionValue{Num: one, Den: one}
}

func (RationalFunction) Add(a, b RationalFunctionValue) RationalFunctionValue {
	return NewRationalFunctionValue(
		polyAdd(polyMul(a.Num, b.Den), polyMul(b.Num, a.Den)),
		polyMul(a.Den, b.Den),
	)
}

func (RationalFunction) Sub(a, b RationalFunctionValue) RationalFunctionValue {
	return NewRationalFunctionValue(
		polySub(polyMul(a.Num, b.Den), polyMul(b.Num, a.Den)),
		polyMul(a.Den, b.Den),
	)
}

func (RationalFunction) Mul(a, b RationalFunctionValue) RationalFunctionValue {
	return NewRationalFunctionValue(polyMul(a.Num, b.Num), polyMul(a.Den, b.Den))
}

// Div returns a/b. If b's numerator is the zero polynomial (b itself is
// zero), the result is the zero value rather than a panic or an infinite
// value, matching Rational.Div's caller-checks-IsZero-first convention.
func (r RationalFunction) Div(a, b RationalFunctionValue) RationalFunctionValue {
	if r.IsZero(b) {
		return r.Zero()
	}

	return NewRationalFunctionValue(polyMul(a.Num, b.Den), polyMul(a.Den, b.Num))
}

func (RationalFunction) IsZero(v RationalFunctionValue) bool {
	return polyIsZero(v.Num)
}

// Equal compares a and b as fractions via cross-multiplication, so
// differently-represented-but-equal fractions (e.g. 1/2 and 2/4 in
// unsimplified polynomial form) still compare equal.
func (RationalFunction) Equal(a, b RationalFunctionValue) bool {
	return polyEqual(polyMul(a.Num, b.Den), polyMul(b.Num, a.Den))
}

// SPDX-License-Identifier: MIT
package semiring_test

import (
	"math/big"
	"testing"

	"github.com/faulttree/dftcore/semiring"
)

func TestFloat64Arithmetic(t *testing.T) {
	s := semiring.NewFloat64()
	if got := s.Add(1.5, 2.5); got != 4 {
		t.Errorf("Add(1.5,2.5) = %v, want 4", got)
	}
	if !s.IsZero(s.Zero()) {
		t.Errorf("Zero() is not IsZero")
	}
	if s.One() != 1 {
		t.Errorf("One() = %v, want 1", s.One())
	}
	if got := s.Div(s.One(), 0); !(got != got || got > 1e300) {
		// dividing by zero should not silently look like a normal value
		t.Errorf("Div by zero produced a plausible finite value: %v", got)
	}
}

func TestRationalArithmetic(t *testing.T) {
	s := semiring.NewRational()
	a := big.NewRat(1, 3)
	b := big.NewRat(1, 6)
	sum := s.Add(a, b)
	want := big.NewRat(1, 2)
	if !s.Equal(sum, want) {
		t.Errorf("1/3 + 1/6 = %v, want %v", sum, want)
	}

	if !s.IsZero(s.Zero()) {
		t.Errorf("Zero() is not IsZero")
	}

	// dividing by zero must not panic; it degrades to the zero value.
	got := s.Div(a, s.Zero())
	if !s.IsZero(got) {
		t.Errorf("Div by zero = %v, want zero", got)
	}
}

func TestRationalFunctionArithmetic(t *testing.T) {
	s := semiring.NewRationalFunction()

	// lambda (the free variable) plus the constant 1.
	lambda := semiring.NewRationalFunctionValue(semiring.Var1(), semiring.ConstPolynomial(big.NewRat(1, 1)))
	one := s.One()

	sum := s.Add(lambda, one)
	// (lambda + 1) should equal itself reflexively via Equal.
	if !s.Equal(sum, sum) {
		t.Errorf("Equal is not reflexive for %+v", sum)
	}

	if s.IsZero(lambda) {
		t.Errorf("lambda should not be zero")
	}
	if !s.IsZero(s.Zero()) {
		t.Errorf("Zero() is not IsZero")
	}

	// (lambda/1) * (1/lambda) == 1, when lambda itself is invertible as a fraction.
	invLambda := semiring.NewRationalFunctionValue(semiring.ConstPolynomial(big.NewRat(1, 1)), semiring.Var1())
	product := s.Mul(lambda, invLambda)
	if !s.Equal(product, s.One()) {
		t.Errorf("lambda * (1/lambda) = %+v, want 1", product)
	}

	// dividing by zero degrades to the zero value rather than panicking.
	gotZeroDiv := s.Div(lambda, s.Zero())
	if !s.IsZero(gotZeroDiv) {
		t.Errorf("Div by zero = %+v, want zero", gotZeroDiv)
	}
}

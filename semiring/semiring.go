// SPDX-License-Identifier: MIT
// Package semiring defines the numeric capability the rest of this module is
// generic over: a small algebraic interface (add, subtract, multiply,
// divide, zero, one, equality-to-zero) standing in for the concrete rate
// type the DFT core and the elimination solver both operate on.
//
// This is the Go shape of spec.md's "Templating on numeric type → generic
// over semiring trait" design note: the original repository templates every
// DFT element and the elimination solver on a C++ ValueType (double,
// rational, rational function); here that parameter becomes a Go generic
// type T constrained by Semiring[T], passed explicitly wherever arithmetic
// happens.
package semiring

// Semiring is the arithmetic capability required of a rate/value type T.
// Implementations must be associative and commutative under Add, and
// distribute Mul over Add, same as the mathematical structure the name
// implies. Div is required (not just Mul+Inverse) because not every
// implementation can or should expose a standalone multiplicative inverse
// (e.g. a rational-function ring where division may need to track a
// denominator polynomial).
type Semiring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a - b.
	Sub(a, b T) T
	// Mul returns a * b.
	Mul(a, b T) T
	// Div returns a / b. Behavior when b is the additive identity is
	// implementation-defined; callers that must guard against it check
	// IsZero(b) first.
	Div(a, b T) T
	// IsZero reports whether v is the additive identity.
	IsZero(v T) bool
	// Equal reports whether a and b represent the same value.
	Equal(a, b T) bool
}

// SPDX-License-Identifier: MIT
package semiring

import "math/big"

// Rational implements Semiring[*big.Rat] — the exact-rational-number
// semiring used when the solver factory (package solver) is asked for
// exact results but the rates themselves are plain constants rather than
// functions of a model parameter. Every operation returns a freshly
// allocated *big.Rat so callers never observe aliasing between operands
// and results.
type Rational struct{}

// NewRational returns the exact-rational semiring.
func NewRational() Rational { return Rational{} }

func (Rational) Zero() *big.Rat { return new(big.Rat) }
func (Rational) One() *big.Rat  { return new(big.Rat).SetInt64(1) }

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Div returns a/b. Dividing by the zero rational yields a zero result
// rather than panicking, matching big.Rat's documented panic-avoidance
// convention of callers checking IsZero first; callers in this module
// (elim.Solver) always check IsZero before dividing.
func (r Rational) Div(a, b *big.Rat) *big.Rat {
	if r.IsZero(b) {
		return new(big.Rat)
	}

	return new(big.Rat).Quo(a, b)
}

func (Rational) IsZero(v *big.Rat) bool   { return v == nil || v.Sign() == 0 }
func (Rational) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// SPDX-License-Identifier: MIT
package semiring

// Float64 implements Semiring[float64] — the concrete rate type used when
// exact (symbolic) results are not required. This is the semiring the DFT
// state-space generator uses by default: BE rates are plain float64s and
// transition rates sum as ordinary floating-point addition.
type Float64 struct{}

// NewFloat64 returns the float64 semiring. It carries no state; every call
// returns an equivalent, stateless value.
func NewFloat64() Float64 { return Float64{} }

func (Float64) Zero() float64 { return 0 }
func (Float64) One() float64  { return 1 }

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Div(a, b float64) float64 { return a / b }

func (Float64) IsZero(v float64) bool   { return v == 0 }
func (Float64) Equal(a, b float64) bool { return a == b }

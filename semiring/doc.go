// SPDX-License-Identifier: MIT
// Package semiring provides the generic arithmetic capability shared by the
// DFT state-space generator and the symbolic elimination solver.
//
// Three implementations are provided:
//
//   - Float64    — ordinary floating-point rates, the default for CTMC generation.
//   - Rational   — exact rational numbers (math/big.Rat), for exact DFT analysis
//     with concrete rates.
//   - RationalFunction — ratios of single-variable polynomials, for symbolic
//     rates (a model parameter left free). The solver factory (package
//     solver) always routes this semiring to the elimination solver, since
//     no iterative numerical method can return exact results over it.
package semiring

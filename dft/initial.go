// SPDX-License-Identifier: MIT
package dft

// InitialState builds the DFT's initial CTMC state: every element
// Operational, then every SPARE gate claims its first available
// (non-Failed, unclaimed) child in declared order — normally its primary
// at index 0 — before active bits are computed to a fixed point. This is
// the state-space generator's single entry point into this package's
// state construction (spec.md §4.3's initial state).
func InitialState[T any](d *DFT[T]) *State {
	st := newInitialState(d.NumElements(), d.NumSpares())

	for _, spareID := range d.spareOrder {
		claimNext(d, st, spareID)
	}
	recomputeActiveBits(d, st)

	return st
}

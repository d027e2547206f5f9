// SPDX-License-Identifier: MIT
package dft

// FireBEFailure returns the state reached by failing the Operational BE
// beID from src: a clone with beID marked Failed and the propagation
// fixed point (failure queue, then failsafe queue, then don't-care queue)
// run to completion. If firing beID would violate the declared child order
// of a SEQAND that is its direct parent (see ViolatesSequenceOrder), the
// returned state is marked Invalid and the
// caller must discard the transition rather than add it to the CTMC
// (spec.md §4.3 step 3).
func FireBEFailure[T any](d *DFT[T], src *State, beID int) *State {
	next := src.Clone()

	if ViolatesSequenceOrder(d, next, beID) {
		next.MarkInvalid()

		return next
	}

	q := NewQueues(d.NumElements())
	fail(d, next, q, beID)
	propagate(d, next, q)

	return next
}

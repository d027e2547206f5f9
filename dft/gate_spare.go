// SPDX-License-Identifier: MIT
package dft

// checkFailsSPARE fails id once the element it currently uses has Failed
// and no further child can be claimed to replace it. Mirrors
// DFTSpare::checkFails: on a used child's failure, try to claim the next
// unclaimed, not-yet-failed child in order; only fail if none remains.
func checkFailsSPARE[T any](d *DFT[T], st *State, q *Queues, id int) {
	e := d.Element(id)
	idx := e.useIndex
	used := st.Uses(idx)

	if used != -1 && st.Status(used) != StatusFailed {
		return
	}

	if claimNext(d, st, id) {
		return
	}

	fail(d, st, q, id)
}

// checkFailsafeSPARE marks id Failsafe iff the child it currently uses has
// become Failsafe, and queues its remaining spare children don't-care.
// Mirrors DFTSpare::checkFailsafe.
func checkFailsafeSPARE[T any](d *DFT[T], st *State, q *Queues, id int) {
	e := d.Element(id)
	used := st.Uses(e.useIndex)

	if used != -1 && st.Status(used) == StatusFailsafe {
		failsafe(d, st, q, id)
		childrenDontCare(d, q, id)
	}
}

// SPDX-License-Identifier: MIT
package dft

// checkFailsPAND fails id once every child has Failed in the gate's
// declared left-to-right order. Order is judged from the current
// snapshot, not from timestamps: if some child at a later position is
// Failed while an earlier-position child is not, the required order has
// already been broken and the gate can never fail — it becomes Failsafe
// instead (DFTPand::checkFails / checkFailsafe in
// original_source/src/storage/dft/DFTElements.h fold this into one pass;
// this port keeps the split to match this package's dispatcher shape).
func checkFailsPAND[T any](d *DFT[T], st *State, q *Queues, id int) {
	children := d.Element(id).Children()
	if allChildrenFailed(d, st, id) {
		fail(d, st, q, id)
		return
	}
	if outOfOrderFailure(st, children) {
		failsafe(d, st, q, id)
		childrenDontCare(d, q, id)
	}
}

// checkFailsafePAND marks id Failsafe as soon as any child has become
// Failsafe directly (no child ever fails, so the AND-like condition can
// never be met either). Fires unconditionally once invoked, mirroring
// DFTPand::checkFailsafe.
func checkFailsafePAND[T any](d *DFT[T], st *State, q *Queues, id int) {
	failsafe(d, st, q, id)
	childrenDontCare(d, q, id)
}

// outOfOrderFailure reports whether some child at index j is Failed while
// an earlier child at index i<j is not, for the given ordered children.
func outOfOrderFailure(st *State, children []int) bool {
	sawNonFailed := false
	for _, c := range children {
		if st.Status(c) != StatusFailed {
			sawNonFailed = true
			continue
		}
		if sawNonFailed {
			return true
		}
	}

	return false
}

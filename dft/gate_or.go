// SPDX-License-Identifier: MIT
package dft

// checkFailsOR fails id as soon as any child has Failed. Mirrors
// DFTOr::checkFails.
func checkFailsOR[T any](d *DFT[T], st *State, q *Queues, id int) {
	if hasFailedChild(d, st, id) {
		fail(d, st, q, id)
	}
}

// checkFailsafeOR marks id Failsafe once every child has become Failsafe
// (none can ever fail it now), and queues its children don't-care.
//
// The original DFTOr::checkFailsafe omits the "already resolved" guard
// present on AND/VOT/PAND; this port adds it for idempotence (Testable
// Property: re-checking an absorbing element is a no-op), matching the
// guard already centralized in checkFailsafe's dispatcher.
func checkFailsafeOR[T any](d *DFT[T], st *State, q *Queues, id int) {
	if allChildrenFailsafe(d, st, id) {
		failsafe(d, st, q, id)
		childrenDontCare(d, q, id)
	}
}

// SPDX-License-Identifier: MIT
package dft

// checkFailsAND fails id once every child has Failed. Mirrors DFTAnd::checkFails.
func checkFailsAND[T any](d *DFT[T], st *State, q *Queues, id int) {
	if allChildrenFailed(d, st, id) {
		fail(d, st, q, id)
	}
}

// checkFailsafeAND marks id Failsafe as soon as any child has become
// Failsafe (the dispatcher only queues id here when that is already true),
// and queues its children don't-care since the AND can no longer fail.
// Mirrors DFTAnd::checkFailsafe, which fires unconditionally once invoked.
func checkFailsafeAND[T any](d *DFT[T], st *State, q *Queues, id int) {
	failsafe(d, st, q, id)
	childrenDontCare(d, q, id)
}

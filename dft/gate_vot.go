// SPDX-License-Identifier: MIT
package dft

// checkFailsVOT fails id once at least Threshold() children have Failed.
// Mirrors DFTVot::checkFails.
func checkFailsVOT[T any](d *DFT[T], st *State, q *Queues, id int) {
	if countFailedChildren(d, st, id) >= d.Element(id).Threshold() {
		fail(d, st, q, id)
	}
}

// checkFailsafeVOT marks id Failsafe once too few children remain that
// could still fail to ever reach the threshold: if n-countFailsafe (the
// children that have not yet given up) drops below Threshold(), the vote
// can never pass. Mirrors DFTVot::checkFailsafe.
func checkFailsafeVOT[T any](d *DFT[T], st *State, q *Queues, id int) {
	e := d.Element(id)
	children := e.Children()
	countFailsafe := 0
	for _, c := range children {
		if st.Status(c) == StatusFailsafe {
			countFailsafe++
		}
	}
	remaining := len(children) - countFailsafe
	if remaining < e.Threshold() {
		failsafe(d, st, q, id)
		childrenDontCare(d, q, id)
	}
}

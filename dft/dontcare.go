// SPDX-License-Identifier: MIT
package dft

// checkDontCareAnymore marks id DontCare once none of its parents can
// still distinguish its outcome: every parent has itself settled into an
// absorbing status (Failed, Failsafe, or DontCare). This applies
// regardless of id's own current status — an Operational element whose
// only consumers have already resolved is truncated from further
// exploration exactly like a Failed or Failsafe one, since no reachable
// future transition through it can change the top event's verdict
// (spec.md §4.2's don't-care propagation; Testable Property: DontCare
// stops further BE-origin transitions through that element). An element
// with no parents (the top event) never becomes DontCare through this
// rule.
func checkDontCareAnymore[T any](d *DFT[T], st *State, q *Queues, id int) {
	if st.Status(id) == StatusDontCare {
		return
	}

	parents := d.Element(id).Parents()
	if len(parents) == 0 {
		return
	}
	for _, p := range parents {
		if st.Status(p) == StatusOperational {
			return
		}
	}

	st.SetStatus(id, StatusDontCare)
	for _, c := range d.Element(id).Children() {
		q.PushDontCare(c)
	}
}

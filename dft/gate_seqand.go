// SPDX-License-Identifier: MIT
package dft

// checkFailsSEQAND fails id once every child has Failed. SEQAND's defining
// property — children may only fail in the gate's declared order — is not
// checked here: FireBEFailure calls ViolatesSequenceOrder before
// propagate runs and marks the transition invalid when a BE fails ahead of
// an earlier sibling under a SEQAND that is its direct parent. A gate child
// of a SEQAND failing out of order is not detected by either check; the
// SEQAND then fails once all its children have Failed. Mirrors
// DFTSeq::checkFails.
func checkFailsSEQAND[T any](d *DFT[T], st *State, q *Queues, id int) {
	if allChildrenFailed(d, st, id) {
		fail(d, st, q, id)
	}
}

// checkFailsafeSEQAND marks id Failsafe as soon as any child has become
// Failsafe, firing unconditionally once invoked like AND/PAND. Unlike
// AND/PAND/VOT, this does NOT queue the children don't-care:
// original_source's DFTSeq::checkFailsafe has this same asymmetry, since a
// SEQAND's children remain order-constrained siblings whose don't-care
// status is always derived independently by checkDontCareAnymore, not
// pushed down from the parent.
func checkFailsafeSEQAND[T any](d *DFT[T], st *State, q *Queues, id int) {
	failsafe(d, st, q, id)
}

// ViolatesSequenceOrder reports whether element beID failing right now,
// given st's current statuses, would fail a SEQAND parent out of order:
// beID sits at position j>0 in the child list of a SEQAND that is its
// direct parent, and one of that SEQAND's children at position i<j is not
// yet Failed. SEQANDs above beID's parents are not examined. The
// state-space generator calls this before committing a BE-failure
// transition; a true result means the transition must be dropped rather
// than explored (spec.md §4.2 edge case; Testable Property: out-of-order
// SEQAND firings never appear in the generated CTMC).
func ViolatesSequenceOrder[T any](d *DFT[T], st *State, beID int) bool {
	for _, p := range d.Element(beID).Parents() {
		if d.Element(p).Kind() != KindSEQAND {
			continue
		}
		children := d.Element(p).Children()
		for j, c := range children {
			if c != beID {
				continue
			}
			for i := 0; i < j; i++ {
				if st.Status(children[i]) != StatusFailed {
					return true
				}
			}
		}
	}

	return false
}

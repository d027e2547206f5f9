// SPDX-License-Identifier: MIT
package dft

// propagate runs the fixed-point loop from spec.md §4.2 for one BE-origin
// failure: seed the failure queue with the BE's parents, drain it fully
// (each popped gate re-checks checkFails and, on a fresh failure, queues
// its own parents), then drain the failsafe queue fully (checkFailsafe),
// then the don't-care queue fully (checkDontCareAnymore). Each phase can
// only feed the next, never a prior one, which is why the three queues are
// separate FIFOs rather than one.
func propagate[T any](d *DFT[T], st *State, q *Queues) {
	for {
		if id, ok := q.PopFailure(); ok {
			checkFails(d, st, q, id)
			continue
		}
		if id, ok := q.PopFailsafe(); ok {
			checkFailsafe(d, st, q, id)
			continue
		}
		if id, ok := q.PopDontCare(); ok {
			checkDontCareAnymore(d, st, q, id)
			continue
		}
		break
	}
}

// checkFails dispatches to the per-kind "has this gate now failed" check.
// Leaves (BE, Constant) never re-derive failure from children and are
// never queued here.
func checkFails[T any](d *DFT[T], st *State, q *Queues, id int) {
	e := d.Element(id)
	if st.Status(id) != StatusOperational {
		return
	}
	switch e.Kind() {
	case KindAND:
		checkFailsAND(d, st, q, id)
	case KindOR:
		checkFailsOR(d, st, q, id)
	case KindVOT:
		checkFailsVOT(d, st, q, id)
	case KindPAND:
		checkFailsPAND(d, st, q, id)
	case KindSEQAND:
		checkFailsSEQAND(d, st, q, id)
	case KindSPARE:
		checkFailsSPARE(d, st, q, id)
	default:
		// BE/Constant/FDEP/COUNTING never fail via this path.
	}
}

// checkFailsafe dispatches to the per-kind "has this gate now become
// failsafe" check. Only gates with failsafe semantics (AND/OR/VOT/PAND/
// SEQAND/SPARE) implement it; POR has no failsafe condition of its own.
// Calling it for an Operational element with no Failsafe child is a
// programming error and panics.
func checkFailsafe[T any](d *DFT[T], st *State, q *Queues, id int) {
	e := d.Element(id)
	if st.Status(id) != StatusOperational {
		return
	}
	if !hasFailsafeChild(d, st, id) {
		panic("dft: checkFailsafe called on an element with no Failsafe child")
	}
	switch e.Kind() {
	case KindAND:
		checkFailsafeAND(d, st, q, id)
	case KindOR:
		checkFailsafeOR(d, st, q, id)
	case KindVOT:
		checkFailsafeVOT(d, st, q, id)
	case KindPAND:
		checkFailsafePAND(d, st, q, id)
	case KindSEQAND:
		checkFailsafeSEQAND(d, st, q, id)
	case KindSPARE:
		checkFailsafeSPARE(d, st, q, id)
	default:
		// POR/BE/Constant have no failsafe condition.
	}
}

// fail marks id Failed, queues id's parents for a failure re-check — the
// one operation that grows the CTMC exploration frontier — and queues id
// itself plus id's children for a don't-care re-check: once id is
// settled, any child still Operational only mattered to id, and id's own
// don't-care status can now be determined from its parents.
func fail[T any](d *DFT[T], st *State, q *Queues, id int) {
	st.SetStatus(id, StatusFailed)
	for _, p := range d.Element(id).Parents() {
		q.PushFailure(p)
	}
	q.PushDontCare(id)
	childrenDontCare(d, q, id)
}

// failsafe marks id Failsafe, queues id's parents for a failsafe re-check,
// and queues id for a don't-care re-check (its own subtree may now be
// irrelevant).
func failsafe[T any](d *DFT[T], st *State, q *Queues, id int) {
	st.SetStatus(id, StatusFailsafe)
	for _, p := range d.Element(id).Parents() {
		q.PushFailsafe(p)
	}
	q.PushDontCare(id)
}

// childrenDontCare queues every child of id for a don't-care re-check —
// called when id itself becomes absorbing (Failed or Failsafe) and can no
// longer care about its children's further evolution.
func childrenDontCare[T any](d *DFT[T], q *Queues, id int) {
	for _, c := range d.Element(id).Children() {
		q.PushDontCare(c)
	}
}

// hasFailedChild reports whether any of id's children is Failed.
func hasFailedChild[T any](d *DFT[T], st *State, id int) bool {
	for _, c := range d.Element(id).Children() {
		if st.Status(c) == StatusFailed {
			return true
		}
	}

	return false
}

// countFailedChildren returns how many of id's children are Failed.
func countFailedChildren[T any](d *DFT[T], st *State, id int) int {
	n := 0
	for _, c := range d.Element(id).Children() {
		if st.Status(c) == StatusFailed {
			n++
		}
	}

	return n
}

// allChildrenFailed reports whether every one of id's children is Failed.
func allChildrenFailed[T any](d *DFT[T], st *State, id int) bool {
	for _, c := range d.Element(id).Children() {
		if st.Status(c) != StatusFailed {
			return false
		}
	}

	return true
}

// allChildrenFailsafe reports whether every one of id's children is
// Failsafe.
func allChildrenFailsafe[T any](d *DFT[T], st *State, id int) bool {
	for _, c := range d.Element(id).Children() {
		if st.Status(c) != StatusFailsafe {
			return false
		}
	}

	return true
}

// hasFailsafeChild reports whether any of id's children is Failsafe.
func hasFailsafeChild[T any](d *DFT[T], st *State, id int) bool {
	for _, c := range d.Element(id).Children() {
		if st.Status(c) == StatusFailsafe {
			return true
		}
	}

	return false
}

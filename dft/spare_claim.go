// SPDX-License-Identifier: MIT
package dft

// claimNext looks for the first child of the SPARE gate spareID, in
// declared order, that is neither Failed nor already claimed by a
// different SPARE, and claims it (records it in st's uses vector at that
// SPARE's useIndex). It returns false if no such child exists, in which
// case the SPARE has exhausted its options and must fail.
func claimNext[T any](d *DFT[T], st *State, spareID int) bool {
	e := d.Element(spareID)
	idx := e.useIndex

	for _, c := range e.Children() {
		if st.Status(c) == StatusFailed {
			continue
		}
		if isClaimedByAnotherSpare(d, st, spareID, c) {
			continue
		}
		st.SetUses(idx, c)
		recomputeActiveBits(d, st)

		return true
	}

	return false
}

// isClaimedByAnotherSpare reports whether childID is currently the uses
// target of some SPARE other than excludeSpareID. A child with more than
// one owner (spareOrder entry) can be shared; a primary (only child at
// children()[0] of a single owner) never needs this check since it has no
// other owner to race with.
func isClaimedByAnotherSpare[T any](d *DFT[T], st *State, excludeSpareID, childID int) bool {
	for _, ownerID := range d.ownerSpares[childID] {
		if ownerID == excludeSpareID {
			continue
		}
		owner := d.Element(ownerID)
		if st.Uses(owner.useIndex) == childID {
			return true
		}
	}

	return false
}

// recomputeActiveBits recomputes every SPARE's active bit from scratch,
// to a fixed point, per the root-spare propagation rule: every SPARE
// never claimed as a shared child by another SPARE (a "root" SPARE,
// d.rootSpare) is active unconditionally; any SPARE whose currently-used
// child is itself a SPARE inherits that activity. The computation is
// re-run to convergence after every claim change since a claim can both
// gain and lose a spare its activity in the same step.
func recomputeActiveBits[T any](d *DFT[T], st *State) {
	for i := range st.active {
		st.SetActive(i, d.rootSpare[i])
	}

	for {
		changed := false
		for i := range d.spareOrder {
			if !st.Active(i) {
				continue
			}
			used := st.Uses(i)
			if used == -1 {
				continue
			}
			usedElem := d.Element(used)
			if usedElem.Kind() != KindSPARE {
				continue
			}
			childIdx := usedElem.activeIndex
			if !st.Active(childIdx) {
				st.SetActive(childIdx, true)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

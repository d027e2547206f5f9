// SPDX-License-Identifier: MIT
package dft

// BERate returns the failure rate a currently-Operational BE should use in
// the state-space generator: ActiveRate if the BE is not owned by any
// SPARE, or if at least one owning SPARE currently uses it while active;
// PassiveRate otherwise (dormant or unclaimed). Mirrors spec.md §4.2's BE
// rate-selection rule.
func BERate[T any](d *DFT[T], st *State, beID int) T {
	e := d.Element(beID)
	owners := d.ownerSpares[beID]
	if len(owners) == 0 {
		return e.ActiveRate()
	}

	for _, ownerID := range owners {
		owner := d.Element(ownerID)
		if st.Uses(owner.useIndex) == beID && st.Active(owner.activeIndex) {
			return e.ActiveRate()
		}
	}

	return e.PassiveRate()
}

// SPDX-License-Identifier: MIT
package dft

// IndependentUnit reports whether the sub-DAG rooted at the given element
// ids ("unit") is independent of the rest of the tree: every element
// reachable from unit (by following children downward) has all of its
// parents inside unit too. A unit satisfying this has no incoming edges
// from outside itself anywhere in its closure, so it can be analyzed (or
// replaced by a single equivalent element) without reference to the rest
// of the DFT.
//
// This generalizes DFTGate::independentUnit in
// original_source/src/storage/dft/DFTElements.h, which only checks the
// given root gate's own direct parents. Shared SPARE children make the
// child relation a DAG rather than a tree (a child can have parents both
// inside and outside a candidate unit at depths other than the root), so
// spec.md §4.1's predicate is checked over the full downward closure, not
// just the root.
func IndependentUnit[T any](d *DFT[T], unit []int) bool {
	inUnit := make(map[int]bool, len(unit))
	for _, id := range unit {
		inUnit[id] = true
	}

	closure := extendUnit(d, inUnit, unit)

	for id := range closure {
		for _, p := range d.Element(id).Parents() {
			if !closure[p] {
				return false
			}
		}
	}

	return true
}

// extendUnit computes the downward closure of seed under the child
// relation, returning it as a membership set (seed's own ids included).
// inUnit is consulted only as the seed membership; extendUnit does not
// mutate it.
func extendUnit[T any](d *DFT[T], inUnit map[int]bool, seed []int) map[int]bool {
	closure := make(map[int]bool, len(inUnit))
	var stack []int
	for _, id := range seed {
		if !closure[id] {
			closure[id] = true
			stack = append(stack, id)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range d.Element(id).Children() {
			if !closure[c] {
				closure[c] = true
				stack = append(stack, c)
			}
		}
	}

	return closure
}

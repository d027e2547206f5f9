// SPDX-License-Identifier: MIT
package dft

import "github.com/faulttree/dftcore/semiring"

// Descriptor is the parser-supplied description of a single element:
// (kind, name, kind-specific parameters, child-names-in-order), matching
// the DFT construction API named in spec.md §6. The external Galileo-format
// parser is expected to produce a slice of these; this package never reads
// any textual format itself.
type Descriptor[T any] struct {
	Kind     Kind
	Name     string
	Children []string // ordered; order matters for PAND/SEQAND/POR/SPARE

	Threshold   int  // VOT only
	ActiveRate  T    // BE only
	PassiveRate T    // BE only
	ConstFailed bool // Constant only
}

// color is used by the construction-time cycle check (white/gray/black DFS).
type color uint8

const (
	white color = iota
	gray
	black
)

// Build resolves descs into an immutable DFT handle: it assigns dense ids
// in descs' order, resolves child names to ids, validates acyclicity,
// computes ranks by reverse topological order, assigns SPARE
// useIndex/activeIndex offsets densely, and locates the top event.
//
// Stage 1 (Index): assign each descriptor a dense id by position, reject
// duplicate names.
// Stage 2 (Resolve): turn child names into child ids, reject unknown names;
// compute the parent relation as the exact inverse of the child relation.
// Stage 3 (Validate acyclicity): DFS with a white/gray/black coloring;
// a back-edge to a gray node is a cycle.
// Stage 4 (Rank): memoized post-order recursion, rank(leaf)=0,
// rank(gate)=1+max(rank(child)).
// Stage 5 (Layout): assign SPARE useIndex/activeIndex offsets in ascending
// id order; record ownerSpares per element and which SPAREs are "root"
// (never themselves a shared-spare child of another SPARE).
// Stage 6 (Top): resolve topName to an id.
func Build[T any](descs []Descriptor[T], topName string, semi semiring.Semiring[T]) (*DFT[T], error) {
	const method = "Build"

	// Stage 1: index by name, reject duplicates.
	nameToID := make(map[string]int, len(descs))
	for id, desc := range descs {
		if _, dup := nameToID[desc.Name]; dup {
			return nil, dftErrorf(method, desc.Name, ErrDuplicateName)
		}
		if desc.Kind == KindPOR {
			return nil, dftErrorf(method, desc.Name, ErrUnsupportedKind)
		}
		nameToID[desc.Name] = id
	}

	// Stage 2: resolve children, build elements + parent relation.
	elements := make([]*Element[T], len(descs))
	for id, desc := range descs {
		children := make([]int, len(desc.Children))
		for i, childName := range desc.Children {
			childID, ok := nameToID[childName]
			if !ok {
				return nil, dftErrorf(method, desc.Name+" -> "+childName, ErrUnknownChild)
			}
			children[i] = childID
		}
		elements[id] = &Element[T]{
			id:          id,
			name:        desc.Name,
			kind:        desc.Kind,
			children:    children,
			threshold:   desc.Threshold,
			activeRate:  desc.ActiveRate,
			passiveRate: desc.PassiveRate,
			constFailed: desc.ConstFailed,
		}
	}
	for _, e := range elements {
		for _, c := range e.children {
			elements[c].parents = append(elements[c].parents, e.id)
		}
	}

	// Stage 3: acyclicity.
	colors := make([]color, len(elements))
	var visit func(id int) error
	visit = func(id int) error {
		colors[id] = gray
		for _, c := range elements[id].children {
			switch colors[c] {
			case gray:
				return dftErrorf(method, elements[id].name, ErrCycle)
			case white:
				if err := visit(c); err != nil {
					return err
				}
			}
		}
		colors[id] = black

		return nil
	}
	for id := range elements {
		if colors[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	// Stage 4: rank, memoized post-order recursion (children < parent).
	ranks := make([]int, len(elements))
	computed := make([]bool, len(elements))
	var rankOf func(id int) int
	rankOf = func(id int) int {
		if computed[id] {
			return ranks[id]
		}
		r := 0
		for _, c := range elements[id].children {
			if cr := rankOf(c) + 1; cr > r {
				r = cr
			}
		}
		ranks[id] = r
		computed[id] = true

		return r
	}
	for id := range elements {
		elements[id].rank = rankOf(id)
	}

	// Stage 5: SPARE layout + owner-spare index.
	var spareOrder []int
	for id, e := range elements {
		if e.kind == KindSPARE {
			spareOrder = append(spareOrder, id)
		}
	}
	ownerSpares := make([][]int, len(elements))
	isSharedSpareChild := make(map[int]bool)
	for i, spareID := range spareOrder {
		e := elements[spareID]
		e.useIndex = i
		e.activeIndex = i
		for pos, c := range e.children {
			ownerSpares[c] = append(ownerSpares[c], spareID)
			if pos > 0 {
				isSharedSpareChild[c] = true
			}
		}
	}
	rootSpare := make([]bool, len(spareOrder))
	for i, spareID := range spareOrder {
		rootSpare[i] = !isSharedSpareChild[spareID]
	}

	// Stage 6: top event.
	topID, ok := nameToID[topName]
	if !ok {
		return nil, dftErrorf(method, topName, ErrMissingTopEvent)
	}

	beOrder := make([]int, 0, len(elements))
	for id, e := range elements {
		if e.kind == KindBE {
			beOrder = append(beOrder, id)
		}
	}

	return &DFT[T]{
		semi:        semi,
		elements:    elements,
		top:         topID,
		beOrder:     beOrder,
		spareOrder:  spareOrder,
		rootSpare:   rootSpare,
		ownerSpares: ownerSpares,
	}, nil
}

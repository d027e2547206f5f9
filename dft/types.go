// SPDX-License-Identifier: MIT
// Package dft implements the in-memory Dynamic Fault Tree model: the
// element arena, per-kind failure/failsafe/don't-care propagation
// semantics, the SPARE claim protocol, and the independence predicate.
//
// Elements live in a dense arena indexed by id ([0,N)), not behind shared
// pointers — the Go counterpart of spec.md §9's "Shared-pointer DAGs →
// arena + ids" design note. Every element is one Element[T] value tagged by
// Kind; there is no class hierarchy, only a switch over Kind in the
// semantics files (gate_*.go).
package dft

import "github.com/faulttree/dftcore/semiring"

// Kind identifies which DFT element variant an Element holds.
type Kind uint8

const (
	KindBE Kind = iota
	KindConstant
	KindAND
	KindOR
	KindVOT
	KindPAND
	KindPOR
	KindSEQAND
	KindSPARE
	KindFDEP
	KindCOUNTING
)

// String renders a human-readable type tag, mirroring DFTGate::typestring
// in original_source/src/storage/dft/DFTElements.h.
func (k Kind) String() string {
	switch k {
	case KindBE:
		return "BE"
	case KindConstant:
		return "CONST"
	case KindAND:
		return "AND"
	case KindOR:
		return "OR"
	case KindVOT:
		return "VOT"
	case KindPAND:
		return "PAND"
	case KindPOR:
		return "POR"
	case KindSEQAND:
		return "SEQAND"
	case KindSPARE:
		return "SPARE"
	case KindFDEP:
		return "FDEP"
	case KindCOUNTING:
		return "COUNTING"
	default:
		return "UNKNOWN"
	}
}

// IsGate reports whether k is one of the gate kinds (has children and
// participates in propagation), as opposed to a leaf (BE, Constant).
func (k Kind) IsGate() bool {
	switch k {
	case KindAND, KindOR, KindVOT, KindPAND, KindPOR, KindSEQAND, KindSPARE, KindFDEP, KindCOUNTING:
		return true
	default:
		return false
	}
}

// Element is a single DFT node, tagged by Kind. Only the fields relevant to
// its Kind are meaningful; see the per-field comments.
type Element[T any] struct {
	id      int
	name    string
	rank    int
	parents []int // gates listing this element as a child

	kind     Kind
	children []int // order-significant for PAND/SEQAND/POR/SPARE

	// BE-only.
	activeRate  T
	passiveRate T

	// Constant-only.
	constFailed bool

	// VOT-only: fail when >= threshold children have failed.
	threshold int

	// SPARE-only: dense offsets into the state vector's uses/active slots.
	useIndex    int
	activeIndex int
}

// ID returns the element's dense id.
func (e *Element[T]) ID() int { return e.id }

// Name returns the element's human-readable name.
func (e *Element[T]) Name() string { return e.name }

// Rank returns the element's topological depth (leaves are rank 0; every
// parent has a strictly greater rank than each of its children).
func (e *Element[T]) Rank() int { return e.rank }

// Kind returns the element's tag.
func (e *Element[T]) Kind() Kind { return e.kind }

// Parents returns the ids of the gates listing this element as a child.
// The returned slice must not be mutated by the caller.
func (e *Element[T]) Parents() []int { return e.parents }

// Children returns this gate's ordered child ids (empty for BE/Constant).
// The returned slice must not be mutated by the caller.
func (e *Element[T]) Children() []int { return e.children }

// Threshold returns the VOT gate's failure threshold k.
func (e *Element[T]) Threshold() int { return e.threshold }

// ActiveRate returns a BE's active failure rate.
func (e *Element[T]) ActiveRate() T { return e.activeRate }

// PassiveRate returns a BE's passive (dormant) failure rate.
func (e *Element[T]) PassiveRate() T { return e.passiveRate }

// IsCold reports whether a BE is cold (its passive rate is exactly zero —
// it cannot fail while dormant). Mirrors DFTBE::isColdBasicElement.
func (e *Element[T]) IsCold(semi semiring.Semiring[T]) bool {
	return semi.IsZero(e.passiveRate)
}

// ConstFailed returns a Constant element's fixed status.
func (e *Element[T]) ConstFailed() bool { return e.constFailed }

// String renders "{name} KIND(child1, child2, ...)" for gates (children as
// ids), "{name} BE" for basic events and "{name} CONST(failed|operational)"
// for constants, mirroring
// DFTGate::toString / the DFTBE operator<< in original_source/.
func (e *Element[T]) String() string {
	return elementString(e)
}

// DFT is an immutable, constructed Dynamic Fault Tree: a dense arena of
// Elements plus the bookkeeping the state-space generator and SPARE claim
// protocol need (BE enumeration order, SPARE layout, owner-spare index).
type DFT[T any] struct {
	semi     semiring.Semiring[T]
	elements []*Element[T]
	top      int

	beOrder    []int // BE ids, ascending (exploration/determinism order)
	spareOrder []int // SPARE ids, ascending; index i has useIndex==activeIndex==i
	rootSpare  []bool // indexed by SPARE's position in spareOrder

	// ownerSpares[id] lists the SPARE ids that have element id as a child
	// (primary or shared spare alike); used for BE rate selection and the
	// claim protocol's "is this candidate already claimed elsewhere" check.
	ownerSpares [][]int
}

// Semiring returns the arithmetic capability this DFT's rates use.
func (d *DFT[T]) Semiring() semiring.Semiring[T] { return d.semi }

// NumElements returns the dense id space size N.
func (d *DFT[T]) NumElements() int { return len(d.elements) }

// NumSpares returns the number of SPARE gates S (the size of a State's
// uses/active vectors).
func (d *DFT[T]) NumSpares() int { return len(d.spareOrder) }

// Element returns the element with the given id. The id must be in
// [0, NumElements()); out-of-range ids are a programming error (panic),
// matching the arena's dense-id invariant.
func (d *DFT[T]) Element(id int) *Element[T] {
	return d.elements[id]
}

// Top returns the top event's element id.
func (d *DFT[T]) Top() int { return d.top }

// BEOrder returns all Basic Event ids in ascending id order. Exploration
// enumerates candidates in this order to guarantee determinism (Testable
// Property 8).
func (d *DFT[T]) BEOrder() []int { return d.beOrder }

// SpareOrder returns all SPARE ids in ascending id order; position i in
// this slice is exactly the useIndex/activeIndex offset assigned to that
// SPARE during construction.
func (d *DFT[T]) SpareOrder() []int { return d.spareOrder }

// SPDX-License-Identifier: MIT
package dd

import "github.com/faulttree/dftcore/semiring"

// addCell pairs a stored Assignment with its value, so Add[T] can iterate
// its sparse entries without having to decode them back out of the map key.
type addCell[T any] struct {
	a Assignment
	v T
}

// Add is a semiring-valued function over a declared set of Vars — the
// MTBDD this package's name promises, stored as a sparse assignment->value
// table rather than a shared node graph. An assignment absent from the
// table implicitly maps to zero.
type Add[T any] struct {
	vars    []Var
	zero    T
	entries map[string]addCell[T]
}

// NewAdd returns the all-zero Add over vars.
func NewAdd[T any](vars []Var, zero T) *Add[T] {
	return &Add[T]{
		vars:    append([]Var(nil), vars...),
		zero:    zero,
		entries: make(map[string]addCell[T]),
	}
}

// Vars returns the Add's declared domain.
func (f *Add[T]) Vars() []Var { return append([]Var(nil), f.vars...) }

// Set stores value at a (restricted to f.Vars()).
func (f *Add[T]) Set(a Assignment, value T) {
	r := restrict(a, f.vars)
	f.entries[encodeKey(r, f.vars)] = addCell[T]{a: r, v: value}
}

// Get returns the value stored at a (restricted to f.Vars()), or zero if
// none was set.
func (f *Add[T]) Get(a Assignment) T {
	if c, ok := f.entries[encodeKey(restrict(a, f.vars), f.vars)]; ok {
		return c.v
	}

	return f.zero
}

// Entry is the exported view of one of an Add's explicitly-stored cells.
type Entry[T any] struct {
	Assignment Assignment
	Value      T
}

// Entries returns every explicitly-stored (assignment, value) pair.
func (f *Add[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(f.entries))
	for _, c := range f.entries {
		out = append(out, Entry[T]{Assignment: c.a, Value: c.v})
	}

	return out
}

// IsZero reports whether every explicitly-stored entry is zero under semi
// — an Add with no non-zero entries behaves identically to the all-zero
// Add regardless of how many (redundant) zero entries it happens to hold.
func (f *Add[T]) IsZero(semi semiring.Semiring[T]) bool {
	for _, c := range f.entries {
		if !semi.IsZero(c.v) {
			return false
		}
	}

	return true
}

// ToAdd converts a boolean indicator into a semiring-valued Add: semi.One()
// wherever b accepts, semi.Zero() elsewhere.
func ToAdd[T any](b *Bdd, semi semiring.Semiring[T]) *Add[T] {
	out := NewAdd[T](b.Vars(), semi.Zero())
	for _, a := range b.Assignments() {
		out.Set(a, semi.One())
	}

	return out
}

// Combine returns the pointwise application of op to x and y over the
// union of their domains, defaulting missing entries to each operand's own
// zero.
func Combine[T any](x, y *Add[T], op func(a, b T) T) *Add[T] {
	domain := unionVars(x.vars, y.vars)
	out := NewAdd[T](domain, x.zero)
	for _, a := range unionAssignments(x, y) {
		out.Set(a, op(x.Get(a), y.Get(a)))
	}

	return out
}

// Multiply returns the pointwise semiring product of x and y over the
// union of their domains.
func Multiply[T any](x, y *Add[T], semi semiring.Semiring[T]) *Add[T] {
	return Combine(x, y, semi.Mul)
}

// SumAbstract existentially sums f over absVars, returning an Add over
// f.Vars() minus absVars.
func SumAbstract[T any](f *Add[T], absVars []Var, semi semiring.Semiring[T]) *Add[T] {
	remaining := subtractVars(f.vars, absVars)
	out := NewAdd[T](remaining, semi.Zero())
	for _, c := range f.entries {
		ra := restrict(c.a, remaining)
		out.Set(ra, semi.Add(out.Get(ra), c.v))
	}

	return out
}

// MultiplyMatrix computes Σ_{sumVars} a(...)·b(...): the matrix product of
// a and b contracted over sumVars, the shared "middle" dimension.
func MultiplyMatrix[T any](a, b *Add[T], sumVars []Var, semi semiring.Semiring[T]) *Add[T] {
	return SumAbstract(Multiply(a, b, semi), sumVars, semi)
}

// SwapVariables renames f's domain by exchanging each pair's From and To
// (a symmetric rename), e.g. new-row↔new-col.
func SwapVariables[T any](f *Add[T], pairs []VarPair) *Add[T] {
	return renameAdd(f, pairs, true)
}

// PermuteVariables renames f's domain one-directionally, From->To, e.g.
// new-col→helper.
func PermuteVariables[T any](f *Add[T], pairs []VarPair) *Add[T] {
	return renameAdd(f, pairs, false)
}

func renameAdd[T any](f *Add[T], pairs []VarPair, swap bool) *Add[T] {
	vars := renameVars(f.vars, pairs, swap)
	out := NewAdd[T](vars, f.zero)
	for _, c := range f.entries {
		out.Set(renameAssignment(c.a, pairs, swap), c.v)
	}

	return out
}

// Ite selects, per assignment, thenAdd's value where cond accepts and
// elseAdd's value otherwise, restricted to the union of cond's satisfying
// set and both operands' explicit entries (the algorithm never needs the
// result outside that finite support).
func Ite[T any](cond *Bdd, thenAdd, elseAdd *Add[T]) *Add[T] {
	domain := unionVars(cond.Vars(), unionVars(thenAdd.vars, elseAdd.vars))
	out := NewAdd[T](domain, elseAdd.zero)

	seen := make(map[string]Assignment)
	for _, a := range cond.Assignments() {
		seen[encodeKey(a, domain)] = a
	}
	for _, c := range thenAdd.entries {
		seen[encodeKey(c.a, domain)] = c.a
	}
	for _, c := range elseAdd.entries {
		seen[encodeKey(c.a, domain)] = c.a
	}

	for _, a := range seen {
		if cond.Contains(a) {
			out.Set(a, thenAdd.Get(a))
		} else {
			out.Set(a, elseAdd.Get(a))
		}
	}

	return out
}

// unionAssignments returns one Assignment per distinct key appearing in
// either x's or y's explicit entries, each covering the union domain.
func unionAssignments[T any](x, y *Add[T]) []Assignment {
	domain := unionVars(x.vars, y.vars)
	seen := make(map[string]Assignment)
	for _, c := range x.entries {
		full := restrict(c.a, domain)
		seen[encodeKey(full, domain)] = full
	}
	for _, c := range y.entries {
		full := restrict(c.a, domain)
		seen[encodeKey(full, domain)] = full
	}

	out := make([]Assignment, 0, len(seen))
	for _, a := range seen {
		out = append(out, a)
	}

	return out
}

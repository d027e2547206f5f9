// SPDX-License-Identifier: MIT
package dd

// Bdd is a boolean indicator function over a declared set of Vars,
// represented explicitly as the set of satisfying assignments: no node
// sharing, no variable ordering, no complement edges. This is sufficient
// for the elimination solver, whose supports are bounded by the CTMC's
// reachable state count.
type Bdd struct {
	vars   []Var
	accept map[string]Assignment
}

// NewBdd returns an empty Bdd (accepts nothing) over vars.
func NewBdd(vars []Var) *Bdd {
	return &Bdd{
		vars:   append([]Var(nil), vars...),
		accept: make(map[string]Assignment),
	}
}

// Vars returns the Bdd's declared domain.
func (b *Bdd) Vars() []Var { return append([]Var(nil), b.vars...) }

// Add marks a (restricted to b.Vars()) as satisfying.
func (b *Bdd) Add(a Assignment) {
	r := restrict(a, b.vars)
	b.accept[encodeKey(r, b.vars)] = r
}

// Contains reports whether a (restricted to b.Vars()) satisfies b.
func (b *Bdd) Contains(a Assignment) bool {
	_, ok := b.accept[encodeKey(restrict(a, b.vars), b.vars)]

	return ok
}

// Assignments returns every satisfying assignment, in no particular order.
func (b *Bdd) Assignments() []Assignment {
	out := make([]Assignment, 0, len(b.accept))
	for _, a := range b.accept {
		out = append(out, a)
	}

	return out
}

// Diagonal returns the Bdd over rowVars∪colVars that accepts exactly the
// assignments where rowVars and colVars encode the same value, for every
// row value present in support (a Bdd over rowVars). This is the
// elimination algorithm's "Diag" term.
func Diagonal(rowVars, colVars []Var, support *Bdd) *Bdd {
	out := NewBdd(unionVars(rowVars, colVars))
	for _, a := range support.Assignments() {
		full := make(Assignment, len(rowVars)+len(colVars))
		for i, rv := range rowVars {
			full[rv] = a[rv]
			full[colVars[i]] = a[rv]
		}
		out.Add(full)
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package elim implements the symbolic elimination linear-equation solver:
// Gauss-Jordan-style elimination of x = A·x + b over a semiring, where A is
// encoded as a dd.Add indexed by disjoint row and column meta-variables.
// Grounded directly on
// original_source/src/storm/solver/SymbolicEliminationLinearEquationSolver.cpp.
package elim

import (
	"github.com/faulttree/dftcore/dd"
	"github.com/faulttree/dftcore/semiring"
)

// Solver holds the fixed DD shape (row/column variable layout, valid-row
// support, and the derived helper variables used by the squaring
// shortcut) across repeated Solve calls against different (a, b) pairs.
type Solver[T any] struct {
	allRows *dd.Bdd
	rowVars []dd.Var
	colVars []dd.Var
	pairs   []dd.VarPair

	helperVars  []dd.Var
	colToHelper []dd.VarPair
	rowToHelper []dd.VarPair

	semi semiring.Semiring[T]
}

// maxIterations bounds the elimination loop: each iteration squares the
// composed path length, so convergence on an N-state acyclic structure
// takes O(log N) iterations; this is a generous safety bound against a
// malformed (non-substochastic) input matrix that never reduces to zero.
const maxIterations = 4096

// NewEliminationSolver builds a Solver for the given row/column variable
// layout. allRows is a Bdd over rowVars naming the valid row indices
// (equivalently, the reachable states); pairs must associate rowVars[i]
// with colVars[i] for every i — it is used to swap row and column roles
// during back-substitution. Helper variables for the squaring shortcut are
// derived internally from colVars and never exposed.
func NewEliminationSolver[T any](allRows *dd.Bdd, rowVars, colVars []dd.Var, pairs []dd.VarPair, semi semiring.Semiring[T]) *Solver[T] {
	helperVars := make([]dd.Var, len(colVars))
	colToHelper := make([]dd.VarPair, len(colVars))
	rowToHelper := make([]dd.VarPair, len(rowVars))
	for i, cv := range colVars {
		hv := dd.NewVar(cv.Name() + "$helper")
		helperVars[i] = hv
		colToHelper[i] = dd.VarPair{From: cv, To: hv}
		rowToHelper[i] = dd.VarPair{From: rowVars[i], To: hv}
	}

	return &Solver[T]{
		allRows:     allRows,
		rowVars:     append([]dd.Var(nil), rowVars...),
		colVars:     append([]dd.Var(nil), colVars...),
		pairs:       append([]dd.VarPair(nil), pairs...),
		helperVars:  helperVars,
		colToHelper: colToHelper,
		rowToHelper: rowToHelper,
		semi:        semi,
	}
}

// Solve computes x = A·x + b exactly, where a encodes A over
// rowVars∪colVars and b encodes the vector over rowVars. x is returned
// over rowVars.
//
// Algorithm (spec.md §4.4): M starts as Diag - A. While M is not
// identically zero: compute each row's self-loop probability from M's
// diagonal mass, scale M and x by 1/(1-selfLoop), delete the diagonal,
// back-substitute one step (x += M · x.swap(row<->col), summed over col),
// then square M via two helper-variable permutations so the loop converges
// in O(log diameter) iterations rather than one state at a time.
func (s *Solver[T]) Solve(a, b *dd.Add[T]) (*dd.Add[T], error) {
	semi := s.semi

	diagBdd := dd.Diagonal(s.rowVars, s.colVars, s.allRows)
	diagAdd := dd.ToAdd(diagBdd, semi)
	rowsAdd := dd.ToAdd(s.allRows, semi)

	m := dd.Combine(diagAdd, a, semi.Sub)
	x := b

	for iter := 0; !m.IsZero(semi); iter++ {
		if iter >= maxIterations {
			return nil, elimErrorf("Solve", "elimination did not converge", ErrDegenerateRow)
		}

		// diagCoeff[i] = M[i,i]. selfLoop[i] = rows - diagCoeff is the
		// row's self-loop mass (spec.md's "ℓ"); denom[i] = rows - selfLoop
		// recovers diagCoeff, and is zero exactly when the self-loop mass
		// is 1 (degenerate). inv = rows/denom is the pivot scale.
		masked := dd.Multiply(diagAdd, m, semi)
		diagCoeff := dd.SumAbstract(masked, s.colVars, semi)
		selfLoop := dd.Combine(rowsAdd, diagCoeff, semi.Sub)
		denom := dd.Combine(rowsAdd, selfLoop, semi.Sub)

		for _, e := range denom.Entries() {
			if semi.IsZero(e.Value) {
				return nil, elimErrorf("Solve", "row with self-loop mass 1", ErrDegenerateRow)
			}
		}
		inv := dd.Combine(rowsAdd, denom, semi.Div)

		m = dd.Multiply(m, inv, semi)
		x = dd.Combine(x, inv, semi.Mul)

		zero := dd.NewAdd[T](m.Vars(), semi.Zero())
		m = dd.Ite(diagBdd, zero, m)

		xSwapped := dd.SwapVariables(x, s.pairs)
		contribution := dd.SumAbstract(dd.Multiply(m, xSwapped, semi), s.colVars, semi)
		x = dd.Combine(x, contribution, semi.Add)

		leftFactor := dd.PermuteVariables(m, s.colToHelper)  // M[row, helper]
		rightFactor := dd.PermuteVariables(m, s.rowToHelper) // M[helper, col]
		m = dd.MultiplyMatrix(leftFactor, rightFactor, s.helperVars, semi)
	}

	return x, nil
}

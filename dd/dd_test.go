// SPDX-License-Identifier: MIT
package dd_test

import (
	"testing"

	"github.com/faulttree/dftcore/dd"
	"github.com/faulttree/dftcore/semiring"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	vars := []dd.Var{dd.NewVar("b0"), dd.NewVar("b1"), dd.NewVar("b2")}
	for n := 0; n < 8; n++ {
		a := dd.Encode(vars, n)
		if got := dd.Decode(vars, a); got != n {
			t.Fatalf("Decode(Encode(%d)) = %d", n, got)
		}
	}
}

func TestBddDiagonal(t *testing.T) {
	row := []dd.Var{dd.NewVar("r0"), dd.NewVar("r1")}
	col := []dd.Var{dd.NewVar("c0"), dd.NewVar("c1")}

	support := dd.NewBdd(row)
	support.Add(dd.Encode(row, 0))
	support.Add(dd.Encode(row, 1))

	diag := dd.Diagonal(row, col, support)

	onDiag := make(dd.Assignment)
	for k, v := range dd.Encode(row, 1) {
		onDiag[k] = v
	}
	for k, v := range dd.Encode(col, 1) {
		onDiag[k] = v
	}
	if !diag.Contains(onDiag) {
		t.Fatalf("diag should contain (1,1)")
	}

	offDiag := make(dd.Assignment)
	for k, v := range dd.Encode(row, 1) {
		offDiag[k] = v
	}
	for k, v := range dd.Encode(col, 0) {
		offDiag[k] = v
	}
	if diag.Contains(offDiag) {
		t.Fatalf("diag should not contain (1,0)")
	}
}

func TestAddSumAbstract(t *testing.T) {
	semi := semiring.NewFloat64()
	row := []dd.Var{dd.NewVar("r0")}
	col := []dd.Var{dd.NewVar("c0")}

	a := dd.NewAdd[float64](append(append([]dd.Var{}, row...), col...), semi.Zero())
	set := func(r, c int, v float64) {
		full := make(dd.Assignment)
		for k, val := range dd.Encode(row, r) {
			full[k] = val
		}
		for k, val := range dd.Encode(col, c) {
			full[k] = val
		}
		a.Set(full, v)
	}
	set(0, 0, 0.5)
	set(0, 1, 0.5)
	set(1, 0, 1.0)

	summed := dd.SumAbstract(a, col, semi)
	r0 := dd.Encode(row, 0)
	r1 := dd.Encode(row, 1)
	if got := summed.Get(r0); got != 1.0 {
		t.Fatalf("row 0 sum = %v, want 1.0", got)
	}
	if got := summed.Get(r1); got != 1.0 {
		t.Fatalf("row 1 sum = %v, want 1.0", got)
	}
}

func TestIteZerosOutDiagonal(t *testing.T) {
	semi := semiring.NewFloat64()
	row := []dd.Var{dd.NewVar("r0")}
	col := []dd.Var{dd.NewVar("c0")}
	vars := append(append([]dd.Var{}, row...), col...)

	m := dd.NewAdd[float64](vars, semi.Zero())
	diagAssignment := make(dd.Assignment)
	for k, v := range dd.Encode(row, 1) {
		diagAssignment[k] = v
	}
	for k, v := range dd.Encode(col, 1) {
		diagAssignment[k] = v
	}
	m.Set(diagAssignment, 0.3)

	off := make(dd.Assignment)
	for k, v := range dd.Encode(row, 1) {
		off[k] = v
	}
	for k, v := range dd.Encode(col, 0) {
		off[k] = v
	}
	m.Set(off, 0.7)

	support := dd.NewBdd(row)
	support.Add(dd.Encode(row, 0))
	support.Add(dd.Encode(row, 1))
	diag := dd.Diagonal(row, col, support)

	zero := dd.NewAdd[float64](vars, semi.Zero())
	result := dd.Ite(diag, zero, m)

	if got := result.Get(diagAssignment); got != 0 {
		t.Fatalf("diagonal entry = %v, want 0", got)
	}
	if got := result.Get(off); got != 0.7 {
		t.Fatalf("off-diagonal entry = %v, want 0.7", got)
	}
}

// SPDX-License-Identifier: MIT
package dft_test

import (
	"testing"

	"github.com/faulttree/dftcore/dft"
	"github.com/faulttree/dftcore/semiring"
)

func TestFireBEFailure_S1_ANDOfTwoBEs(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "a", ActiveRate: 1.0},
		{Kind: dft.KindBE, Name: "b", ActiveRate: 2.0},
		{Kind: dft.KindAND, Name: "TOP", Children: []string{"a", "b"}},
	}
	d, err := dft.Build(descs, "TOP", semi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	s00 := dft.InitialState(d)
	s10 := dft.FireBEFailure(d, s00, 0)
	if s10.Invalid() {
		t.Fatalf("firing a should be valid")
	}
	if s10.Status(2) == dft.StatusFailed {
		t.Fatalf("top failed after only a fired")
	}

	s11 := dft.FireBEFailure(d, s10, 1)
	if s11.Status(2) != dft.StatusFailed {
		t.Fatalf("top status = %v, want Failed at (11)", s11.Status(2))
	}

	s01 := dft.FireBEFailure(d, s00, 1)
	s11b := dft.FireBEFailure(d, s01, 0)
	if s11b.Status(2) != dft.StatusFailed {
		t.Fatalf("top status = %v, want Failed reaching (11) via b then a", s11b.Status(2))
	}
	if s11.Key() != s11b.Key() {
		t.Fatalf("(11) reached via two different orders should canonicalize to the same key")
	}
}

func TestFireBEFailure_SEQANDViolationIsInvalid(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "a", ActiveRate: 1.0},
		{Kind: dft.KindBE, Name: "b", ActiveRate: 1.0},
		{Kind: dft.KindSEQAND, Name: "TOP", Children: []string{"a", "b"}},
	}
	d, err := dft.Build(descs, "TOP", semi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	s00 := dft.InitialState(d)
	s01 := dft.FireBEFailure(d, s00, 1) // b before a: violates order
	if !s01.Invalid() {
		t.Fatalf("firing b before a under SEQAND should be invalid")
	}
}

// SPDX-License-Identifier: MIT
package dft_test

import (
	"errors"
	"testing"

	"github.com/faulttree/dftcore/dft"
	"github.com/faulttree/dftcore/semiring"
)

func TestBuild_RanksAndTop(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "A", ActiveRate: 0.1, PassiveRate: 0.1},
		{Kind: dft.KindBE, Name: "B", ActiveRate: 0.2, PassiveRate: 0.2},
		{Kind: dft.KindAND, Name: "TOP", Children: []string{"A", "B"}},
	}

	d, err := dft.Build(descs, "TOP", semi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.NumElements() != 3 {
		t.Fatalf("NumElements = %d, want 3", d.NumElements())
	}
	top := d.Element(d.Top())
	if top.Name() != "TOP" {
		t.Fatalf("Top() resolved to %q, want TOP", top.Name())
	}
	if top.Rank() != 1 {
		t.Fatalf("TOP rank = %d, want 1", top.Rank())
	}
	for _, id := range d.BEOrder() {
		if d.Element(id).Rank() != 0 {
			t.Fatalf("BE %q rank = %d, want 0", d.Element(id).Name(), d.Element(id).Rank())
		}
	}
}

func TestBuild_DuplicateName(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "A"},
		{Kind: dft.KindBE, Name: "A"},
	}
	_, err := dft.Build(descs, "A", semi)
	if !errors.Is(err, dft.ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
}

func TestBuild_UnknownChild(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindAND, Name: "TOP", Children: []string{"ghost"}},
	}
	_, err := dft.Build(descs, "TOP", semi)
	if !errors.Is(err, dft.ErrUnknownChild) {
		t.Fatalf("err = %v, want ErrUnknownChild", err)
	}
}

func TestBuild_Cycle(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindAND, Name: "A", Children: []string{"B"}},
		{Kind: dft.KindAND, Name: "B", Children: []string{"A"}},
	}
	_, err := dft.Build(descs, "A", semi)
	if !errors.Is(err, dft.ErrCycle) {
		t.Fatalf("err = %v, want ErrCycle", err)
	}
}

func TestBuild_MissingTop(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "A"},
	}
	_, err := dft.Build(descs, "ghost", semi)
	if !errors.Is(err, dft.ErrMissingTopEvent) {
		t.Fatalf("err = %v, want ErrMissingTopEvent", err)
	}
}

func TestBuild_RejectsPOR(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindPOR, Name: "P", Children: nil},
	}
	_, err := dft.Build(descs, "P", semi)
	if !errors.Is(err, dft.ErrUnsupportedKind) {
		t.Fatalf("err = %v, want ErrUnsupportedKind", err)
	}
}

func TestBuild_SpareLayout(t *testing.T) {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "Primary", ActiveRate: 0.1, PassiveRate: 0.1},
		{Kind: dft.KindBE, Name: "Backup", ActiveRate: 0.1, PassiveRate: 0.01},
		{Kind: dft.KindSPARE, Name: "S", Children: []string{"Primary", "Backup"}},
	}
	d, err := dft.Build(descs, "S", semi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.NumSpares() != 1 {
		t.Fatalf("NumSpares = %d, want 1", d.NumSpares())
	}
	if len(d.SpareOrder()) != 1 {
		t.Fatalf("SpareOrder length = %d, want 1", len(d.SpareOrder()))
	}
}

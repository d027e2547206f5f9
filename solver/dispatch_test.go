// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/faulttree/dftcore/solver"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		cfg         solver.Config
		tag         solver.SemiringTag
		wantKind    solver.Kind
		wantWarning bool
	}{
		{
			name:     "native honored for float64",
			cfg:      solver.Config{EquationSolver: solver.KindNative},
			tag:      solver.TagFloat64,
			wantKind: solver.KindNative,
		},
		{
			name:     "elimination honored for rational",
			cfg:      solver.Config{EquationSolver: solver.KindElimination},
			tag:      solver.TagRational,
			wantKind: solver.KindElimination,
		},
		{
			name:        "native forced to elimination for rational function",
			cfg:         solver.Config{EquationSolver: solver.KindNative},
			tag:         solver.TagRationalFunction,
			wantKind:    solver.KindElimination,
			wantWarning: true,
		},
		{
			name:     "elimination already configured for rational function needs no warning",
			cfg:      solver.Config{EquationSolver: solver.KindElimination},
			tag:      solver.TagRationalFunction,
			wantKind: solver.KindElimination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, warning := solver.Resolve(tt.cfg, tt.tag)
			if kind != tt.wantKind {
				t.Fatalf("Resolve() kind = %v, want %v", kind, tt.wantKind)
			}
			if (warning != nil) != tt.wantWarning {
				t.Fatalf("Resolve() warning = %v, wantWarning = %v", warning, tt.wantWarning)
			}
		})
	}
}

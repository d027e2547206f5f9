// SPDX-License-Identifier: MIT
// Package solver implements the external linear-equation solver dispatch
// factory (spec.md §4.5): picking between the elimination solver (package
// elim) and a native iterative solver (a collaborator concern, not
// implemented here) based on a configuration key and the semiring in use.
package solver

// Kind names a linear-equation solver implementation.
type Kind string

const (
	KindElimination Kind = "elimination"
	KindNative      Kind = "native"
)

// SemiringTag names the semiring the caller intends to solve over. The
// factory cannot infer this from a generic type parameter at runtime, so
// callers pass it alongside Config.
type SemiringTag string

const (
	TagFloat64          SemiringTag = "float64"
	TagRational         SemiringTag = "rational"
	TagRationalFunction SemiringTag = "rational-function"
)

// Config holds the single external configuration key the solver factory
// consults (spec.md §6): everything else is the caller's concern.
type Config struct {
	EquationSolver Kind
}

// Warning is a non-error, informational result of Resolve: the configured
// solver was not honored, and a compatible one was substituted instead.
// Per spec.md §7, SolverFallback is a warning, never an error.
type Warning struct {
	Requested Kind
	Resolved  Kind
	Reason    string
}

// Resolve picks the solver Kind to actually use for the given configuration
// and semiring. When tag is TagRationalFunction, KindElimination is forced
// regardless of cfg — no iterative numerical method can return exact
// results over a rational-function ring. If that override changes what was
// configured, a non-nil Warning is returned alongside it.
func Resolve(cfg Config, tag SemiringTag) (Kind, *Warning) {
	requested := cfg.EquationSolver
	if requested == "" {
		requested = KindNative
	}

	if tag == TagRationalFunction && requested != KindElimination {
		return KindElimination, &Warning{
			Requested: requested,
			Resolved:  KindElimination,
			Reason:    "rational-function semiring requires exact elimination; native solver cannot be exact here",
		}
	}

	return requested, nil
}

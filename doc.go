// SPDX-License-Identifier: MIT
// Package dftcore analyzes Dynamic Fault Trees by compiling them into
// continuous-time Markov chains and solving the resulting reachability
// equations exactly.
//
// The pipeline, top to bottom:
//
//	dft/        — the fault-tree graph: elements (BE, AND, OR, VOT, PAND,
//	              SEQAND, SPARE, ...), construction/validation, and the
//	              per-element failure/failsafe/don't-care semantics that
//	              drive state transitions.
//	statespace/ — explores the DFT's reachable states breadth-first from
//	              the all-operational state, emitting a sparse CTMC to a
//	              caller-supplied sink.
//	dd/         — a minimal decision-diagram layer (Bdd/Add) the solver is
//	              built on.
//	elim/       — the symbolic elimination linear-equation solver: exact
//	              Gauss-Jordan-style transition elimination over a
//	              semiring-valued matrix.
//	solver/     — the equation-solver dispatch factory (elimination vs. a
//	              native iterative solver, forced to elimination when exact
//	              results are required).
//	semiring/   — the generic arithmetic capability (float64, exact
//	              rational, rational-function) everything above is
//	              parameterized on.
//
// This package holds no code of its own; it documents how the
// subpackages compose.
package dftcore

// SPDX-License-Identifier: MIT
// Package statespace implements the worklist-driven CTMC generator: given a
// built dft.DFT, Explore enumerates every reachable State by firing each
// Operational BE in turn, draining the dft package's propagation fixed
// point per transition, and emitting the resulting labeled CTMC to a Sink.
package statespace

import (
	"context"

	"github.com/faulttree/dftcore/dft"
)

// Sink receives the generated CTMC. Implementations typically accumulate a
// sparse transition matrix and a label set (e.g. a dense.Matrix-backed CTMC
// type owned by a collaborator); this package is agnostic to storage.
type Sink[T any] interface {
	// BeginExploration is called once, before any other method, with the
	// number of Basic Events the DFT declares.
	BeginExploration(numBEs int)

	// AddState registers a newly-discovered state under its canonical key
	// and returns the dense index assigned to it. Called at most once per
	// distinct key.
	AddState(key dft.Key) int

	// AddTransition records a summed-rate transition source -> target.
	// Called at most once per (source, target) pair.
	AddTransition(source, target int, rate T)

	// MarkInitial flags idx as the CTMC's initial state.
	MarkInitial(idx int)

	// MarkLabel attaches label to idx ("failed" or "failsafe", per the top
	// event's resolved status).
	MarkLabel(idx int, label string)

	// EndExploration is called once, after every state and transition has
	// been emitted.
	EndExploration()
}

// Options configures Explore. The zero value is a usable default (no
// cancellation, no hooks).
type Options struct {
	// Ctx is polled once per worklist pop; a non-nil Err aborts exploration
	// and Explore returns ctx.Err(). No operation is interrupted mid-transition.
	Ctx context.Context

	// OnStateDiscovered, if set, is called whenever a new state is assigned
	// a dense index (after AddState, before its transitions are explored).
	OnStateDiscovered func(idx int)

	// OnTransition, if set, is called for every emitted transition, after
	// AddTransition.
	OnTransition func(source, target int)
}

// Option mutates an Options value.
type Option func(*Options)

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnStateDiscovered sets the state-discovery hook.
func WithOnStateDiscovered(fn func(idx int)) Option {
	return func(o *Options) { o.OnStateDiscovered = fn }
}

// WithOnTransition sets the transition hook.
func WithOnTransition(fn func(source, target int)) Option {
	return func(o *Options) { o.OnTransition = fn }
}

// DefaultOptions returns the zero-value Options with opts applied.
func DefaultOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

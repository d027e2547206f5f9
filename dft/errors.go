// SPDX-License-Identifier: MIT
package dft

import (
	"errors"
	"fmt"
)

// Sentinel construction-time validation errors (spec.md §6/§7). Callers
// branch with errors.Is; detail is layered on with dftErrorf, never
// interpolated into the sentinel itself.
var (
	// ErrUnknownChild indicates a descriptor names a child that was never
	// itself declared.
	ErrUnknownChild = errors.New("dft: unknown child")

	// ErrDuplicateName indicates two descriptors share a name.
	ErrDuplicateName = errors.New("dft: duplicate element name")

	// ErrCycle indicates the child relation is not acyclic.
	ErrCycle = errors.New("dft: cycle detected")

	// ErrMissingTopEvent indicates the designated top event name does not
	// resolve to any declared element.
	ErrMissingTopEvent = errors.New("dft: missing top event")

	// ErrUnsupportedKind indicates a descriptor uses a Kind this package
	// enumerates but does not implement semantics for (KindPOR: priority-OR
	// is a named placeholder per spec, never given failure semantics).
	ErrUnsupportedKind = errors.New("dft: unsupported element kind")
)

// dftErrorf wraps err with a "dft.<method>: <context>" prefix, preserving
// the sentinel for errors.Is while adding positional detail.
func dftErrorf(method, context string, err error) error {
	return fmt.Errorf("dft.%s: %s: %w", method, context, err)
}

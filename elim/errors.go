// SPDX-License-Identifier: MIT
package elim

import (
	"errors"
	"fmt"
)

// Sentinel solver errors (spec.md §7). Callers branch with errors.Is;
// detail is layered on with elimErrorf, never interpolated into the
// sentinel itself.
var (
	// ErrUnsupportedSemiring indicates the configured semiring cannot be
	// solved exactly by this algorithm (reserved for future semiring
	// additions; none of the three built-in semirings trigger it today).
	ErrUnsupportedSemiring = errors.New("elim: unsupported semiring")

	// ErrDegenerateRow indicates a row whose self-loop mass is exactly 1
	// (its pivot 1 - mass is zero) or whose elimination failed to converge
	// within the iteration bound. A self-loop mass above 1 is not detected;
	// the caller is expected to normalize before solving.
	ErrDegenerateRow = errors.New("elim: degenerate row")

	// ErrMalformedPairing indicates rowVars, colVars, and pairs are not
	// consistently shaped (mismatched lengths or a pair referencing a
	// variable outside rowVars/colVars).
	ErrMalformedPairing = errors.New("elim: malformed row/column pairing")
)

// elimErrorf wraps err with an "elim.<method>: <context>" prefix.
func elimErrorf(method, context string, err error) error {
	return fmt.Errorf("elim.%s: %s: %w", method, context, err)
}

// SPDX-License-Identifier: MIT
package dft

import (
	"strconv"
	"strings"
)

// elementString renders e as "{name} KIND(child1, child2, ...)" for gates,
// "{name} BE" for basic events, and "{name} CONST(failed|operational)" for
// constants, mirroring DFTGate::toString / DFTBE's stream operator in
// original_source/src/storage/dft/DFTElements.h.
func elementString[T any](e *Element[T]) string {
	var b strings.Builder
	b.WriteString(e.name)
	b.WriteByte(' ')
	b.WriteString(e.kind.String())

	switch e.kind {
	case KindBE:
		return b.String()
	case KindConstant:
		b.WriteByte('(')
		if e.constFailed {
			b.WriteString("failed")
		} else {
			b.WriteString("operational")
		}
		b.WriteByte(')')

		return b.String()
	case KindVOT:
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(e.threshold))
		b.WriteString("/")
		b.WriteString(strconv.Itoa(len(e.children)))
		b.WriteString(": ")
	default:
		b.WriteByte('(')
	}

	for i, c := range e.children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(')')

	return b.String()
}

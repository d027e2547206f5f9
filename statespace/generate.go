// SPDX-License-Identifier: MIT
package statespace

import (
	"github.com/faulttree/dftcore/dft"
)

// Explore runs the worklist-driven state-space generator over d and emits
// the resulting CTMC to sink (spec.md §4.3). It returns the error from
// opts.Ctx if cancelled between worklist pops; cancellation never
// interrupts an in-progress transition.
func Explore[T any](d *dft.DFT[T], sink Sink[T], opts ...Option) error {
	o := DefaultOptions(opts...)
	semi := d.Semiring()

	type discovered struct {
		state *dft.State
		idx   int
	}

	index := make(map[dft.Key]int)
	var worklist []discovered

	initial := dft.InitialState(d)
	initialKey := initial.Key()

	sink.BeginExploration(len(d.BEOrder()))

	initialIdx := sink.AddState(initialKey)
	index[initialKey] = initialIdx
	sink.MarkInitial(initialIdx)
	markTopLabel(d, initial, sink, initialIdx)
	if o.OnStateDiscovered != nil {
		o.OnStateDiscovered(initialIdx)
	}

	worklist = append(worklist, discovered{initial, initialIdx})

	for len(worklist) > 0 {
		if o.Ctx != nil {
			if err := o.Ctx.Err(); err != nil {
				return err
			}
		}

		cur := worklist[0]
		worklist = worklist[1:]

		// targetOrder preserves first-seen emission order; rates keyed by
		// target index accumulate via the semiring before being emitted.
		var targetOrder []int
		rates := make(map[int]T)

		for _, beID := range d.BEOrder() {
			if cur.state.Status(beID) != dft.StatusOperational {
				continue
			}

			next := dft.FireBEFailure(d, cur.state, beID)
			if next.Invalid() {
				continue
			}

			rate := dft.BERate(d, cur.state, beID)

			key := next.Key()
			targetIdx, known := index[key]
			if !known {
				targetIdx = sink.AddState(key)
				index[key] = targetIdx
				markTopLabel(d, next, sink, targetIdx)
				if o.OnStateDiscovered != nil {
					o.OnStateDiscovered(targetIdx)
				}
				worklist = append(worklist, discovered{next, targetIdx})
			}

			if existing, ok := rates[targetIdx]; ok {
				rates[targetIdx] = semi.Add(existing, rate)
			} else {
				rates[targetIdx] = rate
				targetOrder = append(targetOrder, targetIdx)
			}
		}

		for _, targetIdx := range targetOrder {
			sink.AddTransition(cur.idx, targetIdx, rates[targetIdx])
			if o.OnTransition != nil {
				o.OnTransition(cur.idx, targetIdx)
			}
		}
	}

	sink.EndExploration()

	return nil
}

// markTopLabel labels idx "failed" or "failsafe" according to the DFT's
// top event status in st; an Operational top event gets no label.
func markTopLabel[T any](d *dft.DFT[T], st *dft.State, sink Sink[T], idx int) {
	switch st.Status(d.Top()) {
	case dft.StatusFailed:
		sink.MarkLabel(idx, "failed")
	case dft.StatusFailsafe:
		sink.MarkLabel(idx, "failsafe")
	}
}

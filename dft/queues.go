// SPDX-License-Identifier: MIT
package dft

// Queues holds the three FIFOs that drive the fixed-point propagation
// triggered by a single BE failure (spec.md §4.2): a failed element's
// parents are queued to check whether they now fail; a gate that
// fails/becomes irrelevant may queue its siblings/children for failsafe or
// don't-care re-evaluation. The three queues are drained in strict order —
// failure fully first, then failsafe fully, then don't-care fully. Failsafe
// and don't-care re-checks never enqueue failure checks, and don't-care
// re-checks never enqueue failsafe checks, so a later phase never reopens
// an earlier one within one BE-failure step.
//
// Each FIFO deduplicates via an "in queue" set so an element queued twice
// before being popped is processed once.
type Queues struct {
	failure   []int
	failsafe  []int
	dontcare  []int
	inFailure map[int]bool
	inFailsafe map[int]bool
	inDontcare map[int]bool
}

// NewQueues returns an empty Queues sized for an arena of n elements.
func NewQueues(n int) *Queues {
	return &Queues{
		inFailure:  make(map[int]bool, n),
		inFailsafe: make(map[int]bool, n),
		inDontcare: make(map[int]bool, n),
	}
}

// PushFailure enqueues id for a failure re-check, unless already queued.
func (q *Queues) PushFailure(id int) {
	if q.inFailure[id] {
		return
	}
	q.inFailure[id] = true
	q.failure = append(q.failure, id)
}

// PushFailsafe enqueues id for a failsafe re-check, unless already queued.
func (q *Queues) PushFailsafe(id int) {
	if q.inFailsafe[id] {
		return
	}
	q.inFailsafe[id] = true
	q.failsafe = append(q.failsafe, id)
}

// PushDontCare enqueues id for a don't-care re-check, unless already queued.
func (q *Queues) PushDontCare(id int) {
	if q.inDontcare[id] {
		return
	}
	q.inDontcare[id] = true
	q.dontcare = append(q.dontcare, id)
}

// PopFailure removes and returns the next queued id, and whether one was
// available.
func (q *Queues) PopFailure() (int, bool) {
	if len(q.failure) == 0 {
		return 0, false
	}
	id := q.failure[0]
	q.failure = q.failure[1:]
	delete(q.inFailure, id)

	return id, true
}

// PopFailsafe removes and returns the next queued id, and whether one was
// available.
func (q *Queues) PopFailsafe() (int, bool) {
	if len(q.failsafe) == 0 {
		return 0, false
	}
	id := q.failsafe[0]
	q.failsafe = q.failsafe[1:]
	delete(q.inFailsafe, id)

	return id, true
}

// PopDontCare removes and returns the next queued id, and whether one was
// available.
func (q *Queues) PopDontCare() (int, bool) {
	if len(q.dontcare) == 0 {
		return 0, false
	}
	id := q.dontcare[0]
	q.dontcare = q.dontcare[1:]
	delete(q.inDontcare, id)

	return id, true
}

// Empty reports whether all three queues are drained.
func (q *Queues) Empty() bool {
	return len(q.failure) == 0 && len(q.failsafe) == 0 && len(q.dontcare) == 0
}

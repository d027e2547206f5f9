// SPDX-License-Identifier: MIT
package statespace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/faulttree/dftcore/dft"
	"github.com/faulttree/dftcore/semiring"
	"github.com/faulttree/dftcore/statespace"
)

// recordingSink is a minimal in-memory Sink used only by tests.
type recordingSink struct {
	numBEs      int
	keys        []dft.Key
	initial     int
	labels      map[int]string
	transitions []transitionRecord
	ended       bool
}

type transitionRecord struct {
	source, target int
	rate           float64
}

func newRecordingSink() *recordingSink {
	return &recordingSink{labels: make(map[int]string)}
}

func (s *recordingSink) BeginExploration(numBEs int) { s.numBEs = numBEs }

func (s *recordingSink) AddState(key dft.Key) int {
	s.keys = append(s.keys, key)

	return len(s.keys) - 1
}

func (s *recordingSink) AddTransition(source, target int, rate float64) {
	s.transitions = append(s.transitions, transitionRecord{source, target, rate})
}

func (s *recordingSink) MarkInitial(idx int) { s.initial = idx }

func (s *recordingSink) MarkLabel(idx int, label string) { s.labels[idx] = label }

func (s *recordingSink) EndExploration() { s.ended = true }

// ExploreSuite covers statespace.Explore end to end against recordingSink.
type ExploreSuite struct {
	suite.Suite
}

// TestExplore_S1_ANDOfTwoBEs reproduces scenario S1 end to end: 4 reachable
// states, top labeled "failed" only at (11), and the four transitions with
// their rates.
func (s *ExploreSuite) TestExplore_S1_ANDOfTwoBEs() {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "a", ActiveRate: 1.0},
		{Kind: dft.KindBE, Name: "b", ActiveRate: 2.0},
		{Kind: dft.KindAND, Name: "TOP", Children: []string{"a", "b"}},
	}
	d, err := dft.Build(descs, "TOP", semi)
	require.NoError(s.T(), err)

	sink := newRecordingSink()
	require.NoError(s.T(), statespace.Explore(d, sink))

	require.True(s.T(), sink.ended, "EndExploration was never called")
	require.Len(s.T(), sink.keys, 4)
	require.Len(s.T(), sink.labels, 1)
	for idx, label := range sink.labels {
		require.Equalf(s.T(), "failed", label, "state %d labeled %q, want failed", idx, label)
	}
	require.Len(s.T(), sink.transitions, 4)

	total := 0.0
	for _, tr := range sink.transitions {
		total += tr.rate
	}
	require.Equal(s.T(), 6.0, total) // 1+2+2+1
}

// TestExplore_S3_SEQANDDropsOutOfOrderTransition covers scenario S3: a
// SEQAND's out-of-order BE firing never appears as a transition at all.
func (s *ExploreSuite) TestExplore_S3_SEQANDDropsOutOfOrderTransition() {
	semi := semiring.NewFloat64()
	descs := []dft.Descriptor[float64]{
		{Kind: dft.KindBE, Name: "a", ActiveRate: 1.0},
		{Kind: dft.KindBE, Name: "b", ActiveRate: 1.0},
		{Kind: dft.KindSEQAND, Name: "TOP", Children: []string{"a", "b"}},
	}
	d, err := dft.Build(descs, "TOP", semi)
	require.NoError(s.T(), err)

	sink := newRecordingSink()
	require.NoError(s.T(), statespace.Explore(d, sink))

	// From (00), only "a fails" is a valid transition; "b fails" is
	// dropped, so (00) has exactly one outgoing transition.
	outFromInitial := 0
	for _, tr := range sink.transitions {
		if tr.source == sink.initial {
			outFromInitial++
		}
	}
	require.Equal(s.T(), 1, outFromInitial, "b-before-a must be dropped")
}

func TestExploreSuite(t *testing.T) {
	suite.Run(t, new(ExploreSuite))
}

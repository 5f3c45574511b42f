package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/letterpak/letterpak/matching"
	"github.com/letterpak/letterpak/packet"
)

// TestBuildAdjacency_LengthMismatch verifies the counting-argument
// short-circuit: a word whose length differs from the packet count is
// rejected before any graph is built.
func TestBuildAdjacency_LengthMismatch(t *testing.T) {
	packets := []packet.Packet{"d", "o", "g"}

	adj, ok := matching.BuildAdjacency("dogs", packets)
	assert.False(t, ok, "length mismatch must be infeasible")
	assert.Nil(t, adj, "no adjacency should be built on rejection")

	_, ok = matching.BuildAdjacency("do", packets)
	assert.False(t, ok, "short word must be infeasible")
}

// TestBuildAdjacency_LetterlessPosition verifies that a position whose
// character belongs to no packet rejects the whole query early.
func TestBuildAdjacency_LetterlessPosition(t *testing.T) {
	packets := []packet.Packet{"a", "b", "c"}

	adj, ok := matching.BuildAdjacency("xyz", packets)
	assert.False(t, ok, "letterless position must be infeasible")
	assert.Nil(t, adj)
}

// TestBuildAdjacency_Edges checks edge construction in packet-index order,
// including a character eligible for more than one packet.
func TestBuildAdjacency_Edges(t *testing.T) {
	packets := []packet.Packet{"ck", "ae", "ac"}

	adj, ok := matching.BuildAdjacency("cat", packets)
	assert.False(t, ok, "'t' has no eligible packet here")
	assert.Nil(t, adj)

	adj, ok = matching.BuildAdjacency("cac", packets)
	assert.True(t, ok)
	assert.Equal(t, matching.Adjacency{{0, 2}, {1, 2}, {0, 2}}, adj,
		"edges must list eligible packets in index order")
}

// TestMaximumMatching_AdjacencySizeContract ensures a row-count mismatch
// surfaces as ErrAdjacencySize, distinguishable from a zero-size matching.
func TestMaximumMatching_AdjacencySizeContract(t *testing.T) {
	adj := matching.Adjacency{{0}, {1}}

	_, err := matching.MaximumMatching(adj, 3, 3, nil)
	assert.ErrorIs(t, err, matching.ErrAdjacencySize, "row count mismatch must hard-fail")

	res, err := matching.MaximumMatching(adj, 2, 3, nil)
	assert.NoError(t, err, "matching rows and nLeft must not error")
	assert.Equal(t, 2, res.Size)
}

// TestMaximumMatching_SubPerfect pins the classic three-left/two-right
// case: only two of three left vertices can be covered.
func TestMaximumMatching_SubPerfect(t *testing.T) {
	adj := matching.Adjacency{{0, 1}, {0}, {1}}

	res, err := matching.MaximumMatching(adj, 3, 2, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Size, "maximum matching covers two left vertices")
}

// TestMaximumMatching_MutualPairs verifies the pair arrays agree mutually
// and that exactly Size entries are matched on each side.
func TestMaximumMatching_MutualPairs(t *testing.T) {
	adj := matching.Adjacency{{0, 1}, {1, 2}, {0, 2}, {3}}

	res, err := matching.MaximumMatching(adj, 4, 4, nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, res.Size)

	matchedLeft := 0
	for u, v := range res.LeftPair {
		if v == matching.Unmatched {
			continue
		}
		matchedLeft++
		assert.Equal(t, u, res.RightPair[v], "pair arrays must agree mutually")
	}
	assert.Equal(t, res.Size, matchedLeft, "Size must equal matched left vertices")
}

// TestFeasible_Scenarios runs the canonical word/packet scenarios,
// covering valid matchings, packet competition, and both short-circuits.
func TestFeasible_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		word    string
		packets []packet.Packet
		want    bool
	}{
		{"distinct packets", "cat", []packet.Packet{"ck", "ae", "td"}, true},
		{"competing packets", "cat", []packet.Packet{"ck", "ae", "ae"}, false},
		{"singletons", "dog", []packet.Packet{"d", "o", "g"}, true},
		{"length mismatch", "dogs", []packet.Packet{"d", "o", "g"}, false},
		{"letterless position", "xyz", []packet.Packet{"a", "b", "c"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matching.Feasible(tc.word, tc.packets))
		})
	}
}

// TestFeasible_CompetingPacketsSize confirms the competition scenario
// falls exactly one short of perfect: two packets fight over 'a' and the
// 't' position stays uncovered.
func TestFeasible_CompetingPacketsSize(t *testing.T) {
	packets := []packet.Packet{"ck", "ae", "ae"}

	adj, ok := matching.BuildAdjacency("cat", packets)
	assert.True(t, ok, "every position has an eligible packet")

	res, err := matching.MaximumMatching(adj, 3, 3, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Size, "matching must stall at 2 of 3")
}

// TestFeasible_SingletonPartition checks the reducible case: with one
// singleton packet per letter, a word is feasible iff it is a permutation
// of exactly those letters.
func TestFeasible_SingletonPartition(t *testing.T) {
	packets := []packet.Packet{"d", "o", "g"}

	for _, w := range []string{"dog", "dgo", "odg", "ogd", "gdo", "god"} {
		assert.True(t, matching.Feasible(w, packets), "permutation %q must be feasible", w)
	}
	for _, w := range []string{"doo", "ddg", "ggg", "dod"} {
		assert.False(t, matching.Feasible(w, packets), "repeated letter %q must be infeasible", w)
	}
}

// TestFeasible_Idempotent re-runs the engine on the same inputs and
// expects the identical matching size every time.
func TestFeasible_Idempotent(t *testing.T) {
	packets := []packet.Packet{"ck", "ae", "td", "os"}
	adj, ok := matching.BuildAdjacency("cats", packets)
	assert.True(t, ok)

	first, err := matching.MaximumMatching(adj, 4, 4, nil)
	assert.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := matching.MaximumMatching(adj, 4, 4, nil)
		assert.NoError(t, err)
		assert.Equal(t, first.Size, again.Size, "matching size must be invariant across runs")
	}
}

// TestFeasible_PacketOrderInvariance permutes the packet list and expects
// the verdict to be unchanged (only right-vertex indices relabel).
func TestFeasible_PacketOrderInvariance(t *testing.T) {
	orders := [][]packet.Packet{
		{"ck", "ae", "td"},
		{"ae", "td", "ck"},
		{"td", "ck", "ae"},
		{"ae", "ck", "td"},
	}
	for _, packets := range orders {
		assert.True(t, matching.Feasible("cat", packets), "verdict must survive packet reordering %v", packets)
		assert.False(t, matching.Feasible("cab", packets), "negative verdict must survive reordering %v", packets)
	}
}

// TestFeasible_OverlappingPackets exercises non-disjoint packets: the
// engine only requires each packet to be consumed once, so a word may use
// the shared letter through either packet.
func TestFeasible_OverlappingPackets(t *testing.T) {
	packets := []packet.Packet{"ab", "bc"}

	assert.True(t, matching.Feasible("bb", packets), "one 'b' per packet is a perfect matching")
	assert.True(t, matching.Feasible("ab", packets))
	assert.True(t, matching.Feasible("ca", packets))
	assert.False(t, matching.Feasible("aa", packets), "'a' belongs only to the first packet")
}

package matching

import "github.com/letterpak/letterpak/packet"

// BuildAdjacency constructs the position→packet adjacency structure for
// word. It returns (nil, false) without building anything when a perfect
// matching is impossible by inspection:
//
//   - len(word) != len(packets): unequal side counts, counting argument.
//   - some position's character belongs to no packet: that left vertex is
//     isolated and can never be covered.
//
// Both rejections are equivalent to running the matching and watching it
// fall short; skipping the run keeps the frequent negative case cheap.
//
// Edges for each position are listed in packet-index order. The order
// only influences which specific pairing the engine finds, never the
// matching size or the verdict. Pure function of its inputs.
func BuildAdjacency(word string, packets []packet.Packet) (Adjacency, bool) {
	k := len(packets)
	if k == 0 || len(word) != k {
		return nil, false
	}

	adj := make(Adjacency, k)
	for i := 0; i < k; i++ {
		c := word[i]
		edges := make([]int, 0, k)
		for j, p := range packets {
			if p.Contains(c) {
				edges = append(edges, j)
			}
		}
		if len(edges) == 0 {
			return nil, false
		}
		adj[i] = edges
	}

	return adj, true
}

// Feasible reports whether word admits an assignment of its positions to
// packets such that each character belongs to its assigned packet and
// every packet is consumed exactly once. This is the verdict surfaced to
// word-list consumers: infeasibility is an ordinary false, never an error.
func Feasible(word string, packets []packet.Packet) bool {
	adj, ok := BuildAdjacency(word, packets)
	if !ok {
		return false
	}

	k := len(packets)
	res, err := MaximumMatching(adj, k, k, nil)
	if err != nil {
		// BuildAdjacency always emits exactly k rows; a size error here
		// is a bug in this package, not a property of the word.
		panic(err)
	}

	return res.Size == k
}

package matching_test

import (
	"testing"

	"github.com/letterpak/letterpak/matching"
	"github.com/letterpak/letterpak/packet"
)

// benchmarkFeasible runs the full builder+engine pipeline on one
// word/packet pair, with setup excluded from the timer.
func benchmarkFeasible(b *testing.B, word string, packets []packet.Packet) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matching.Feasible(word, packets)
	}
}

// BenchmarkFeasible_Short benchmarks the intended use: a short word
// against a handful of small packets.
func BenchmarkFeasible_Short(b *testing.B) {
	benchmarkFeasible(b, "cat", []packet.Packet{"ck", "ae", "td"})
}

// BenchmarkFeasible_AlphabetSingletons benchmarks a 26-position query
// against a singleton partition of the whole alphabet.
func BenchmarkFeasible_AlphabetSingletons(b *testing.B) {
	word := "abcdefghijklmnopqrstuvwxyz"
	packets := make([]packet.Packet, 26)
	for i := range packets {
		packets[i] = packet.Packet(word[i : i+1])
	}
	benchmarkFeasible(b, word, packets)
}

// BenchmarkMaximumMatching_Dense benchmarks the engine alone on a dense
// bipartite graph where every left vertex reaches every right vertex.
func BenchmarkMaximumMatching_Dense(b *testing.B) {
	const n = 64
	adj := make(matching.Adjacency, n)
	for i := range adj {
		adj[i] = make([]int, n)
		for j := range adj[i] {
			adj[i][j] = j
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matching.MaximumMatching(adj, n, n, nil); err != nil {
			b.Fatalf("MaximumMatching failed: %v", err)
		}
	}
}

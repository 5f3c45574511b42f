package matching

// Unmatched marks a vertex without a partner in the pair arrays.
const Unmatched = -1

// Adjacency maps each left vertex (word position) to the indices of the
// packets whose letter set contains that position's character. It is
// built fresh per query and never mutated after construction.
type Adjacency [][]int

// Result holds the outcome of one maximum-matching run:
//   - Size: the maximum matching size.
//   - LeftPair: for each left vertex, its matched right vertex or Unmatched.
//   - RightPair: for each right vertex, its matched left vertex or Unmatched.
//
// LeftPair and RightPair always agree mutually: LeftPair[u] == v implies
// RightPair[v] == u.
type Result struct {
	Size      int
	LeftPair  []int
	RightPair []int
}

// Options configures the matching engine.
//   - Verbose: if true, logs each layering round's augmentation count.
type Options struct {
	Verbose bool
}

// DefaultOptions returns production-safe defaults (no logging).
func DefaultOptions() Options {
	return Options{}
}

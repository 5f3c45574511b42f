package matching

import (
	"errors"
	"fmt"
	"math"
)

// ErrAdjacencySize is returned when the adjacency structure does not have
// exactly one row per declared left vertex. It signals a contract
// violation by the caller (a graph-builder bug), never an invalid word.
var ErrAdjacencySize = errors.New("matching: adjacency length must equal left vertex count")

// distInf marks left vertices unreachable in the current layering, or
// exhausted by a failed augmentation attempt. An integer sentinel keeps
// the layer model exact; no floating-point infinity is involved.
const distInf = math.MaxInt

// MaximumMatching computes the maximum bipartite matching over adj using
// the Hopcroft–Karp algorithm (shortest-augmenting-path layering + batch
// augmentation).
//
// Steps:
//  1. Validate len(adj) == nLeft (O(1)); ErrAdjacencySize otherwise.
//  2. Allocate pair arrays (all Unmatched) and the layer array (O(V)).
//  3. Repeat until no augmenting path exists:
//     a. BFS layering from all unmatched left vertices; report whether
//     some free right vertex was reached (O(V + E)).
//     b. For every still-unmatched left vertex in index order, run a
//     layer-respecting DFS; each success flips one augmenting path
//     and grows the matching by one (O(V + E) per round).
//  4. Return the accumulated matching size plus both pair arrays.
//
// Complexity:
//
//	Time:   O(E·√V): at most O(√V) rounds, O(V + E) each.
//	Memory: O(V) auxiliary state, owned by this call and discarded after.
//
// opts may be nil, meaning DefaultOptions.
func MaximumMatching(adj Adjacency, nLeft, nRight int, opts *Options) (Result, error) {
	if len(adj) != nLeft {
		return Result{}, fmt.Errorf("%w: got %d rows for %d left vertices",
			ErrAdjacencySize, len(adj), nLeft)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	s := &state{
		adj:       adj,
		leftPair:  make([]int, nLeft),
		rightPair: make([]int, nRight),
		dist:      make([]int, nLeft),
		queue:     make([]int, 0, nLeft),
	}
	for u := range s.leftPair {
		s.leftPair[u] = Unmatched
	}
	for v := range s.rightPair {
		s.rightPair[v] = Unmatched
	}

	size := 0
	for round := 1; s.layer(); round++ {
		augmented := 0
		for u := 0; u < nLeft; u++ {
			if s.leftPair[u] == Unmatched && s.augment(u) {
				augmented++
			}
		}
		size += augmented
		if o.Verbose {
			fmt.Printf("matching: round %d augmented %d, total %d\n", round, augmented, size)
		}
	}

	return Result{Size: size, LeftPair: s.leftPair, RightPair: s.rightPair}, nil
}

// state carries the mutable arrays of a single matching run. Nothing here
// survives the run; every MaximumMatching call builds its own state.
type state struct {
	adj       Adjacency
	leftPair  []int // left vertex → matched right vertex, or Unmatched
	rightPair []int // right vertex → matched left vertex, or Unmatched
	dist      []int // BFS layer per left vertex; distInf = unreachable/exhausted
	queue     []int // BFS queue, reused across rounds within this run
}

// layer runs the breadth-first phase: all currently unmatched left
// vertices start at layer 0; crossing an edge (u, v) to v's current match
// u' places u' at layer(u)+1 if unlayered. Reports whether at least one
// free right vertex was reached, i.e. whether an augmenting path exists
// this round. Left vertices never enqueued keep dist == distInf and are
// skipped by the augmenting phase.
func (s *state) layer() bool {
	s.queue = s.queue[:0]
	for u := range s.dist {
		if s.leftPair[u] == Unmatched {
			s.dist[u] = 0
			s.queue = append(s.queue, u)
		} else {
			s.dist[u] = distInf
		}
	}

	found := false
	for head := 0; head < len(s.queue); head++ {
		u := s.queue[head]
		for _, v := range s.adj[u] {
			w := s.rightPair[v]
			if w == Unmatched {
				found = true
			} else if s.dist[w] == distInf {
				s.dist[w] = s.dist[u] + 1
				s.queue = append(s.queue, w)
			}
		}
	}

	return found
}

// frame is one step of the explicit augmenting-path stack.
type frame struct {
	u      int // left vertex being expanded
	next   int // cursor into adj[u]
	chosen int // right vertex currently descended through
}

// augment searches for an augmenting path from the unmatched left vertex
// u, visiting edges in adjacency order and only descending to a right
// vertex's current match w when layer(w) == layer(u)+1. The walk uses an
// explicit stack in place of the natural recursion, preserving the same
// visitation order. On success the whole alternating path is flipped
// (each frame's left vertex re-paired with its chosen right vertex) and
// the matching grows by one. A left vertex that fails has its layer
// marked exhausted (distInf) so it is not retried within this round.
func (s *state) augment(u int) bool {
	stack := []frame{{u: u}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		descended := false
		for f.next < len(s.adj[f.u]) {
			v := s.adj[f.u][f.next]
			f.next++
			w := s.rightPair[v]
			if w == Unmatched {
				// Free right vertex: flip every (u, chosen) pair on the path.
				f.chosen = v
				for i := len(stack) - 1; i >= 0; i-- {
					s.leftPair[stack[i].u] = stack[i].chosen
					s.rightPair[stack[i].chosen] = stack[i].u
				}

				return true
			}
			if s.dist[w] == s.dist[f.u]+1 {
				f.chosen = v
				stack = append(stack, frame{u: w})
				descended = true
				break
			}
		}
		if !descended {
			// No continuation from f.u this round: exhaust and backtrack.
			s.dist[f.u] = distInf
			stack = stack[:len(stack)-1]
		}
	}

	return false
}

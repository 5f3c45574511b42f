// Package matching implements the core feasibility check of the
// letter-packet puzzle as a maximum bipartite matching problem.
//
// For a candidate word and an ordered list of letter packets, a bipartite
// graph is built per query: left vertices are word positions, right
// vertices are packets, and an edge (i, j) exists when the character at
// position i is a member of packet j. The word is feasible iff the graph
// admits a perfect matching: every position covered by a distinct packet.
//
// The package exposes three operations:
//
//   - BuildAdjacency — constructs the position→packet adjacency structure,
//     fast-rejecting when the word length differs from the packet count or
//     when some position has no eligible packet (a counting argument makes
//     a perfect matching impossible in both cases; no graph is built).
//
//   - MaximumMatching — Hopcroft–Karp over the adjacency structure:
//     a breadth-first layering phase computes shortest alternating-path
//     distances from unmatched left vertices, then a depth-first
//     augmenting phase flips one shortest augmenting path per free left
//     vertex, repeating until no augmenting path remains. The augmenting
//     phase walks an explicit stack rather than recursing, so the engine
//     stays safe on arbitrarily large inputs.
//
//   - Feasible — the boolean verdict consumed by callers: builder
//     short-circuit, or matching size == packet count.
//
// Complexity:
//
//	Time:   O(E·√V), V = positions + packets, E = (position, packet) edges.
//	Memory: O(V + E) for the adjacency, pair and layer arrays.
//
// Determinism: left vertices are scanned in index order and edges in
// adjacency order, so both the matching size and the specific pairing are
// identical on every run for the same inputs. Only the size is part of
// the contract; callers must not depend on the particular pairing.
//
// Concurrency: each call owns its adjacency and state arrays outright and
// shares nothing across calls, so independent queries may run from
// independent goroutines without synchronization.
//
// # Errors
//
// Infeasibility is a value, never an error: length mismatch, letterless
// positions and sub-perfect matchings all surface as a plain false
// verdict. The only error, ErrAdjacencySize, reports a caller contract
// violation (adjacency rows ≠ declared left count) and is distinguishable
// with errors.Is so a builder bug is never mistaken for a non-match.
package matching

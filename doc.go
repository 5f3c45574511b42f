// Package letterpak solves the letter-packet word puzzle: given a fixed
// collection of disjoint letter packets, find the words whose characters
// can be assigned one-to-one to the packets so that every packet is
// consumed exactly once.
//
// The repository is organized as small, focused packages:
//
//	matching/ — the core: bipartite graph construction + Hopcroft–Karp
//	            maximum matching, yielding a per-word feasibility verdict
//	packet/   — letter-packet parsing and validation (non-empty, a-z,
//	            pairwise disjoint)
//	wordlist/ — word-list loading and length/alphabet filtering
//	pattern/  — the alternative whole-regex formulation: a lookahead
//	            pattern encoding the same constraint directly
//	solve/    — orchestration: filter candidates, run one matching query
//	            per word, collect matches
//	cmd/      — the letterpak command-line tool
//
// Every matching query is pure and self-contained: it allocates its own
// adjacency and pair arrays and shares nothing across calls, so callers
// may evaluate independent words concurrently without coordination.
package letterpak

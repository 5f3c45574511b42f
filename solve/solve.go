// Package solve orchestrates one puzzle run: validate the packet
// configuration, narrow the word list to viable candidates, put one
// matching query per word, and collect the feasible words.
//
// Queries share no state, so the solver may fan them out over a worker
// pool; the matching engine itself stays single-threaded and untouched.
package solve

import (
	"errors"
	"fmt"
	"sync"

	"github.com/letterpak/letterpak/matching"
	"github.com/letterpak/letterpak/packet"
	"github.com/letterpak/letterpak/wordlist"
)

// ErrOptionViolation is returned when an invalid option is supplied.
var ErrOptionViolation = errors.New("solve: invalid option supplied")

// Options configures one solver run.
//   - Strict: enforce pairwise-disjoint packets before matching (the
//     puzzle's standard policy; disable only for experimental overlapping
//     configurations).
//   - Workers: number of concurrent matching workers. 0 means 1; values
//     above 1 evaluate independent queries in parallel.
//   - Verbose: log candidate counts to stdout.
type Options struct {
	Strict  bool
	Workers int
	Verbose bool
}

// DefaultOptions returns production-safe defaults: strict disjointness,
// sequential evaluation, no logging.
func DefaultOptions() Options {
	return Options{Strict: true, Workers: 1}
}

// Run evaluates every candidate word against packets and returns the
// feasible ones in input order. Words that cannot participate (wrong
// length, letters outside the union alphabet) are filtered out before
// any matching runs. opts may be nil, meaning DefaultOptions.
func Run(words []string, packets []packet.Packet, opts *Options) ([]string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return nil, fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if len(packets) == 0 {
		return nil, packet.ErrNoPackets
	}
	if o.Strict {
		if err := packet.ValidateDisjoint(packets); err != nil {
			return nil, err
		}
	}

	candidates := wordlist.FilterExact(words, packets)
	if o.Verbose {
		fmt.Printf("solve: %d of %d words participate in matching\n", len(candidates), len(words))
	}

	verdicts := make([]bool, len(candidates))
	if o.Workers == 1 {
		for i, w := range candidates {
			verdicts[i] = matching.Feasible(w, packets)
		}
	} else {
		// Each query is pure and owns its own state; sharding by index
		// into a pre-sized verdict slice needs no locking.
		jobs := make(chan int)
		var wg sync.WaitGroup
		for n := 0; n < o.Workers; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					verdicts[i] = matching.Feasible(candidates[i], packets)
				}
			}()
		}
		for i := range candidates {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	matches := make([]string, 0, len(candidates))
	for i, ok := range verdicts {
		if ok {
			matches = append(matches, candidates[i])
		}
	}

	return matches, nil
}

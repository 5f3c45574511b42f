// Package pattern provides the whole-regex formulation of the puzzle
// constraint: instead of per-word bipartite matching, a single lookahead
// pattern encodes the stricter rule set directly: only union-alphabet
// letters, no letter repeated globally, at most one letter per packet,
// and a length within the configured bounds.
//
// The formulation only makes sense for pairwise-disjoint packets, which
// Build enforces. The generated pattern relies on lookaheads and a
// backreference, neither of which the standard regexp engine (RE2)
// supports, so Compile targets the regexp2 engine.
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/letterpak/letterpak/packet"
)

// ErrBadBounds is returned for nonsensical length bounds.
var ErrBadBounds = errors.New("pattern: invalid length bounds")

// Build returns the lookahead pattern source for packets and the given
// length bounds. The pattern is anchored and consists of, in order:
//
//  1. one negative lookahead per unordered letter pair within a packet,
//     forbidding co-occurrence of two letters from the same packet;
//  2. one backreference lookahead forbidding any union-alphabet letter
//     from repeating anywhere in the word;
//  3. the body: union-alphabet character class with the length bounds.
//
// Packets must be valid (see packet.Parse) and pairwise disjoint; the
// disjointness error from packet.ValidateDisjoint is passed through.
func Build(packets []packet.Packet, minLen, maxLen int) (string, error) {
	if len(packets) == 0 {
		return "", packet.ErrNoPackets
	}
	if minLen < 1 || maxLen < minLen {
		return "", fmt.Errorf("%w: [%d,%d]", ErrBadBounds, minLen, maxLen)
	}
	if err := packet.ValidateDisjoint(packets); err != nil {
		return "", err
	}
	alphabet := packet.Alphabet(packets)

	var b strings.Builder
	b.WriteByte('^')
	for _, p := range packets {
		for i := 0; i < len(p); i++ {
			for j := i + 1; j < len(p); j++ {
				x, y := p[i], p[j]
				fmt.Fprintf(&b, "(?!(?:.*%c.*%c|.*%c.*%c))", x, y, y, x)
			}
		}
	}
	fmt.Fprintf(&b, `(?!.*([%s]).*\1)`, alphabet)
	fmt.Fprintf(&b, "[%s]{%d,%d}$", alphabet, minLen, maxLen)

	return b.String(), nil
}

// Compile builds the pattern and compiles it with the regexp2 engine.
func Compile(packets []packet.Packet, minLen, maxLen int) (*regexp2.Regexp, error) {
	src, err := Build(packets, minLen, maxLen)
	if err != nil {
		return nil, err
	}

	return regexp2.Compile(src, regexp2.None)
}

// Matches reports whether word satisfies the compiled pattern. regexp2
// match errors (only possible via timeouts, which we do not configure)
// count as non-matches.
func Matches(rx *regexp2.Regexp, word string) bool {
	ok, err := rx.MatchString(word)

	return err == nil && ok
}

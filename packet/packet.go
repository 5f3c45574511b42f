// Package packet defines the letter-packet domain type and its validation
// rules: a packet is a non-empty set of distinct lowercase letters, and a
// puzzle configuration supplies packets as an ordered sequence whose order
// fixes each packet's index.
package packet

import (
	"fmt"
	"strings"
)

// Packet is a non-empty set of distinct lowercase letters, stored in the
// order the caller supplied them. Membership, not order, is what matters
// to consumers.
type Packet string

// Contains reports whether c is a member of the packet.
func (p Packet) Contains(c byte) bool {
	return strings.IndexByte(string(p), c) >= 0
}

// Parse converts raw packet strings (as supplied on the command line) into
// validated Packets. Each string must be non-empty, contain only lowercase
// a-z, and hold no repeated letter. Parse does not require packets to be
// disjoint from each other; see ValidateDisjoint for the stricter policy.
func Parse(raw []string) ([]Packet, error) {
	if len(raw) == 0 {
		return nil, ErrNoPackets
	}
	packets := make([]Packet, 0, len(raw))
	for i, s := range raw {
		if s == "" {
			return nil, fmt.Errorf("%w: packet %d", ErrEmptySet, i)
		}
		var seen [26]bool
		for j := 0; j < len(s); j++ {
			c := s[j]
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("%w: %q in packet %q", ErrBadCharacter, c, s)
			}
			if seen[c-'a'] {
				return nil, fmt.Errorf("%w: %q in packet %q", ErrDuplicateLetter, c, s)
			}
			seen[c-'a'] = true
		}
		packets = append(packets, Packet(s))
	}

	return packets, nil
}

// ValidateDisjoint verifies that no letter appears in more than one packet.
// Returns ErrOverlap naming the offending letter and both packet indices.
func ValidateDisjoint(packets []Packet) error {
	// owner[c] holds 1+index of the packet that claimed letter c.
	var owner [26]int
	for i, p := range packets {
		for j := 0; j < len(p); j++ {
			c := p[j]
			if k := owner[c-'a']; k != 0 {
				return fmt.Errorf("%w: letter %q appears in packets %d and %d",
					ErrOverlap, c, k-1, i)
			}
			owner[c-'a'] = i + 1
		}
	}

	return nil
}

// Alphabet returns the sorted union of all packet letters.
// Callers use it to build character-class filters over candidate words.
func Alphabet(packets []Packet) string {
	var seen [26]bool
	for _, p := range packets {
		for j := 0; j < len(p); j++ {
			seen[p[j]-'a'] = true
		}
	}
	var b strings.Builder
	for i := 0; i < 26; i++ {
		if seen[i] {
			b.WriteByte(byte('a' + i))
		}
	}

	return b.String()
}

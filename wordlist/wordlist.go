// Package wordlist loads candidate words from disk and narrows them with
// the puzzle's cheap pre-filters: length bounds and alphabet membership.
// The heavy per-word feasibility decision belongs to package matching;
// this package only decides which words are worth asking about.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/letterpak/letterpak/packet"
)

// Sentinel errors for word-list handling.
var (
	// ErrOpen is returned when the word-list file cannot be opened.
	ErrOpen = errors.New("wordlist: cannot open word list")

	// ErrRead is returned when reading the word-list file fails midway.
	ErrRead = errors.New("wordlist: failed reading word list")

	// ErrBounds is returned for nonsensical length bounds.
	ErrBounds = errors.New("wordlist: invalid length bounds")
)

// Load reads one candidate word per line from path, trimming surrounding
// whitespace and discarding empty lines. Words are returned raw, in file
// order; no length or alphabet policy is applied here.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return words, nil
}

// Filter keeps the words whose length lies in [minLen, maxLen] and whose
// characters all belong to alphabet (a regex character-class body such as
// "a-z" or a literal letter set). Input order is preserved.
func Filter(words []string, minLen, maxLen int, alphabet string) ([]string, error) {
	if minLen < 1 || maxLen < minLen {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrBounds, minLen, maxLen)
	}
	rx, err := regexp.Compile(fmt.Sprintf("^[%s]{%d,%d}$", alphabet, minLen, maxLen))
	if err != nil {
		return nil, fmt.Errorf("%w: bad alphabet %q: %v", ErrBounds, alphabet, err)
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if rx.MatchString(w) {
			out = append(out, w)
		}
	}

	return out, nil
}

// FilterExact keeps the words that can participate in matching at all:
// length equal to the packet count and every letter drawn from the
// packets' union alphabet. Packets are assumed validated (lowercase a-z),
// so the derived character class always compiles.
func FilterExact(words []string, packets []packet.Packet) []string {
	k := len(packets)
	if k == 0 {
		return nil
	}
	rx := regexp.MustCompile(fmt.Sprintf("^[%s]{%d}$", packet.Alphabet(packets), k))

	out := make([]string, 0, len(words))
	for _, w := range words {
		if rx.MatchString(w) {
			out = append(out, w)
		}
	}

	return out
}

// letterpak is the command-line front end of the letter-packet solver:
// it loads a word list, applies the packet configuration supplied via
// repeated --set flags, and prints (or saves) every feasible word.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/letterpak/letterpak/packet"
	"github.com/letterpak/letterpak/pattern"
	"github.com/letterpak/letterpak/solve"
	"github.com/letterpak/letterpak/wordlist"
)

const previewCount = 20

var (
	flagSets     []string
	flagMinLen   int
	flagMaxLen   int
	flagWordlist string
	flagOut      string
	flagRegex    bool
	flagWorkers  int
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "letterpak",
	Short: "Find words whose letters fit a collection of letter packets",
	Long: `letterpak decides, for every word in a word list, whether its letters can
be assigned one-to-one to the configured letter packets so that each
letter belongs to its packet and every packet is consumed exactly once.

By default the decision runs through the bipartite matching engine; with
--regex the stricter lookahead-pattern formulation is used instead.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&flagSets, "set", "s", nil,
		"a packet of mutually exclusive letters (lowercase a-z); repeat for multiple packets")
	_ = rootCmd.MarkFlagRequired("set")
	rootCmd.Flags().IntVar(&flagMinLen, "minlen", 4, "minimum word length (regex mode)")
	rootCmd.Flags().IntVar(&flagMaxLen, "maxlen", 5, "maximum word length (regex mode)")
	rootCmd.Flags().StringVar(&flagWordlist, "wordlist",
		filepath.Join("data", "wordlist.txt"), "path to the word list file")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "optional file to save matches (one per line)")
	rootCmd.Flags().BoolVar(&flagRegex, "regex", false,
		"filter with the lookahead pattern instead of the matching engine")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 1, "number of parallel matching workers")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log matching progress")
}

func run(_ *cobra.Command, _ []string) error {
	packets, err := packet.Parse(flagSets)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err = packet.ValidateDisjoint(packets); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	fmt.Printf("Sets : %v\n", flagSets)
	fmt.Printf("Loading words from %s...\n", flagWordlist)
	words, err := wordlist.Load(flagWordlist)
	if err != nil {
		return err
	}
	fmt.Printf("Total words loaded: %d\n", len(words))

	var matches []string
	if flagRegex {
		matches, err = matchPattern(words, packets)
	} else {
		matches, err = matchEngine(words, packets)
	}
	if err != nil {
		return err
	}

	fmt.Printf("  Total matches: %d\n", len(matches))
	if len(matches) > 0 {
		preview := matches
		if len(preview) > previewCount {
			preview = preview[:previewCount]
		}
		fmt.Printf("  First %d:\n", previewCount)
		fmt.Printf("  %v\n", preview)
	}

	if flagOut != "" {
		if err = save(flagOut, matches); err != nil {
			return err
		}
		fmt.Printf("  Saved %d matches to %s\n", len(matches), flagOut)
	}

	return nil
}

// matchEngine runs the bipartite matching formulation over the word list.
func matchEngine(words []string, packets []packet.Packet) ([]string, error) {
	candidates := wordlist.FilterExact(words, packets)
	fmt.Printf("Words participating in matching: %d\n", len(candidates))
	fmt.Println("Matching...")

	opts := solve.DefaultOptions()
	opts.Workers = flagWorkers
	opts.Verbose = flagVerbose

	return solve.Run(candidates, packets, &opts)
}

// matchPattern runs the lookahead-regex formulation over the word list.
func matchPattern(words []string, packets []packet.Packet) ([]string, error) {
	candidates, err := wordlist.Filter(words, flagMinLen, flagMaxLen, "a-z")
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	fmt.Printf("Words of length %d-%d: %d\n", flagMinLen, flagMaxLen, len(candidates))

	rx, err := pattern.Compile(packets, flagMinLen, flagMaxLen)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if flagVerbose {
		fmt.Printf("Pattern: %s\n", rx.String())
	}
	fmt.Println("Matching with lookahead pattern...")

	matches := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if pattern.Matches(rx, w) {
			matches = append(matches, w)
		}
	}

	return matches, nil
}

// save writes matches one per line, creating parent directories as needed.
func save(path string, words []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

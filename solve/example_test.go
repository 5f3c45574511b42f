package solve_test

import (
	"fmt"

	"github.com/letterpak/letterpak/packet"
	"github.com/letterpak/letterpak/solve"
)

// ExampleRun solves a tiny word list: "dogs" is filtered out by length,
// "ace" needs the 'ae' packet twice, and the rest match.
func ExampleRun() {
	packets := []packet.Packet{"ck", "ae", "td"}
	words := []string{"cat", "dogs", "kat", "ace"}

	matches, err := solve.Run(words, packets, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(matches)
	// Output:
	// [cat kat]
}

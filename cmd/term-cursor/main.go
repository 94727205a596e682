// term-cursor asks the terminal for the cursor position and prints
// "row col" (1-based) on stdout. Bounded one-second wait, no retry.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/query"
	"github.com/halfblock/termgfx/terminal"
)

func main() {
	flag.Parse()

	fd := int(os.Stdin.Fd())
	guard, err := terminal.AcquireRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-cursor: %v\n", err)
		os.Exit(1)
	}
	defer guard.Restore()

	row, col, err := query.Cursor(os.Stdout, fd)
	guard.Restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-cursor: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d %d\n", row, col)
}

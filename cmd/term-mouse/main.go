// term-mouse queries the compositor for the current mouse state and
// prints "x y left_count right_count" on stdout. The wait is bounded:
// no reply within one second is a failure, never a hang.
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
		fmt.Fprintf(os.Stderr, "term-mouse: %v\n", err)
		os.Exit(1)
	}
	defer guard.Restore()

	m, err := query.Mouse(os.Stdout, fd)
	guard.Restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-mouse: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d %d %d %d\n", m.X, m.Y, m.LeftCount, m.RightCount)
}

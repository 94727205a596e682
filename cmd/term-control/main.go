// term-control sends one compositor setting: term-control <kind> <value>
//
//	term-control margin 12
//	term-control opacity 80
//	term-control resolution 800x450   (or LOW / HIGH)
//	term-control fast enable
//	term-control shader disable
//	term-control fps 1
//	term-control benchmark enable
//	term-control mouse show
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/protocol"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: term-control <kind> <value>")
		fmt.Fprintln(os.Stderr, "Kinds: margin opacity resolution fast shader fps benchmark mouse")
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	kind, err := protocol.ControlKindFromKey(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-control: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cmd := protocol.Control{Kind: kind, Value: flag.Arg(1)}
	if err := protocol.Encode(os.Stdout, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "term-control: %v\n", err)
		os.Exit(2)
	}
}

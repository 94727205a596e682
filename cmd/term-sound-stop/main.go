// term-sound-stop stops playback on a compositor channel:
// term-sound-stop <channel>
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/halfblock/termgfx/protocol"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: term-sound-stop <channel>\n")
		fmt.Fprintf(os.Stderr, "  channel in [%d,%d]\n", protocol.MinChannel, protocol.MaxChannel)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	channel, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-sound-stop: channel %q is not a number\n", flag.Arg(0))
		os.Exit(2)
	}

	if err := protocol.Encode(os.Stdout, protocol.SoundStop{Channel: channel}); err != nil {
		fmt.Fprintf(os.Stderr, "term-sound-stop: %v\n", err)
		os.Exit(2)
	}
}

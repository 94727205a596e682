// term-text draws a text string on a compositor layer using one of the
// eighteen palette colors: term-text -x 10 -y 5 -color 3 "hello"
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/config"
	"github.com/halfblock/termgfx/protocol"
)

func main() {
	var (
		x     = flag.Int("x", 0, "Text X in pixels")
		y     = flag.Int("y", 0, "Text Y in pixels")
		layer = flag.Int("layer", 0, "Target layer 1-16 (0 = config default)")
		color = flag.Int("color", 1, "Palette color index 1-18")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: term-text [flags] <text>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-text: %v\n", err)
		os.Exit(1)
	}
	if *layer == 0 {
		*layer = cfg.Layer
	}

	cmd := protocol.TextDraw{
		X: *x, Y: *y,
		Layer: *layer,
		Color: *color,
		Text:  []byte(flag.Arg(0)),
	}
	if err := protocol.Encode(os.Stdout, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "term-text: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
}

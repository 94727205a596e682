// term-pixel manipulates single compositor pixels:
//
//	term-pixel -op draw -x 10 -y 5 -color ff00ffff
//	term-pixel -op clean -x 10 -y 5
//	term-pixel -op render
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/halfblock/termgfx/protocol"
)

func main() {
	var (
		op    = flag.String("op", "draw", "Operation: draw, clean or render")
		x     = flag.Int("x", 0, "Pixel X")
		y     = flag.Int("y", 0, "Pixel Y")
		color = flag.String("color", "ffffffff", "Pixel color as RRGGBBAA hex (draw only)")
	)
	flag.Parse()

	var cmd protocol.Command
	switch *op {
	case "draw":
		c, err := strconv.ParseUint(*color, 16, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "term-pixel: color %q is not RRGGBBAA hex\n", *color)
			os.Exit(2)
		}
		cmd = protocol.PixelDraw{X: *x, Y: *y, Color: uint32(c)}
	case "clean":
		cmd = protocol.PixelClean{X: *x, Y: *y}
	case "render":
		cmd = protocol.PixelRender{}
	default:
		fmt.Fprintf(os.Stderr, "term-pixel: unknown operation %q (draw, clean or render)\n", *op)
		os.Exit(2)
	}

	if err := protocol.Encode(os.Stdout, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "term-pixel: %v\n", err)
		os.Exit(2)
	}
}

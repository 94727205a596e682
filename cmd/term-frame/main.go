// term-frame replaces a rectangle of the compositor's base frame with
// a raw RGBA block supplied as base64.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/protocol"
)

func main() {
	var (
		x      = flag.Int("x", 0, "Destination X in pixels")
		y      = flag.Int("y", 0, "Destination Y in pixels")
		width  = flag.Int("width", 0, "Block width in pixels")
		height = flag.Int("height", 0, "Block height in pixels")
		data   = flag.String("data", "", "Base64 RGBA payload, width*height*4 bytes")
	)
	flag.Parse()

	raw, err := protocol.DecodePayload(*data, *width**height*4)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-frame: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cmd := protocol.FrameUpload{X: *x, Y: *y, W: *width, H: *height, Data: raw}
	if err := protocol.Encode(os.Stdout, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "term-frame: %v\n", err)
		os.Exit(2)
	}
}

// term-pixels uploads a raw RGBA block onto a compositor layer.
//
// The -data payload is standard base64 of width*height*4 bytes,
// typically produced by term-sprite-load or the calling script's own
// encoder.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/halfblock/termgfx/config"
	"github.com/halfblock/termgfx/protocol"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("term-pixels", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		x      = fs.Int("x", 0, "Destination X in pixels")
		y      = fs.Int("y", 0, "Destination Y in pixels")
		width  = fs.Int("width", 0, "Block width in pixels")
		height = fs.Int("height", 0, "Block height in pixels")
		layer  = fs.Int("layer", 0, "Target layer 1-16 (0 = config default)")
		data   = fs.String("data", "", "Base64 RGBA payload, width*height*4 bytes")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "term-pixels: %v\n", err)
		return 1
	}
	if *layer == 0 {
		*layer = cfg.Layer
	}

	raw, err := protocol.DecodePayload(*data, *width**height*4)
	if err != nil {
		fmt.Fprintf(stderr, "term-pixels: %v\n", err)
		fs.Usage()
		return 2
	}

	cmd := protocol.PixelUpload{
		X: *x, Y: *y,
		W: *width, H: *height,
		Layer: *layer,
		Data:  raw,
	}
	if err := protocol.Encode(stdout, cmd); err != nil {
		fmt.Fprintf(stderr, "term-pixels: %v\n", err)
		if errors.Is(err, protocol.ErrRange) {
			fs.Usage()
			return 2
		}
		return 1
	}
	return 0
}

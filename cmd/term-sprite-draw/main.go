// term-sprite-draw stamps a cached sprite onto a compositor layer.
// The id must have been loaded into the compositor's sprite cache
// beforehand; the caller owns the id until term-sprite-free releases
// it.
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
		id    = flag.Int("id", -1, "Sprite cache id")
		x     = flag.Int("x", 0, "Destination X in pixels")
		y     = flag.Int("y", 0, "Destination Y in pixels")
		layer = flag.Int("layer", 0, "Target layer 1-16 (0 = config default)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-sprite-draw: %v\n", err)
		os.Exit(1)
	}
	if *layer == 0 {
		*layer = cfg.Layer
	}

	cmd := protocol.SpriteDraw{ID: *id, X: *x, Y: *y, Layer: *layer}
	if err := protocol.Encode(os.Stdout, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "term-sprite-draw: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
}

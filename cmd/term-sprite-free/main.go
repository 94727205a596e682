// term-sprite-free releases a sprite id from the compositor's cache.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/protocol"
)

func main() {
	id := flag.Int("id", -1, "Sprite cache id to release")
	flag.Parse()

	if err := protocol.Encode(os.Stdout, protocol.SpriteFree{ID: *id}); err != nil {
		fmt.Fprintf(os.Stderr, "term-sprite-free: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
}

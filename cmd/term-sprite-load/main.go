// term-sprite-load decodes an image file and prints a
// {width,height,"<base64>"} structure on stdout so the calling script
// can cache the pixel data and replay it through term-pixels or the
// compositor's sprite cache without re-reading the file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/protocol"
	"github.com/halfblock/termgfx/sprite"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: term-sprite-load <image>")
		fmt.Fprintln(os.Stderr, "Supported formats: PNG, JPEG, GIF, BMP")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	s, err := sprite.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-sprite-load: %v\n", err)
		os.Exit(1)
	}

	result := protocol.SpriteLoadResult{
		Width:  s.Width,
		Height: s.Height,
		Data:   s.RGBA(),
	}
	fmt.Println(result)
}

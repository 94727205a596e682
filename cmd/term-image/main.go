// term-image renders an image file directly in the terminal using the
// half-block technique, two pixels per character cell:
//
//	term-image -w 120 picture.png
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nfnt/resize"

	"github.com/halfblock/termgfx/render"
	"github.com/halfblock/termgfx/sprite"
)

func main() {
	width := flag.Int("w", 0, "Output width in pixels/columns (0 = native size)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: term-image [-w columns] <image>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	img, err := sprite.LoadImage(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-image: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		img = resize.Resize(uint(*width), 0, img, resize.Lanczos3)
	}

	s, err := sprite.FromImage(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-image: %v\n", err)
		os.Exit(1)
	}

	r, err := render.NewSize(os.Stdout, s.Width, s.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-image: %v\n", err)
		os.Exit(1)
	}
	s.Draw(r.Buffer(), 0, 0, sprite.FlipNone)
	if err := r.Present(); err != nil {
		fmt.Fprintf(os.Stderr, "term-image: %v\n", err)
		os.Exit(1)
	}
	r.Shutdown()
}

// term-banner renders text into a local framebuffer with a PSF bitmap
// font and presents it with the half-block renderer:
//
//	term-banner -font /usr/share/kbd/consolefonts/default8x16.psf -color 5 "hello"
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/font"
	"github.com/halfblock/termgfx/pixel"
	"github.com/halfblock/termgfx/protocol"
	"github.com/halfblock/termgfx/render"
)

func main() {
	var (
		fontPath = flag.String("font", "", "Path to a PSF1/PSF2 font file")
		colorIdx = flag.Int("color", 1, "Palette color index 1-18")
		mode     = flag.String("mode", "low", "Framebuffer mode: low (160x100) or high (320x200)")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: term-banner -font <psf> [flags] <text>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 || *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	tc, err := protocol.PaletteColor(*colorIdx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-banner: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	var renderMode render.Mode
	switch *mode {
	case "low":
		renderMode = render.ModeLow
	case "high":
		renderMode = render.ModeHigh
	default:
		fmt.Fprintf(os.Stderr, "term-banner: unknown mode %q (low or high)\n", *mode)
		os.Exit(2)
	}

	f, err := font.Load(*fontPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-banner: %v\n", err)
		os.Exit(1)
	}

	r, err := render.New(os.Stdout, renderMode, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-banner: %v\n", err)
		os.Exit(1)
	}
	r.Clear(pixel.Black)
	f.DrawText(r.Buffer(), 0, 0, flag.Arg(0), pixel.Pack(tc.R, tc.G, tc.B, 255))
	if err := r.Present(); err != nil {
		fmt.Fprintf(os.Stderr, "term-banner: %v\n", err)
		os.Exit(1)
	}
	r.Shutdown()
}

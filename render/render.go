// Package render presents a pixel.Buffer on a truecolor terminal using
// the half-block technique: one upper-half-block glyph per column
// carries two vertically stacked pixels, the top one as foreground and
// the bottom one as background. This recovers full vertical pixel
// resolution from a character grid that natively has half of it.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/halfblock/termgfx/pixel"
)

// Mode selects the framebuffer resolution.
type Mode uint8

const (
	ModeLow  Mode = iota // 160x100
	ModeHigh             // 320x200
)

// resolution table, indexed by Mode
var modeSize = [...][2]int{
	ModeLow:  {160, 100},
	ModeHigh: {320, 200},
}

// Pre-allocated escape fragments (avoid allocations during present)
var (
	sgrFgRGB     = []byte("\x1b[38;2;")
	sgrBgRGB     = []byte(";48;2;")
	sgrEnd       = []byte("m")
	sgrReset     = []byte("\x1b[0m")
	cursorHide   = []byte("\x1b[?25l")
	cursorShow   = []byte("\x1b[?25h")
	cursorHome   = []byte("\x1b[H")
	upperHalf    = []byte("\xe2\x96\x80") // U+2580
	rowTerminate = []byte("\x1b[0m\n")
)

// Renderer owns one framebuffer and the terminal writer it presents
// to. It is an explicit context object; no package-level state.
type Renderer struct {
	buf *pixel.Buffer
	out *bufio.Writer

	// previously emitted (fg, bg) pair for escape suppression
	lastFg    pixel.Color
	lastBg    pixel.Color
	lastValid bool
}

// New allocates a renderer with a framebuffer sized by mode, multiplied
// by scale (scale below 1 is treated as 1). Allocation failure is the
// only error.
func New(out io.Writer, mode Mode, scale int) (*Renderer, error) {
	if int(mode) >= len(modeSize) {
		return nil, fmt.Errorf("unknown render mode %d", mode)
	}
	if scale < 1 {
		scale = 1
	}
	w := modeSize[mode][0] * scale
	h := modeSize[mode][1] * scale
	buf, err := pixel.NewBuffer(w, h)
	if err != nil {
		return nil, fmt.Errorf("framebuffer alloc: %w", err)
	}
	return &Renderer{
		buf: buf,
		out: bufio.NewWriterSize(out, 1<<17),
	}, nil
}

// NewSize allocates a renderer around a framebuffer with explicit
// dimensions, for callers that present arbitrary-sized content rather
// than one of the mode resolutions.
func NewSize(out io.Writer, width, height int) (*Renderer, error) {
	buf, err := pixel.NewBuffer(width, height)
	if err != nil {
		return nil, fmt.Errorf("framebuffer alloc: %w", err)
	}
	return &Renderer{
		buf: buf,
		out: bufio.NewWriterSize(out, 1<<17),
	}, nil
}

// Buffer returns the renderer's framebuffer for drawing.
func (r *Renderer) Buffer() *pixel.Buffer {
	return r.buf
}

// Size reports the framebuffer dimensions, or an error after Shutdown.
func (r *Renderer) Size() (width, height int, err error) {
	if r.buf == nil {
		return 0, 0, fmt.Errorf("renderer not initialized")
	}
	return r.buf.Width(), r.buf.Height(), nil
}

// Clear fills the framebuffer with c.
func (r *Renderer) Clear(c pixel.Color) {
	if r.buf != nil {
		r.buf.Clear(c)
	}
}

// SetPixel writes one framebuffer pixel, clipped at the edges.
func (r *Renderer) SetPixel(x, y int, c pixel.Color) {
	if r.buf != nil {
		r.buf.Set(x, y, c)
	}
}

// Home moves the cursor to the top-left and hides it, for callers that
// present repeatedly into the same screen region.
func (r *Renderer) Home() error {
	r.out.Write(cursorHide)
	r.out.Write(cursorHome)
	return r.out.Flush()
}

// Present renders the framebuffer. Buffer rows are consumed in pairs:
// row y is the cell foreground, row y+1 the cell background (black when
// the final pair is incomplete). A truecolor SGR is emitted only when
// the (fg, bg) pair differs from the previously emitted pair; every
// text row ends with an SGR reset, which also invalidates the pair
// cache for the next row.
func (r *Renderer) Present() error {
	if r.buf == nil {
		return fmt.Errorf("renderer not initialized")
	}
	w := r.out
	width := r.buf.Width()
	height := r.buf.Height()

	r.lastValid = false
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			fg := r.buf.At(x, y)
			bg := pixel.Black
			if y+1 < height {
				bg = r.buf.At(x, y+1)
			}
			if !r.lastValid || fg != r.lastFg || bg != r.lastBg {
				writePair(w, fg, bg)
				r.lastFg = fg
				r.lastBg = bg
				r.lastValid = true
			}
			w.Write(upperHalf)
		}
		w.Write(rowTerminate)
		r.lastValid = false
	}
	return w.Flush()
}

// Shutdown resets color state, restores cursor visibility and releases
// the framebuffer. Safe to call once; further calls are no-ops.
func (r *Renderer) Shutdown() {
	if r.buf == nil {
		return
	}
	r.out.Write(sgrReset)
	r.out.Write(cursorShow)
	r.out.Flush()
	r.buf = nil
}

// writePair emits one combined truecolor SGR for a (fg, bg) pair.
func writePair(w *bufio.Writer, fg, bg pixel.Color) {
	fr, fgc, fb, _ := fg.RGBA8()
	br, bgc, bb, _ := bg.RGBA8()
	w.Write(sgrFgRGB)
	writeInt(w, int(fr))
	w.WriteByte(';')
	writeInt(w, int(fgc))
	w.WriteByte(';')
	writeInt(w, int(fb))
	w.Write(sgrBgRGB)
	writeInt(w, int(br))
	w.WriteByte(';')
	writeInt(w, int(bgc))
	w.WriteByte(';')
	writeInt(w, int(bb))
	w.Write(sgrEnd)
}

// writeInt writes a small non-negative integer without allocation.
// Channel values never exceed 255.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n >= 100 {
		w.WriteByte(byte(n/100) + '0')
		n %= 100
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n >= 10 {
		w.WriteByte(byte(n/10) + '0')
	}
	w.WriteByte(byte(n%10) + '0')
}

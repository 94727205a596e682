// Package pixel provides the RGBA framebuffer shared by the renderer,
// the font compositor and the sprite blitter.
//
// Every drawing entry point clips against the buffer bounds instead of
// returning an error; the hot path stays branch-light and callers never
// have to pre-validate coordinates.
package pixel

import "fmt"

// Color is a packed 32-bit RGBA value, 0xRRGGBBAA.
type Color uint32

// Pack builds a Color from individual channels.
func Pack(r, g, b, a uint8) Color {
	return Color(r)<<24 | Color(g)<<16 | Color(b)<<8 | Color(a)
}

// RGBA8 splits a Color into individual channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c)
}

// Common colors.
var (
	Black       = Pack(0, 0, 0, 255)
	White       = Pack(255, 255, 255, 255)
	Transparent = Color(0)
)

// Blend composites src over dst using the source alpha.
// Fully opaque and fully transparent sources take the fast path.
func Blend(dst, src Color) Color {
	a := src.Alpha()
	if a == 0xff {
		return src
	}
	if a == 0 {
		return dst
	}
	sr, sg, sb, sa := src.RGBA8()
	dr, dg, db, _ := dst.RGBA8()
	ia := uint32(255 - sa)
	r := uint8((uint32(sr)*uint32(sa) + uint32(dr)*ia) / 255)
	g := uint8((uint32(sg)*uint32(sa) + uint32(dg)*ia) / 255)
	b := uint8((uint32(sb)*uint32(sa) + uint32(db)*ia) / 255)
	return Pack(r, g, b, 255)
}

// Buffer is a row-major RGBA grid. It is an explicit context object:
// callers create as many independent buffers as they need and thread
// them through the drawing calls.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// NewBuffer allocates a buffer with the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer dimensions %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pix exposes the backing slice, row-major, length width*height.
func (b *Buffer) Pix() []Color {
	return b.pix
}

// Clear fills every cell with c.
func (b *Buffer) Clear(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Set writes one pixel. Out-of-range coordinates are silently dropped.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// At reads one pixel. Out-of-range coordinates read as Transparent.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Transparent
	}
	return b.pix[y*b.width+x]
}

// BlendAt composites c over the existing pixel. Clipped like Set.
func (b *Buffer) BlendAt(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := y*b.width + x
	b.pix[i] = Blend(b.pix[i], c)
}

// DrawPixels blits an external block of packed colors at (x, y).
// pitch is the source row stride in pixels and defaults to w when
// non-positive. Rows and columns falling outside the buffer are clipped.
func (b *Buffer) DrawPixels(x, y int, src []Color, w, h, pitch int) {
	if w <= 0 || h <= 0 {
		return
	}
	if pitch <= 0 {
		pitch = w
	}
	for sy := 0; sy < h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= b.height {
			continue
		}
		row := sy * pitch
		if row+w > len(src) {
			break
		}
		for sx := 0; sx < w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= b.width {
				continue
			}
			b.pix[dy*b.width+dx] = src[row+sx]
		}
	}
}

// DrawRGBA blits a raw byte block (4 bytes per pixel, RGBA order) at
// (x, y). pitch is in pixels and defaults to w when non-positive.
func (b *Buffer) DrawRGBA(x, y int, rgba []byte, w, h, pitch int) {
	if w <= 0 || h <= 0 {
		return
	}
	if pitch <= 0 {
		pitch = w
	}
	for sy := 0; sy < h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= b.height {
			continue
		}
		row := sy * pitch * 4
		if row+w*4 > len(rgba) {
			break
		}
		for sx := 0; sx < w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= b.width {
				continue
			}
			o := row + sx*4
			b.pix[dy*b.width+dx] = Pack(rgba[o], rgba[o+1], rgba[o+2], rgba[o+3])
		}
	}
}

// RGBA returns a copy of the buffer contents as raw RGBA bytes,
// row-major, 4 bytes per pixel.
func (b *Buffer) RGBA() []byte {
	out := make([]byte, len(b.pix)*4)
	for i, c := range b.pix {
		r, g, bl, a := c.RGBA8()
		o := i * 4
		out[o] = r
		out[o+1] = g
		out[o+2] = bl
		out[o+3] = a
	}
	return out
}

// Package font loads PSF bitmap fonts and composites glyphs into a
// pixel.Buffer. Both PSF version 1 and version 2 headers are supported
// and normalize into the same Font value.
package font

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/halfblock/termgfx/pixel"
)

// PSF1 header: magic(2) mode(1) charsize(1)
const (
	psf1Magic0 = 0x36
	psf1Magic1 = 0x04

	psf1Mode512 = 0x01

	psf1HeaderSize = 4
)

// PSF2 header: magic(4) version(4) headersize(4) flags(4) length(4)
// charsize(4) height(4) width(4), all little-endian
const (
	psf2Magic = 0x864ab572

	psf2HeaderSize = 32
)

// fallbackGlyph substitutes for any out-of-range glyph index.
const fallbackGlyph = '?'

// Font is an immutable fixed-cell bitmap font. One 1-bit-per-pixel
// bitmap per glyph, indexed 0..GlyphCount.
type Font struct {
	GlyphCount    int
	GlyphWidth    int
	GlyphHeight   int
	BytesPerGlyph int

	glyphs []byte
}

// Load reads and parses a PSF1 or PSF2 font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(data)
}

// Parse decodes font data, dispatching on the magic bytes.
func Parse(data []byte) (*Font, error) {
	if len(data) >= 2 && data[0] == psf1Magic0 && data[1] == psf1Magic1 {
		return parsePSF1(data)
	}
	if len(data) >= 4 && binary.LittleEndian.Uint32(data) == psf2Magic {
		return parsePSF2(data)
	}
	return nil, fmt.Errorf("not a PSF font: unrecognized magic")
}

func parsePSF1(data []byte) (*Font, error) {
	if len(data) < psf1HeaderSize {
		return nil, fmt.Errorf("psf1: truncated header: %d bytes", len(data))
	}
	mode := data[2]
	charsize := int(data[3])
	count := 256
	if mode&psf1Mode512 != 0 {
		count = 512
	}
	if charsize == 0 {
		return nil, fmt.Errorf("psf1: zero charsize")
	}
	need := psf1HeaderSize + count*charsize
	if len(data) < need {
		return nil, fmt.Errorf("psf1: truncated glyph table: have %d bytes, need %d", len(data), need)
	}
	return &Font{
		GlyphCount:    count,
		GlyphWidth:    8,
		GlyphHeight:   charsize,
		BytesPerGlyph: charsize,
		glyphs:        data[psf1HeaderSize:need],
	}, nil
}

func parsePSF2(data []byte) (*Font, error) {
	if len(data) < psf2HeaderSize {
		return nil, fmt.Errorf("psf2: truncated header: %d bytes", len(data))
	}
	headerSize := int(binary.LittleEndian.Uint32(data[8:]))
	count := int(binary.LittleEndian.Uint32(data[16:]))
	charsize := int(binary.LittleEndian.Uint32(data[20:]))
	height := int(binary.LittleEndian.Uint32(data[24:]))
	width := int(binary.LittleEndian.Uint32(data[28:]))

	if headerSize < psf2HeaderSize {
		return nil, fmt.Errorf("psf2: header size %d below minimum", headerSize)
	}
	if count <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("psf2: invalid geometry %dx%d x%d glyphs", width, height, count)
	}
	if charsize < height*((width+7)/8) {
		return nil, fmt.Errorf("psf2: charsize %d too small for %dx%d glyphs", charsize, width, height)
	}
	need := headerSize + count*charsize
	if len(data) < need {
		return nil, fmt.Errorf("psf2: truncated glyph table: have %d bytes, need %d", len(data), need)
	}
	return &Font{
		GlyphCount:    count,
		GlyphWidth:    width,
		GlyphHeight:   height,
		BytesPerGlyph: charsize,
		glyphs:        data[headerSize:need],
	}, nil
}

// Glyph returns the bitmap for index, substituting the fallback glyph
// when index is out of range.
func (f *Font) Glyph(index int) []byte {
	if index < 0 || index >= f.GlyphCount {
		index = fallbackGlyph
		if index >= f.GlyphCount {
			index = 0
		}
	}
	off := index * f.BytesPerGlyph
	return f.glyphs[off : off+f.BytesPerGlyph]
}

// DrawGlyph paints one glyph at (x, y). Set bits paint color, unset
// bits leave the destination untouched.
func (f *Font) DrawGlyph(buf *pixel.Buffer, x, y, index int, color pixel.Color) {
	glyph := f.Glyph(index)
	rowBytes := (f.GlyphWidth + 7) / 8
	for gy := 0; gy < f.GlyphHeight; gy++ {
		row := glyph[gy*rowBytes : gy*rowBytes+rowBytes]
		for gx := 0; gx < f.GlyphWidth; gx++ {
			if row[gx/8]&(0x80>>(gx%8)) != 0 {
				buf.Set(x+gx, y+gy, color)
			}
		}
	}
}

// DrawText lays out text starting at (x, y). Newline wraps the pen to
// the start column one glyph row down; tab advances four glyph widths.
func (f *Font) DrawText(buf *pixel.Buffer, x, y int, text string, color pixel.Color) {
	penX, penY := x, y
	for _, r := range text {
		switch r {
		case '\n':
			penX = x
			penY += f.GlyphHeight
		case '\t':
			penX += 4 * f.GlyphWidth
		default:
			f.DrawGlyph(buf, penX, penY, int(r), color)
			penX += f.GlyphWidth
		}
	}
}

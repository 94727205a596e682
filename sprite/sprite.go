// Package sprite decodes image files into RGBA sprites and composites
// them onto pixel buffers with colorkey, alpha blending and mirroring.
package sprite

import (
	"fmt"
	"image"
	"os"

	"github.com/halfblock/termgfx/pixel"

	_ "golang.org/x/image/bmp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Flip selects mirroring of the source sampling during a blit.
// The stored sprite is never mutated.
type Flip uint8

const (
	FlipNone Flip = 0
	FlipH    Flip = 1 << 0
	FlipV    Flip = 1 << 1
)

// Sprite is a decoded RGBA image with an optional colorkey.
type Sprite struct {
	Width  int
	Height int

	Colorkey    pixel.Color
	HasColorkey bool

	pix []pixel.Color
}

// Load decodes an image file (PNG, JPEG, GIF or BMP) into a Sprite.
func Load(path string) (*Sprite, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// LoadImage decodes an image file into an image.Image, for callers
// that transform the image before converting it to a Sprite.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return img, nil
}

// FromImage converts any image.Image into a Sprite.
func FromImage(img image.Image) (*Sprite, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprite has empty bounds %dx%d", w, h)
	}

	s := &Sprite{
		Width:  w,
		Height: h,
		pix:    make([]pixel.Color, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			s.pix[y*w+x] = pixel.Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
		}
	}
	return s, nil
}

// FromRGBA builds a Sprite from raw RGBA bytes, 4 bytes per pixel,
// row-major, length w*h*4.
func FromRGBA(w, h int, rgba []byte) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid sprite dimensions %dx%d", w, h)
	}
	if len(rgba) != w*h*4 {
		return nil, fmt.Errorf("sprite data is %d bytes, want %d", len(rgba), w*h*4)
	}
	s := &Sprite{
		Width:  w,
		Height: h,
		pix:    make([]pixel.Color, w*h),
	}
	for i := range s.pix {
		o := i * 4
		s.pix[i] = pixel.Pack(rgba[o], rgba[o+1], rgba[o+2], rgba[o+3])
	}
	return s, nil
}

// SetColorkey marks one color as fully transparent during blits.
func (s *Sprite) SetColorkey(c pixel.Color) {
	s.Colorkey = c
	s.HasColorkey = true
}

// ClearColorkey disables colorkey transparency.
func (s *Sprite) ClearColorkey() {
	s.HasColorkey = false
}

// At reads one sprite pixel without bounds checking; callers clip.
func (s *Sprite) At(x, y int) pixel.Color {
	return s.pix[y*s.Width+x]
}

// RGBA returns the sprite contents as raw RGBA bytes.
func (s *Sprite) RGBA() []byte {
	out := make([]byte, len(s.pix)*4)
	for i, c := range s.pix {
		r, g, b, a := c.RGBA8()
		o := i * 4
		out[o] = r
		out[o+1] = g
		out[o+2] = b
		out[o+3] = a
	}
	return out
}

// Draw composites the whole sprite at (x, y).
func (s *Sprite) Draw(buf *pixel.Buffer, x, y int, flip Flip) {
	s.DrawRegion(buf, x, y, 0, 0, s.Width, s.Height, flip)
}

// DrawRegion composites the sub-rectangle (sx, sy, sw, sh) of the
// sprite at (x, y). Each source pixel is alpha-blended over the
// destination; colorkey pixels are skipped entirely when enabled.
// flip mirrors the source sampling inside the region.
func (s *Sprite) DrawRegion(buf *pixel.Buffer, x, y, sx, sy, sw, sh int, flip Flip) {
	if sw <= 0 || sh <= 0 {
		return
	}
	// Clip the region against the sprite itself
	if sx < 0 {
		sw += sx
		sx = 0
	}
	if sy < 0 {
		sh += sy
		sy = 0
	}
	if sx+sw > s.Width {
		sw = s.Width - sx
	}
	if sy+sh > s.Height {
		sh = s.Height - sy
	}
	if sw <= 0 || sh <= 0 {
		return
	}

	for dy := 0; dy < sh; dy++ {
		srcY := sy + dy
		if flip&FlipV != 0 {
			srcY = sy + sh - 1 - dy
		}
		for dx := 0; dx < sw; dx++ {
			srcX := sx + dx
			if flip&FlipH != 0 {
				srcX = sx + sw - 1 - dx
			}
			c := s.At(srcX, srcY)
			if s.HasColorkey && c == s.Colorkey {
				continue
			}
			buf.BlendAt(x+dx, y+dy, c)
		}
	}
}

// DrawFrame composites one cell of a fixed-size frame grid. Frames are
// addressed row-major from zero; frame dimensions fw x fh partition the
// sprite sheet. Out-of-range frame indices are dropped.
func (s *Sprite) DrawFrame(buf *pixel.Buffer, x, y, fw, fh, frameIndex int, flip Flip) {
	if fw <= 0 || fh <= 0 || frameIndex < 0 {
		return
	}
	cols := s.Width / fw
	rows := s.Height / fh
	if cols <= 0 || frameIndex >= cols*rows {
		return
	}
	fx := (frameIndex % cols) * fw
	fy := (frameIndex / cols) * fh
	s.DrawRegion(buf, x, y, fx, fy, fw, fh, flip)
}

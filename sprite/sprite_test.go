package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/halfblock/termgfx/pixel"
)

// testSprite builds a 4x2 sprite with unique opaque colors per pixel.
func testSprite(t *testing.T) *Sprite {
	t.Helper()
	rgba := make([]byte, 4*2*4)
	for i := 0; i < 8; i++ {
		rgba[i*4] = byte(i + 1) // R identifies the pixel
		rgba[i*4+3] = 255
	}
	s, err := FromRGBA(4, 2, rgba)
	if err != nil {
		t.Fatalf("FromRGBA: %v", err)
	}
	return s
}

func TestFromRGBAValidation(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		n    int
	}{
		{"Zero width", 0, 2, 0},
		{"Negative height", 2, -1, 8},
		{"Short data", 2, 2, 15},
		{"Long data", 2, 2, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRGBA(tt.w, tt.h, make([]byte, tt.n)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{R: 200, A: 255})
	s, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if s.Width != 2 || s.Height != 2 {
		t.Fatalf("dimensions %dx%d", s.Width, s.Height)
	}
	if got := s.At(1, 0); got != pixel.Pack(200, 0, 0, 255) {
		t.Errorf("At(1,0) = %08x", got)
	}
}

func TestDrawSkipsColorkey(t *testing.T) {
	s := testSprite(t)
	key := s.At(0, 0)
	s.SetColorkey(key)

	buf, _ := pixel.NewBuffer(4, 2)
	bg := pixel.Pack(99, 99, 99, 255)
	buf.Clear(bg)
	s.Draw(buf, 0, 0, FlipNone)

	if got := buf.At(0, 0); got != bg {
		t.Errorf("colorkey pixel painted: %08x", got)
	}
	if got := buf.At(1, 0); got != s.At(1, 0) {
		t.Errorf("non-key pixel not painted: %08x", got)
	}
}

func TestDrawRegionHorizontalFlipMirrorsColumns(t *testing.T) {
	s := testSprite(t)

	plain, _ := pixel.NewBuffer(4, 2)
	flipped, _ := pixel.NewBuffer(4, 2)
	s.DrawRegion(plain, 0, 0, 0, 0, 4, 2, FlipNone)
	s.DrawRegion(flipped, 0, 0, 0, 0, 4, 2, FlipH)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if plain.At(x, y) != flipped.At(3-x, y) {
				t.Errorf("column %d row %d not mirrored", x, y)
			}
		}
	}
}

func TestDrawRegionVerticalFlip(t *testing.T) {
	s := testSprite(t)

	buf, _ := pixel.NewBuffer(4, 2)
	s.Draw(buf, 0, 0, FlipV)

	if buf.At(0, 0) != s.At(0, 1) || buf.At(0, 1) != s.At(0, 0) {
		t.Error("rows not swapped by vertical flip")
	}
}

func TestDrawRegionClipsToSprite(t *testing.T) {
	s := testSprite(t)

	buf, _ := pixel.NewBuffer(8, 8)
	buf.Clear(pixel.Black)
	// Region extends past the sprite on both axes
	s.DrawRegion(buf, 0, 0, 2, 1, 10, 10, FlipNone)

	// Only the 2x1 remainder may be painted
	if buf.At(0, 0) != s.At(2, 1) || buf.At(1, 0) != s.At(3, 1) {
		t.Error("clipped region painted wrong pixels")
	}
	if buf.At(2, 0) != pixel.Black || buf.At(0, 1) != pixel.Black {
		t.Error("painted outside clipped region")
	}
}

func TestDrawFrameAddressing(t *testing.T) {
	// 4x2 sheet of 2x1 frames: 2 columns, 2 rows
	s := testSprite(t)

	buf, _ := pixel.NewBuffer(2, 1)

	// Frame 3 = bottom-right cell at (2, 1)
	s.DrawFrame(buf, 0, 0, 2, 1, 3, FlipNone)
	if buf.At(0, 0) != s.At(2, 1) {
		t.Errorf("frame 3 sampled wrong cell")
	}

	// Out-of-range frame index is a no-op
	buf.Clear(pixel.Black)
	s.DrawFrame(buf, 0, 0, 2, 1, 4, FlipNone)
	if buf.At(0, 0) != pixel.Black {
		t.Error("out-of-range frame painted")
	}
}

func TestAlphaBlendOverDestination(t *testing.T) {
	rgba := []byte{255, 255, 255, 128}
	s, _ := FromRGBA(1, 1, rgba)

	buf, _ := pixel.NewBuffer(1, 1)
	buf.Clear(pixel.Black)
	s.Draw(buf, 0, 0, FlipNone)

	if got := buf.At(0, 0); got != pixel.Pack(128, 128, 128, 255) {
		t.Errorf("blend result %08x, want 808080ff", got)
	}
}

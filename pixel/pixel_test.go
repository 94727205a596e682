package pixel

import "testing"

func TestPackRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
	}{
		{"Black opaque", 0, 0, 0, 255},
		{"White opaque", 255, 255, 255, 255},
		{"Mixed", 12, 34, 56, 78},
		{"Transparent", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Pack(tt.r, tt.g, tt.b, tt.a)
			r, g, b, a := c.RGBA8()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("Pack/RGBA8 mismatch: got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestNewBufferRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -1}} {
		if _, err := NewBuffer(dims[0], dims[1]); err == nil {
			t.Errorf("NewBuffer(%d, %d) expected error", dims[0], dims[1])
		}
	}
}

func TestSetOutOfBoundsIsNoop(t *testing.T) {
	b, err := NewBuffer(4, 4)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	b.Clear(Black)

	// None of these may panic or alter the buffer
	b.Set(-1, 0, White)
	b.Set(0, -1, White)
	b.Set(4, 0, White)
	b.Set(0, 4, White)
	b.Set(1000, 1000, White)

	for i, c := range b.Pix() {
		if c != Black {
			t.Fatalf("pixel %d changed by out-of-bounds write", i)
		}
	}
}

func TestClearAndAt(t *testing.T) {
	b, _ := NewBuffer(3, 2)
	red := Pack(255, 0, 0, 255)
	b.Clear(red)
	if got := b.At(2, 1); got != red {
		t.Errorf("At(2,1) = %08x, want %08x", got, red)
	}
	if got := b.At(3, 0); got != Transparent {
		t.Errorf("out-of-bounds At = %08x, want transparent", got)
	}
}

func TestDrawPixelsClipping(t *testing.T) {
	b, _ := NewBuffer(4, 4)
	b.Clear(Black)

	src := make([]Color, 9)
	for i := range src {
		src[i] = White
	}

	// Offset so only the bottom-right 2x2 of the source lands inside
	b.DrawPixels(-1, -1, src, 3, 3, 0)

	want := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: true}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := b.At(x, y)
			if want[[2]int{x, y}] {
				if c != White {
					t.Errorf("(%d,%d) = %08x, want white", x, y, c)
				}
			} else if c != Black {
				t.Errorf("(%d,%d) = %08x, want black", x, y, c)
			}
		}
	}
}

func TestDrawPixelsPitchDefaultsToWidth(t *testing.T) {
	b, _ := NewBuffer(2, 2)
	src := []Color{Pack(1, 0, 0, 255), Pack(2, 0, 0, 255), Pack(3, 0, 0, 255), Pack(4, 0, 0, 255)}
	b.DrawPixels(0, 0, src, 2, 2, -5)
	for i, want := range src {
		if got := b.Pix()[i]; got != want {
			t.Errorf("pixel %d = %08x, want %08x", i, got, want)
		}
	}
}

func TestDrawRGBARoundTrip(t *testing.T) {
	b, _ := NewBuffer(2, 1)
	b.DrawRGBA(0, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 2, 1, 0)
	if got := b.At(0, 0); got != Pack(1, 2, 3, 4) {
		t.Errorf("At(0,0) = %08x", got)
	}
	if got := b.At(1, 0); got != Pack(5, 6, 7, 8) {
		t.Errorf("At(1,0) = %08x", got)
	}

	raw := b.RGBA()
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("RGBA()[%d] = %d, want %d", i, raw[i], want[i])
		}
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name string
		dst  Color
		src  Color
		want Color
	}{
		{"Opaque source wins", Black, Pack(10, 20, 30, 255), Pack(10, 20, 30, 255)},
		{"Transparent source keeps dst", Pack(10, 20, 30, 255), Transparent, Pack(10, 20, 30, 255)},
		{"Half alpha over black", Black, Pack(255, 255, 255, 128), Pack(128, 128, 128, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.dst, tt.src); got != tt.want {
				t.Errorf("Blend = %08x, want %08x", got, tt.want)
			}
		})
	}
}

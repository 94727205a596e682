package render

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/halfblock/termgfx/pixel"
)

const blackPair = "\x1b[38;2;0;0;0;48;2;0;0;0m"

func TestModeTable(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		scale int
		w, h  int
	}{
		{"Low", ModeLow, 1, 160, 100},
		{"High", ModeHigh, 1, 320, 200},
		{"Low scaled", ModeLow, 2, 320, 200},
		{"Zero scale defaults", ModeHigh, 0, 320, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(&bytes.Buffer{}, tt.mode, tt.scale)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			w, h, err := r.Size()
			if err != nil {
				t.Fatalf("Size: %v", err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("size %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestPresentSingleColumnPair(t *testing.T) {
	// Height 2, width 1, uniform color: exactly one color escape then
	// one block glyph
	var out bytes.Buffer
	r := &Renderer{out: bufio.NewWriter(&out)}
	buf, _ := pixel.NewBuffer(1, 2)
	buf.Clear(pixel.Pack(10, 20, 30, 255))
	r.buf = buf

	if err := r.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	want := "\x1b[38;2;10;20;30;48;2;10;20;30m\xe2\x96\x80\x1b[0m\n"
	if got != want {
		t.Errorf("Present output %q, want %q", got, want)
	}
	if n := strings.Count(got, "\x1b[38;2;"); n != 1 {
		t.Errorf("%d color escapes, want 1", n)
	}
}

func TestPresentSuppressesRepeatedPairs(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{out: bufio.NewWriter(&out)}
	buf, _ := pixel.NewBuffer(4, 2)
	buf.Clear(pixel.Pack(1, 2, 3, 255))
	// Make the last column differ so one extra escape is required
	buf.Set(3, 0, pixel.White)
	r.buf = buf

	if err := r.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	if n := strings.Count(got, "\x1b[38;2;"); n != 2 {
		t.Errorf("%d color escapes, want 2 (three uniform columns share one)", n)
	}
	if n := strings.Count(got, "\xe2\x96\x80"); n != 4 {
		t.Errorf("%d block glyphs, want 4", n)
	}
}

func TestPresentLowModeBlackFrame(t *testing.T) {
	var out bytes.Buffer
	r, err := New(&out, ModeLow, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Clear(pixel.Black)

	if err := r.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("%d text lines, want 50", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, blackPair) {
			t.Fatalf("line %d does not start with black-on-black escape", i)
		}
		if n := strings.Count(line, "\xe2\x96\x80"); n != 160 {
			t.Fatalf("line %d has %d glyphs, want 160", i, n)
		}
	}
}

func TestPresentOddHeightUsesBlackBackground(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{out: bufio.NewWriter(&out)}
	buf, _ := pixel.NewBuffer(1, 3)
	buf.Clear(pixel.White)
	r.buf = buf

	if err := r.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	// Final (third) row pairs white foreground with black background
	if !strings.Contains(got, "\x1b[38;2;255;255;255;48;2;0;0;0m") {
		t.Error("odd final row did not use black background")
	}
}

func TestShutdownReleasesBuffer(t *testing.T) {
	var out bytes.Buffer
	r, _ := New(&out, ModeLow, 1)
	r.Shutdown()

	if _, _, err := r.Size(); err == nil {
		t.Error("Size after Shutdown should fail")
	}
	if err := r.Present(); err == nil {
		t.Error("Present after Shutdown should fail")
	}
	if got := out.String(); !strings.Contains(got, "\x1b[0m") || !strings.Contains(got, "\x1b[?25h") {
		t.Errorf("Shutdown output %q missing reset or cursor-show", got)
	}

	// Second shutdown is a no-op
	before := out.Len()
	r.Shutdown()
	if out.Len() != before {
		t.Error("repeated Shutdown wrote output")
	}
}

// Package protocol serializes drawing and query intents into the
// escape envelope consumed by the terminal compositor. Every command
// variant carries its own validation; encoding refuses to emit anything
// for an invalid command, so a failed tool never leaves a partial
// sequence on the wire.
package protocol

import (
	"errors"
	"fmt"
	"strconv"
)

// Range limits shared by the commands and the compositor contract.
const (
	MinChannel    = 1
	MaxChannel    = 32
	MinLayer      = 1
	MaxLayer      = 16
	MinColorIndex = 1
	MaxColorIndex = 18
	MaxVolume     = 100
	MaxOpacity    = 100
)

// ErrRange marks an argument-validation failure. CLI front ends match
// it with errors.Is to pick the usage exit code.
var ErrRange = errors.New("value out of range")

// kv is one key=value pair of an envelope body.
type kv struct {
	key string
	val string
}

// Command is the closed set of envelope command variants.
type Command interface {
	// Validate checks ranges and payload sizes before encoding.
	Validate() error

	keyvals() []kv
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s %d outside [%d,%d]: %w", name, v, lo, hi, ErrRange)
	}
	return nil
}

func checkNonNegative(name string, vs ...int) error {
	for _, v := range vs {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %d: %w", name, v, ErrRange)
		}
	}
	return nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// PixelDraw paints one compositor pixel.
type PixelDraw struct {
	X, Y  int
	Color uint32 // packed RGBA
}

func (c PixelDraw) Validate() error {
	return checkNonNegative("pixel coordinate", c.X, c.Y)
}

func (c PixelDraw) keyvals() []kv {
	return []kv{
		{"pixel", "draw"},
		{"pixel_x", itoa(c.X)},
		{"pixel_y", itoa(c.Y)},
		{"pixel_color", fmt.Sprintf("%08x", c.Color)},
	}
}

// PixelClean clears one compositor pixel.
type PixelClean struct {
	X, Y int
}

func (c PixelClean) Validate() error {
	return checkNonNegative("pixel coordinate", c.X, c.Y)
}

func (c PixelClean) keyvals() []kv {
	return []kv{
		{"pixel", "clean"},
		{"pixel_x", itoa(c.X)},
		{"pixel_y", itoa(c.Y)},
	}
}

// PixelRender asks the compositor to flush accumulated pixel writes.
type PixelRender struct{}

func (PixelRender) Validate() error { return nil }

func (PixelRender) keyvals() []kv {
	return []kv{{"pixel", "render"}}
}

// PixelUpload blits a raw RGBA block onto a compositor layer.
type PixelUpload struct {
	X, Y  int
	W, H  int
	Layer int
	Data  []byte // raw RGBA, W*H*4 bytes
}

func (c PixelUpload) Validate() error {
	if err := checkNonNegative("pixels geometry", c.X, c.Y, c.W, c.H); err != nil {
		return err
	}
	if err := checkRange("layer", c.Layer, MinLayer, MaxLayer); err != nil {
		return err
	}
	if len(c.Data) != c.W*c.H*4 {
		return fmt.Errorf("pixel data is %d bytes, want %d (w*h*4): %w",
			len(c.Data), c.W*c.H*4, ErrRange)
	}
	return nil
}

func (c PixelUpload) keyvals() []kv {
	return []kv{
		{"pixels", "upload"},
		{"pixels_x", itoa(c.X)},
		{"pixels_y", itoa(c.Y)},
		{"pixels_w", itoa(c.W)},
		{"pixels_h", itoa(c.H)},
		{"pixels_layer", itoa(c.Layer)},
		{"pixels_data", encodePayload(c.Data)},
	}
}

// FrameUpload replaces a rectangle of the compositor's base frame.
type FrameUpload struct {
	X, Y int
	W, H int
	Data []byte // raw RGBA, W*H*4 bytes
}

func (c FrameUpload) Validate() error {
	if err := checkNonNegative("frame geometry", c.X, c.Y, c.W, c.H); err != nil {
		return err
	}
	if len(c.Data) != c.W*c.H*4 {
		return fmt.Errorf("frame data is %d bytes, want %d (w*h*4): %w",
			len(c.Data), c.W*c.H*4, ErrRange)
	}
	return nil
}

func (c FrameUpload) keyvals() []kv {
	return []kv{
		{"frame", "draw"},
		{"frame_x", itoa(c.X)},
		{"frame_y", itoa(c.Y)},
		{"frame_w", itoa(c.W)},
		{"frame_h", itoa(c.H)},
		{"frame_data", encodePayload(c.Data)},
	}
}

// SpriteDraw stamps a previously cached sprite onto a layer. The id
// refers to the compositor's sprite cache; the caller owns allocation
// and release of ids.
type SpriteDraw struct {
	ID    int
	X, Y  int
	Layer int
}

func (c SpriteDraw) Validate() error {
	if err := checkNonNegative("sprite id", c.ID); err != nil {
		return err
	}
	if err := checkNonNegative("sprite coordinate", c.X, c.Y); err != nil {
		return err
	}
	return checkRange("layer", c.Layer, MinLayer, MaxLayer)
}

func (c SpriteDraw) keyvals() []kv {
	return []kv{
		{"sprite_cache", "draw"},
		{"sprite_id", itoa(c.ID)},
		{"sprite_x", itoa(c.X)},
		{"sprite_y", itoa(c.Y)},
		{"cache_layer", itoa(c.Layer)},
	}
}

// SpriteFree releases a cached sprite id in the compositor.
type SpriteFree struct {
	ID int
}

func (c SpriteFree) Validate() error {
	return checkNonNegative("sprite id", c.ID)
}

func (c SpriteFree) keyvals() []kv {
	return []kv{
		{"sprite_cache", "free"},
		{"sprite_id", itoa(c.ID)},
	}
}

// TextDraw renders text on a compositor layer with a palette color.
type TextDraw struct {
	X, Y  int
	Layer int
	Color int // palette index, 1-18
	Text  []byte
}

func (c TextDraw) Validate() error {
	if err := checkNonNegative("text coordinate", c.X, c.Y); err != nil {
		return err
	}
	if err := checkRange("layer", c.Layer, MinLayer, MaxLayer); err != nil {
		return err
	}
	return checkRange("color", c.Color, MinColorIndex, MaxColorIndex)
}

func (c TextDraw) keyvals() []kv {
	return []kv{
		{"text", "draw"},
		{"text_x", itoa(c.X)},
		{"text_y", itoa(c.Y)},
		{"text_layer", itoa(c.Layer)},
		{"text_color", itoa(c.Color)},
		{"text_data", encodePayload(c.Text)},
	}
}

// SoundPlay starts playback of a sound file on a compositor channel.
type SoundPlay struct {
	Channel int
	Path    string
	Volume  int
}

func (c SoundPlay) Validate() error {
	if err := checkRange("channel", c.Channel, MinChannel, MaxChannel); err != nil {
		return err
	}
	if err := checkRange("volume", c.Volume, 0, MaxVolume); err != nil {
		return err
	}
	if c.Path == "" {
		return fmt.Errorf("sound path is empty: %w", ErrRange)
	}
	return nil
}

func (c SoundPlay) keyvals() []kv {
	return []kv{
		{"sound", "play"},
		{"channel", itoa(c.Channel)},
		{"path", c.Path},
		{"volume", itoa(c.Volume)},
	}
}

// SoundStop stops playback on a compositor channel.
type SoundStop struct {
	Channel int
}

func (c SoundStop) Validate() error {
	return checkRange("channel", c.Channel, MinChannel, MaxChannel)
}

func (c SoundStop) keyvals() []kv {
	return []kv{
		{"sound", "stop"},
		{"channel", itoa(c.Channel)},
	}
}

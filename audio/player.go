// Package audio plays sound files locally through the default speaker.
// The sound tools normally delegate playback to the compositor over
// the wire protocol; this package is the fallback for shells that are
// not attached to one.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// speaker buffer length; short enough that one-shot effects start
// promptly
const bufferInterval = 100 * time.Millisecond

// Play decodes a wav file and plays it synchronously at volume 0-100.
// It returns once playback finishes.
func Play(path string, volume int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sound: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode wav %s: %w", path, err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(bufferInterval)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   Gain(volume),
		Silent:   volume <= 0,
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// Gain maps a 0-100 volume to a base-2 logarithmic gain with unity at
// 100. Each 25 points below full volume halves the loudness.
func Gain(volume int) float64 {
	if volume > 100 {
		volume = 100
	}
	if volume < 0 {
		volume = 0
	}
	return float64(volume-100) / 25.0
}

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlayEmitsEnvelope(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"3", "beep.wav", "50"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"sound=play", "channel=3", "path=beep.wav", "volume=50"} {
		if !strings.Contains(out, want) {
			t.Errorf("envelope missing %q: %q", want, out)
		}
	}
}

func TestChannelOutOfRangeFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"33", "sound.wav", "50"}, &stdout, &stderr)
	if code == 0 {
		t.Fatal("channel 33 accepted")
	}
	if stdout.Len() != 0 {
		t.Errorf("invalid command wrote envelope: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "[1,32]") {
		t.Errorf("diagnostic %q does not name the valid range", stderr.String())
	}
}

func TestMissingArgumentsFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"3"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "Usage") {
		t.Error("no usage text on stderr")
	}
}

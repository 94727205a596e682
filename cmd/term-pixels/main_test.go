package main

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestUploadTwoByTwoZeroBlock(t *testing.T) {
	data := base64.StdEncoding.EncodeToString(make([]byte, 16))

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-x", "0", "-y", "0", "-width", "2", "-height", "2", "-data", data,
	}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "pixels_w=2;pixels_h=2") {
		t.Errorf("envelope missing pixels_w=2;pixels_h=2: %q", out)
	}
	if !strings.HasPrefix(out, "\x1b]") || !strings.HasSuffix(out, "\a") {
		t.Errorf("envelope framing wrong: %q", out)
	}
}

func TestUploadRejectsWrongPayloadLength(t *testing.T) {
	data := base64.StdEncoding.EncodeToString(make([]byte, 15))

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-width", "2", "-height", "2", "-data", data,
	}, &stdout, &stderr)

	if code == 0 {
		t.Fatal("expected non-zero exit")
	}
	if stdout.Len() != 0 {
		t.Errorf("invalid invocation wrote to stdout: %q", stdout.String())
	}
	if stderr.Len() == 0 {
		t.Error("no diagnostic on stderr")
	}
}

func TestUploadRejectsBadBase64(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-width", "1", "-height", "1", "-data", "@@@not-base64@@@",
	}, &stdout, &stderr)

	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout not empty: %q", stdout.String())
	}
}

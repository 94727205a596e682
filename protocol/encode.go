package protocol

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Envelope framing: OSC introducer, private-use identifier, body of
// semicolon-delimited key=value pairs, BEL terminator. The compositor
// filters these sequences out of the text stream before display.
const (
	envelopeIntroducer = "\x1b]"
	envelopeID         = "7770"
	envelopeTerminator = "\a"
)

// encodePayload is the single binary-to-text codec for the protocol:
// standard-alphabet base64 with '=' padding.
func encodePayload(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodePayload reverses encodePayload and checks the decoded length.
// want < 0 skips the length check.
func DecodePayload(s string, want int) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	if want >= 0 && len(data) != want {
		return nil, fmt.Errorf("payload is %d bytes, want %d: %w", len(data), want, ErrRange)
	}
	return data, nil
}

// Encode validates c and writes its envelope to w. Nothing is written
// when validation fails.
func Encode(w io.Writer, c Command) error {
	s, err := EncodeToString(c)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}

// EncodeToString validates c and returns its complete envelope.
func EncodeToString(c Command) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(envelopeIntroducer)
	b.WriteString(envelopeID)
	b.WriteByte(';')
	for i, p := range c.keyvals() {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.val)
	}
	b.WriteString(envelopeTerminator)
	return b.String(), nil
}

// SpriteLoadResult is the value returned by the sprite-load tool: the
// decoded dimensions plus the base64 pixel payload, printed as a
// literal {width,height,"<base64>"} structure so calling scripts can
// cache and replay sprite data without re-reading the file.
type SpriteLoadResult struct {
	Width  int
	Height int
	Data   []byte // raw RGBA, Width*Height*4 bytes
}

func (r SpriteLoadResult) String() string {
	return fmt.Sprintf("{%d,%d,%q}", r.Width, r.Height, encodePayload(r.Data))
}

// Package query implements the synchronous request/response exchanges
// with the terminal compositor: mouse state, cursor position, and a
// one-shot keyboard capture. Every wait is bounded by a single
// one-second window; there is no retry beyond it.
package query

import (
	"fmt"
	"io"
	"time"

	"github.com/halfblock/termgfx/protocol"
	"github.com/halfblock/termgfx/terminal"
)

// ResponseWindow bounds every handshake wait.
const ResponseWindow = time.Second

// MouseState is the parsed reply to a mouse query.
type MouseState struct {
	X, Y       int
	LeftCount  int
	RightCount int
}

// Mouse writes the mouse query envelope to out and blocks on fd for
// the newline-terminated reply.
func Mouse(out io.Writer, fd int) (MouseState, error) {
	if err := protocol.Encode(out, protocol.Control{Kind: protocol.ControlMouse, Value: "query"}); err != nil {
		return MouseState{}, err
	}
	data, status, err := terminal.ReadUntil(fd, "\n", ResponseWindow)
	switch status {
	case terminal.ReadTimeout:
		return MouseState{}, fmt.Errorf("mouse query timed out after %v", ResponseWindow)
	case terminal.ReadErr:
		return MouseState{}, fmt.Errorf("mouse query read: %w", err)
	}
	return ParseMouseReply(string(data))
}

// ParseMouseReply parses the fixed reply line
// "mouse <x> <y> <left_count> <right_count>".
func ParseMouseReply(s string) (MouseState, error) {
	var m MouseState
	n, err := fmt.Sscanf(s, "mouse %d %d %d %d", &m.X, &m.Y, &m.LeftCount, &m.RightCount)
	if err != nil || n != 4 {
		return MouseState{}, fmt.Errorf("malformed mouse reply %q", s)
	}
	return m, nil
}

// Cursor issues a DSR cursor position request and parses the
// ESC [ row ; col R report. Row and column are 1-based.
func Cursor(out io.Writer, fd int) (row, col int, err error) {
	if _, err := io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("write cursor query: %w", err)
	}
	data, status, rerr := terminal.ReadUntil(fd, "R", ResponseWindow)
	switch status {
	case terminal.ReadTimeout:
		return 0, 0, fmt.Errorf("cursor query timed out after %v", ResponseWindow)
	case terminal.ReadErr:
		return 0, 0, fmt.Errorf("cursor query read: %w", rerr)
	}
	return ParseCursorReport(data)
}

// ParseCursorReport parses a cursor position report, tolerating any
// bytes that precede the final ESC [ in the stream.
func ParseCursorReport(data []byte) (row, col int, err error) {
	// Find the last ESC [ so stray input before the report is ignored
	start := -1
	for i := 0; i+1 < len(data); i++ {
		if data[i] == 0x1b && data[i+1] == '[' {
			start = i
		}
	}
	if start < 0 {
		return 0, 0, fmt.Errorf("malformed cursor report %q", data)
	}
	n, err := fmt.Sscanf(string(data[start:]), "\x1b[%d;%dR", &row, &col)
	if err != nil || n != 2 {
		return 0, 0, fmt.Errorf("malformed cursor report %q", data)
	}
	return row, col, nil
}

// CaptureKeys drains all currently pending input from fd and returns
// the decoded token stream. The caller is responsible for holding a
// raw-mode guard around the call.
func CaptureKeys(fd int) ([]string, error) {
	data, err := terminal.Drain(fd)
	if err != nil {
		return nil, fmt.Errorf("drain input: %w", err)
	}
	return terminal.DecodeAll(data), nil
}

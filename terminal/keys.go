// Package terminal manages the raw-mode terminal device: a scoped
// mode guard, bounded poll-based reads, and decoding of raw input
// bytes into named key tokens.
package terminal

import (
	"fmt"
	"unicode/utf8"
)

// Token names for non-printable keys. Printable characters decode to
// themselves.
const (
	TokenEnter     = "ENTER"
	TokenSpace     = "SPACE"
	TokenTab       = "TAB"
	TokenBackspace = "BACKSPACE"
	TokenEscape    = "ESC"
	TokenUp        = "UP"
	TokenDown      = "DOWN"
	TokenLeft      = "LEFT"
	TokenRight     = "RIGHT"
	TokenHome      = "HOME"
	TokenEnd       = "END"
	TokenPageUp    = "PGUP"
	TokenPageDown  = "PGDN"
	TokenInsert    = "INSERT"
	TokenDelete    = "DELETE"
)

// csiTilde maps the numeric parameter of a CSI ~ sequence to a token.
var csiTilde = map[int]string{
	1:  TokenHome,
	2:  TokenInsert,
	3:  TokenDelete,
	4:  TokenEnd,
	5:  TokenPageUp,
	6:  TokenPageDown,
	11: "F1",
	12: "F2",
	13: "F3",
	14: "F4",
	15: "F5",
	17: "F6",
	18: "F7",
	19: "F8",
	20: "F9",
	21: "F10",
	23: "F11",
	24: "F12",
}

// csiLetter maps a CSI final letter (no parameters) to a token.
var csiLetter = map[byte]string{
	'A': TokenUp,
	'B': TokenDown,
	'C': TokenRight,
	'D': TokenLeft,
	'H': TokenHome,
	'F': TokenEnd,
}

// ss3Letter maps the single letter after ESC O to a token.
var ss3Letter = map[byte]string{
	'A': TokenUp,
	'B': TokenDown,
	'C': TokenRight,
	'D': TokenLeft,
	'H': TokenHome,
	'F': TokenEnd,
	'P': "F1",
	'Q': "F2",
	'R': "F3",
	'S': "F4",
}

// DecodeToken decodes the first key token in data and returns the
// token plus the number of bytes consumed. data is a fully drained
// input buffer: truncated escape sequences resolve to ESC rather than
// waiting for more bytes. Consumed is zero only for empty input.
//
// The decoder is the classic three-state machine: start, after-ESC,
// then CSI (ESC [) with numeric parameters or SS3 (ESC O) with a
// single letter. Any unrecognized terminator collapses to ESC.
func DecodeToken(data []byte) (string, int) {
	if len(data) == 0 {
		return "", 0
	}

	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b == '\r' || b == '\n':
		return TokenEnter, 1
	case b == '\t':
		return TokenTab, 1
	case b == ' ':
		return TokenSpace, 1
	case b == 0x7f || b == 0x08:
		return TokenBackspace, 1
	case b < 0x20:
		// Remaining C0 controls: Ctrl+letter
		return fmt.Sprintf("CTRL_%c", 'A'+b-1), 1
	case b >= 0x80:
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			// Invalid start byte, skip it
			return "", 1
		}
		return string(r), size
	default:
		return string(rune(b)), 1
	}
}

func decodeEscape(data []byte) (string, int) {
	if len(data) < 2 {
		return TokenEscape, 1
	}
	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		return decodeSS3(data)
	default:
		return TokenEscape, 1
	}
}

// decodeCSI reads ESC [ <digits;digits> <final>. The parameter count
// and final byte select the token.
func decodeCSI(data []byte) (string, int) {
	num := 0
	sawDigit := false
	afterSemi := false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			if !afterSemi {
				num = num*10 + int(b-'0')
				sawDigit = true
			}
		case b == ';':
			// Modifier parameters are not part of the token set; only
			// the leading parameter selects the key
			afterSemi = true
		case b == '~':
			if tok, ok := csiTilde[num]; ok && sawDigit {
				return tok, i + 1
			}
			return TokenEscape, i + 1
		case b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z':
			if tok, ok := csiLetter[b]; ok {
				return tok, i + 1
			}
			return TokenEscape, i + 1
		default:
			return TokenEscape, i + 1
		}
	}
	// Sequence ran off the end of the drained buffer
	return TokenEscape, len(data)
}

func decodeSS3(data []byte) (string, int) {
	if len(data) < 3 {
		return TokenEscape, len(data)
	}
	if tok, ok := ss3Letter[data[2]]; ok {
		return tok, 3
	}
	return TokenEscape, 3
}

// DecodeAll decodes a drained input buffer into the full token stream.
func DecodeAll(data []byte) []string {
	var tokens []string
	for len(data) > 0 {
		tok, n := DecodeToken(data)
		if n == 0 {
			break
		}
		if tok != "" {
			tokens = append(tokens, tok)
		}
		data = data[n:]
	}
	return tokens
}

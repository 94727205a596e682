//go:build unix

package terminal

import (
	"fmt"

	"golang.org/x/term"
)

// Guard holds the terminal mode captured when raw mode was entered.
// The terminal device is the one shared mutable resource in the whole
// subsystem, so acquisition always snapshots the prior state and
// Restore puts it back exactly once, on whichever exit path runs first.
type Guard struct {
	fd    int
	saved *term.State
}

// AcquireRaw switches fd into raw mode (non-canonical, echo off) and
// returns a guard for restoring the previous mode.
func AcquireRaw(fd int) (*Guard, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal", fd)
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &Guard{fd: fd, saved: saved}, nil
}

// Restore puts the terminal back into its saved mode. Idempotent and
// nil-safe so it can sit in a defer next to signal handlers.
func (g *Guard) Restore() {
	if g == nil || g.saved == nil {
		return
	}
	term.Restore(g.fd, g.saved)
	g.saved = nil
}

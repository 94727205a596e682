// term-keys captures pending keyboard input and prints one token name
// per line: printable characters as themselves, everything else by
// name (ENTER, SPACE, F1..F12, arrows, navigation keys). The terminal
// mode is restored on every exit path, including signals.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/halfblock/termgfx/query"
	"github.com/halfblock/termgfx/terminal"
)

func main() {
	flag.Parse()

	fd := int(os.Stdin.Fd())
	guard, err := terminal.AcquireRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-keys: %v\n", err)
		os.Exit(1)
	}
	defer guard.Restore()

	// The mode must come back even if the process is killed mid-drain
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		guard.Restore()
		os.Exit(1)
	}()

	tokens, err := query.CaptureKeys(fd)
	guard.Restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-keys: %v\n", err)
		os.Exit(1)
	}
	for _, tok := range tokens {
		fmt.Println(tok)
	}
}

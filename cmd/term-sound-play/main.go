// term-sound-play starts playback of a sound file on a compositor
// channel: term-sound-play [-local] <channel> <path> [volume]
//
// With -local the file is decoded and played through the machine's own
// speaker instead, for shells not attached to a compositor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/halfblock/termgfx/audio"
	"github.com/halfblock/termgfx/config"
	"github.com/halfblock/termgfx/protocol"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("term-sound-play", flag.ContinueOnError)
	fs.SetOutput(stderr)
	local := fs.Bool("local", false, "Play through the local speaker instead of the compositor")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: term-sound-play [-local] <channel> <path> [volume]\n")
		fmt.Fprintf(stderr, "  channel in [%d,%d], volume in [0,%d]\n",
			protocol.MinChannel, protocol.MaxChannel, protocol.MaxVolume)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}

	channel, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "term-sound-play: channel %q is not a number\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "term-sound-play: %v\n", err)
		return 1
	}
	volume := cfg.Volume
	if fs.NArg() >= 3 {
		volume, err = strconv.Atoi(fs.Arg(2))
		if err != nil {
			fmt.Fprintf(stderr, "term-sound-play: volume %q is not a number\n", fs.Arg(2))
			fs.Usage()
			return 2
		}
	}

	cmd := protocol.SoundPlay{
		Channel: channel,
		Path:    fs.Arg(1),
		Volume:  volume,
	}
	if err := cmd.Validate(); err != nil {
		fmt.Fprintf(stderr, "term-sound-play: %v\n", err)
		fs.Usage()
		return 2
	}

	if *local {
		if err := audio.Play(cmd.Path, cmd.Volume); err != nil {
			fmt.Fprintf(stderr, "term-sound-play: %v\n", err)
			return 1
		}
		return 0
	}

	if err := protocol.Encode(stdout, cmd); err != nil {
		fmt.Fprintf(stderr, "term-sound-play: %v\n", err)
		return 1
	}
	return 0
}

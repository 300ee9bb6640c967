// Terminal front end. Puts the local terminal in raw mode and runs the game
// with truecolor half-block rendering.
package main

import (
	"bufio"
	"fmt"
	"os"

	xterm "golang.org/x/term"

	"github.com/gbeane/retro-game/internal/audio"
	"github.com/gbeane/retro-game/internal/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := xterm.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = xterm.Restore(fd, oldState)
	}()

	pool := audio.NewGamePool()
	if err := pool.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "audio unavailable, continuing silently: %v\r\n", err)
	}
	defer pool.Close()

	outFd := int(os.Stdout.Fd())
	opts := term.Options{
		Size: func() (int, int, error) {
			return xterm.GetSize(outFd)
		},
		SFX:       pool,
		StepAudio: pool.StepFades,
	}

	reader := bufio.NewReader(os.Stdin)
	if err := term.Run(reader, os.Stdout, opts); err != nil {
		_ = xterm.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

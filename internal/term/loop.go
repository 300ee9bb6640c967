package term

import (
	"io"
	"math/rand"
	"time"

	"github.com/gbeane/retro-game/internal/game"
)

const (
	targetFPS = 60
	frameTime = time.Second / targetFPS

	// rotateRepeatFrames spaces out rotation steps while an arrow key is
	// held so the ship turns at a playable rate.
	rotateRepeatFrames = 2
)

// SizeFunc reports the current terminal size in cells.
type SizeFunc func() (width, height int, err error)

// Options configures a terminal game session.
type Options struct {
	// Size reports the terminal size each frame. Required.
	Size SizeFunc
	// SFX receives sound cues. Nil plays silently.
	SFX game.SFX
	// StepAudio, if set, is called once per frame after the game update.
	StepAudio func()
	// Rand seeds the game's randomness. Nil uses a time-seeded source.
	Rand *rand.Rand
}

// Run drives a complete game session at 60 FPS until the player quits, the
// input stream closes, or an update fails. The terminal must already be in
// raw mode.
func Run(r io.Reader, w io.Writer, opts Options) error {
	g := game.New(opts.Rand, opts.SFX)
	stream := StartStream(r)
	renderer := NewRenderer(w)

	HideCursor(w)
	defer ShowCursor(w)
	ClearScreen(w)
	defer ClearScreen(w)

	var frame int
	var thrustHeld bool
	for {
		frameStart := time.Now()

		keys := stream.Poll()
		if keys.Quit {
			return nil
		}
		if keys.Left && frame%rotateRepeatFrames == 0 {
			g.HandleKey(game.KeyLeft, true)
		}
		if keys.Right && frame%rotateRepeatFrames == 0 {
			g.HandleKey(game.KeyRight, true)
		}
		if keys.Up != thrustHeld {
			thrustHeld = keys.Up
			g.HandleKey(game.KeyUp, thrustHeld)
		}
		if keys.Fire {
			g.HandleKey(game.KeyFire, true)
		}
		if keys.Any && !keys.Left && !keys.Right && !keys.Up && !keys.Fire {
			g.HandleKey(game.KeyAny, true)
		}

		if err := g.Update(); err != nil {
			return err
		}
		if opts.StepAudio != nil {
			opts.StepAudio()
		}

		termW, termH, err := opts.Size()
		if err != nil {
			return err
		}
		if err := renderer.Frame(g.FrameBuffer(), termW, termH); err != nil {
			return err
		}

		frame++
		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

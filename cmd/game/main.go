// Desktop front end. Opens a scaled window, renders the frame buffer every
// tick, and forwards keyboard input to the game.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gbeane/retro-game/internal/audio"
	"github.com/gbeane/retro-game/internal/config"
	gamepkg "github.com/gbeane/retro-game/internal/game"
)

// rotateRepeatFrames spaces out rotation steps while an arrow key is held so
// the ship turns at a playable rate.
const rotateRepeatFrames = 2

type app struct {
	game  *gamepkg.Game
	pool  *audio.Pool
	frame int

	img     *ebiten.Image
	scratch []byte
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	if left && a.frame%rotateRepeatFrames == 0 {
		a.game.HandleKey(gamepkg.KeyLeft, true)
	}
	if right && a.frame%rotateRepeatFrames == 0 {
		a.game.HandleKey(gamepkg.KeyRight, true)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		a.game.HandleKey(gamepkg.KeyUp, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowUp) || inpututil.IsKeyJustReleased(ebiten.KeyW) {
		a.game.HandleKey(gamepkg.KeyUp, false)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.HandleKey(gamepkg.KeyFire, true)
	}

	// Any other fresh key dismisses the splash screen.
	if keys := inpututil.AppendJustPressedKeys(nil); len(keys) > 0 {
		a.game.HandleKey(gamepkg.KeyAny, true)
	}

	if err := a.game.Update(); err != nil {
		return err
	}
	if a.pool != nil {
		a.pool.StepFades()
	}
	a.frame++
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	fb := a.game.FrameBuffer()
	if a.img == nil {
		a.img = ebiten.NewImage(fb.Width(), fb.Height())
		a.scratch = make([]byte, fb.Width()*fb.Height()*4)
	}

	src := fb.Pixels()
	dst := a.scratch
	for i, j := 0, 0; i+3 <= len(src); i, j = i+3, j+4 {
		dst[j+0] = src[i+0]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xFF
	}

	a.img.WritePixels(a.scratch)
	screen.DrawImage(a.img, nil)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	scale := config.GetEnvInt("GAME_SCALE", 5)
	if scale < 1 {
		scale = 1
	}

	pool := audio.NewGamePool()
	if err := pool.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "audio unavailable, continuing silently: %v\n", err)
	}
	defer pool.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	a := &app{
		game: gamepkg.New(rng, pool),
		pool: pool,
	}

	ebiten.SetWindowTitle("Pixel Blaster")
	ebiten.SetWindowSize(config.ScreenWidth*scale, config.ScreenHeight*scale)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(a); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

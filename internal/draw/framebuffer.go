// Package draw implements the software renderer: a fixed-size RGB frame
// buffer plus routines that rasterize entities, bitmap-font text and overlay
// screens into it. Front ends display the buffer however they like; nothing
// in this package touches a display.
package draw

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gbeane/retro-game/internal/config"
	"github.com/gbeane/retro-game/internal/object"
)

// charSpacing is the fixed gap between glyphs in pixels.
const charSpacing = 2

// Black is the background color.
var Black = object.Color{0, 0, 0}

// explosionPalette holds the colors the exploding ship flickers through.
var explosionPalette = []object.Color{
	{255, 255, 255},
	{255, 200, 0},
	{255, 120, 0},
	{255, 60, 0},
}

// FrameBuffer is a fixed-size RGB pixel grid (height × width × 3 bytes,
// row-major). It is updated in place once per frame and read by a display
// front end.
type FrameBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewFrameBuffer creates a frame buffer with the configured screen size.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		width:  config.ScreenWidth,
		height: config.ScreenHeight,
		pix:    make([]uint8, config.ScreenHeight*config.ScreenWidth*3),
	}
}

// Width returns the buffer width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Pixels returns the underlying RGB bytes. The slice is owned by the frame
// buffer and rewritten each frame; callers must treat it as read-only.
func (fb *FrameBuffer) Pixels() []uint8 { return fb.pix }

// At returns the color of the pixel at (x, y). Out-of-bounds reads return
// black.
func (fb *FrameBuffer) At(x, y int) object.Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Black
	}
	i := (y*fb.width + x) * 3
	return object.Color{fb.pix[i], fb.pix[i+1], fb.pix[i+2]}
}

// Clear fills the whole buffer with a single color.
func (fb *FrameBuffer) Clear(c object.Color) {
	if c == Black {
		clear(fb.pix)
		return
	}
	for i := 0; i < len(fb.pix); i += 3 {
		fb.pix[i] = c[0]
		fb.pix[i+1] = c[1]
		fb.pix[i+2] = c[2]
	}
}

// setPixel writes one pixel, silently dropping out-of-bounds coordinates.
func (fb *FrameBuffer) setPixel(x, y int, c object.Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	i := (y*fb.width + x) * 3
	fb.pix[i] = c[0]
	fb.pix[i+1] = c[1]
	fb.pix[i+2] = c[2]
}

// DrawTextRightAligned renders text ending at x, drawing glyphs right to
// left with fixed spacing. Pixels falling outside the buffer are clipped.
func (fb *FrameBuffer) DrawTextRightAligned(x, y int, text string, font Font, c object.Color) {
	xOffset := x
	runes := []rune(text)
	for i := len(runes) - 1; i >= 0; i-- {
		pm := font.Glyph(runes[i])
		xOffset -= pm.Width()
		for py, row := range pm {
			for px, v := range row {
				if v != 0 {
					fb.setPixel(xOffset+px, y+py, c)
				}
			}
		}
		xOffset -= charSpacing
	}
}

// DrawTextCentered renders text centered on x by measuring its total width
// and reusing the right-aligned path.
func (fb *FrameBuffer) DrawTextCentered(x, y int, text string, font Font, c object.Color) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	width := charSpacing * (len(runes) - 1)
	for _, ch := range runes {
		width += font.Glyph(ch).Width()
	}
	fb.DrawTextRightAligned(x+width/2, y, text, font, c)
}

// drawSprite rasterizes a pixel shape rotated about its own center by the
// heading, translated to (x, y). The rotation runs in screen space (y grows
// downward), matching the simulation's angle convention. Pixels are clipped
// to the play area below the HUD margin.
func (fb *FrameBuffer) drawSprite(pm object.Pixmap, x, y float64, angle int, c object.Color) {
	fb.drawSpriteFunc(pm, x, y, angle, func(int, int) (object.Color, bool) {
		return c, true
	})
}

// drawSpriteFunc is the shared rasterizer; pick decides per source pixel
// whether and in which color to draw it.
func (fb *FrameBuffer) drawSpriteFunc(pm object.Pixmap, x, y float64, angle int, pick func(px, py int) (object.Color, bool)) {
	theta := object.Radians(angle)
	sin, cos := math.Sin(theta), math.Cos(theta)

	cx := pm.Width() / 2
	cy := pm.Height() / 2

	for py, row := range pm {
		for px, v := range row {
			if v == 0 {
				continue
			}
			c, ok := pick(px, py)
			if !ok {
				continue
			}

			relX := float64(px - cx)
			relY := float64(py - cy)
			rx := relX*cos - relY*sin
			ry := relX*sin + relY*cos

			fx := int(math.Round(x + rx))
			fy := int(math.Round(y + ry))

			// Clip to the play area; the HUD band stays clean.
			if fy >= config.TopMargin && fy < fb.height && fx >= 0 && fx < fb.width {
				i := (fy*fb.width + fx) * 3
				fb.pix[i] = c[0]
				fb.pix[i+1] = c[1]
				fb.pix[i+2] = c[2]
			}
		}
	}
}

// DrawShip renders the ship rotated to its heading. While the ship is
// exploding it instead renders a randomized flicker: a random subset of the
// hull pixels in a color drawn from the explosion palette, re-randomized
// every frame.
func (fb *FrameBuffer) DrawShip(ship *object.Ship, rng *rand.Rand) {
	if !ship.IsExploding() {
		fb.drawSprite(ship.Pixmap(), ship.X, ship.Y, ship.Angle, object.ShipColor)
		return
	}

	c := explosionPalette[rng.Intn(len(explosionPalette))]
	fb.drawSpriteFunc(ship.Pixmap(), ship.X, ship.Y, ship.Angle, func(int, int) (object.Color, bool) {
		return c, rng.Float64() < 0.6
	})
}

// DrawAsteroid renders an asteroid's size-specific shape in its color.
// Asteroids do not rotate.
func (fb *FrameBuffer) DrawAsteroid(a *object.Asteroid) {
	fb.drawSprite(a.Pixmap(), a.X, a.Y, 0, a.Color)
}

// DrawProjectile renders a projectile's streak aligned with its heading.
func (fb *FrameBuffer) DrawProjectile(p *object.Projectile) {
	fb.drawSprite(p.Pixmap(), p.X, p.Y, p.Angle, object.ProjectileColor)
}

// DrawScore renders the score right-aligned at the screen's horizontal
// center inside the HUD band. A score outside [0, MaxScore] means the
// saturating arithmetic upstream is broken, so it is reported as an error
// rather than clamped here.
func (fb *FrameBuffer) DrawScore(score int) error {
	if score < 0 || score > config.MaxScore {
		return fmt.Errorf("draw: score %d out of range 0-%d", score, config.MaxScore)
	}
	fb.DrawTextRightAligned(fb.width/2, config.ScoreTopMargin, fmt.Sprintf("%d", score), ScoreFont, object.Color{255, 0, 0})
	return nil
}

// DrawLives renders the remaining lives right-aligned near the screen's
// right edge inside the HUD band.
func (fb *FrameBuffer) DrawLives(lives int) error {
	if lives < 0 || lives > config.MaxLives {
		return fmt.Errorf("draw: lives %d out of range 0-%d", lives, config.MaxLives)
	}
	fb.DrawTextRightAligned(fb.width-config.LivesRightMargin, config.ScoreTopMargin, fmt.Sprintf("%d", lives), ScoreFont, object.Color{255, 0, 0})
	return nil
}

// DrawSplashScreen renders the title screen overlay.
func (fb *FrameBuffer) DrawSplashScreen() {
	fb.DrawTextCentered(fb.width/2, 20, "PIXEL BLASTER", TextFont, object.Color{255, 165, 0})
	fb.DrawTextCentered(fb.width/2, fb.height/2, "PRESS ANY KEY TO START", TextFont, object.Color{255, 255, 255})
	fb.DrawTextCentered(fb.width/2, fb.height/2+50, "COPYRIGHT 2025 GLEN BEANE", TextFont, object.Color{128, 128, 128})
}

// DrawGameOver renders the game-over overlay.
func (fb *FrameBuffer) DrawGameOver() {
	fb.DrawTextCentered(fb.width/2, fb.height/2, "GAME OVER", TextFont, object.Color{255, 255, 255})
}

// Package object contains the game entities: the player ship, asteroids and
// projectiles. Entities are plain structs updated once per frame by the game
// orchestrator; they never draw themselves.
package object

import (
	"math"

	"github.com/gbeane/retro-game/internal/config"
)

// Color is an RGB triple as stored in the frame buffer.
type Color [3]uint8

// Pixmap is a small 1-bit sprite: rows of 0/1 cells rasterized by the
// renderer. All entity shapes are fixed pixmaps rotated at draw time.
type Pixmap [][]uint8

// Width returns the pixmap width in pixels.
func (p Pixmap) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Height returns the pixmap height in pixels.
func (p Pixmap) Height() int {
	return len(p)
}

// WrapPosition applies the toroidal screen-wrap rule shared by all entities.
// x wraps modulo the screen width. The HUD band at the top is not part of the
// play area, so leaving through it re-enters just inside the bottom edge, and
// leaving through the bottom re-enters just below the HUD band.
func WrapPosition(x, y float64) (float64, float64) {
	x = math.Mod(x, config.ScreenWidth)
	if x < 0 {
		x += config.ScreenWidth
	}

	if y < config.TopMargin {
		y = config.ScreenHeight - 1
	} else if y > config.ScreenHeight {
		y = config.TopMargin + 1
	}

	return x, y
}

// Radians converts a heading in degrees to radians. Headings are screen-space
// angles: 0 points up, positive rotates clockwise.
func Radians(degrees int) float64 {
	return float64(degrees) * math.Pi / 180
}

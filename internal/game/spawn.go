package game

import (
	"math"

	"github.com/gbeane/retro-game/internal/config"
	"github.com/gbeane/retro-game/internal/object"
)

// spawnWave places count asteroids in the edge band of the play area. Each
// asteroid lands on a uniformly chosen side, with size drawn from a fixed
// distribution favoring large rocks and a random muted color.
func (g *Game) spawnWave(count int) {
	for i := 0; i < count; i++ {
		var x, y float64

		switch g.rng.Intn(4) {
		case 0: // top
			x = float64(g.rng.Intn(config.ScreenWidth))
			y = float64(config.TopMargin + g.rng.Intn(config.EdgeMargin))
		case 1: // bottom
			x = float64(g.rng.Intn(config.ScreenWidth))
			y = float64(config.ScreenHeight - config.EdgeMargin + g.rng.Intn(config.EdgeMargin))
		case 2: // left
			x = float64(g.rng.Intn(config.EdgeMargin))
			y = float64(config.TopMargin + g.rng.Intn(config.ScreenHeight-config.TopMargin))
		case 3: // right
			x = float64(config.ScreenWidth - config.EdgeMargin + g.rng.Intn(config.EdgeMargin))
			y = float64(config.TopMargin + g.rng.Intn(config.ScreenHeight-config.TopMargin))
		}

		g.asteroids = append(g.asteroids, object.NewAsteroid(g.rng, x, y, g.randomSize(), g.randomColor()))
	}
}

// randomSize draws a size class: 60% large, 30% medium, 10% small.
func (g *Game) randomSize() object.AsteroidSize {
	switch r := g.rng.Float64(); {
	case r < 0.6:
		return object.AsteroidLarge
	case r < 0.9:
		return object.AsteroidMedium
	default:
		return object.AsteroidSmall
	}
}

// randomColor picks a muted RGB color, each channel in [64, 192).
func (g *Game) randomColor() object.Color {
	return object.Color{
		uint8(64 + g.rng.Intn(128)),
		uint8(64 + g.rng.Intn(128)),
		uint8(64 + g.rng.Intn(128)),
	}
}

// splitAsteroid queues the children of a destroyed asteroid: large breaks
// into two mediums, medium into two smalls, small leaves nothing. Children
// travel along the parent's direction rotated ±SplitAngle, rescaled to a
// freshly sampled speed for their size. When two children would exceed the
// asteroid cap, only one spawns, with a randomly chosen rotation sign.
func (g *Game) splitAsteroid(parent *object.Asteroid) {
	childSize, ok := parent.Size.Smaller()
	if !ok {
		return
	}

	speed := math.Hypot(parent.VX, parent.VY)
	if speed == 0 {
		// Degenerate parent velocity; give the children random headings.
		g.pending = append(g.pending,
			object.NewAsteroid(g.rng, parent.X, parent.Y, childSize, parent.Color))
		return
	}
	ux, uy := parent.VX/speed, parent.VY/speed

	if g.activeAsteroids()+2 > config.MaxAsteroids {
		sign := 1.0
		if g.rng.Intn(2) == 0 {
			sign = -1.0
		}
		g.spawnChild(parent, ux, uy, sign*config.SplitAngle, childSize)
		return
	}

	g.spawnChild(parent, ux, uy, config.SplitAngle, childSize)
	g.spawnChild(parent, ux, uy, -config.SplitAngle, childSize)
}

// spawnChild queues one split child traveling along the parent's unit
// direction rotated by angleDeg.
func (g *Game) spawnChild(parent *object.Asteroid, ux, uy, angleDeg float64, size object.AsteroidSize) {
	theta := angleDeg * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	rx := ux*cos - uy*sin
	ry := ux*sin + uy*cos

	speed := object.RandomAsteroidSpeed(g.rng, size)
	g.pending = append(g.pending,
		object.NewAsteroidWithVelocity(parent.X, parent.Y, rx*speed, ry*speed, size, parent.Color))
}

// activeAsteroids counts asteroids that will still exist after the current
// collision pass, including children already queued.
func (g *Game) activeAsteroids() int {
	n := len(g.pending)
	for _, a := range g.asteroids {
		if !a.IsDestroyed() {
			n++
		}
	}
	return n
}

package object

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gbeane/retro-game/internal/config"
)

// AsteroidSize is the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall AsteroidSize = iota + 1
	AsteroidMedium
	AsteroidLarge
)

// String returns the size name for logs and test failures.
func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return fmt.Sprintf("AsteroidSize(%d)", int(s))
	}
}

// Smaller returns the next size down when an asteroid of this size splits,
// or false for the smallest size, which leaves no children.
func (s AsteroidSize) Smaller() (AsteroidSize, bool) {
	switch s {
	case AsteroidLarge:
		return AsteroidMedium, true
	case AsteroidMedium:
		return AsteroidSmall, true
	case AsteroidSmall:
		return 0, false
	default:
		panic("object: unknown asteroid size " + s.String())
	}
}

var asteroidPixmapSmall = Pixmap{
	{0, 0, 1, 1, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0},
	{1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1},
	{0, 0, 1, 1, 1, 0, 0},
	{0, 0, 1, 1, 0, 0, 0},
}

var asteroidPixmapMedium = Pixmap{
	{0, 0, 0, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 0, 1, 1, 1, 0, 0, 0},
}

var asteroidPixmapLarge = Pixmap{
	{0, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0},
}

// Speed ranges in pixels per frame. Larger asteroids drift slower.
const (
	speedMinLarge  = 0.1
	speedMaxLarge  = 0.15
	speedMinMedium = 0.15
	speedMaxMedium = 0.2
	speedMinSmall  = 0.2
	speedMaxSmall  = 0.3
)

// RandomAsteroidSpeed samples a speed from the size-dependent range.
func RandomAsteroidSpeed(rng *rand.Rand, size AsteroidSize) float64 {
	switch size {
	case AsteroidLarge:
		return speedMinLarge + rng.Float64()*(speedMaxLarge-speedMinLarge)
	case AsteroidMedium:
		return speedMinMedium + rng.Float64()*(speedMaxMedium-speedMinMedium)
	case AsteroidSmall:
		return speedMinSmall + rng.Float64()*(speedMaxSmall-speedMinSmall)
	default:
		panic("object: unknown asteroid size " + size.String())
	}
}

// Asteroid is a free-floating destructible entity.
type Asteroid struct {
	X, Y      float64
	VX, VY    float64
	Size      AsteroidSize
	Color     Color
	destroyed bool
}

// NewAsteroid creates an asteroid with a random heading and a speed drawn
// from the size-dependent range.
func NewAsteroid(rng *rand.Rand, x, y float64, size AsteroidSize, color Color) *Asteroid {
	speed := RandomAsteroidSpeed(rng, size)
	angle := rng.Float64() * 2 * math.Pi
	return &Asteroid{
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Size:  size,
		Color: color,
	}
}

// NewAsteroidWithVelocity creates an asteroid with an explicit velocity.
// Used for split children, whose velocity derives from the parent.
func NewAsteroidWithVelocity(x, y, vx, vy float64, size AsteroidSize, color Color) *Asteroid {
	return &Asteroid{X: x, Y: y, VX: vx, VY: vy, Size: size, Color: color}
}

// Pixmap returns the fixed pixel shape for the asteroid's size.
func (a *Asteroid) Pixmap() Pixmap {
	switch a.Size {
	case AsteroidSmall:
		return asteroidPixmapSmall
	case AsteroidMedium:
		return asteroidPixmapMedium
	case AsteroidLarge:
		return asteroidPixmapLarge
	default:
		panic("object: unknown asteroid size " + a.Size.String())
	}
}

// Points returns the score awarded for destroying this asteroid. Small
// asteroids are the fastest and hardest to hit, so they award the most.
func (a *Asteroid) Points() int {
	switch a.Size {
	case AsteroidLarge:
		return config.ScoreHitLarge
	case AsteroidMedium:
		return config.ScoreHitMedium
	case AsteroidSmall:
		return config.ScoreHitSmall
	default:
		panic("object: unknown asteroid size " + a.Size.String())
	}
}

// Update integrates the asteroid's position by one frame and wraps it.
func (a *Asteroid) Update() {
	a.X += a.VX
	a.Y += a.VY
	a.X, a.Y = WrapPosition(a.X, a.Y)
}

// MarkDestroyed flags the asteroid for removal at the end of the current
// collision pass.
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed reports whether the asteroid has been flagged for removal.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}

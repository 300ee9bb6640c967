package object

import (
	"math"

	"github.com/gbeane/retro-game/internal/config"
)

// projectilePixmap is a short vertical streak; the renderer rotates it to
// match the projectile's heading.
var projectilePixmap = Pixmap{
	{1},
	{1},
}

// ProjectileColor is the tracer color used by the renderer.
var ProjectileColor = Color{255, 255, 255}

// Projectile is a short-lived shot fired from the ship's gun point. Heading
// and speed are fixed at spawn; only the lifetime counter and position change.
type Projectile struct {
	X, Y            float64
	Angle           int // Heading in degrees, copied from the ship at fire time
	FramesRemaining int
}

// NewProjectile spawns a projectile at the firing ship's muzzle, traveling
// along the ship's current heading.
func NewProjectile(ship *Ship) *Projectile {
	x, y := ship.GunPosition()
	return &Projectile{
		X:               x,
		Y:               y,
		Angle:           ship.Angle,
		FramesRemaining: config.ProjectileLifetime,
	}
}

// IsAlive reports whether the projectile still has lifetime remaining.
// Expired projectiles are inert and must be filtered out before the next
// collision pass.
func (p *Projectile) IsAlive() bool {
	return p.FramesRemaining > 0
}

// Pixmap returns the projectile's fixed pixel shape.
func (p *Projectile) Pixmap() Pixmap {
	return projectilePixmap
}

// Update advances the projectile by one frame: decrement lifetime, integrate
// along the heading at fixed speed, wrap. No-op once expired.
func (p *Projectile) Update() {
	if !p.IsAlive() {
		return
	}

	p.FramesRemaining--

	theta := Radians(p.Angle)
	p.X += config.ProjectileSpeed * math.Sin(theta)
	p.Y -= config.ProjectileSpeed * math.Cos(theta)
	p.X, p.Y = WrapPosition(p.X, p.Y)
}

package object

import (
	"math"

	"github.com/gbeane/retro-game/internal/config"
)

// shipPixmap is the ship hull pointing up; the renderer rotates it by the
// current heading.
var shipPixmap = Pixmap{
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 1, 1, 1, 0},
	{0, 1, 1, 1, 0},
	{1, 1, 1, 1, 1},
}

// ShipColor is the hull color used by the renderer.
var ShipColor = Color{208, 112, 112}

// gunOffset is the muzzle position in ship-local coordinates, just past the
// nose. Projectiles spawn here after rotating the offset by the heading.
var gunOffset = [2]float64{0, -3}

// Ship is the player entity.
type Ship struct {
	X, Y      float64
	VX, VY    float64
	Angle     int // Heading in degrees, wraps into [0,360); 0 points up
	Thrusting bool
	Lives     int
	// Exploding counts down the frames remaining in the explosion sequence.
	// While it is nonzero the ship is frozen: velocity stays zero and Update
	// is a no-op.
	Exploding int
}

// NewShip creates the player ship centered on the screen with a full set of
// lives. A session creates exactly one ship; it is reset, never replaced.
func NewShip() *Ship {
	return &Ship{
		X:     config.ScreenWidth / 2,
		Y:     config.ScreenHeight / 2,
		Lives: config.InitialLives,
	}
}

// Pixmap returns the ship's fixed pixel shape.
func (s *Ship) Pixmap() Pixmap {
	return shipPixmap
}

// IsExploding reports whether the explosion sequence is still playing.
func (s *Ship) IsExploding() bool {
	return s.Exploding > 0
}

// RotateLeft turns the heading counter-clockwise by one step.
func (s *Ship) RotateLeft() {
	s.Angle = ((s.Angle-config.RotateStep)%360 + 360) % 360
}

// RotateRight turns the heading clockwise by one step.
func (s *Ship) RotateRight() {
	s.Angle = (s.Angle + config.RotateStep) % 360
}

// SetThrusting toggles continuous acceleration along the heading.
func (s *Ship) SetThrusting(on bool) {
	s.Thrusting = on
}

// Update advances the ship's physics by one frame: thrust acceleration,
// speed clamping, friction, position integration and screen wrap. No-op
// while the ship is exploding.
func (s *Ship) Update() {
	if s.IsExploding() {
		return
	}

	if s.Thrusting {
		theta := Radians(s.Angle)
		s.VX += config.ThrustPower * math.Sin(theta)
		s.VY -= config.ThrustPower * math.Cos(theta)
	}

	// Clamp speed by uniform scaling so the direction is preserved.
	speed := math.Hypot(s.VX, s.VY)
	if speed > config.MaxSpeed {
		scale := config.MaxSpeed / speed
		s.VX *= scale
		s.VY *= scale
	}

	s.VX *= config.Friction
	s.VY *= config.Friction

	s.X += s.VX
	s.Y += s.VY
	s.X, s.Y = WrapPosition(s.X, s.Y)
}

// HandleCollision starts the explosion sequence: one life is lost (floored
// at zero) and the ship freezes in place. A collision while already
// exploding is a no-op, so a single crash costs at most one life.
func (s *Ship) HandleCollision() {
	if s.IsExploding() {
		return
	}
	if s.Lives > 0 {
		s.Lives--
	}
	s.VX = 0
	s.VY = 0
	s.Exploding = config.ExplosionDuration
}

// UpdateExplosion advances the explosion countdown by one frame.
func (s *Ship) UpdateExplosion() {
	if s.Exploding > 0 {
		s.Exploding--
	}
}

// Reset recenters the ship for a respawn: screen center, zero velocity,
// heading up, no thrust. Called only after an explosion has fully played out
// and lives remain.
func (s *Ship) Reset() {
	s.X = config.ScreenWidth / 2
	s.Y = config.ScreenHeight / 2
	s.VX = 0
	s.VY = 0
	s.Angle = 0
	s.Exploding = 0
	s.Thrusting = false
}

// GunPosition returns the muzzle location in world space: the local gun
// offset rotated by the current heading, added to the ship position.
func (s *Ship) GunPosition() (float64, float64) {
	theta := Radians(s.Angle)
	sin, cos := math.Sin(theta), math.Cos(theta)
	dx := gunOffset[0]*cos - gunOffset[1]*sin
	dy := gunOffset[0]*sin + gunOffset[1]*cos
	return s.X + dx, s.Y + dy
}

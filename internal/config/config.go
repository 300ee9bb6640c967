// Package config centralizes the game's fixed tuning constants.
// All tunable parameters are set at process start; nothing here is
// runtime-reconfigurable.
package config

// Screen layout (pixels).
const (
	ScreenWidth  = 192
	ScreenHeight = 160
	// TopMargin reserves a HUD band at the top of the screen for score and
	// lives. It is not part of the play area: entities are clipped against it
	// and the wrap rule treats it as the upper edge.
	TopMargin        = 15
	ScoreTopMargin   = 3
	LivesRightMargin = 10
)

// Ship.
const (
	MaxSpeed          = 10.0  // Speed cap in pixels per frame
	ThrustPower       = 0.05  // Acceleration per frame while thrusting
	Friction          = 0.995 // Multiplicative velocity decay per frame
	RotateStep        = 5     // Degrees per rotate call
	ExplosionDuration = 30    // Frames the ship explosion plays for
	RespawnDelay      = 60    // Frames between explosion end and respawn
	InitialLives      = 3
	MaxLives          = 99
)

// Projectiles.
const (
	ProjectileSpeed    = 3.0 // Pixels per frame
	ProjectileLifetime = 45  // Frames before a projectile expires
	FireCooldown       = 10  // Minimum frames between shots
)

// Asteroids.
const (
	InitialAsteroids = 8  // Wave size at level 1; each level adds one
	MaxAsteroids     = 16 // Hard cap on concurrent asteroids
	EdgeMargin       = 40 // Width of the spawn band along the screen edges
	SplitAngle       = 20 // Degrees each split child deviates from the parent
)

// Scoring. Larger asteroids are easier targets, so they award fewer points.
const (
	MaxScore          = 999999
	ScoreHitLarge     = 20
	ScoreHitMedium    = 50
	ScoreHitSmall     = 100
	BonusLifeInterval = 10000 // Score between extra-life awards
)

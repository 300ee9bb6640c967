// Package game implements the top-level orchestrator: it owns every entity,
// drives the per-frame update order, handles input, scoring, level
// progression and the lives/respawn state machine, and draws each frame into
// the shared frame buffer.
//
// The package is single-threaded and frame-driven: a host ticks Update once
// per frame (~60 Hz) and forwards key events via HandleKey from the same
// logical thread. Frame-lifetime counters (explosion, respawn delay,
// projectile lifetime, fire cooldown) are plain decrementing counts, not
// wall-clock timers.
package game

import (
	"math/rand"
	"time"

	"github.com/gbeane/retro-game/internal/config"
	"github.com/gbeane/retro-game/internal/draw"
	"github.com/gbeane/retro-game/internal/object"
)

// Game is one game session. All entity collections are owned exclusively by
// the session and mutated only by its per-frame Update.
type Game struct {
	ship        *object.Ship
	asteroids   []*object.Asteroid
	projectiles []*object.Projectile
	pending     []*object.Asteroid // split children queued during a collision pass

	fb  *draw.FrameBuffer
	rng *rand.Rand
	sfx SFX

	score            int
	level            int
	nextBonusLife    int
	respawnCountdown int
	fireCooldown     int
	showSplash       bool
}

// New creates a session showing the splash screen, with the first asteroid
// wave already placed. rng seeds all spawn and split randomness; pass nil
// for a time-seeded generator. sfx may be nil for silent play.
func New(rng *rand.Rand, sfx SFX) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sfx == nil {
		sfx = NopSFX{}
	}

	g := &Game{
		ship:          object.NewShip(),
		fb:            draw.NewFrameBuffer(),
		rng:           rng,
		sfx:           sfx,
		level:         1,
		nextBonusLife: config.BonusLifeInterval,
		showSplash:    true,
	}
	g.spawnWave(config.InitialAsteroids)
	return g
}

// FrameBuffer returns the session's frame buffer. The host reads its pixels
// after each Update; the buffer is reused across frames.
func (g *Game) FrameBuffer() *draw.FrameBuffer { return g.fb }

// Width returns the screen width in pixels.
func (g *Game) Width() int { return g.fb.Width() }

// Height returns the screen height in pixels.
func (g *Game) Height() int { return g.fb.Height() }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the ship's remaining lives.
func (g *Game) Lives() int { return g.ship.Lives }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// GameOver reports whether the session has run out of lives.
func (g *Game) GameOver() bool { return g.ship.Lives <= 0 }

// Update advances the session by one frame and redraws the frame buffer:
// projectiles first, then asteroids, then the ship branch, then the HUD.
// The returned error only reports broken score/lives invariants, which
// cannot be recovered locally.
func (g *Game) Update() error {
	g.fb.Clear(draw.Black)

	if g.showSplash {
		g.fb.DrawSplashScreen()
		return nil
	}

	if g.fireCooldown > 0 {
		g.fireCooldown--
	}

	g.updateProjectiles()
	g.updateAsteroids()
	g.updateShip()

	if err := g.fb.DrawLives(g.ship.Lives); err != nil {
		return err
	}
	if err := g.fb.DrawScore(g.score); err != nil {
		return err
	}

	// Field cleared: next level, fresh wave. One extra asteroid per level,
	// never past the asteroid cap.
	if g.ship.Lives > 0 && len(g.asteroids) == 0 {
		g.level++
		g.spawnWave(min(config.InitialAsteroids+g.level-1, config.MaxAsteroids))
	}

	return nil
}

// updateShip runs the ship branch of the frame: exploding, waiting to
// respawn, out of lives, or alive.
func (g *Game) updateShip() {
	switch {
	case g.ship.IsExploding():
		g.fb.DrawShip(g.ship, g.rng)
		g.ship.UpdateExplosion()

		// Explosion finished with lives left: hold the ship off screen for
		// the respawn delay, then it reappears at center.
		if !g.ship.IsExploding() && g.ship.Lives > 0 {
			g.respawnCountdown = config.RespawnDelay
			g.ship.Reset()
		}

	case g.respawnCountdown > 0:
		// No ship exists during the delay: not drawn, not simulated, immune.
		g.respawnCountdown--

	case g.ship.Lives <= 0:
		g.fb.DrawGameOver()

	default:
		g.ship.Update()
		if g.shipHitsAsteroid() {
			g.ship.HandleCollision()
			g.sfx.StopLoop(SFXThrust)
			g.sfx.Play(SFXShipExplosion)
		}
		g.fb.DrawShip(g.ship, g.rng)
	}
}

// updateProjectiles advances, draws and collision-checks every live
// projectile, then removes destroyed asteroids and adds their split
// children. Removal is two-pass (mark, then filter) so iteration never
// mutates the slices it walks.
func (g *Game) updateProjectiles() {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Update()
		if !p.IsAlive() {
			continue
		}

		if a := g.projectileHit(p); a != nil {
			a.MarkDestroyed()
			g.splitAsteroid(a)
			g.addScore(a.Points())
			g.sfx.Play(SFXExplosion)
			continue // the projectile is consumed by the hit
		}

		g.fb.DrawProjectile(p)
		kept = append(kept, p)
	}
	g.projectiles = kept

	g.removeDestroyedAsteroids()
}

// updateAsteroids advances and draws the asteroid field.
func (g *Game) updateAsteroids() {
	for _, a := range g.asteroids {
		a.Update()
		g.fb.DrawAsteroid(a)
	}
}

// removeDestroyedAsteroids filters out marked asteroids and appends the
// split children queued during the collision pass.
func (g *Game) removeDestroyedAsteroids() {
	kept := g.asteroids[:0]
	for _, a := range g.asteroids {
		if !a.IsDestroyed() {
			kept = append(kept, a)
		}
	}
	g.asteroids = kept

	g.asteroids = append(g.asteroids, g.pending...)
	g.pending = g.pending[:0]
}

// addScore adds points with saturation at MaxScore, then awards one bonus
// life per threshold crossed. The threshold check loops so a large point
// jump can grant several lives at once, capped at MaxLives.
func (g *Game) addScore(points int) {
	g.score += points
	if g.score > config.MaxScore {
		g.score = config.MaxScore
	}
	for g.score >= g.nextBonusLife && g.ship.Lives < config.MaxLives {
		g.ship.Lives++
		g.nextBonusLife += config.BonusLifeInterval
	}
}

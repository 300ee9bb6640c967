package game

import (
	"github.com/gbeane/retro-game/internal/object"
	"github.com/gbeane/retro-game/internal/physics"
)

// shipHitsAsteroid scans the asteroid field for a bounding-box overlap with
// the ship. The first overlap wins; there is no need to find the closest.
func (g *Game) shipHitsAsteroid() bool {
	pm := g.ship.Pixmap()
	shipBox := physics.BoundingBox(g.ship.X, g.ship.Y, pm.Width(), pm.Height(), physics.DefaultShrink)

	for _, a := range g.asteroids {
		if a.IsDestroyed() {
			continue
		}
		apm := a.Pixmap()
		box := physics.BoundingBox(a.X, a.Y, apm.Width(), apm.Height(), physics.DefaultShrink)
		if physics.Overlap(shipBox, box) {
			return true
		}
	}
	return false
}

// projectileHit returns the first asteroid whose bounding box contains the
// projectile's position, or nil. Each projectile destroys at most one
// asteroid per frame.
func (g *Game) projectileHit(p *object.Projectile) *object.Asteroid {
	for _, a := range g.asteroids {
		if a.IsDestroyed() {
			continue
		}
		apm := a.Pixmap()
		box := physics.BoundingBox(a.X, a.Y, apm.Width(), apm.Height(), physics.ProjectileShrink)
		if physics.PointInBox(p.X, p.Y, box) {
			return a
		}
	}
	return nil
}

package game

import (
	"github.com/gbeane/retro-game/internal/config"
	"github.com/gbeane/retro-game/internal/object"
)

// Key is the abstract input alphabet delivered by a host front end. Hosts
// translate raw keyboard events into these and are responsible for key
// repeat: rotation is discrete per call, so LEFT/RIGHT presses must be
// re-issued at a short interval while held.
type Key int

const (
	// KeyAny is any key press not mapped below; it only dismisses the splash
	// screen.
	KeyAny Key = iota + 1
	KeyLeft
	KeyRight
	KeyUp
	KeyFire
)

// HandleKey processes one key event. It is called by the host between
// frames, on the same logical thread as Update, and only flips flags and
// counters the next Update consumes.
func (g *Game) HandleKey(key Key, pressed bool) {
	// Any key press dismisses the splash screen.
	if g.showSplash {
		if pressed {
			g.showSplash = false
		}
		return
	}

	switch key {
	case KeyLeft:
		if pressed {
			g.ship.RotateLeft()
		}
	case KeyRight:
		if pressed {
			g.ship.RotateRight()
		}
	case KeyUp:
		g.ship.SetThrusting(pressed)
		if pressed && g.shipActive() {
			g.sfx.StartLoop(SFXThrust)
		} else if !pressed {
			g.sfx.StopLoop(SFXThrust)
		}
	case KeyFire:
		if pressed {
			g.fire()
		}
	case KeyAny:
		// Only meaningful on the splash screen, handled above.
	}
}

// fire spawns a projectile at the ship's gun point, gated by the cooldown
// and the ship's state: no shots while exploding, waiting to respawn, or out
// of lives.
func (g *Game) fire() {
	if g.fireCooldown > 0 || !g.shipActive() {
		return
	}
	g.projectiles = append(g.projectiles, object.NewProjectile(g.ship))
	g.fireCooldown = config.FireCooldown
	g.sfx.Play(SFXFire)
}

// shipActive reports whether the ship is alive and controllable this frame.
func (g *Game) shipActive() bool {
	return !g.ship.IsExploding() && g.respawnCountdown == 0 && g.ship.Lives > 0
}

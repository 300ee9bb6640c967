package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gbeane/retro-game/internal/config"
	"github.com/gbeane/retro-game/internal/object"
)

// recordSFX records cues for assertions.
type recordSFX struct {
	played []string
	loops  map[string]bool
}

func (r *recordSFX) Play(name string) { r.played = append(r.played, name) }

func (r *recordSFX) StartLoop(name string) {
	if r.loops == nil {
		r.loops = make(map[string]bool)
	}
	r.loops[name] = true
}

func (r *recordSFX) StopLoop(name string) {
	if r.loops == nil {
		r.loops = make(map[string]bool)
	}
	r.loops[name] = false
}

func (r *recordSFX) playedCount(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

func newTestGame(seed int64, sfx SFX) *Game {
	g := New(rand.New(rand.NewSource(seed)), sfx)
	g.HandleKey(KeyAny, true) // dismiss splash
	return g
}

func TestNewGameState(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), nil)

	if !g.showSplash {
		t.Error("new game should show the splash screen")
	}
	if g.Score() != 0 || g.Level() != 1 || g.Lives() != config.InitialLives {
		t.Errorf("unexpected initial state: score=%d level=%d lives=%d",
			g.Score(), g.Level(), g.Lives())
	}
	if len(g.asteroids) != config.InitialAsteroids {
		t.Errorf("first wave should have %d asteroids, got %d",
			config.InitialAsteroids, len(g.asteroids))
	}
	if g.GameOver() {
		t.Error("new game should not be over")
	}
}

func TestSplashFreezesSimulation(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), nil)

	a := g.asteroids[0]
	x, y := a.X, a.Y
	for i := 0; i < 10; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if a.X != x || a.Y != y {
		t.Error("asteroids should not move while the splash is shown")
	}

	// Releases don't dismiss the splash; presses do.
	g.HandleKey(KeyUp, false)
	if !g.showSplash {
		t.Error("key release should not dismiss the splash")
	}
	g.HandleKey(KeyUp, true)
	if g.showSplash {
		t.Error("key press should dismiss the splash")
	}
	// The dismissing press is consumed, not applied.
	if g.ship.Thrusting {
		t.Error("the dismissing key should not also control the ship")
	}

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if a.X == x && a.Y == y {
		t.Error("asteroids should move once the game starts")
	}
}

func TestFireCooldown(t *testing.T) {
	sfx := &recordSFX{}
	g := newTestGame(1, sfx)

	g.HandleKey(KeyFire, true)
	if len(g.projectiles) != 1 {
		t.Fatalf("first shot should spawn a projectile, got %d", len(g.projectiles))
	}
	if sfx.playedCount(SFXFire) != 1 {
		t.Error("firing should play the fire cue")
	}

	// A second shot inside the cooldown window is swallowed.
	g.HandleKey(KeyFire, true)
	if len(g.projectiles) != 1 {
		t.Errorf("cooldown should block the second shot, got %d projectiles", len(g.projectiles))
	}

	// Park the ship well away from the field so nothing interferes.
	g.ship.X, g.ship.Y = 5, float64(config.ScreenHeight-5)
	g.asteroids = []*object.Asteroid{
		object.NewAsteroidWithVelocity(180, 30, 0, 0, object.AsteroidLarge, object.Color{90, 90, 90}),
	}
	for i := 0; i < config.FireCooldown; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	g.HandleKey(KeyFire, true)
	if sfx.playedCount(SFXFire) != 2 {
		t.Error("firing should work again after the cooldown")
	}
}

func TestThrustLoopFollowsKey(t *testing.T) {
	sfx := &recordSFX{}
	g := newTestGame(1, sfx)

	g.HandleKey(KeyUp, true)
	if !g.ship.Thrusting || !sfx.loops[SFXThrust] {
		t.Error("thrust press should set the flag and start the loop")
	}
	g.HandleKey(KeyUp, false)
	if g.ship.Thrusting || sfx.loops[SFXThrust] {
		t.Error("thrust release should clear the flag and stop the loop")
	}
}

func TestProjectileDestroysAsteroid(t *testing.T) {
	sfx := &recordSFX{}
	g := newTestGame(1, sfx)

	// One large asteroid straight below the ship, drifting slowly.
	g.asteroids = []*object.Asteroid{
		object.NewAsteroidWithVelocity(96, 120, 0.1, 0, object.AsteroidLarge, object.Color{90, 90, 90}),
	}
	g.ship.Angle = 180
	g.HandleKey(KeyFire, true)

	for i := 0; i < 20 && g.Score() == 0; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if g.Score() != config.ScoreHitLarge {
		t.Fatalf("destroying a large asteroid should score %d, got %d",
			config.ScoreHitLarge, g.Score())
	}
	if sfx.playedCount(SFXExplosion) != 1 {
		t.Error("the hit should play the explosion cue")
	}
	if len(g.projectiles) != 0 {
		t.Error("the projectile should be consumed by the hit")
	}

	// The parent broke into two mediums heading ±SplitAngle off its course.
	if len(g.asteroids) != 2 {
		t.Fatalf("large asteroid should split into two, got %d", len(g.asteroids))
	}
	var angles []float64
	for _, c := range g.asteroids {
		if c.Size != object.AsteroidMedium {
			t.Errorf("child should be medium, got %v", c.Size)
		}
		speed := math.Hypot(c.VX, c.VY)
		if speed < 0.15 || speed >= 0.2 {
			t.Errorf("child speed %v outside the medium range", speed)
		}
		// Angle relative to the parent's +x direction.
		angles = append(angles, math.Atan2(c.VY, c.VX)*180/math.Pi)
	}
	if len(angles) == 2 {
		lo, hi := angles[0], angles[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if math.Abs(lo+config.SplitAngle) > 1e-6 || math.Abs(hi-config.SplitAngle) > 1e-6 {
			t.Errorf("children should deviate ±%d degrees, got %v and %v",
				config.SplitAngle, lo, hi)
		}
	}
}

func TestProjectileHitFrameIsExact(t *testing.T) {
	g := newTestGame(1, nil)

	// Stationary large asteroid 40 pixels below the ship. The muzzle sits 3
	// pixels past the nose and the shot advances 3 pixels per frame, so it
	// reaches y=113 on its 10th frame. The asteroid's projectile box spans
	// y in [113, 127) (15 pixels shrunk by 0.9 about y=120), so the 10th
	// frame is the first whose rounded position falls inside the box.
	g.asteroids = []*object.Asteroid{
		object.NewAsteroidWithVelocity(96, 120, 0, 0, object.AsteroidLarge, object.Color{90, 90, 90}),
	}
	g.ship.Angle = 180
	g.HandleKey(KeyFire, true)

	for frame := 1; frame <= 9; frame++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
		if g.Score() != 0 {
			t.Fatalf("projectile hit early on frame %d", frame)
		}
		if g.asteroids[0].IsDestroyed() {
			t.Fatalf("asteroid destroyed early on frame %d", frame)
		}
	}

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.Score() != config.ScoreHitLarge {
		t.Errorf("projectile should hit exactly on frame 10, score %d", g.Score())
	}
}

func TestSmallAsteroidLeavesNothing(t *testing.T) {
	g := newTestGame(1, nil)

	a := object.NewAsteroidWithVelocity(100, 100, 0.2, 0, object.AsteroidSmall, object.Color{90, 90, 90})
	g.asteroids = []*object.Asteroid{a}
	a.MarkDestroyed()
	g.splitAsteroid(a)
	if len(g.pending) != 0 {
		t.Errorf("small asteroid should leave no children, got %d", len(g.pending))
	}
}

func TestSplitRespectsAsteroidCap(t *testing.T) {
	g := newTestGame(1, nil)

	g.asteroids = nil
	for i := 0; i < config.MaxAsteroids; i++ {
		g.asteroids = append(g.asteroids,
			object.NewAsteroidWithVelocity(float64(10+i*10), 100, 0.12, 0, object.AsteroidLarge, object.Color{90, 90, 90}))
	}

	parent := g.asteroids[0]
	parent.MarkDestroyed()
	g.splitAsteroid(parent)
	if len(g.pending) != 1 {
		t.Errorf("split at the cap should spawn one child, got %d", len(g.pending))
	}
}

func TestDegenerateParentVelocity(t *testing.T) {
	g := newTestGame(1, nil)

	a := object.NewAsteroidWithVelocity(100, 100, 0, 0, object.AsteroidLarge, object.Color{90, 90, 90})
	g.asteroids = []*object.Asteroid{a}
	a.MarkDestroyed()
	g.splitAsteroid(a)
	if len(g.pending) != 1 {
		t.Fatalf("stationary parent should still leave one child, got %d", len(g.pending))
	}
	c := g.pending[0]
	if c.Size != object.AsteroidMedium {
		t.Errorf("child should be medium, got %v", c.Size)
	}
	if c.VX == 0 && c.VY == 0 {
		t.Error("child of a stationary parent should get a random heading")
	}
}

func TestScoreSaturates(t *testing.T) {
	g := newTestGame(1, nil)
	g.nextBonusLife = 2 * config.MaxScore // keep bonus lives out of this test

	g.score = config.MaxScore - 10
	g.addScore(100)
	if g.Score() != config.MaxScore {
		t.Errorf("score should saturate at %d, got %d", config.MaxScore, g.Score())
	}
	g.addScore(100)
	if g.Score() != config.MaxScore {
		t.Errorf("score should stay at the cap, got %d", g.Score())
	}
}

func TestBonusLives(t *testing.T) {
	g := newTestGame(1, nil)

	g.score = config.BonusLifeInterval - 10
	lives := g.Lives()
	g.addScore(20)
	if g.Lives() != lives+1 {
		t.Errorf("crossing the bonus threshold should award a life, got %d", g.Lives())
	}
	if g.nextBonusLife != 2*config.BonusLifeInterval {
		t.Errorf("next threshold should advance, got %d", g.nextBonusLife)
	}

	// One large jump can cross several thresholds at once.
	g.score = 3*config.BonusLifeInterval - 10
	g.nextBonusLife = config.BonusLifeInterval
	lives = g.Lives()
	g.addScore(20)
	if g.Lives() != lives+3 {
		t.Errorf("triple threshold jump should award three lives, got %d", g.Lives())
	}

	// Lives cap at MaxLives even when thresholds keep crossing.
	g.ship.Lives = config.MaxLives
	g.score = g.nextBonusLife - 1
	g.addScore(10)
	if g.Lives() != config.MaxLives {
		t.Errorf("lives should cap at %d, got %d", config.MaxLives, g.Lives())
	}
}

func TestShipCollisionSequence(t *testing.T) {
	sfx := &recordSFX{}
	g := newTestGame(1, sfx)
	g.HandleKey(KeyUp, true)

	// Park an asteroid on top of the ship.
	g.asteroids = []*object.Asteroid{
		object.NewAsteroidWithVelocity(g.ship.X, g.ship.Y, 0, 0, object.AsteroidLarge, object.Color{90, 90, 90}),
	}
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !g.ship.IsExploding() {
		t.Fatal("overlapping asteroid should explode the ship")
	}
	if g.Lives() != config.InitialLives-1 {
		t.Errorf("crash should cost one life, got %d", g.Lives())
	}
	if sfx.playedCount(SFXShipExplosion) != 1 {
		t.Error("crash should play the ship explosion cue")
	}
	if sfx.loops[SFXThrust] {
		t.Error("crash should stop the thrust loop")
	}

	// Move the asteroid away so the respawned ship is safe.
	g.asteroids[0].X, g.asteroids[0].Y = 10, 140

	// Explosion plays out, then the respawn delay begins with the ship reset.
	for i := 0; g.ship.IsExploding() && i < config.ExplosionDuration+5; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if g.respawnCountdown != config.RespawnDelay {
		t.Fatalf("respawn delay should start at %d, got %d", config.RespawnDelay, g.respawnCountdown)
	}
	if g.ship.X != config.ScreenWidth/2 || g.ship.Y != config.ScreenHeight/2 {
		t.Error("ship should reset to center for the respawn")
	}

	// No shots during the delay.
	g.HandleKey(KeyFire, true)
	if len(g.projectiles) != 0 {
		t.Error("firing should be blocked during the respawn delay")
	}

	for i := 0; g.respawnCountdown > 0 && i < config.RespawnDelay+5; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if g.respawnCountdown != 0 {
		t.Fatal("respawn delay should have elapsed")
	}
	if !g.shipActive() {
		t.Error("ship should be back in play after the delay")
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(1, nil)

	g.ship.Lives = 1
	g.asteroids = []*object.Asteroid{
		object.NewAsteroidWithVelocity(g.ship.X, g.ship.Y, 0, 0, object.AsteroidLarge, object.Color{90, 90, 90}),
	}
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	for i := 0; g.ship.IsExploding() && i < config.ExplosionDuration+5; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}

	if !g.GameOver() {
		t.Fatal("losing the last life should end the game")
	}
	if g.respawnCountdown != 0 {
		t.Error("there is no respawn after the last life")
	}
	g.HandleKey(KeyFire, true)
	if len(g.projectiles) != 0 {
		t.Error("firing should be blocked after game over")
	}

	// Updates keep running (asteroids drift behind the game over screen).
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
}

func TestWaveProgression(t *testing.T) {
	g := newTestGame(1, nil)

	// Keep the ship clear of the incoming wave.
	g.ship.X, g.ship.Y = 96, 80
	g.asteroids = nil
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.Level() != 2 {
		t.Errorf("clearing the field should advance to level 2, got %d", g.Level())
	}
	if len(g.asteroids) != config.InitialAsteroids+1 {
		t.Errorf("level 2 wave should have %d asteroids, got %d",
			config.InitialAsteroids+1, len(g.asteroids))
	}

	// No new wave while the final explosion plays out.
	g.ship.Lives = 0
	g.asteroids = nil
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if len(g.asteroids) != 0 {
		t.Error("no wave should spawn after game over")
	}
}

func TestWaveSizeNeverExceedsCap(t *testing.T) {
	g := newTestGame(1, nil)
	g.ship.X, g.ship.Y = 96, 80

	// Clear the field repeatedly; by level 10 the per-level growth would
	// reach 17 asteroids without the cap.
	for level := 2; level <= 12; level++ {
		g.asteroids = nil
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
		if g.Level() != level {
			t.Fatalf("expected level %d, got %d", level, g.Level())
		}
		want := config.InitialAsteroids + level - 1
		if want > config.MaxAsteroids {
			want = config.MaxAsteroids
		}
		if len(g.asteroids) != want {
			t.Fatalf("level %d wave should have %d asteroids, got %d",
				level, want, len(g.asteroids))
		}
		if len(g.asteroids) > config.MaxAsteroids {
			t.Fatalf("level %d wave spawned %d concurrent asteroids, above the cap of %d",
				level, len(g.asteroids), config.MaxAsteroids)
		}
	}
}

func TestSpawnWavePlacement(t *testing.T) {
	g := newTestGame(7, nil)

	g.asteroids = nil
	g.spawnWave(50)
	for _, a := range g.asteroids {
		if a.X < 0 || a.X >= config.ScreenWidth {
			t.Errorf("spawn x=%v out of bounds", a.X)
		}
		if a.Y < config.TopMargin || a.Y >= config.ScreenHeight {
			t.Errorf("spawn y=%v outside the play area", a.Y)
		}
		inXBand := a.X < config.EdgeMargin || a.X >= config.ScreenWidth-config.EdgeMargin
		inYBand := a.Y < config.TopMargin+config.EdgeMargin || a.Y >= config.ScreenHeight-config.EdgeMargin
		if !inXBand && !inYBand {
			t.Errorf("spawn (%v, %v) outside the edge band", a.X, a.Y)
		}
		for _, ch := range a.Color {
			if ch < 64 || ch >= 192 {
				t.Errorf("spawn color channel %d outside the muted range", ch)
			}
		}
	}
}

func TestRandomSizeDistribution(t *testing.T) {
	g := newTestGame(11, nil)

	counts := map[object.AsteroidSize]int{}
	const n = 3000
	for i := 0; i < n; i++ {
		counts[g.randomSize()]++
	}
	// Loose bounds; exact shares are 60/30/10.
	if f := float64(counts[object.AsteroidLarge]) / n; f < 0.5 || f > 0.7 {
		t.Errorf("large share %v far from 0.6", f)
	}
	if f := float64(counts[object.AsteroidMedium]) / n; f < 0.2 || f > 0.4 {
		t.Errorf("medium share %v far from 0.3", f)
	}
	if f := float64(counts[object.AsteroidSmall]) / n; f < 0.05 || f > 0.15 {
		t.Errorf("small share %v far from 0.1", f)
	}
}

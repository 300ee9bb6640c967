package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/gbeane/retro-game/internal/game"
)

// NewGamePool returns a pool with the game's cues registered. The speaker
// is not opened; callers decide whether to Init.
func NewGamePool() *Pool {
	p := NewPool()
	p.AddEffect(game.SFXFire, NewFireBlip())
	p.AddEffect(game.SFXExplosion, NewExplosionBurst(350*time.Millisecond, 0.6))
	p.AddEffect(game.SFXShipExplosion, NewExplosionBurst(800*time.Millisecond, 0.8))
	p.AddLoopedEffect(game.SFXThrust, NewThrustRumble())
	return p
}

// finite returns a mono-duplicated streamer that produces d worth of
// samples from gen and then ends.
func finite(d time.Duration, gen func() float64) beep.Streamer {
	remaining := sampleRate.N(d)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if remaining <= 0 {
			return 0, false
		}
		n := len(samples)
		if n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			v := gen()
			samples[i][0] = v
			samples[i][1] = v
		}
		remaining -= n
		return n, true
	})
}

// NewFireBlip synthesizes the shot cue: a short square blip sweeping down
// from 880 Hz with a linear decay.
func NewFireBlip() beep.Streamer {
	const dur = 90 * time.Millisecond
	total := float64(sampleRate.N(dur))
	var t, phase float64

	return finite(dur, func() float64 {
		progress := t / total
		t++

		freq := 880 - 440*progress
		phase += freq / float64(sampleRate)

		v := 0.4
		if math.Mod(phase, 1) >= 0.5 {
			v = -0.4
		}
		return v * (1 - progress)
	})
}

// NewExplosionBurst synthesizes an explosion cue: white noise with an
// exponential decay over d, peaking at amplitude amp.
func NewExplosionBurst(d time.Duration, amp float64) beep.Streamer {
	total := float64(sampleRate.N(d))
	var t float64

	return finite(d, func() float64 {
		progress := t / total
		t++
		return (rand.Float64()*2 - 1) * amp * math.Exp(-4*progress)
	})
}

// NewThrustRumble synthesizes one loopable cycle of the engine rumble:
// low-passed noise at a steady level. Loop volume is shaped by the pool's
// fade ramp, not here.
func NewThrustRumble() beep.Streamer {
	var lp float64

	return finite(500*time.Millisecond, func() float64 {
		// One-pole low-pass keeps only the low rumble of the noise.
		lp += 0.05 * ((rand.Float64()*2 - 1) - lp)
		return lp * 2
	})
}

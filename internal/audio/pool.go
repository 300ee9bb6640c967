// Package audio implements the game's sound effect pool on top of beep.
// One-shot cues are pre-rendered into buffers so triggering them is cheap
// and overlapping triggers never cut each other off. Looped cues fade in and
// out through a per-effect volume ramp advanced by the frame clock
// (StepFades), keeping the whole system single-threaded and deterministic
// rather than leaning on timer threads.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Loop fade tuning: ~150ms ramps at 60 Hz, to a 0.6 target gain.
const (
	fadeFrames = 9
	loopGain   = 0.6
)

var bufferFormat = beep.Format{
	SampleRate:  sampleRate,
	NumChannels: 2,
	Precision:   2,
}

// loopState is the fade state machine for one looped effect. gain ramps
// toward target by step once per frame.
type loopState struct {
	ctrl    *beep.Ctrl
	vol     *effects.Volume
	gain    float64
	target  float64
	step    float64
	added   bool // ctrl has been handed to the mixer
	playing bool
}

// Pool plays named one-shot and looped sound effects. The zero of the fade
// machinery works without an initialized speaker, so the pool degrades to
// silence (and stays testable) when audio output is unavailable.
type Pool struct {
	mu          sync.Mutex
	initialized bool
	mixer       *beep.Mixer
	oneShots    map[string]*beep.Buffer
	loops       map[string]*loopState
}

// NewPool creates an empty pool. Call Init to open the speaker.
func NewPool() *Pool {
	return &Pool{
		mixer:    &beep.Mixer{},
		oneShots: make(map[string]*beep.Buffer),
		loops:    make(map[string]*loopState),
	}
}

// Init opens the speaker and starts the mixer. Safe to call once; effects
// registered before or after both work.
func (p *Pool) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences and shuts down audio output.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// AddEffect registers a one-shot cue by rendering the streamer into a
// buffer. Duplicate names are ignored.
func (p *Pool) AddEffect(name string, s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.oneShots[name]; ok {
		return
	}
	if _, ok := p.loops[name]; ok {
		return
	}
	buf := beep.NewBuffer(bufferFormat)
	buf.Append(s)
	p.oneShots[name] = buf
}

// AddLoopedEffect registers a looped cue. The rendered buffer loops
// indefinitely behind a volume control that the fade state machine drives;
// it starts paused and silent.
func (p *Pool) AddLoopedEffect(name string, s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.loops[name]; ok {
		return
	}
	if _, ok := p.oneShots[name]; ok {
		return
	}

	buf := beep.NewBuffer(bufferFormat)
	buf.Append(s)

	vol := &effects.Volume{
		Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())),
		Base:     2,
		Silent:   true,
	}
	p.loops[name] = &loopState{
		ctrl: &beep.Ctrl{Streamer: vol, Paused: true},
		vol:  vol,
	}
}

// Play triggers a one-shot cue. Unknown names and an uninitialized speaker
// are both silent no-ops.
func (p *Pool) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.oneShots[name]
	if !ok {
		return
	}

	shot := buf.Streamer(0, buf.Len())
	speaker.Lock()
	p.mixer.Add(shot)
	speaker.Unlock()
}

// StartLoop begins fading a looped cue in toward its target gain. Calling
// it while already playing just retargets the fade.
func (p *Pool) StartLoop(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.loops[name]
	if !ok {
		return
	}

	l.target = loopGain
	l.step = (l.target - l.gain) / fadeFrames
	l.playing = true

	if p.initialized {
		speaker.Lock()
		if !l.added {
			p.mixer.Add(l.ctrl)
			l.added = true
		}
		l.ctrl.Paused = false
		speaker.Unlock()
	}
}

// StopLoop begins fading a looped cue out; playback pauses when the ramp
// reaches zero.
func (p *Pool) StopLoop(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.loops[name]
	if !ok {
		return
	}
	l.target = 0
	l.step = (l.target - l.gain) / fadeFrames
}

// StepFades advances every loop's fade ramp by one frame. The host calls
// this once per tick, right after Game.Update.
func (p *Pool) StepFades() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, l := range p.loops {
		if l.gain == l.target {
			continue
		}

		l.gain += l.step
		if (l.step > 0 && l.gain >= l.target) || (l.step < 0 && l.gain <= l.target) {
			l.gain = l.target
		}
		if l.gain <= 0 && l.target <= 0 {
			l.playing = false
		}
		p.applyGain(l)
	}
}

// applyGain pushes a loop's current gain into its beep volume control.
// effects.Volume is exponential: the multiplier is Base**Volume, so the
// linear gain maps through log2.
func (p *Pool) applyGain(l *loopState) {
	if !p.initialized {
		return
	}

	speaker.Lock()
	if l.gain <= 0 {
		l.vol.Silent = true
		if !l.playing {
			l.ctrl.Paused = true
		}
	} else {
		l.vol.Silent = false
		l.vol.Volume = math.Log2(l.gain)
	}
	speaker.Unlock()
}

// LoopGain returns the current fade gain of a looped cue, for tests and
// diagnostics.
func (p *Pool) LoopGain(name string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.loops[name]; ok {
		return l.gain
	}
	return 0
}

// LoopPlaying reports whether a looped cue is active (fading in, steady, or
// fading out but not yet silent).
func (p *Pool) LoopPlaying(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.loops[name]; ok {
		return l.playing
	}
	return false
}

package game

// Sound cue names the game emits. An audio front end maps these to actual
// playback; the game only triggers them.
const (
	SFXFire          = "fire"
	SFXExplosion     = "explosion"
	SFXShipExplosion = "ship_explosion"
	SFXThrust        = "thrust"
)

// SFX is the audio trigger surface consumed by the game. Play fires a
// one-shot cue; StartLoop and StopLoop control looped cues (the thrust
// rumble). Implementations must be safe to call every frame.
type SFX interface {
	Play(name string)
	StartLoop(name string)
	StopLoop(name string)
}

// NopSFX discards all cues. Used by tests and headless front ends.
type NopSFX struct{}

func (NopSFX) Play(string)      {}
func (NopSFX) StartLoop(string) {}
func (NopSFX) StopLoop(string)  {}

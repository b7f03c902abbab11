// Package audio plays the game's background music and sound effects.
// Games talk to a Sink; the platform decides whether that sink is a real
// synthesizer on the local speaker or silence (SSH sessions, --sound=false,
// machines without an audio device).
package audio

// Sound identifies a sound the game can play.
type Sound int

const (
	SoundMusic Sound = iota // Looping background music
	SoundDeath              // One-shot death effect
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundMusic:
		return "music"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Sink receives play/stop requests. Play restarts a sound from the
// beginning if it is already playing.
type Sink interface {
	Play(Sound)
	Stop(Sound)
}

// Silent is a Sink that discards every request.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Sound) {}

// Stop does nothing.
func (Silent) Stop(Sound) {}

// Event is one request recorded by a Recorder.
type Event struct {
	Sound Sound
	Play  bool // false means Stop
}

// Recorder is a Sink that remembers requests in order. Used by tests.
type Recorder struct {
	Events []Event
}

// Play records a play request.
func (r *Recorder) Play(s Sound) {
	r.Events = append(r.Events, Event{Sound: s, Play: true})
}

// Stop records a stop request.
func (r *Recorder) Stop(s Sound) {
	r.Events = append(r.Events, Event{Sound: s, Play: false})
}

// Playing reports whether the last request for s was a play.
func (r *Recorder) Playing(s Sound) bool {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Sound == s {
			return r.Events[i].Play
		}
	}
	return false
}

// Count returns how many play (or stop) requests were recorded for s.
func (r *Recorder) Count(s Sound, play bool) int {
	n := 0
	for _, e := range r.Events {
		if e.Sound == s && e.Play == play {
			n++
		}
	}
	return n
}

// Reset forgets all recorded requests.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

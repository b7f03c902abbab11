package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	musicStep  = 180 * time.Millisecond
	musicLevel = 0.6
	deathLevel = 0.9
)

// Synth plays synthesized sounds on the local speaker through one mixer.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	playing     map[Sound]*beep.Ctrl
	initialized bool
}

// NewSynth creates a synth. Nothing is heard until Initialize succeeds.
func NewSynth() *Synth {
	return &Synth{
		mixer:   &beep.Mixer{},
		playing: make(map[Sound]*beep.Ctrl),
	}
}

// Initialize opens the speaker and starts the mixer.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play starts a sound, restarting it if it is already playing.
func (s *Synth) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	var stream beep.Streamer
	switch snd {
	case SoundMusic:
		stream = withVolume(NewMusicGenerator(sampleRate, musicStep), musicLevel)
	case SoundDeath:
		stream = withVolume(newDeathSound(sampleRate), deathLevel)
	default:
		return
	}

	ctrl := &beep.Ctrl{Streamer: stream}

	speaker.Lock()
	if old := s.playing[snd]; old != nil {
		old.Streamer = nil // Mixer drops a Ctrl with no streamer
	}
	s.mixer.Add(ctrl)
	speaker.Unlock()

	s.playing[snd] = ctrl
}

// Stop silences a sound if it is playing.
func (s *Synth) Stop(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctrl := s.playing[snd]
	if ctrl == nil {
		return
	}
	delete(s.playing, snd)

	if !s.initialized {
		return
	}
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// Close stops every sound and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	clear(s.playing)

	speaker.Close()
	s.initialized = false
}

// Closer is a Sink that holds an output device.
type Closer interface {
	Sink
	Close()
}

// nopCloser adapts Silent to Closer.
type nopCloser struct{ Silent }

func (nopCloser) Close() {}

// Open returns a Synth on the local speaker, or a silent sink when sound is
// disabled or no device is available.
func Open(enabled bool, logger *log.Logger) Closer {
	if !enabled {
		return nopCloser{}
	}

	synth := NewSynth()
	if err := synth.Initialize(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		}
		return nopCloser{}
	}
	return synth
}

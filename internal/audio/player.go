package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/fixonz/malakainvadors/internal/engine"
)

// Player reacts to engine events with sound.
type Player interface {
	Handle(events []engine.Event)
	Close()
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Handle([]engine.Event) {}
func (Silent) Close()                {}

// Speaker plays effects through the system audio device. All effects are
// mixed into a single stream started at init.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// maxVoices caps concurrently playing effects.
const maxVoices = 8

// NewSpeaker initializes the audio device. The speaker is process-wide;
// call it at most once.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

// Handle queues the effects for events.
func (s *Speaker) Handle(events []engine.Event) {
	sounds := SoundsFor(events)
	if len(sounds) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, snd := range sounds {
		if s.mixer.Len() >= maxVoices {
			return
		}
		if st := Build(snd, s.volume); st != nil {
			s.mixer.Add(st)
		}
	}
}

// Close silences all playing effects and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// New returns a Speaker when enabled and the device opens, otherwise a
// Silent player. The returned error explains why sound is off.
func New(enabled bool, volume float64) (Player, error) {
	if !enabled {
		return Silent{}, nil
	}
	s, err := NewSpeaker(volume)
	if err != nil {
		return Silent{}, err
	}
	return s, nil
}

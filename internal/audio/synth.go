package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the output rate used for every effect.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator returns a finite tone of the given shape. A non-zero sweep
// bends the pitch linearly over time.
func NewOscillator(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), 7)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := max(o.freq+o.sweep*t, 20)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out linearly.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with an attack and release over total duration d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq, sweep float64, d time.Duration, wave Wave) beep.Streamer {
	osc := NewOscillator(freq, sweep, d, wave, SampleRate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, SampleRate)
}

// chime plays a pure sine note via the beep generator, cut to d.
func chime(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return tone(freq, 0, d, WaveSine)
	}
	return NewEnvelope(beep.Take(SampleRate.N(d), sine), d, 5*time.Millisecond, d/3, SampleRate)
}

// Build synthesizes s at the given master volume. It returns nil for
// SoundNone.
func Build(s Sound, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundShoot:
		st = tone(880, -2400, 90*time.Millisecond, WaveSquare)
	case SoundEnemyShoot:
		st = withVolume(tone(330, -900, 110*time.Millisecond, WaveSaw), 0.5)
	case SoundEnemyHit:
		st = tone(440, -600, 60*time.Millisecond, WaveSquare)
	case SoundExplosion:
		st = beep.Mix(
			tone(0, 0, 220*time.Millisecond, WaveNoise),
			withVolume(tone(120, -300, 220*time.Millisecond, WaveSine), 0.6),
		)
	case SoundPlayerHit:
		st = beep.Seq(
			tone(220, -200, 120*time.Millisecond, WaveSaw),
			tone(0, 0, 200*time.Millisecond, WaveNoise),
		)
	case SoundShieldBlock:
		st = chime(1320, 120*time.Millisecond)
	case SoundBarrier:
		st = withVolume(tone(0, 0, 150*time.Millisecond, WaveNoise), 0.6)
	case SoundPowerUp:
		st = beep.Seq(chime(660, 70*time.Millisecond), chime(880, 70*time.Millisecond), chime(1320, 110*time.Millisecond))
	case SoundPowerDown:
		st = beep.Seq(chime(880, 80*time.Millisecond), chime(660, 120*time.Millisecond))
	case SoundLevelUp:
		st = beep.Seq(chime(523.25, 90*time.Millisecond), chime(659.25, 90*time.Millisecond), chime(783.99, 90*time.Millisecond), chime(1046.5, 180*time.Millisecond))
	case SoundBossWave:
		st = beep.Seq(
			tone(110, 0, 250*time.Millisecond, WaveSaw),
			tone(104, 0, 250*time.Millisecond, WaveSaw),
			tone(98, 0, 400*time.Millisecond, WaveSaw),
		)
	case SoundGameOver:
		st = beep.Seq(
			tone(392, 0, 200*time.Millisecond, WaveSquare),
			tone(330, 0, 200*time.Millisecond, WaveSquare),
			tone(262, -80, 500*time.Millisecond, WaveSquare),
		)
	default:
		return nil
	}
	return withVolume(st, volume)
}

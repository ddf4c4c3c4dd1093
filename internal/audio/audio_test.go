package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixonz/malakainvadors/internal/engine"
)

func TestForEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    engine.Event
		expected Sound
	}{
		{"player shot", engine.ShotFired{Bullets: 1}, SoundShoot},
		{"enemy shot", engine.ShotFired{Bullets: 3, Enemy: true}, SoundEnemyShoot},
		{"enemy hit", engine.EnemyHit{Kind: engine.KindTough, Remaining: 2}, SoundEnemyHit},
		{"enemy killed", engine.EnemyKilled{Kind: engine.KindBasic, Points: 10}, SoundExplosion},
		{"player hit", engine.PlayerHit{Lives: 2}, SoundPlayerHit},
		{"shield absorbs", engine.PlayerHit{Shielded: true, Lives: 3}, SoundShieldBlock},
		{"barrier chipped", engine.BarrierDamaged{Health: 4}, SoundNone},
		{"barrier destroyed", engine.BarrierDamaged{Destroyed: true}, SoundBarrier},
		{"power-up", engine.PowerUpCollected{Kind: engine.PowerUpShield}, SoundPowerUp},
		{"power-up expired", engine.PowerUpExpired{Effect: engine.EffectRapidFire}, SoundPowerDown},
		{"level", engine.LevelAdvanced{Level: 2}, SoundLevelUp},
		{"boss level", engine.LevelAdvanced{Level: 10, Boss: true}, SoundBossWave},
		{"game over", engine.GameOver{FinalScore: 10}, SoundGameOver},
		{"phase change", engine.PhaseChanged{From: engine.PhaseMenu, To: engine.PhaseDifficultySelect}, SoundNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ForEvent(tc.event))
		})
	}
}

func TestSoundsForDeduplicates(t *testing.T) {
	events := []engine.Event{
		engine.EnemyKilled{Kind: engine.KindBasic},
		engine.EnemyKilled{Kind: engine.KindFast},
		engine.PhaseChanged{},
		engine.ShotFired{Bullets: 1},
	}

	assert.Equal(t, []Sound{SoundExplosion, SoundShoot}, SoundsFor(events))
	assert.Empty(t, SoundsFor(nil))
}

func TestBuildEverySoundDrains(t *testing.T) {
	buf := make([][2]float64, 512)
	limit := SampleRate.N(3 * time.Second)

	for s := SoundShoot; s <= SoundGameOver; s++ {
		t.Run(s.String(), func(t *testing.T) {
			st := Build(s, 0.5)
			require.NotNil(t, st)

			total := 0
			for {
				n, ok := st.Stream(buf)
				for i := range n {
					require.False(t, math.IsNaN(buf[i][0]) || math.IsInf(buf[i][0], 0))
				}
				total += n
				if !ok {
					break
				}
				require.Less(t, total, limit, "effect never ends")
			}
			assert.Positive(t, total)
			assert.NoError(t, st.Err())
		})
	}
}

func TestBuildNone(t *testing.T) {
	assert.Nil(t, Build(SoundNone, 1))
}

func TestOscillatorRangeAndLength(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 0, 10*time.Millisecond, wave, SampleRate)
		buf := make([][2]float64, 1000)

		n, ok := osc.Stream(buf)
		assert.True(t, ok)
		assert.Equal(t, SampleRate.N(10*time.Millisecond), n)
		for i := range n {
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
			assert.LessOrEqual(t, buf[i][0], 1.0)
			assert.Equal(t, buf[i][0], buf[i][1])
		}

		n, ok = osc.Stream(buf)
		assert.Zero(t, n)
		assert.False(t, ok)
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(0, 0, d, WaveSquare, SampleRate)
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0], "attack starts silent")
	assert.Equal(t, 1.0, buf[n/2][0], "sustain at full level")
	assert.Less(t, buf[n-1][0], 0.01, "release ends near silence")
}

func TestSilentPlayer(t *testing.T) {
	p, err := New(false, 1)
	require.NoError(t, err)
	assert.IsType(t, Silent{}, p)

	p.Handle([]engine.Event{engine.ShotFired{Bullets: 1}})
	p.Close()
}

func TestSoundString(t *testing.T) {
	assert.Equal(t, "explosion", SoundExplosion.String())
	assert.Equal(t, "unknown", Sound(99).String())
}

package engine

// Event is a discrete simulation occurrence for audio, score and
// analytics collaborators.
type Event interface {
	gameEvent()
}

// ShotFired is emitted when the player or an enemy shoots.
type ShotFired struct {
	Bullets int
	Enemy   bool
}

func (ShotFired) gameEvent() {}

// EnemyHit is emitted when a player bullet damages an enemy.
type EnemyHit struct {
	Kind      EnemyKind
	Remaining int
}

func (EnemyHit) gameEvent() {}

// EnemyKilled is emitted when an enemy's health reaches zero.
type EnemyKilled struct {
	Kind   EnemyKind
	Points int
	X, Y   float64
}

func (EnemyKilled) gameEvent() {}

// HitCause says why the player lost a life.
type HitCause int

const (
	HitBullet HitCause = iota
	HitBreach
)

// String returns the cause name.
func (c HitCause) String() string {
	if c == HitBreach {
		return "breach"
	}
	return "bullet"
}

// PlayerHit is emitted when an enemy bullet reaches the player or the
// roster breaches the player line. Shielded hits cost no life.
type PlayerHit struct {
	Cause    HitCause
	Shielded bool
	Lives    int
}

func (PlayerHit) gameEvent() {}

// BarrierDamaged is emitted when an enemy bullet hits a barrier.
type BarrierDamaged struct {
	Health    int
	Destroyed bool
}

func (BarrierDamaged) gameEvent() {}

// PowerUpCollected is emitted when the player picks up a power-up.
type PowerUpCollected struct {
	Kind PowerUpKind
}

func (PowerUpCollected) gameEvent() {}

// PowerUpExpired is emitted when the timed effect runs out.
type PowerUpExpired struct {
	Effect Effect
}

func (PowerUpExpired) gameEvent() {}

// LevelAdvanced is emitted when a cleared roster starts the next level.
type LevelAdvanced struct {
	Level int
	Boss  bool
}

func (LevelAdvanced) gameEvent() {}

// WaveReset is emitted when a breach respawns the current level's wave.
type WaveReset struct {
	Level int
}

func (WaveReset) gameEvent() {}

// GameOver is emitted once when the last life is lost. Rank is the
// zero-based high-score position of Entry, or -1 if it did not place.
type GameOver struct {
	FinalScore      int
	LevelsCompleted int
	Entry           HighScore
	Rank            int
}

func (GameOver) gameEvent() {}

// PhaseChanged is emitted on every state machine transition.
type PhaseChanged struct {
	From, To Phase
}

func (PhaseChanged) gameEvent() {}

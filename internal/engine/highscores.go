package engine

import (
	"slices"
	"time"
)

// MaxHighScores is the length of the persisted high-score table.
const MaxHighScores = 10

// HighScore is one entry of the high-score table.
type HighScore struct {
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	Level      int       `json:"level,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
	At         time.Time `json:"at,omitzero"`
}

// ScoreStore persists high scores. Implementations must be safe for use
// by several sessions at once.
type ScoreStore interface {
	TopScores(limit int) ([]HighScore, error)
	SaveScore(entry HighScore) error
}

// NormalizeHighScores returns a copy of list sorted descending by score
// and truncated to MaxHighScores. Equal scores keep their relative order.
func NormalizeHighScores(list []HighScore) []HighScore {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b HighScore) int {
		return b.Score - a.Score
	})
	if len(out) > MaxHighScores {
		out = out[:MaxHighScores]
	}
	return out
}

// Qualifies reports whether score would enter the table. A score equal to
// the lowest entry of a full table does not displace it.
func Qualifies(list []HighScore, score int) bool {
	if len(list) < MaxHighScores {
		return true
	}
	return score > list[len(list)-1].Score
}

// InsertHighScore places entry into a normalized list. It returns the new
// list and the entry's zero-based rank, or the unchanged list and -1 when
// the entry does not place. The input slice is not modified.
func InsertHighScore(list []HighScore, entry HighScore) ([]HighScore, int) {
	list = NormalizeHighScores(list)
	if !Qualifies(list, entry.Score) {
		return list, -1
	}
	rank := len(list)
	for i, hs := range list {
		if entry.Score > hs.Score {
			rank = i
			break
		}
	}
	list = slices.Insert(list, rank, entry)
	if len(list) > MaxHighScores {
		list = list[:MaxHighScores]
	}
	return list, rank
}

// LoadHighScores reads the table from store. Unreadable data yields an
// empty table together with the error so the caller can log it.
func LoadHighScores(store ScoreStore) ([]HighScore, error) {
	if store == nil {
		return []HighScore{}, nil
	}
	list, err := store.TopScores(MaxHighScores)
	if err != nil {
		return []HighScore{}, err
	}
	return NormalizeHighScores(list), nil
}

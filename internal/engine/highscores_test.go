package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	scores []HighScore
	err    error
}

func (s *stubStore) TopScores(limit int) ([]HighScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func (s *stubStore) SaveScore(entry HighScore) error {
	s.scores = append(s.scores, entry)
	return nil
}

func scores(values ...int) []HighScore {
	out := make([]HighScore, len(values))
	for i, v := range values {
		out[i] = HighScore{Name: "P", Score: v}
	}
	return out
}

func scoreValues(list []HighScore) []int {
	out := make([]int, len(list))
	for i, hs := range list {
		out[i] = hs.Score
	}
	return out
}

func TestInsertHighScore(t *testing.T) {
	tests := []struct {
		name     string
		list     []HighScore
		score    int
		wantRank int
		want     []int
	}{
		{"empty table", nil, 50, 0, []int{50}},
		{"zero score still places", nil, 0, 0, []int{0}},
		{"middle", scores(300, 200, 100), 250, 1, []int{300, 250, 200, 100}},
		{"tie goes after existing", scores(300, 200, 100), 200, 2, []int{300, 200, 200, 100}},
		{"last place in short table", scores(300, 200), 10, 2, []int{300, 200, 10}},
		{"full table drops lowest", scores(1000, 900, 800, 700, 600, 500, 400, 300, 200, 100), 450, 6, []int{1000, 900, 800, 700, 600, 500, 450, 400, 300, 200}},
		{"full table tie with lowest", scores(1000, 900, 800, 700, 600, 500, 400, 300, 200, 100), 100, -1, []int{1000, 900, 800, 700, 600, 500, 400, 300, 200, 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, rank := InsertHighScore(tc.list, HighScore{Name: "NEW", Score: tc.score})
			assert.Equal(t, tc.wantRank, rank)
			assert.Equal(t, tc.want, scoreValues(got))
			if rank >= 0 {
				assert.Equal(t, "NEW", got[rank].Name)
			}
		})
	}
}

func TestInsertHighScoreDoesNotMutateInput(t *testing.T) {
	list := scores(300, 200, 100)
	InsertHighScore(list, HighScore{Score: 250})
	assert.Equal(t, []int{300, 200, 100}, scoreValues(list))
}

func TestNormalizeHighScores(t *testing.T) {
	list := scores(5, 90, 40, 90, 1, 2, 3, 4, 6, 7, 8, 9)
	list[1].Name = "first"
	list[3].Name = "second"

	got := NormalizeHighScores(list)

	require.Len(t, got, MaxHighScores)
	assert.Equal(t, []int{90, 90, 40, 9, 8, 7, 6, 5, 4, 3}, scoreValues(got))
	assert.Equal(t, "first", got[0].Name, "stable for equal scores")
	assert.Equal(t, "second", got[1].Name)
}

func TestQualifies(t *testing.T) {
	assert.True(t, Qualifies(nil, 0))
	full := scores(100, 90, 80, 70, 60, 50, 40, 30, 20, 10)
	assert.True(t, Qualifies(full, 11))
	assert.False(t, Qualifies(full, 10))
}

func TestLoadHighScores(t *testing.T) {
	list, err := LoadHighScores(nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	store := &stubStore{scores: scores(10, 30, 20)}
	list, err = LoadHighScores(store)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 20, 10}, scoreValues(list))

	broken := &stubStore{err: errors.New("corrupt")}
	list, err = LoadHighScores(broken)
	assert.Error(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list, "unreadable data is treated as an empty table")
}

package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skool/internal/session"
	"github.com/example/skool/pkg/models"
)

type memStore struct {
	earned    map[string]bool
	completed map[string]int
}

func newStore() *memStore {
	return &memStore{earned: make(map[string]bool), completed: make(map[string]int)}
}

func (m *memStore) EarnedKeys(userID int64) (map[string]bool, error) {
	out := make(map[string]bool, len(m.earned))
	for k, v := range m.earned {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) Award(a *models.Achievement) error {
	m.earned[a.BadgeKey] = true
	return nil
}

func (m *memStore) CompletedSessionsByType(userID int64, gameType string) (int, error) {
	return m.completed[gameType], nil
}

func badgeKeys(badges []session.Badge) []string {
	keys := make([]string, 0, len(badges))
	for _, b := range badges {
		keys = append(keys, b.Key)
	}
	return keys
}

func answeredQuestions(n int, perQuestion time.Duration) []models.Question {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	qs := make([]models.Question, n)
	for i := range qs {
		shown := base.Add(time.Duration(i) * time.Minute)
		answered := shown.Add(perQuestion)
		qs[i] = models.Question{QuestionNumber: i + 1, StartedAt: &shown, AnsweredAt: &answered}
	}
	return qs
}

func TestFirstSessionBadge(t *testing.T) {
	store := newStore()
	svc := New(store, 3*time.Second)

	u := &models.User{ID: 1, TotalSessionsCompleted: 1}
	s := &models.Session{GameType: models.GameChinese, TotalCorrect: 3}
	qs := answeredQuestions(5, 10*time.Second)

	newly, err := svc.CheckBadges(u, s, qs)
	require.NoError(t, err)
	assert.Equal(t, []string{"first_session"}, badgeKeys(newly))

	// already earned, not awarded again
	newly, err = svc.CheckBadges(u, s, qs)
	require.NoError(t, err)
	assert.Empty(t, newly)
}

func TestPerfectAndStreakBadges(t *testing.T) {
	store := newStore()
	svc := New(store, 3*time.Second)

	u := &models.User{ID: 1, TotalSessionsCompleted: 2, Streak: 7}
	s := &models.Session{GameType: models.GameChinese, TotalCorrect: 5}
	qs := answeredQuestions(5, 10*time.Second)

	newly, err := svc.CheckBadges(u, s, qs)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"first_session", "perfect_5", "streak_3", "streak_7"},
		badgeKeys(newly),
	)
	assert.NotContains(t, badgeKeys(newly), "streak_14")
}

func TestGameCountBadges(t *testing.T) {
	store := newStore()
	store.completed[models.GameMath] = 10
	svc := New(store, 3*time.Second)

	u := &models.User{ID: 1, TotalSessionsCompleted: 10}
	s := &models.Session{GameType: models.GameMath, TotalCorrect: 3}

	newly, err := svc.CheckBadges(u, s, answeredQuestions(5, 10*time.Second))
	require.NoError(t, err)
	assert.Contains(t, badgeKeys(newly), "math_whiz")
	assert.NotContains(t, badgeKeys(newly), "bookworm")
}

func TestCenturyBadge(t *testing.T) {
	store := newStore()
	svc := New(store, 3*time.Second)

	u := &models.User{ID: 1, TotalSessionsCompleted: 5, Points: 100}
	s := &models.Session{GameType: models.GameChinese, TotalCorrect: 2}

	newly, err := svc.CheckBadges(u, s, answeredQuestions(5, 10*time.Second))
	require.NoError(t, err)
	assert.Contains(t, badgeKeys(newly), "century")
}

func TestSpeedDemonBadge(t *testing.T) {
	store := newStore()
	svc := New(store, 3*time.Second)

	u := &models.User{ID: 1, TotalSessionsCompleted: 3}
	s := &models.Session{GameType: models.GameChinese, TotalCorrect: 4}

	newly, err := svc.CheckBadges(u, s, answeredQuestions(5, time.Second))
	require.NoError(t, err)
	assert.Contains(t, badgeKeys(newly), "speed_demon")

	// one slow answer disqualifies
	qs := answeredQuestions(5, time.Second)
	slow := qs[2].StartedAt.Add(5 * time.Second)
	qs[2].AnsweredAt = &slow

	store2 := newStore()
	svc2 := New(store2, 3*time.Second)
	newly, err = svc2.CheckBadges(u, s, qs)
	require.NoError(t, err)
	assert.NotContains(t, badgeKeys(newly), "speed_demon")
}

func TestBadgeDefinitionsComplete(t *testing.T) {
	for key, b := range Badges {
		assert.Equal(t, key, b.Key)
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Description)
	}
}

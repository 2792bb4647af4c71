package achievements

import (
	"fmt"
	"time"

	"github.com/example/skool/internal/session"
	"github.com/example/skool/pkg/models"
)

// Badge definitions, keyed by badge key. Stored here, not in the database.
var Badges = map[string]session.Badge{
	"first_session": {Key: "first_session", Name: "First Race", Description: "Complete your first session", Emoji: "🏁"},
	"perfect_5":     {Key: "perfect_5", Name: "Perfect Score", Description: "Answer every question in a session correctly", Emoji: "🌟"},
	"streak_3":      {Key: "streak_3", Name: "On Fire", Description: "3-day streak", Emoji: "🔥"},
	"streak_7":      {Key: "streak_7", Name: "Week Warrior", Description: "7-day streak", Emoji: "💪"},
	"streak_14":     {Key: "streak_14", Name: "Unstoppable", Description: "14-day streak", Emoji: "🏆"},
	"math_whiz":     {Key: "math_whiz", Name: "Math Whiz", Description: "Complete 10 math sessions", Emoji: "🧮"},
	"bookworm":      {Key: "bookworm", Name: "Bookworm", Description: "Complete 10 Chinese sessions", Emoji: "📚"},
	"polyglot":      {Key: "polyglot", Name: "Polyglot", Description: "Complete 10 English sessions", Emoji: "🌍"},
	"century":       {Key: "century", Name: "Century Club", Description: "Earn 100 points", Emoji: "⭐"},
	"speed_demon":   {Key: "speed_demon", Name: "Speed Demon", Description: "Answer every question in under 3 seconds", Emoji: "⚡"},
}

// Store persists earned badges and counts completed sessions.
type Store interface {
	EarnedKeys(userID int64) (map[string]bool, error)
	Award(a *models.Achievement) error
	CompletedSessionsByType(userID int64, gameType string) (int, error)
}

// Service checks badge conditions after a completed session and awards any
// newly earned ones.
type Service struct {
	store Store
	speed time.Duration
}

// New creates an achievements service. speed is the per-question threshold
// for the speed_demon badge.
func New(store Store, speed time.Duration) *Service {
	return &Service{store: store, speed: speed}
}

// CheckBadges evaluates all badge conditions against the finished session
// and returns the badges earned just now.
func (s *Service) CheckBadges(u *models.User, gs *models.Session, questions []models.Question) ([]session.Badge, error) {
	earned, err := s.store.EarnedKeys(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load earned badges: %v", err)
	}

	var newly []session.Badge
	tryAward := func(key string) error {
		if earned[key] {
			return nil
		}
		if err := s.store.Award(&models.Achievement{UserID: u.ID, BadgeKey: key, EarnedAt: time.Now()}); err != nil {
			return fmt.Errorf("failed to award badge %s: %v", key, err)
		}
		earned[key] = true
		newly = append(newly, Badges[key])
		return nil
	}

	if u.TotalSessionsCompleted >= 1 {
		if err := tryAward("first_session"); err != nil {
			return nil, err
		}
	}
	if len(questions) > 0 && gs.TotalCorrect == len(questions) {
		if err := tryAward("perfect_5"); err != nil {
			return nil, err
		}
	}
	for _, m := range []struct {
		days int
		key  string
	}{{3, "streak_3"}, {7, "streak_7"}, {14, "streak_14"}} {
		if u.Streak >= m.days {
			if err := tryAward(m.key); err != nil {
				return nil, err
			}
		}
	}

	completedOfType, err := s.store.CompletedSessionsByType(u.ID, gs.GameType)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %v", err)
	}
	if completedOfType >= 10 {
		switch gs.GameType {
		case models.GameMath:
			if err := tryAward("math_whiz"); err != nil {
				return nil, err
			}
		case models.GameChinese:
			if err := tryAward("bookworm"); err != nil {
				return nil, err
			}
		case models.GameEnglish:
			if err := tryAward("polyglot"); err != nil {
				return nil, err
			}
		}
	}

	if u.Points >= 100 {
		if err := tryAward("century"); err != nil {
			return nil, err
		}
	}

	fast := 0
	for i := range questions {
		q := &questions[i]
		if q.StartedAt != nil && q.AnsweredAt != nil && q.AnsweredAt.Sub(*q.StartedAt) < s.speed {
			fast++
		}
	}
	if len(questions) > 0 && fast == len(questions) {
		if err := tryAward("speed_demon"); err != nil {
			return nil, err
		}
	}

	return newly, nil
}

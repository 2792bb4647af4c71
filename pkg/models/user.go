package models

import "time"

// User represents a learner account
type User struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Theme     string `json:"theme" db:"theme"` // "racing" or "pony"
	Role      string `json:"role" db:"role"`   // "child" or "parent"

	// Denormalized balances for instant reads
	Points int `json:"points" db:"points"`
	Stars  int `json:"stars" db:"stars"`
	Coins  int `json:"coins" db:"coins"`

	// Daily tracking
	Streak         int        `json:"streak" db:"streak"`
	SessionsToday  int        `json:"sessions_today" db:"sessions_today"`
	LastPlayedDate *time.Time `json:"last_played_date" db:"last_played_date"`

	// Gamification extras
	StreakFreezes          int `json:"streak_freezes" db:"streak_freezes"`
	BestStreak             int `json:"best_streak" db:"best_streak"`
	PerfectSessions        int `json:"perfect_sessions" db:"perfect_sessions"`
	TotalSessionsCompleted int `json:"total_sessions_completed" db:"total_sessions_completed"`

	// Parent reminder delivery (0 = no reminders)
	ParentChatID     int64 `json:"parent_chat_id" db:"parent_chat_id"`
	NotificationHour int   `json:"notification_hour" db:"notification_hour"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ResetDailyIfNeeded resets the daily session counter when the calendar day
// has advanced, and updates the streak: exactly one day gap extends it, a
// longer gap consumes a streak freeze or resets the streak to zero.
func (u *User) ResetDailyIfNeeded(today time.Time) {
	today = DateOnly(today)
	if u.LastPlayedDate != nil && u.LastPlayedDate.Equal(today) {
		return
	}
	if u.LastPlayedDate != nil {
		gap := int(today.Sub(*u.LastPlayedDate).Hours() / 24)
		if gap == 1 {
			u.Streak++
		} else if gap > 1 {
			if u.StreakFreezes > 0 {
				// Keep the streak intact, a missed day does not extend it
				u.StreakFreezes--
			} else {
				u.Streak = 0
			}
		}
	}
	if u.Streak > u.BestStreak {
		u.BestStreak = u.Streak
	}
	u.SessionsToday = 0
}

// DateOnly truncates a timestamp to midnight UTC so calendar-day
// comparisons don't depend on the time of day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package models

import "time"

// Progress tracks a user's mastery of a single item using the SM-2 algorithm
type Progress struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"user_id" db:"user_id"`
	ItemID int64 `json:"item_id" db:"item_id"`

	MasteryScore int `json:"mastery_score" db:"mastery_score"` // 0-5, display only
	CorrectCount int `json:"correct_count" db:"correct_count"`
	WrongCount   int `json:"wrong_count" db:"wrong_count"`

	// SM-2 state
	EasinessFactor float64    `json:"easiness_factor" db:"easiness_factor"` // EF, min 1.3
	Interval       int        `json:"interval" db:"interval"`               // days until next review
	Repetitions    int        `json:"repetitions" db:"repetitions"`         // consecutive correct count
	NextReviewDate *time.Time `json:"next_review_date" db:"next_review_date"`

	LastSeen  *time.Time `json:"last_seen" db:"last_seen"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// NewProgress returns a fresh record with the SM-2 defaults for an item the
// user has never answered before.
func NewProgress(userID, itemID int64) *Progress {
	return &Progress{
		UserID:         userID,
		ItemID:         itemID,
		EasinessFactor: 2.5,
	}
}

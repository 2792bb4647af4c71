package models

import "time"

// Achievement records a badge earned by a user
type Achievement struct {
	ID       int64     `json:"id" db:"id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	BadgeKey string    `json:"badge_key" db:"badge_key"`
	EarnedAt time.Time `json:"earned_at" db:"earned_at"`
}

package models

import "time"

// QuestProgress tracks a user's position on the quest map
type QuestProgress struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	Season          int       `json:"season" db:"season"`
	Stage           int       `json:"stage" db:"stage"`
	SessionsInStage int       `json:"sessions_in_stage" db:"sessions_in_stage"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Game types a session can be created for. Chinese sessions are backed by
// learning items and feed the mastery store; the rest use generated content.
const (
	GameChinese = "chinese"
	GameMath    = "math"
	GameLogic   = "logic"
	GameEnglish = "english"
)

// Session represents one play session of a game
type Session struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"user_id" db:"user_id"`
	GameType     string     `json:"game_type" db:"game_type"`
	StartedAt    time.Time  `json:"started_at" db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at" db:"completed_at"` // nil while in progress
	TotalCorrect int        `json:"total_correct" db:"total_correct"`
	TotalWrong   int        `json:"total_wrong" db:"total_wrong"`
	PointsEarned int        `json:"points_earned" db:"points_earned"`
}

// Question represents a single question within a session
type Question struct {
	ID             int64      `json:"id" db:"id"`
	SessionID      int64      `json:"session_id" db:"session_id"`
	ItemID         *int64     `json:"item_id" db:"item_id"` // nil for generated questions
	QuestionNumber int        `json:"question_number" db:"question_number"`
	Mode           string     `json:"mode" db:"mode"`
	Prompt         string     `json:"prompt" db:"prompt"`
	CorrectAnswer  string     `json:"correct_answer" db:"correct_answer"`
	Options        StringList `json:"options" db:"options"`
	SelectedAnswer *string    `json:"selected_answer" db:"selected_answer"`
	IsCorrect      *bool      `json:"is_correct" db:"is_correct"`
	StartedAt      *time.Time `json:"started_at" db:"started_at"` // set when the question is shown
	AnsweredAt     *time.Time `json:"answered_at" db:"answered_at"`
}

// Answered reports whether any answer has been recorded yet.
func (q *Question) Answered() bool {
	return q.SelectedAnswer != nil
}

// AnsweredCorrectly reports whether the question has been resolved correctly.
func (q *Question) AnsweredCorrectly() bool {
	return q.IsCorrect != nil && *q.IsCorrect
}

// StringList is a []string stored as a JSON text column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

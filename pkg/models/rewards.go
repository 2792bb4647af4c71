package models

import "time"

// Ledger entry reasons written by the core
const (
	ReasonCorrectAnswer = "correct_answer"
	ReasonPerfectBonus  = "perfect_bonus"
	ReasonDailyBonus    = "daily_bonus"
	ReasonStreakBonus   = "streak_bonus"
	ReasonStreakFreeze  = "streak_freeze_purchase"
)

// LedgerEntry records a single change to a user's points balance
type LedgerEntry struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Change       int       `json:"change" db:"change"`               // +2 for correct, +5 for daily bonus, etc.
	Reason       string    `json:"reason" db:"reason"`
	BalanceAfter int       `json:"balance_after" db:"balance_after"` // running total for audit
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

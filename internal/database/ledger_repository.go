package database

import (
	"fmt"
	"time"

	"github.com/example/skool/pkg/models"
)

// LedgerRepository handles database operations for the points ledger
type LedgerRepository struct{}

// NewLedgerRepository creates a new repository instance
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Append inserts a new ledger entry
func (r *LedgerRepository) Append(entry *models.LedgerEntry) error {
	query := `
		INSERT INTO points_ledger (user_id, change, reason, balance_after)
		VALUES ($1, $2, $3, $4)
	`
	if Type() == "sqlite" {
		result, err := DB.Exec(query, entry.UserID, entry.Change, entry.Reason, entry.BalanceAfter)
		if err != nil {
			return fmt.Errorf("failed to append ledger entry: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		entry.ID = id
		return nil
	}
	return DB.QueryRow(query+" RETURNING id",
		entry.UserID, entry.Change, entry.Reason, entry.BalanceAfter,
	).Scan(&entry.ID)
}

// GetByUser returns all ledger entries for a user, newest first
func (r *LedgerRepository) GetByUser(userID int64) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := DB.Select(&entries,
		"SELECT * FROM points_ledger WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %v", err)
	}
	return entries, nil
}

// HasReasonOnDay reports whether an entry with the given reason exists on
// the given calendar day
func (r *LedgerRepository) HasReasonOnDay(userID int64, reason string, day time.Time) (bool, error) {
	start := models.DateOnly(day)
	end := start.AddDate(0, 0, 1)

	var count int
	err := DB.Get(&count, `
		SELECT COUNT(*) FROM points_ledger
		WHERE user_id = $1 AND reason = $2 AND created_at >= $3 AND created_at < $4`,
		userID, reason, start, end,
	)
	if err != nil {
		return false, fmt.Errorf("failed to query ledger: %v", err)
	}
	return count > 0, nil
}

// SumForDay returns the net point change for a user on the given day
func (r *LedgerRepository) SumForDay(userID int64, day time.Time) (int, error) {
	start := models.DateOnly(day)
	end := start.AddDate(0, 0, 1)

	var sum int
	err := DB.Get(&sum, `
		SELECT COALESCE(SUM(change), 0) FROM points_ledger
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`,
		userID, start, end,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to sum ledger: %v", err)
	}
	return sum, nil
}

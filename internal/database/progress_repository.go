package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/example/skool/pkg/models"
)

// ProgressRepository handles database operations for the mastery store
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetByUserAndItem returns progress for a specific user and item
func (r *ProgressRepository) GetByUserAndItem(userID, itemID int64) (*models.Progress, error) {
	var progress models.Progress
	err := DB.Get(&progress, "SELECT * FROM progress WHERE user_id = $1 AND item_id = $2", userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %v", err)
	}
	return &progress, nil
}

// GetOrCreate returns the progress record for a user-item pair, creating a
// fresh one with SM-2 defaults if none exists yet.
func (r *ProgressRepository) GetOrCreate(userID, itemID int64) (*models.Progress, error) {
	var progress models.Progress
	err := DB.Get(&progress, "SELECT * FROM progress WHERE user_id = $1 AND item_id = $2", userID, itemID)
	if err == sql.ErrNoRows {
		fresh := models.NewProgress(userID, itemID)
		if err := r.create(fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %v", err)
	}
	return &progress, nil
}

func (r *ProgressRepository) create(progress *models.Progress) error {
	query := `
		INSERT INTO progress (
			user_id, item_id, mastery_score, correct_count, wrong_count,
			easiness_factor, interval, repetitions, next_review_date, last_seen
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if Type() == "sqlite" {
		result, err := DB.Exec(query,
			progress.UserID, progress.ItemID, progress.MasteryScore,
			progress.CorrectCount, progress.WrongCount, progress.EasinessFactor,
			progress.Interval, progress.Repetitions, progress.NextReviewDate, progress.LastSeen,
		)
		if err != nil {
			return fmt.Errorf("failed to create progress: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		progress.ID = id
		return nil
	}
	return DB.QueryRow(query+" RETURNING id",
		progress.UserID, progress.ItemID, progress.MasteryScore,
		progress.CorrectCount, progress.WrongCount, progress.EasinessFactor,
		progress.Interval, progress.Repetitions, progress.NextReviewDate, progress.LastSeen,
	).Scan(&progress.ID)
}

// Upsert persists a progress record, creating it if it has no ID yet
func (r *ProgressRepository) Upsert(progress *models.Progress) error {
	if progress.ID == 0 {
		return r.create(progress)
	}
	_, err := DB.Exec(`
		UPDATE progress SET
			mastery_score = $1,
			correct_count = $2,
			wrong_count = $3,
			easiness_factor = $4,
			interval = $5,
			repetitions = $6,
			next_review_date = $7,
			last_seen = $8,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $9`,
		progress.MasteryScore,
		progress.CorrectCount,
		progress.WrongCount,
		progress.EasinessFactor,
		progress.Interval,
		progress.Repetitions,
		progress.NextReviewDate,
		progress.LastSeen,
		progress.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %v", err)
	}
	return nil
}

// MasteryMap returns item_id -> display mastery for all of a user's records
func (r *ProgressRepository) MasteryMap(userID int64) (map[int64]int, error) {
	var rows []struct {
		ItemID       int64 `db:"item_id"`
		MasteryScore int   `db:"mastery_score"`
	}
	err := DB.Select(&rows, "SELECT item_id, mastery_score FROM progress WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mastery map: %v", err)
	}
	mastery := make(map[int64]int, len(rows))
	for _, row := range rows {
		mastery[row.ItemID] = row.MasteryScore
	}
	return mastery, nil
}

// DueForUser returns progress records due for review on or before the given
// time, most overdue first
func (r *ProgressRepository) DueForUser(userID int64, now time.Time) ([]models.Progress, error) {
	var progress []models.Progress
	err := DB.Select(&progress, `
		SELECT * FROM progress
		WHERE user_id = $1 AND next_review_date IS NOT NULL AND next_review_date <= $2
		ORDER BY next_review_date ASC`,
		userID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get due items: %v", err)
	}
	return progress, nil
}

// CountForUser returns how many items the user has progress records for
func (r *ProgressRepository) CountForUser(userID int64) (int, error) {
	var count int
	err := DB.Get(&count, "SELECT COUNT(*) FROM progress WHERE user_id = $1", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count progress: %v", err)
	}
	return count, nil
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/example/skool/pkg/models"
)

// QuestRepository handles database operations for quest progress
type QuestRepository struct{}

// NewQuestRepository creates a new repository instance
func NewQuestRepository() *QuestRepository {
	return &QuestRepository{}
}

// GetOrCreate returns the quest progress row for a user, creating one at
// season 1 stage 1 if none exists
func (r *QuestRepository) GetOrCreate(userID int64) (*models.QuestProgress, error) {
	var qp models.QuestProgress
	err := DB.Get(&qp, "SELECT * FROM quest_progress WHERE user_id = $1", userID)
	if err == sql.ErrNoRows {
		qp = models.QuestProgress{UserID: userID, Season: 1, Stage: 1}
		if err := r.create(&qp); err != nil {
			return nil, err
		}
		return &qp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quest progress: %v", err)
	}
	return &qp, nil
}

func (r *QuestRepository) create(qp *models.QuestProgress) error {
	query := `
		INSERT INTO quest_progress (user_id, season, stage, sessions_in_stage)
		VALUES ($1, $2, $3, $4)
	`
	if Type() == "sqlite" {
		result, err := DB.Exec(query, qp.UserID, qp.Season, qp.Stage, qp.SessionsInStage)
		if err != nil {
			return fmt.Errorf("failed to create quest progress: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		qp.ID = id
		return nil
	}
	return DB.QueryRow(query+" RETURNING id",
		qp.UserID, qp.Season, qp.Stage, qp.SessionsInStage,
	).Scan(&qp.ID)
}

// Update persists quest progress
func (r *QuestRepository) Update(qp *models.QuestProgress) error {
	_, err := DB.Exec(`
		UPDATE quest_progress SET
			season = $1,
			stage = $2,
			sessions_in_stage = $3,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4`,
		qp.Season, qp.Stage, qp.SessionsInStage, qp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quest progress: %v", err)
	}
	return nil
}

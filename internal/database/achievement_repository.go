package database

import (
	"fmt"

	"github.com/example/skool/pkg/models"
)

// AchievementRepository handles database operations for earned badges
type AchievementRepository struct{}

// NewAchievementRepository creates a new repository instance
func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{}
}

// EarnedKeys returns the set of badge keys the user has earned
func (r *AchievementRepository) EarnedKeys(userID int64) (map[string]bool, error) {
	var keys []string
	err := DB.Select(&keys, "SELECT badge_key FROM achievements WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %v", err)
	}
	earned := make(map[string]bool, len(keys))
	for _, k := range keys {
		earned[k] = true
	}
	return earned, nil
}

// Award records a newly earned badge
func (r *AchievementRepository) Award(a *models.Achievement) error {
	query := `
		INSERT INTO achievements (user_id, badge_key, earned_at)
		VALUES ($1, $2, $3)
	`
	if Type() == "sqlite" {
		result, err := DB.Exec(query, a.UserID, a.BadgeKey, a.EarnedAt)
		if err != nil {
			return fmt.Errorf("failed to award badge: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		a.ID = id
		return nil
	}
	return DB.QueryRow(query+" RETURNING id", a.UserID, a.BadgeKey, a.EarnedAt).Scan(&a.ID)
}

// CompletedSessionsByType counts completed sessions of a game type, for
// badge thresholds
func (r *AchievementRepository) CompletedSessionsByType(userID int64, gameType string) (int, error) {
	return NewSessionRepository().CompletedSessionsByType(userID, gameType)
}

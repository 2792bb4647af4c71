package quest

import (
	"fmt"

	"github.com/example/skool/internal/config"
	"github.com/example/skool/pkg/models"
)

// Store persists quest progress, one row per user.
type Store interface {
	GetOrCreate(userID int64) (*models.QuestProgress, error)
	Update(qp *models.QuestProgress) error
}

// Service advances a user along the quest map when sessions complete.
// Finishing the configured number of sessions completes a stage; finishing
// the last stage rolls over into a new season.
type Service struct {
	cfg   config.Settings
	store Store
}

// New creates a quest service.
func New(cfg config.Settings, store Store) *Service {
	return &Service{cfg: cfg, store: store}
}

// Advance counts one completed session toward the current stage and applies
// stage and season rollovers. Returns the updated progress.
func (s *Service) Advance(userID int64) (*models.QuestProgress, error) {
	qp, err := s.store.GetOrCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest progress: %v", err)
	}

	qp.SessionsInStage++
	if qp.SessionsInStage >= s.cfg.QuestSessionsPerStage {
		qp.SessionsInStage = 0
		qp.Stage++
		if qp.Stage > s.cfg.QuestStagesPerSeason {
			qp.Stage = 1
			qp.Season++
		}
	}

	if err := s.store.Update(qp); err != nil {
		return nil, fmt.Errorf("failed to save quest progress: %v", err)
	}
	return qp, nil
}

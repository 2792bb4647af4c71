package rewards

import (
	"fmt"
	"time"

	"github.com/example/skool/internal/config"
	"github.com/example/skool/pkg/models"
)

// Ledger persists point changes and answers history queries.
type Ledger interface {
	Append(entry *models.LedgerEntry) error
	HasReasonOnDay(userID int64, reason string, day time.Time) (bool, error)
	SumForDay(userID int64, day time.Time) (int, error)
}

// Service applies point awards to a user's balances and records every
// change in the ledger. Stars convert to coins automatically at the
// configured ratio.
type Service struct {
	cfg    config.Settings
	ledger Ledger
}

// New creates a rewards service.
func New(cfg config.Settings, ledger Ledger) *Service {
	return &Service{cfg: cfg, ledger: ledger}
}

// AwardPoints adds points (and derived stars/coins) to the user and writes
// a ledger entry. The caller is responsible for persisting the user.
func (s *Service) AwardPoints(u *models.User, amount int, reason string) error {
	if amount == 0 {
		return nil
	}

	u.Points += amount
	u.Stars += amount * s.cfg.StarsPerPoint

	// Auto-convert stars to coins
	if s.cfg.CoinsPerStars > 0 && u.Stars >= s.cfg.CoinsPerStars {
		u.Coins += u.Stars / s.cfg.CoinsPerStars
		u.Stars = u.Stars % s.cfg.CoinsPerStars
	}

	entry := &models.LedgerEntry{
		UserID:       u.ID,
		Change:       amount,
		Reason:       reason,
		BalanceAfter: u.Points,
	}
	if err := s.ledger.Append(entry); err != nil {
		return fmt.Errorf("failed to record ledger entry: %v", err)
	}
	return nil
}

// DailyBonusGiven reports whether a daily bonus was already awarded on the
// given calendar day, judged from ledger history rather than counters.
func (s *Service) DailyBonusGiven(userID int64, day time.Time) (bool, error) {
	return s.ledger.HasReasonOnDay(userID, models.ReasonDailyBonus, day)
}

// PointsToday sums all point changes for the user on the given day.
func (s *Service) PointsToday(userID int64, day time.Time) (int, error) {
	return s.ledger.SumForDay(userID, day)
}

// BuyStreakFreeze spends coins on a streak freeze credit. Returns false
// when the user cannot afford one. The caller persists the user.
func (s *Service) BuyStreakFreeze(u *models.User) (bool, error) {
	if u.Coins < s.cfg.StreakFreezeCost {
		return false, nil
	}
	u.Coins -= s.cfg.StreakFreezeCost
	u.StreakFreezes++

	entry := &models.LedgerEntry{
		UserID:       u.ID,
		Change:       0, // coins spent, points untouched
		Reason:       models.ReasonStreakFreeze,
		BalanceAfter: u.Points,
	}
	if err := s.ledger.Append(entry); err != nil {
		return false, fmt.Errorf("failed to record ledger entry: %v", err)
	}
	return true, nil
}

// ConversionStatus reports progress toward the next star-to-coin
// conversion, for display.
type ConversionStatus struct {
	Points          int `json:"points"`
	Stars           int `json:"stars"`
	Coins           int `json:"coins"`
	StarsToNextCoin int `json:"stars_to_next_coin"`
}

// Status returns the user's balances with conversion progress.
func (s *Service) Status(u *models.User) ConversionStatus {
	return ConversionStatus{
		Points:          u.Points,
		Stars:           u.Stars,
		Coins:           u.Coins,
		StarsToNextCoin: s.cfg.CoinsPerStars - (u.Stars % s.cfg.CoinsPerStars),
	}
}

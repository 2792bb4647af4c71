package rewards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skool/internal/config"
	"github.com/example/skool/pkg/models"
)

type memLedger struct {
	entries []models.LedgerEntry
}

func (m *memLedger) Append(entry *models.LedgerEntry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memLedger) HasReasonOnDay(userID int64, reason string, day time.Time) (bool, error) {
	for _, e := range m.entries {
		if e.UserID == userID && e.Reason == reason {
			return true, nil
		}
	}
	return false, nil
}

func (m *memLedger) SumForDay(userID int64, day time.Time) (int, error) {
	sum := 0
	for _, e := range m.entries {
		if e.UserID == userID {
			sum += e.Change
		}
	}
	return sum, nil
}

func newService(ledger *memLedger) *Service {
	return New(config.Default(), ledger)
}

func TestAwardPoints(t *testing.T) {
	ledger := &memLedger{}
	svc := newService(ledger)
	u := &models.User{ID: 1}

	require.NoError(t, svc.AwardPoints(u, 4, models.ReasonCorrectAnswer))

	assert.Equal(t, 4, u.Points)
	assert.Equal(t, 4, u.Stars)
	assert.Equal(t, 0, u.Coins)

	require.Len(t, ledger.entries, 1)
	e := ledger.entries[0]
	assert.Equal(t, int64(1), e.UserID)
	assert.Equal(t, 4, e.Change)
	assert.Equal(t, models.ReasonCorrectAnswer, e.Reason)
	assert.Equal(t, 4, e.BalanceAfter)
}

func TestAwardPointsZeroIsNoOp(t *testing.T) {
	ledger := &memLedger{}
	svc := newService(ledger)
	u := &models.User{ID: 1, Points: 7}

	require.NoError(t, svc.AwardPoints(u, 0, models.ReasonDailyBonus))

	assert.Equal(t, 7, u.Points)
	assert.Empty(t, ledger.entries)
}

func TestStarCoinConversion(t *testing.T) {
	ledger := &memLedger{}
	svc := newService(ledger) // 10 stars per coin
	u := &models.User{ID: 1, Stars: 8}

	require.NoError(t, svc.AwardPoints(u, 5, models.ReasonCorrectAnswer))

	// 8 + 5 = 13 stars -> 1 coin + 3 stars
	assert.Equal(t, 1, u.Coins)
	assert.Equal(t, 3, u.Stars)
	assert.Equal(t, 5, u.Points)
}

func TestStarCoinConversionMultipleCoins(t *testing.T) {
	ledger := &memLedger{}
	svc := newService(ledger)
	u := &models.User{ID: 1}

	require.NoError(t, svc.AwardPoints(u, 25, models.ReasonPerfectBonus))

	assert.Equal(t, 2, u.Coins)
	assert.Equal(t, 5, u.Stars)
}

func TestDailyBonusGiven(t *testing.T) {
	ledger := &memLedger{}
	svc := newService(ledger)
	u := &models.User{ID: 1}
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	given, err := svc.DailyBonusGiven(1, day)
	require.NoError(t, err)
	assert.False(t, given)

	require.NoError(t, svc.AwardPoints(u, 5, models.ReasonDailyBonus))

	given, err = svc.DailyBonusGiven(1, day)
	require.NoError(t, err)
	assert.True(t, given)
}

func TestBuyStreakFreeze(t *testing.T) {
	ledger := &memLedger{}
	svc := newService(ledger) // costs 5 coins
	u := &models.User{ID: 1, Coins: 6, Points: 40}

	ok, err := svc.BuyStreakFreeze(u)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, u.Coins)
	assert.Equal(t, 1, u.StreakFreezes)
	assert.Equal(t, 40, u.Points, "freeze purchase spends coins, not points")

	require.Len(t, ledger.entries, 1)
	assert.Equal(t, models.ReasonStreakFreeze, ledger.entries[0].Reason)
	assert.Equal(t, 0, ledger.entries[0].Change)
}

func TestBuyStreakFreezeInsufficientCoins(t *testing.T) {
	ledger := &memLedger{}
	svc := newService(ledger)
	u := &models.User{ID: 1, Coins: 4}

	ok, err := svc.BuyStreakFreeze(u)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 4, u.Coins)
	assert.Equal(t, 0, u.StreakFreezes)
	assert.Empty(t, ledger.entries)
}

func TestStatus(t *testing.T) {
	svc := newService(&memLedger{})
	u := &models.User{Points: 42, Stars: 7, Coins: 3}

	status := svc.Status(u)
	assert.Equal(t, 42, status.Points)
	assert.Equal(t, 7, status.Stars)
	assert.Equal(t, 3, status.Coins)
	assert.Equal(t, 3, status.StarsToNextCoin)
}

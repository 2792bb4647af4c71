package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skool/internal/config"
	"github.com/example/skool/pkg/models"
)

type memStore struct {
	progress map[int64]*models.QuestProgress
}

func (m *memStore) GetOrCreate(userID int64) (*models.QuestProgress, error) {
	if qp, ok := m.progress[userID]; ok {
		copied := *qp
		return &copied, nil
	}
	return &models.QuestProgress{UserID: userID, Season: 1, Stage: 1}, nil
}

func (m *memStore) Update(qp *models.QuestProgress) error {
	copied := *qp
	m.progress[qp.UserID] = &copied
	return nil
}

func newService() (*Service, *memStore) {
	store := &memStore{progress: make(map[int64]*models.QuestProgress)}
	cfg := config.Default() // 3 sessions per stage, 10 stages per season
	return New(cfg, store), store
}

func TestAdvanceCountsSession(t *testing.T) {
	svc, _ := newService()

	qp, err := svc.Advance(1)
	require.NoError(t, err)
	assert.Equal(t, 1, qp.Season)
	assert.Equal(t, 1, qp.Stage)
	assert.Equal(t, 1, qp.SessionsInStage)
}

func TestAdvanceStageRollover(t *testing.T) {
	svc, _ := newService()

	var qp *models.QuestProgress
	var err error
	for i := 0; i < 3; i++ {
		qp, err = svc.Advance(1)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, qp.Stage)
	assert.Equal(t, 0, qp.SessionsInStage, "counter resets when a stage completes")
	assert.Equal(t, 1, qp.Season)
}

func TestAdvanceSeasonRollover(t *testing.T) {
	svc, store := newService()
	store.progress[1] = &models.QuestProgress{UserID: 1, Season: 1, Stage: 10, SessionsInStage: 2}

	qp, err := svc.Advance(1)
	require.NoError(t, err)

	assert.Equal(t, 2, qp.Season)
	assert.Equal(t, 1, qp.Stage)
	assert.Equal(t, 0, qp.SessionsInStage)
}

func TestAdvancePersists(t *testing.T) {
	svc, store := newService()

	_, err := svc.Advance(1)
	require.NoError(t, err)
	_, err = svc.Advance(1)
	require.NoError(t, err)

	saved := store.progress[1]
	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.SessionsInStage)
}

func TestAdvanceSeparateUsers(t *testing.T) {
	svc, store := newService()

	_, err := svc.Advance(1)
	require.NoError(t, err)
	_, err = svc.Advance(2)
	require.NoError(t, err)

	assert.Equal(t, 1, store.progress[1].SessionsInStage)
	assert.Equal(t, 1, store.progress[2].SessionsInStage)
}

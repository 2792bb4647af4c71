package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skool/pkg/models"
)

var testDay = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func TestQualityFor(t *testing.T) {
	assert.Equal(t, QualityPerfect, QualityFor(true, true))
	assert.Equal(t, QualityHesitant, QualityFor(true, false))
	assert.Equal(t, QualityWrong, QualityFor(false, true))
	assert.Equal(t, QualityWrong, QualityFor(false, false))
}

func TestFirstCorrectAnswer(t *testing.T) {
	p := models.NewProgress(1, 1)
	Update(p, true, true, testDay)

	assert.Equal(t, 1, p.Repetitions)
	assert.Equal(t, 1, p.Interval)
	assert.InDelta(t, 2.6, p.EasinessFactor, 1e-9)
	assert.Equal(t, 1, p.CorrectCount)
	assert.Equal(t, 0, p.WrongCount)
	assert.Equal(t, 1, p.MasteryScore)

	require.NotNil(t, p.NextReviewDate)
	assert.Equal(t, models.DateOnly(testDay).AddDate(0, 0, 1), *p.NextReviewDate)
	require.NotNil(t, p.LastSeen)
}

func TestThreeConsecutiveCorrect(t *testing.T) {
	p := models.NewProgress(1, 1)

	Update(p, true, true, testDay)
	assert.Equal(t, 1, p.Interval)
	assert.InDelta(t, 2.6, p.EasinessFactor, 1e-9)

	Update(p, true, true, testDay.AddDate(0, 0, 1))
	assert.Equal(t, 3, p.Interval)
	assert.InDelta(t, 2.7, p.EasinessFactor, 1e-9)

	Update(p, true, true, testDay.AddDate(0, 0, 4))
	// round(3 * 2.7) = 8
	assert.Equal(t, 8, p.Interval)
	assert.InDelta(t, 2.8, p.EasinessFactor, 1e-9)

	assert.Equal(t, 3, p.Repetitions)
	assert.Equal(t, 3, p.CorrectCount)
	assert.Equal(t, 3, p.MasteryScore)
}

func TestWrongAnswerResets(t *testing.T) {
	p := models.NewProgress(1, 1)
	for i := 0; i < 4; i++ {
		Update(p, true, true, testDay)
	}
	require.Equal(t, 4, p.Repetitions)
	require.True(t, p.Interval > 1)

	Update(p, false, true, testDay)

	assert.Equal(t, 0, p.Repetitions)
	assert.Equal(t, 0, p.Interval)
	assert.Equal(t, 0, p.MasteryScore)
	assert.Equal(t, 1, p.WrongCount)
	// review again the same day
	require.NotNil(t, p.NextReviewDate)
	assert.Equal(t, models.DateOnly(testDay), *p.NextReviewDate)
}

func TestEasinessFactorFloor(t *testing.T) {
	p := models.NewProgress(1, 1)
	for i := 0; i < 20; i++ {
		Update(p, false, true, testDay)
		assert.GreaterOrEqual(t, p.EasinessFactor, MinEasinessFactor)
	}
	assert.Equal(t, MinEasinessFactor, p.EasinessFactor)
}

func TestEasinessFactorNonDecreasingAtQualityFive(t *testing.T) {
	p := models.NewProgress(1, 1)
	prev := p.EasinessFactor
	for i := 0; i < 10; i++ {
		Update(p, true, true, testDay)
		assert.GreaterOrEqual(t, p.EasinessFactor, prev)
		prev = p.EasinessFactor
	}
}

func TestRetryCorrectLowersEasinessGrowth(t *testing.T) {
	first := models.NewProgress(1, 1)
	Update(first, true, true, testDay)

	retry := models.NewProgress(1, 2)
	Update(retry, true, false, testDay)

	// quality 3 still schedules a review but nudges EF down
	assert.Equal(t, 1, retry.Interval)
	assert.Equal(t, 1, retry.Repetitions)
	assert.Less(t, retry.EasinessFactor, first.EasinessFactor)
	assert.InDelta(t, 2.36, retry.EasinessFactor, 1e-9)
}

func TestMasteryFromRepetitions(t *testing.T) {
	cases := map[int]int{
		-1: 0, 0: 0, 1: 1, 2: 2, 3: 3, 4: 3, 5: 4, 6: 4, 7: 5, 12: 5,
	}
	for reps, want := range cases {
		assert.Equal(t, want, MasteryFromRepetitions(reps), "repetitions=%d", reps)
	}

	// monotonic in repetitions
	prev := 0
	for reps := 0; reps <= 20; reps++ {
		m := MasteryFromRepetitions(reps)
		assert.GreaterOrEqual(t, m, prev)
		prev = m
	}
}

func TestCountersIncrementUnconditionally(t *testing.T) {
	p := models.NewProgress(1, 1)
	Update(p, true, true, testDay)
	Update(p, false, true, testDay)
	Update(p, true, false, testDay)

	assert.Equal(t, 2, p.CorrectCount)
	assert.Equal(t, 1, p.WrongCount)
}

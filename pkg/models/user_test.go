package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 3, 10, 23, 45, 12, 999, time.UTC)
	assert.Equal(t, day(2024, 3, 10), DateOnly(ts))
}

func TestResetDailySameDayNoChange(t *testing.T) {
	last := day(2024, 3, 10)
	u := &User{Streak: 4, SessionsToday: 2, LastPlayedDate: &last}

	u.ResetDailyIfNeeded(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC))

	assert.Equal(t, 4, u.Streak)
	assert.Equal(t, 2, u.SessionsToday)
}

func TestResetDailyNextDayExtendsStreak(t *testing.T) {
	last := day(2024, 3, 10)
	u := &User{Streak: 4, SessionsToday: 3, LastPlayedDate: &last}

	u.ResetDailyIfNeeded(day(2024, 3, 11))

	assert.Equal(t, 5, u.Streak)
	assert.Equal(t, 0, u.SessionsToday)
	assert.Equal(t, 5, u.BestStreak)
}

func TestResetDailyGapResetsStreak(t *testing.T) {
	last := day(2024, 3, 10)
	u := &User{Streak: 4, BestStreak: 4, LastPlayedDate: &last}

	u.ResetDailyIfNeeded(day(2024, 3, 13))

	assert.Equal(t, 0, u.Streak)
	assert.Equal(t, 4, u.BestStreak, "best streak survives the reset")
}

func TestResetDailyGapConsumesFreeze(t *testing.T) {
	last := day(2024, 3, 10)
	u := &User{Streak: 6, StreakFreezes: 2, LastPlayedDate: &last}

	u.ResetDailyIfNeeded(day(2024, 3, 12))

	assert.Equal(t, 6, u.Streak, "a freeze preserves the streak")
	assert.Equal(t, 1, u.StreakFreezes)
	assert.Equal(t, 0, u.SessionsToday)
}

func TestResetDailyFirstPlay(t *testing.T) {
	u := &User{SessionsToday: 3}

	u.ResetDailyIfNeeded(day(2024, 3, 10))

	assert.Equal(t, 0, u.Streak)
	assert.Equal(t, 0, u.SessionsToday)
}

func TestResetDailyBestStreakTracksNewHigh(t *testing.T) {
	last := day(2024, 3, 10)
	u := &User{Streak: 9, BestStreak: 9, LastPlayedDate: &last}

	u.ResetDailyIfNeeded(day(2024, 3, 11))

	assert.Equal(t, 10, u.Streak)
	assert.Equal(t, 10, u.BestStreak)
}

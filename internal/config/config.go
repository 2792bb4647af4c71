package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds the game rules and scoring knobs. Values are loaded once
// from the environment and passed explicitly into constructors so the core
// stays free of ambient state.
type Settings struct {
	// Game rules
	QuestionsPerSession    int
	DistractorsPerQuestion int // + 1 correct answer = options shown
	MaxSessionsPerDay      int // 0 = unlimited

	// Scoring
	PointsCorrect          int
	DailyBonus             int
	StreakBonusMultiplier  int // extra points per streak day
	PerfectBonusMultiplier int

	// Answer bonuses
	LuckyBonusProbability float64
	LuckyBonusMultiplier  int
	SpeedBonusThreshold   time.Duration
	SpeedBonusPoints      int

	// Reward conversion
	StarsPerPoint    int
	CoinsPerStars    int // stars needed per coin
	StreakFreezeCost int // coins

	// Quest map
	QuestSessionsPerStage int
	QuestStagesPerSeason  int
}

// Default returns the standard game settings.
func Default() Settings {
	return Settings{
		QuestionsPerSession:    5,
		DistractorsPerQuestion: 2,
		MaxSessionsPerDay:      0,
		PointsCorrect:          2,
		DailyBonus:             5,
		StreakBonusMultiplier:  1,
		PerfectBonusMultiplier: 2,
		LuckyBonusProbability:  0.05,
		LuckyBonusMultiplier:   3,
		SpeedBonusThreshold:    3 * time.Second,
		SpeedBonusPoints:       1,
		StarsPerPoint:          1,
		CoinsPerStars:          10,
		StreakFreezeCost:       5,
		QuestSessionsPerStage:  3,
		QuestStagesPerSeason:   10,
	}
}

// Load reads settings from the environment, falling back to defaults.
// A .env file in the working directory is honored if present.
func Load() Settings {
	// Missing .env is fine, real deployments use the environment directly
	_ = godotenv.Load()

	s := Default()
	s.QuestionsPerSession = envInt("QUESTIONS_PER_SESSION", s.QuestionsPerSession)
	s.DistractorsPerQuestion = envInt("DISTRACTORS_PER_QUESTION", s.DistractorsPerQuestion)
	s.MaxSessionsPerDay = envInt("MAX_SESSIONS_PER_DAY", s.MaxSessionsPerDay)
	s.PointsCorrect = envInt("POINTS_CORRECT", s.PointsCorrect)
	s.DailyBonus = envInt("DAILY_BONUS", s.DailyBonus)
	s.StreakBonusMultiplier = envInt("STREAK_BONUS_MULTIPLIER", s.StreakBonusMultiplier)
	s.PerfectBonusMultiplier = envInt("PERFECT_BONUS_MULTIPLIER", s.PerfectBonusMultiplier)
	s.LuckyBonusProbability = envFloat("LUCKY_BONUS_PROBABILITY", s.LuckyBonusProbability)
	s.LuckyBonusMultiplier = envInt("LUCKY_BONUS_MULTIPLIER", s.LuckyBonusMultiplier)
	if secs := envInt("SPEED_BONUS_SECONDS", 0); secs > 0 {
		s.SpeedBonusThreshold = time.Duration(secs) * time.Second
	}
	s.SpeedBonusPoints = envInt("SPEED_BONUS_POINTS", s.SpeedBonusPoints)
	s.StarsPerPoint = envInt("STARS_PER_POINT", s.StarsPerPoint)
	s.CoinsPerStars = envInt("COINS_PER_STARS", s.CoinsPerStars)
	s.StreakFreezeCost = envInt("STREAK_FREEZE_COST", s.StreakFreezeCost)
	s.QuestSessionsPerStage = envInt("QUEST_SESSIONS_PER_STAGE", s.QuestSessionsPerStage)
	s.QuestStagesPerSeason = envInt("QUEST_STAGES_PER_SEASON", s.QuestStagesPerSeason)
	return s
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/skool/internal/config"
	"github.com/example/skool/internal/generator"
	"github.com/example/skool/internal/selection"
	"github.com/example/skool/internal/spaced_repetition"
	"github.com/example/skool/pkg/models"
)

// UserStore persists user mutations made by the engine.
type UserStore interface {
	Update(u *models.User) error
}

// ItemStore provides the selectable item pool for a user.
type ItemStore interface {
	PoolForUser(u *models.User) ([]models.Item, error)
}

// ProgressStore is the mastery store keyed by user and item.
type ProgressStore interface {
	GetOrCreate(userID, itemID int64) (*models.Progress, error)
	Upsert(p *models.Progress) error
	MasteryMap(userID int64) (map[int64]int, error)
}

// SessionStore persists sessions and their questions.
type SessionStore interface {
	CreateWithQuestions(s *models.Session, questions []models.Question) error
	GetSession(id int64) (*models.Session, error)
	UpdateSession(s *models.Session) error
	GetQuestion(id int64) (*models.Question, error)
	UpdateQuestion(q *models.Question) error
	QuestionsBySession(sessionID int64) ([]models.Question, error)
}

// Rewards is the points ledger collaborator. AwardPoints mutates the user's
// balances in memory and records a ledger entry; the engine persists the
// user once per operation.
type Rewards interface {
	AwardPoints(u *models.User, amount int, reason string) error
	DailyBonusGiven(userID int64, day time.Time) (bool, error)
}

// BadgeChecker evaluates achievement badges after a session completes.
type BadgeChecker interface {
	CheckBadges(u *models.User, s *models.Session, questions []models.Question) ([]Badge, error)
}

// Badge describes an achievement earned by the user.
type Badge struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// QuestAdvancer moves the user along the quest map after a session.
type QuestAdvancer interface {
	Advance(userID int64) (*models.QuestProgress, error)
}

// Generator produces questions for game types without backing items.
type Generator interface {
	Generate(count int, rng *rand.Rand) ([]generator.QuestionData, error)
}

// AnswerResult is returned from SubmitAnswer.
type AnswerResult struct {
	IsCorrect      bool   `json:"is_correct"`
	CorrectAnswer  string `json:"correct_answer"`
	PointsEarned   int    `json:"points_earned"`
	BonusLabel     string `json:"bonus_label,omitempty"`
	QuestionNumber int    `json:"question_number"`
}

// PointSource is one labeled contribution to the session total.
type PointSource struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// Summary is returned from CompleteSession.
type Summary struct {
	SessionID    int64                 `json:"session_id"`
	TotalCorrect int                   `json:"total_correct"`
	TotalWrong   int                   `json:"total_wrong"`
	PointsEarned int                   `json:"points_earned"`
	Breakdown    []PointSource         `json:"breakdown"`
	Perfect      bool                  `json:"perfect"`
	Streak       int                   `json:"streak"`
	TotalPoints  int                   `json:"total_points"`
	TotalStars   int                   `json:"total_stars"`
	TotalCoins   int                   `json:"total_coins"`
	NewBadges    []Badge               `json:"new_badges"`
	Quest        *models.QuestProgress `json:"quest,omitempty"`
}

// Engine drives the session lifecycle: creation with weighted item
// selection, per-question answer submission with retry semantics, and
// completion with bonus computation. All collaborators are injected so the
// engine itself stays free of ambient state.
type Engine struct {
	cfg        config.Settings
	users      UserStore
	items      ItemStore
	progress   ProgressStore
	sessions   SessionStore
	rewards    Rewards
	badges     BadgeChecker
	quests     QuestAdvancer
	generators map[string]Generator

	rng *rand.Rand
	now func() time.Time
}

// New creates a session engine with the given collaborators.
func New(cfg config.Settings, users UserStore, items ItemStore, progress ProgressStore,
	sessions SessionStore, rewards Rewards, badges BadgeChecker, quests QuestAdvancer) *Engine {
	return &Engine{
		cfg:        cfg,
		users:      users,
		items:      items,
		progress:   progress,
		sessions:   sessions,
		rewards:    rewards,
		badges:     badges,
		quests:     quests,
		generators: make(map[string]Generator),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
}

// RegisterGenerator attaches a content generator for a non-item game type.
func (e *Engine) RegisterGenerator(gameType string, g Generator) {
	e.generators[gameType] = g
}

// SetRand replaces the random source. Intended for tests.
func (e *Engine) SetRand(rng *rand.Rand) { e.rng = rng }

// SetClock replaces the time source. Intended for tests.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

// CanStartSession reports whether the user may start a session today.
// A limit of 0 means unlimited.
func (e *Engine) CanStartSession(u *models.User) bool {
	u.ResetDailyIfNeeded(e.now())
	if e.cfg.MaxSessionsPerDay <= 0 {
		return true
	}
	return u.SessionsToday < e.cfg.MaxSessionsPerDay
}

// CreateSession starts a new session with a full question set, built in one
// atomic step. Item-backed game types pick items through the weighted
// selector; the rest use a registered generator.
func (e *Engine) CreateSession(u *models.User, gameType string) (*models.Session, []models.Question, error) {
	now := e.now()
	u.ResetDailyIfNeeded(now)

	if e.cfg.MaxSessionsPerDay > 0 && u.SessionsToday >= e.cfg.MaxSessionsPerDay {
		return nil, nil, ErrSessionLimit
	}

	var data []generator.QuestionData
	var itemIDs []*int64

	switch gameType {
	case models.GameChinese:
		pool, err := e.items.PoolForUser(u)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load item pool: %v", err)
		}
		if len(pool) == 0 {
			return nil, nil, ErrNoItems
		}
		mastery, err := e.progress.MasteryMap(u.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load mastery map: %v", err)
		}
		picked := selection.Select(pool, mastery, e.cfg.QuestionsPerSession, e.rng)
		for _, item := range picked {
			mode := generator.PickMode(item, e.rng)
			q := generator.BuildQuestion(item, pool, mode, e.cfg.DistractorsPerQuestion, e.rng)
			data = append(data, q)
			id := item.ID
			itemIDs = append(itemIDs, &id)
		}
	default:
		g, ok := e.generators[gameType]
		if !ok {
			return nil, nil, ErrUnknownGameType
		}
		generated, err := g.Generate(e.cfg.QuestionsPerSession, e.rng)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate %s questions: %v", gameType, err)
		}
		data = generated
		itemIDs = make([]*int64, len(data))
	}

	s := &models.Session{
		UserID:    u.ID,
		GameType:  gameType,
		StartedAt: now,
	}
	questions := make([]models.Question, 0, len(data))
	for i, d := range data {
		questions = append(questions, models.Question{
			ItemID:         itemIDs[i],
			QuestionNumber: i + 1,
			Mode:           d.Mode,
			Prompt:         d.Prompt,
			CorrectAnswer:  d.CorrectAnswer,
			Options:        d.Options,
		})
	}

	if err := e.sessions.CreateWithQuestions(s, questions); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %v", err)
	}

	u.SessionsToday++
	played := models.DateOnly(now)
	u.LastPlayedDate = &played
	if err := e.users.Update(u); err != nil {
		return nil, nil, fmt.Errorf("failed to update user: %v", err)
	}
	return s, questions, nil
}

// SubmitAnswer records an answer for a question. A question answered wrong
// may be resubmitted; a question answered correctly may not. Only the first
// attempt counts toward total_wrong and bonus eligibility.
func (e *Engine) SubmitAnswer(u *models.User, questionID int64, selectedAnswer string) (*AnswerResult, error) {
	q, err := e.sessions.GetQuestion(questionID)
	if err != nil {
		return nil, ErrQuestionNotFound
	}
	s, err := e.sessions.GetSession(q.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if s.UserID != u.ID {
		return nil, ErrNotYourQuestion
	}
	if s.CompletedAt != nil {
		return nil, ErrAlreadyCompleted
	}
	if q.AnsweredCorrectly() {
		return nil, ErrAlreadyCorrect
	}

	now := e.now()
	firstAttempt := !q.Answered()
	isCorrect := selectedAnswer == q.CorrectAnswer

	q.SelectedAnswer = &selectedAnswer
	answered := now
	q.AnsweredAt = &answered

	result := &AnswerResult{
		IsCorrect:      isCorrect,
		CorrectAnswer:  q.CorrectAnswer,
		QuestionNumber: q.QuestionNumber,
	}

	if firstAttempt {
		q.IsCorrect = &isCorrect
		if err := e.updateMastery(u.ID, q, isCorrect, true); err != nil {
			return nil, err
		}
		if isCorrect {
			s.TotalCorrect++
			points := e.cfg.PointsCorrect
			points, result.BonusLabel = e.applyAnswerBonuses(q, now, points)
			if err := e.rewards.AwardPoints(u, points, models.ReasonCorrectAnswer); err != nil {
				return nil, fmt.Errorf("failed to award points: %v", err)
			}
			result.PointsEarned = points
		} else {
			s.TotalWrong++
		}
	} else if isCorrect {
		// Retry that flips wrong to correct. Base points only, no bonuses,
		// and the earlier wrong already counted.
		correct := true
		q.IsCorrect = &correct
		if err := e.updateMastery(u.ID, q, true, false); err != nil {
			return nil, err
		}
		s.TotalCorrect++
		if err := e.rewards.AwardPoints(u, e.cfg.PointsCorrect, models.ReasonCorrectAnswer); err != nil {
			return nil, fmt.Errorf("failed to award points: %v", err)
		}
		result.PointsEarned = e.cfg.PointsCorrect
	}
	// A retry that is wrong again only refreshes selected_answer/answered_at.

	if err := e.sessions.UpdateQuestion(q); err != nil {
		return nil, fmt.Errorf("failed to update question: %v", err)
	}
	if err := e.sessions.UpdateSession(s); err != nil {
		return nil, fmt.Errorf("failed to update session: %v", err)
	}
	if err := e.users.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}
	return result, nil
}

// applyAnswerBonuses evaluates the lucky and speed bonuses for a correct
// first attempt. Point effects are additive but only one label is reported,
// lucky taking precedence.
func (e *Engine) applyAnswerBonuses(q *models.Question, now time.Time, points int) (int, string) {
	label := ""
	if e.cfg.LuckyBonusProbability > 0 && e.rng.Float64() < e.cfg.LuckyBonusProbability {
		points *= e.cfg.LuckyBonusMultiplier
		label = "lucky"
	}
	if q.StartedAt != nil && now.Sub(*q.StartedAt) <= e.cfg.SpeedBonusThreshold {
		points += e.cfg.SpeedBonusPoints
		if label == "" {
			label = "speed"
		}
	}
	return points, label
}

func (e *Engine) updateMastery(userID int64, q *models.Question, isCorrect, isFirstAttempt bool) error {
	if q.ItemID == nil {
		return nil
	}
	p, err := e.progress.GetOrCreate(userID, *q.ItemID)
	if err != nil {
		return fmt.Errorf("failed to load progress: %v", err)
	}
	spaced_repetition.Update(p, isCorrect, isFirstAttempt, e.now())
	if err := e.progress.Upsert(p); err != nil {
		return fmt.Errorf("failed to save progress: %v", err)
	}
	return nil
}

// MarkQuestionShown records when a question is first displayed, anchoring
// the speed bonus window. Subsequent calls are no-ops.
func (e *Engine) MarkQuestionShown(u *models.User, questionID int64) error {
	q, err := e.sessions.GetQuestion(questionID)
	if err != nil {
		return ErrQuestionNotFound
	}
	s, err := e.sessions.GetSession(q.SessionID)
	if err != nil {
		return ErrSessionNotFound
	}
	if s.UserID != u.ID {
		return ErrNotYourQuestion
	}
	if q.StartedAt != nil {
		return nil
	}
	shown := e.now()
	q.StartedAt = &shown
	return e.sessions.UpdateQuestion(q)
}

// CompleteSession finalizes a session once every question has been
// answered, computes the bonus stack and returns a summary with a labeled
// point-source breakdown.
func (e *Engine) CompleteSession(u *models.User, sessionID int64) (*Summary, error) {
	s, err := e.sessions.GetSession(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if s.UserID != u.ID {
		return nil, ErrNotYourSession
	}
	if s.CompletedAt != nil {
		return nil, ErrAlreadyCompleted
	}

	questions, err := e.sessions.QuestionsBySession(s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %v", err)
	}
	for i := range questions {
		if !questions[i].Answered() {
			return nil, ErrUnanswered
		}
	}

	now := e.now()
	completed := now
	s.CompletedAt = &completed

	breakdown := []PointSource{}
	base := s.TotalCorrect * e.cfg.PointsCorrect
	breakdown = append(breakdown, PointSource{Label: "base", Amount: base})
	total := base

	perfect := s.TotalCorrect == len(questions) && len(questions) > 0
	if perfect && e.cfg.PerfectBonusMultiplier > 1 {
		bonus := base * (e.cfg.PerfectBonusMultiplier - 1)
		if err := e.rewards.AwardPoints(u, bonus, models.ReasonPerfectBonus); err != nil {
			return nil, fmt.Errorf("failed to award perfect bonus: %v", err)
		}
		breakdown = append(breakdown, PointSource{Label: "perfect_bonus", Amount: bonus})
		total += bonus
	}

	// Ledger-backed check so a second session created the same day cannot
	// re-award the daily bonus.
	given, err := e.rewards.DailyBonusGiven(u.ID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check daily bonus: %v", err)
	}
	if !given && e.cfg.DailyBonus > 0 {
		if err := e.rewards.AwardPoints(u, e.cfg.DailyBonus, models.ReasonDailyBonus); err != nil {
			return nil, fmt.Errorf("failed to award daily bonus: %v", err)
		}
		breakdown = append(breakdown, PointSource{Label: "daily_bonus", Amount: e.cfg.DailyBonus})
		total += e.cfg.DailyBonus
	}

	if u.Streak > 0 && e.cfg.StreakBonusMultiplier > 0 {
		bonus := u.Streak * e.cfg.StreakBonusMultiplier
		if err := e.rewards.AwardPoints(u, bonus, models.ReasonStreakBonus); err != nil {
			return nil, fmt.Errorf("failed to award streak bonus: %v", err)
		}
		breakdown = append(breakdown, PointSource{Label: "streak_bonus", Amount: bonus})
		total += bonus
	}

	s.PointsEarned = total
	u.TotalSessionsCompleted++
	if perfect {
		u.PerfectSessions++
	}

	if err := e.sessions.UpdateSession(s); err != nil {
		return nil, fmt.Errorf("failed to update session: %v", err)
	}
	if err := e.users.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}

	var quest *models.QuestProgress
	if e.quests != nil {
		quest, err = e.quests.Advance(u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to advance quest: %v", err)
		}
	}

	var newBadges []Badge
	if e.badges != nil {
		newBadges, err = e.badges.CheckBadges(u, s, questions)
		if err != nil {
			return nil, fmt.Errorf("failed to check badges: %v", err)
		}
	}

	return &Summary{
		SessionID:    s.ID,
		TotalCorrect: s.TotalCorrect,
		TotalWrong:   s.TotalWrong,
		PointsEarned: s.PointsEarned,
		Breakdown:    breakdown,
		Perfect:      perfect,
		Streak:       u.Streak,
		TotalPoints:  u.Points,
		TotalStars:   u.Stars,
		TotalCoins:   u.Coins,
		NewBadges:    newBadges,
		Quest:        quest,
	}, nil
}

package database

import (
	"fmt"

	"github.com/example/skool/pkg/models"
)

// SessionRepository handles database operations for sessions and their questions
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// CreateWithQuestions inserts a session together with its full question set
// in a single transaction, so a session never exists half-populated.
func (r *SessionRepository) CreateWithQuestions(s *models.Session, questions []models.Question) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	sessionQuery := `
		INSERT INTO sessions (user_id, game_type, started_at)
		VALUES ($1, $2, $3)
	`
	if Type() == "sqlite" {
		result, err := tx.Exec(sessionQuery, s.UserID, s.GameType, s.StartedAt)
		if err != nil {
			return fmt.Errorf("failed to create session: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		s.ID = id
	} else {
		if err := tx.QueryRow(sessionQuery+" RETURNING id", s.UserID, s.GameType, s.StartedAt).Scan(&s.ID); err != nil {
			return fmt.Errorf("failed to create session: %v", err)
		}
	}

	questionQuery := `
		INSERT INTO session_questions (
			session_id, item_id, question_number, mode, prompt, correct_answer, options
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i := range questions {
		q := &questions[i]
		q.SessionID = s.ID
		if Type() == "sqlite" {
			result, err := tx.Exec(questionQuery,
				q.SessionID, q.ItemID, q.QuestionNumber, q.Mode, q.Prompt, q.CorrectAnswer, q.Options)
			if err != nil {
				return fmt.Errorf("failed to create question: %v", err)
			}
			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get last insert ID: %v", err)
			}
			q.ID = id
		} else {
			if err := tx.QueryRow(questionQuery+" RETURNING id",
				q.SessionID, q.ItemID, q.QuestionNumber, q.Mode, q.Prompt, q.CorrectAnswer, q.Options,
			).Scan(&q.ID); err != nil {
				return fmt.Errorf("failed to create question: %v", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %v", err)
	}
	return nil
}

// GetSession returns a session by ID
func (r *SessionRepository) GetSession(id int64) (*models.Session, error) {
	var s models.Session
	err := DB.Get(&s, "SELECT * FROM sessions WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %v", err)
	}
	return &s, nil
}

// UpdateSession persists a session's mutable fields
func (r *SessionRepository) UpdateSession(s *models.Session) error {
	_, err := DB.Exec(`
		UPDATE sessions SET
			completed_at = $1,
			total_correct = $2,
			total_wrong = $3,
			points_earned = $4
		WHERE id = $5`,
		s.CompletedAt, s.TotalCorrect, s.TotalWrong, s.PointsEarned, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %v", err)
	}
	return nil
}

// GetQuestion returns a question by ID
func (r *SessionRepository) GetQuestion(id int64) (*models.Question, error) {
	var q models.Question
	err := DB.Get(&q, "SELECT * FROM session_questions WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %v", err)
	}
	return &q, nil
}

// UpdateQuestion persists a question's answer state
func (r *SessionRepository) UpdateQuestion(q *models.Question) error {
	_, err := DB.Exec(`
		UPDATE session_questions SET
			selected_answer = $1,
			is_correct = $2,
			started_at = $3,
			answered_at = $4
		WHERE id = $5`,
		q.SelectedAnswer, q.IsCorrect, q.StartedAt, q.AnsweredAt, q.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %v", err)
	}
	return nil
}

// QuestionsBySession returns a session's questions in order
func (r *SessionRepository) QuestionsBySession(sessionID int64) ([]models.Question, error) {
	var questions []models.Question
	err := DB.Select(&questions,
		"SELECT * FROM session_questions WHERE session_id = $1 ORDER BY question_number", sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %v", err)
	}
	return questions, nil
}

// CompletedSessionsByType counts a user's completed sessions of one game type
func (r *SessionRepository) CompletedSessionsByType(userID int64, gameType string) (int, error) {
	var count int
	err := DB.Get(&count, `
		SELECT COUNT(*) FROM sessions
		WHERE user_id = $1 AND game_type = $2 AND completed_at IS NOT NULL`,
		userID, gameType,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %v", err)
	}
	return count, nil
}

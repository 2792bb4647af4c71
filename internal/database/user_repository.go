package database

import (
	"fmt"

	"github.com/example/skool/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByID returns a user by ID
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := DB.Get(&user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// GetByName returns a user by name
func (r *UserRepository) GetByName(name string) (*models.User, error) {
	var user models.User
	err := DB.Get(&user, "SELECT * FROM users WHERE name = $1", name)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// GetAll returns all users
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := DB.Select(&users, "SELECT * FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	return users, nil
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (name, theme, role, parent_chat_id, notification_hour)
		VALUES ($1, $2, $3, $4, $5)
	`
	if Type() == "sqlite" {
		result, err := DB.Exec(query, user.Name, user.Theme, user.Role, user.ParentChatID, user.NotificationHour)
		if err != nil {
			return fmt.Errorf("failed to create user: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		user.ID = id
		return nil
	}
	return DB.QueryRow(query+" RETURNING id",
		user.Name, user.Theme, user.Role, user.ParentChatID, user.NotificationHour,
	).Scan(&user.ID)
}

// Update persists the user's mutable fields
func (r *UserRepository) Update(user *models.User) error {
	_, err := DB.Exec(`
		UPDATE users SET
			name = $1,
			theme = $2,
			points = $3,
			stars = $4,
			coins = $5,
			streak = $6,
			sessions_today = $7,
			last_played_date = $8,
			streak_freezes = $9,
			best_streak = $10,
			perfect_sessions = $11,
			total_sessions_completed = $12,
			parent_chat_id = $13,
			notification_hour = $14,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $15`,
		user.Name,
		user.Theme,
		user.Points,
		user.Stars,
		user.Coins,
		user.Streak,
		user.SessionsToday,
		user.LastPlayedDate,
		user.StreakFreezes,
		user.BestStreak,
		user.PerfectSessions,
		user.TotalSessionsCompleted,
		user.ParentChatID,
		user.NotificationHour,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %v", err)
	}
	return nil
}

package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Type returns the configured database driver, "sqlite" by default.
func Type() string {
	if t := os.Getenv("DB_TYPE"); t != "" {
		return t
	}
	return "sqlite"
}

// Connect establishes a connection to the database and initializes the
// schema. SQLite is the default; set DB_TYPE=postgres and DATABASE_URL for
// PostgreSQL.
func Connect() error {
	var db *sqlx.DB
	var err error

	if Type() == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
	} else {
		dbPath := os.Getenv("DATABASE_PATH")
		if dbPath == "" {
			dataDir := "data"
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %v", err)
			}
			dbPath = filepath.Join(dataDir, "skool.db")
		}

		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		// Enable foreign keys
		if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if Type() == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS users (
			id %s,
			name TEXT NOT NULL,
			theme TEXT NOT NULL DEFAULT 'racing',
			role TEXT NOT NULL DEFAULT 'child',
			points INTEGER DEFAULT 0,
			stars INTEGER DEFAULT 0,
			coins INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			sessions_today INTEGER DEFAULT 0,
			last_played_date TIMESTAMP,
			streak_freezes INTEGER DEFAULT 0,
			best_streak INTEGER DEFAULT 0,
			perfect_sessions INTEGER DEFAULT 0,
			total_sessions_completed INTEGER DEFAULT 0,
			parent_chat_id BIGINT DEFAULT 0,
			notification_hour INTEGER DEFAULT 18,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS items (
			id %s,
			label TEXT NOT NULL UNIQUE,
			reading TEXT DEFAULT '',
			meaning TEXT DEFAULT '',
			image_url TEXT DEFAULT '',
			audience TEXT DEFAULT 'all',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS progress (
			id %s,
			user_id BIGINT NOT NULL,
			item_id BIGINT NOT NULL,
			mastery_score INTEGER DEFAULT 0,
			correct_count INTEGER DEFAULT 0,
			wrong_count INTEGER DEFAULT 0,
			easiness_factor REAL DEFAULT 2.5,
			interval INTEGER DEFAULT 0,
			repetitions INTEGER DEFAULT 0,
			next_review_date TIMESTAMP,
			last_seen TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (item_id) REFERENCES items(id),
			UNIQUE(user_id, item_id)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS sessions (
			id %s,
			user_id BIGINT NOT NULL,
			game_type TEXT NOT NULL DEFAULT 'chinese',
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			completed_at TIMESTAMP,
			total_correct INTEGER DEFAULT 0,
			total_wrong INTEGER DEFAULT 0,
			points_earned INTEGER DEFAULT 0,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS session_questions (
			id %s,
			session_id BIGINT NOT NULL,
			item_id BIGINT,
			question_number INTEGER NOT NULL,
			mode TEXT DEFAULT '',
			prompt TEXT DEFAULT '',
			correct_answer TEXT NOT NULL,
			options TEXT NOT NULL,
			selected_answer TEXT,
			is_correct BOOLEAN,
			started_at TIMESTAMP,
			answered_at TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(id),
			FOREIGN KEY (item_id) REFERENCES items(id)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS points_ledger (
			id %s,
			user_id BIGINT NOT NULL,
			change INTEGER NOT NULL,
			reason TEXT NOT NULL,
			balance_after INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS achievements (
			id %s,
			user_id BIGINT NOT NULL,
			badge_key TEXT NOT NULL,
			earned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id),
			UNIQUE(user_id, badge_key)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS quest_progress (
			id %s,
			user_id BIGINT NOT NULL UNIQUE,
			season INTEGER DEFAULT 1,
			stage INTEGER DEFAULT 1,
			sessions_in_stage INTEGER DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`, serial),
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}

package models

import "time"

// Item represents a learning item (a Chinese character) to be mastered
type Item struct {
	ID       int64  `json:"id" db:"id"`
	Label    string `json:"label" db:"label"`       // the character itself
	Reading  string `json:"reading" db:"reading"`   // pinyin
	Meaning  string `json:"meaning" db:"meaning"`   // English meaning
	ImageURL string `json:"image_url" db:"image_url"` // optional illustration
	Audience string `json:"audience" db:"audience"` // "son", "daughter" or "all"

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

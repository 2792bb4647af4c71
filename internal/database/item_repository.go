package database

import (
	"database/sql"
	"fmt"

	"github.com/example/skool/pkg/models"
)

// ItemRepository handles database operations for learning items
type ItemRepository struct{}

// NewItemRepository creates a new repository instance
func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// GetByID returns an item by ID
func (r *ItemRepository) GetByID(id int64) (*models.Item, error) {
	var item models.Item
	err := DB.Get(&item, "SELECT * FROM items WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %v", err)
	}
	return &item, nil
}

// GetByLabel returns an item by its label, or nil if it doesn't exist
func (r *ItemRepository) GetByLabel(label string) (*models.Item, error) {
	var item models.Item
	err := DB.Get(&item, "SELECT * FROM items WHERE label = $1", label)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %v", err)
	}
	return &item, nil
}

// GetAll returns all items
func (r *ItemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	err := DB.Select(&items, "SELECT * FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %v", err)
	}
	return items, nil
}

// PoolForUser returns the items selectable for a user's sessions. The
// racing theme is for the younger learner, so every question there needs an
// illustration.
func (r *ItemRepository) PoolForUser(u *models.User) ([]models.Item, error) {
	audience := "daughter"
	if u.Theme == "racing" {
		audience = "son"
	}

	query := "SELECT * FROM items WHERE audience IN ($1, 'all')"
	if u.Theme == "racing" {
		query += " AND image_url != ''"
	}

	var items []models.Item
	err := DB.Select(&items, query, audience)
	if err != nil {
		return nil, fmt.Errorf("failed to get item pool: %v", err)
	}
	return items, nil
}

// Create inserts a new item
func (r *ItemRepository) Create(item *models.Item) error {
	query := `
		INSERT INTO items (label, reading, meaning, image_url, audience)
		VALUES ($1, $2, $3, $4, $5)
	`
	if Type() == "sqlite" {
		result, err := DB.Exec(query, item.Label, item.Reading, item.Meaning, item.ImageURL, item.Audience)
		if err != nil {
			return fmt.Errorf("failed to create item: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		item.ID = id
		return nil
	}
	return DB.QueryRow(query+" RETURNING id",
		item.Label, item.Reading, item.Meaning, item.ImageURL, item.Audience,
	).Scan(&item.ID)
}

// Update modifies an existing item
func (r *ItemRepository) Update(item *models.Item) error {
	_, err := DB.Exec(`
		UPDATE items SET
			label = $1,
			reading = $2,
			meaning = $3,
			image_url = $4,
			audience = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6`,
		item.Label, item.Reading, item.Meaning, item.ImageURL, item.Audience, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %v", err)
	}
	return nil
}

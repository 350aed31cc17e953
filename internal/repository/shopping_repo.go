package repository

import (
	"database/sql"
	"fmt"

	"familyhub/internal/database"
	"familyhub/internal/models"
)

// ShoppingRepository handles database operations for shopping list items
type ShoppingRepository struct {
	db *database.DB
}

// NewShoppingRepository creates a new shopping repository
func NewShoppingRepository(db *database.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

// CreateItem inserts a shopping list item
func (r *ShoppingRepository) CreateItem(item models.ShoppingItem) (*models.ShoppingItem, error) {
	id, err := r.db.ExecReturningID(
		"INSERT INTO shopping_items (family_id, name, quantity, category, added_by, is_completed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.FamilyID, item.Name, item.Quantity, item.Category, item.AddedBy, item.IsCompleted, item.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shopping item: %w", err)
	}
	item.ID = id
	return &item, nil
}

// GetItem retrieves a shopping item by id, nil when absent
func (r *ShoppingRepository) GetItem(id int64) (*models.ShoppingItem, error) {
	query := "SELECT id, family_id, name, quantity, category, added_by, is_completed, created_at FROM shopping_items WHERE id = ?"
	item := &models.ShoppingItem{}
	err := r.db.QueryRow(query, id).Scan(
		&item.ID,
		&item.FamilyID,
		&item.Name,
		&item.Quantity,
		&item.Category,
		&item.AddedBy,
		&item.IsCompleted,
		&item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}
	return item, nil
}

// ListItems returns the family's shopping items, newest first
func (r *ShoppingRepository) ListItems(familyID int64) ([]models.ShoppingItem, error) {
	query := "SELECT id, family_id, name, quantity, category, added_by, is_completed, created_at FROM shopping_items WHERE family_id = ? ORDER BY created_at DESC, id DESC"
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping items: %w", err)
	}
	defer rows.Close()

	var items []models.ShoppingItem
	for rows.Next() {
		var item models.ShoppingItem
		if err := rows.Scan(&item.ID, &item.FamilyID, &item.Name, &item.Quantity, &item.Category, &item.AddedBy, &item.IsCompleted, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetCompleted toggles an item's ticked-off state
func (r *ShoppingRepository) SetCompleted(id int64, completed bool) error {
	if _, err := r.db.Exec("UPDATE shopping_items SET is_completed = ? WHERE id = ?", completed, id); err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	return nil
}

// ClearCompleted removes all ticked-off items for a family and
// reports how many were deleted
func (r *ShoppingRepository) ClearCompleted(familyID int64) (int64, error) {
	result, err := r.db.Exec("DELETE FROM shopping_items WHERE family_id = ? AND is_completed = ?", familyID, true)
	if err != nil {
		return 0, fmt.Errorf("failed to clear completed items: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteItem removes a shopping item
func (r *ShoppingRepository) DeleteItem(id int64) error {
	if _, err := r.db.Exec("DELETE FROM shopping_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	return nil
}

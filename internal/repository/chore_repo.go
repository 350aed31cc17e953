package repository

import (
	"database/sql"
	"fmt"

	"familyhub/internal/database"
	"familyhub/internal/models"
)

const choreColumns = "id, family_id, title, assigned_to, due_date, is_completed, recurrence, created_at"

// ChoreRepository handles database operations for chores
type ChoreRepository struct {
	db *database.DB
}

// NewChoreRepository creates a new chore repository
func NewChoreRepository(db *database.DB) *ChoreRepository {
	return &ChoreRepository{db: db}
}

// CreateChore inserts a chore and returns it with its id
func (r *ChoreRepository) CreateChore(chore models.Chore) (*models.Chore, error) {
	query := "INSERT INTO chores (family_id, title, assigned_to, due_date, is_completed, recurrence) VALUES (?, ?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, chore.FamilyID, chore.Title, chore.AssignedTo, chore.DueDate, chore.IsCompleted, chore.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("failed to create chore: %w", err)
	}
	return r.GetChore(id)
}

// GetChore retrieves a chore by id, nil when absent
func (r *ChoreRepository) GetChore(id int64) (*models.Chore, error) {
	row := r.db.QueryRow("SELECT "+choreColumns+" FROM chores WHERE id = ?", id)
	chore, err := scanChore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chore: %w", err)
	}
	return chore, nil
}

// ListChores returns the family's chores ordered by due date
func (r *ChoreRepository) ListChores(familyID int64) ([]models.Chore, error) {
	query := "SELECT " + choreColumns + " FROM chores WHERE family_id = ? ORDER BY due_date ASC, id ASC"
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chores: %w", err)
	}
	defer rows.Close()

	var chores []models.Chore
	for rows.Next() {
		chore, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chore: %w", err)
		}
		chores = append(chores, *chore)
	}
	return chores, rows.Err()
}

// UpdateChore changes a chore's editable fields
func (r *ChoreRepository) UpdateChore(chore models.Chore) error {
	query := "UPDATE chores SET title = ?, assigned_to = ?, due_date = ?, recurrence = ? WHERE id = ?"
	if _, err := r.db.Exec(query, chore.Title, chore.AssignedTo, chore.DueDate, chore.Recurrence, chore.ID); err != nil {
		return fmt.Errorf("failed to update chore: %w", err)
	}
	return nil
}

// SetCompleted sets a chore's completion flag
func (r *ChoreRepository) SetCompleted(id int64, completed bool) error {
	query := "UPDATE chores SET is_completed = ? WHERE id = ?"
	if _, err := r.db.Exec(query, completed, id); err != nil {
		return fmt.Errorf("failed to set chore completion: %w", err)
	}
	return nil
}

// DeleteChore removes a chore
func (r *ChoreRepository) DeleteChore(id int64) error {
	if _, err := r.db.Exec("DELETE FROM chores WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete chore: %w", err)
	}
	return nil
}

func scanChore(row rowScanner) (*models.Chore, error) {
	chore := &models.Chore{}
	var assignedTo sql.NullInt64
	err := row.Scan(
		&chore.ID,
		&chore.FamilyID,
		&chore.Title,
		&assignedTo,
		&chore.DueDate,
		&chore.IsCompleted,
		&chore.Recurrence,
		&chore.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignedTo.Valid {
		chore.AssignedTo = &assignedTo.Int64
	}
	return chore, nil
}

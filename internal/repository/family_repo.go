package repository

import (
	"database/sql"
	"fmt"
	"time"

	"familyhub/internal/database"
	"familyhub/internal/models"
)

// FamilyRepository handles database operations for families
type FamilyRepository struct {
	db *database.DB
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *database.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// CreateFamily creates a family and its first member, a linked admin
// belonging to the creating user, in one transaction
func (r *FamilyRepository) CreateFamily(name string, creator models.FamilyMember) (*models.Family, *models.FamilyMember, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	familyID, err := tx.ExecReturningID("INSERT INTO families (name) VALUES (?)", name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create family: %w", err)
	}

	memberID, err := tx.ExecReturningID(
		"INSERT INTO family_members (family_id, user_id, name, color, avatar_emoji, role, is_linked) VALUES (?, ?, ?, ?, ?, ?, ?)",
		familyID, creator.UserID, creator.Name, creator.Color, creator.AvatarEmoji, models.RoleAdmin, true,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create admin member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	family := &models.Family{ID: familyID, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	member := &models.FamilyMember{
		ID:          memberID,
		FamilyID:    familyID,
		UserID:      creator.UserID,
		Name:        creator.Name,
		Color:       creator.Color,
		AvatarEmoji: creator.AvatarEmoji,
		Role:        models.RoleAdmin,
		IsLinked:    true,
		CreatedAt:   time.Now(),
	}
	return family, member, nil
}

// GetFamilyByID retrieves a family by id, nil when absent
func (r *FamilyRepository) GetFamilyByID(familyID int64) (*models.Family, error) {
	query := "SELECT id, name, created_at, updated_at FROM families WHERE id = ?"
	family := &models.Family{}
	err := r.db.QueryRow(query, familyID).Scan(
		&family.ID,
		&family.Name,
		&family.CreatedAt,
		&family.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return family, nil
}

// GetFamilyForUser retrieves the family the user's linked member
// belongs to, nil when the user has none
func (r *FamilyRepository) GetFamilyForUser(userID int64) (*models.Family, error) {
	query := `
		SELECT f.id, f.name, f.created_at, f.updated_at
		FROM families f
		INNER JOIN family_members fm ON f.id = fm.family_id
		WHERE fm.user_id = ?
		ORDER BY fm.created_at ASC
		LIMIT 1
	`
	family := &models.Family{}
	err := r.db.QueryRow(query, userID).Scan(
		&family.ID,
		&family.Name,
		&family.CreatedAt,
		&family.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family for user: %w", err)
	}
	return family, nil
}

// UpdateFamily renames a family
func (r *FamilyRepository) UpdateFamily(familyID int64, name string) error {
	query := "UPDATE families SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, name, familyID); err != nil {
		return fmt.Errorf("failed to update family: %w", err)
	}
	return nil
}

// DeleteFamily deletes a family and, through cascades, all its data
func (r *FamilyRepository) DeleteFamily(familyID int64) error {
	if _, err := r.db.Exec("DELETE FROM families WHERE id = ?", familyID); err != nil {
		return fmt.Errorf("failed to delete family: %w", err)
	}
	return nil
}

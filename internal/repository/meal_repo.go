package repository

import (
	"database/sql"
	"fmt"

	"familyhub/internal/database"
	"familyhub/internal/models"
)

// MealRepository handles database operations for meal options and votes
type MealRepository struct {
	db *database.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *database.DB) *MealRepository {
	return &MealRepository{db: db}
}

// CreateMeal inserts a proposed meal option
func (r *MealRepository) CreateMeal(meal models.MealOption) (*models.MealOption, error) {
	id, err := r.db.ExecReturningID(
		"INSERT INTO meal_options (family_id, name, scheduled_date, proposed_by, is_selected) VALUES (?, ?, ?, ?, ?)",
		meal.FamilyID, meal.Name, meal.ScheduledDate, meal.ProposedBy, meal.IsSelected,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create meal option: %w", err)
	}
	meal.ID = id
	return &meal, nil
}

// GetMeal retrieves a meal option with its votes, nil when absent
func (r *MealRepository) GetMeal(id int64) (*models.MealOption, error) {
	query := "SELECT id, family_id, name, scheduled_date, proposed_by, is_selected FROM meal_options WHERE id = ?"
	meal := &models.MealOption{}
	err := r.db.QueryRow(query, id).Scan(
		&meal.ID,
		&meal.FamilyID,
		&meal.Name,
		&meal.ScheduledDate,
		&meal.ProposedBy,
		&meal.IsSelected,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal option: %w", err)
	}

	votes, err := r.votesFor([]int64{id})
	if err != nil {
		return nil, err
	}
	meal.Votes = votes[id]
	return meal, nil
}

// ListMeals returns the family's meal options with vote sets, in
// scheduled order
func (r *MealRepository) ListMeals(familyID int64) ([]models.MealOption, error) {
	query := "SELECT id, family_id, name, scheduled_date, proposed_by, is_selected FROM meal_options WHERE family_id = ? ORDER BY scheduled_date ASC, id ASC"
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal options: %w", err)
	}
	defer rows.Close()

	var meals []models.MealOption
	var ids []int64
	for rows.Next() {
		var meal models.MealOption
		if err := rows.Scan(&meal.ID, &meal.FamilyID, &meal.Name, &meal.ScheduledDate, &meal.ProposedBy, &meal.IsSelected); err != nil {
			return nil, fmt.Errorf("failed to scan meal option: %w", err)
		}
		meals = append(meals, meal)
		ids = append(ids, meal.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	votes, err := r.votesFor(ids)
	if err != nil {
		return nil, err
	}
	for i := range meals {
		meals[i].Votes = votes[meals[i].ID]
	}
	return meals, nil
}

// AddVote records a member's vote. A duplicate vote is a no-op.
func (r *MealRepository) AddVote(mealID, memberID int64) error {
	var exists int
	err := r.db.QueryRow("SELECT COUNT(*) FROM meal_votes WHERE meal_id = ? AND member_id = ?", mealID, memberID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check vote: %w", err)
	}
	if exists > 0 {
		return nil
	}
	if _, err := r.db.Exec("INSERT INTO meal_votes (meal_id, member_id) VALUES (?, ?)", mealID, memberID); err != nil {
		return fmt.Errorf("failed to add vote: %w", err)
	}
	return nil
}

// RemoveVote withdraws a member's vote
func (r *MealRepository) RemoveVote(mealID, memberID int64) error {
	if _, err := r.db.Exec("DELETE FROM meal_votes WHERE meal_id = ? AND member_id = ?", mealID, memberID); err != nil {
		return fmt.Errorf("failed to remove vote: %w", err)
	}
	return nil
}

// SelectMeal marks one option as the pick for its day. Any previous
// selection whose scheduled date falls in [dayStart, dayEnd) is
// cleared in the same transaction. Bounds are nanoseconds since epoch.
func (r *MealRepository) SelectMeal(mealID, familyID int64, dayStart, dayEnd int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE meal_options SET is_selected = ? WHERE family_id = ? AND scheduled_date >= ? AND scheduled_date < ?",
		false, familyID, dayStart, dayEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to clear selections: %w", err)
	}
	if _, err := tx.Exec("UPDATE meal_options SET is_selected = ? WHERE id = ?", true, mealID); err != nil {
		return fmt.Errorf("failed to select meal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteMeal removes a meal option; votes cascade
func (r *MealRepository) DeleteMeal(id int64) error {
	if _, err := r.db.Exec("DELETE FROM meal_options WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete meal option: %w", err)
	}
	return nil
}

// votesFor loads voter member ids for a set of meal options
func (r *MealRepository) votesFor(mealIDs []int64) (map[int64][]int64, error) {
	votes := make(map[int64][]int64)
	if len(mealIDs) == 0 {
		return votes, nil
	}

	query := "SELECT meal_id, member_id FROM meal_votes WHERE meal_id IN ("
	args := make([]interface{}, len(mealIDs))
	for i, id := range mealIDs {
		if i > 0 {
			query += ", "
		}
		query += "?"
		args[i] = id
	}
	query += ") ORDER BY member_id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mealID, memberID int64
		if err := rows.Scan(&mealID, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes[mealID] = append(votes[mealID], memberID)
	}
	return votes, rows.Err()
}

package repository

import (
	"database/sql"
	"fmt"

	"familyhub/internal/database"
	"familyhub/internal/models"
)

// MoodRepository handles database operations for mood entries
type MoodRepository struct {
	db *database.DB
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(db *database.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// CreateMood records a check-in
func (r *MoodRepository) CreateMood(entry models.MoodEntry) (*models.MoodEntry, error) {
	query := "INSERT INTO mood_entries (family_id, member_id, mood, note, date) VALUES (?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, entry.FamilyID, entry.MemberID, entry.Mood, entry.Note, entry.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	entry.ID = id
	return &entry, nil
}

// GetMood retrieves a mood entry by id, nil when absent
func (r *MoodRepository) GetMood(id int64) (*models.MoodEntry, error) {
	query := "SELECT id, family_id, member_id, mood, note, date FROM mood_entries WHERE id = ?"
	entry := &models.MoodEntry{}
	err := r.db.QueryRow(query, id).Scan(
		&entry.ID,
		&entry.FamilyID,
		&entry.MemberID,
		&entry.Mood,
		&entry.Note,
		&entry.Date,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}
	return entry, nil
}

// ListMoods returns the family's check-ins, most recent first
func (r *MoodRepository) ListMoods(familyID int64) ([]models.MoodEntry, error) {
	query := "SELECT id, family_id, member_id, mood, note, date FROM mood_entries WHERE family_id = ? ORDER BY date DESC, id DESC"
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var entry models.MoodEntry
		if err := rows.Scan(&entry.ID, &entry.FamilyID, &entry.MemberID, &entry.Mood, &entry.Note, &entry.Date); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DeleteMood removes a check-in
func (r *MoodRepository) DeleteMood(id int64) error {
	if _, err := r.db.Exec("DELETE FROM mood_entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	return nil
}

package repository

import (
	"database/sql"
	"fmt"

	"familyhub/internal/database"
	"familyhub/internal/models"
)

// EventRepository handles database operations for calendar events and
// their attendee sets
type EventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateEvent inserts an event with its attendees in one transaction
func (r *EventRepository) CreateEvent(event models.CalendarEvent) (*models.CalendarEvent, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := tx.ExecReturningID(
		"INSERT INTO calendar_events (family_id, title, event_type, start_date, end_date) VALUES (?, ?, ?, ?, ?)",
		event.FamilyID, event.Title, event.EventType, event.StartDate, event.EndDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	for _, memberID := range event.MemberIDs {
		if _, err := tx.Exec("INSERT INTO event_attendees (event_id, member_id) VALUES (?, ?)", id, memberID); err != nil {
			return nil, fmt.Errorf("failed to add attendee: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	event.ID = id
	return &event, nil
}

// GetEvent retrieves an event with its attendees, nil when absent
func (r *EventRepository) GetEvent(id int64) (*models.CalendarEvent, error) {
	query := "SELECT id, family_id, title, event_type, start_date, end_date FROM calendar_events WHERE id = ?"
	event := &models.CalendarEvent{}
	err := r.db.QueryRow(query, id).Scan(
		&event.ID,
		&event.FamilyID,
		&event.Title,
		&event.EventType,
		&event.StartDate,
		&event.EndDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	attendees, err := r.attendeesFor([]int64{id})
	if err != nil {
		return nil, err
	}
	event.MemberIDs = attendees[id]
	return event, nil
}

// ListEvents returns the family's events with attendee sets, ordered
// by start date
func (r *EventRepository) ListEvents(familyID int64) ([]models.CalendarEvent, error) {
	query := "SELECT id, family_id, title, event_type, start_date, end_date FROM calendar_events WHERE family_id = ? ORDER BY start_date ASC, id ASC"
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.CalendarEvent
	var ids []int64
	for rows.Next() {
		var event models.CalendarEvent
		if err := rows.Scan(&event.ID, &event.FamilyID, &event.Title, &event.EventType, &event.StartDate, &event.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
		ids = append(ids, event.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attendees, err := r.attendeesFor(ids)
	if err != nil {
		return nil, err
	}
	for i := range events {
		events[i].MemberIDs = attendees[events[i].ID]
	}
	return events, nil
}

// UpdateEvent rewrites an event and replaces its attendee set
func (r *EventRepository) UpdateEvent(event models.CalendarEvent) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE calendar_events SET title = ?, event_type = ?, start_date = ?, end_date = ? WHERE id = ?",
		event.Title, event.EventType, event.StartDate, event.EndDate, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM event_attendees WHERE event_id = ?", event.ID); err != nil {
		return fmt.Errorf("failed to clear attendees: %w", err)
	}
	for _, memberID := range event.MemberIDs {
		if _, err := tx.Exec("INSERT INTO event_attendees (event_id, member_id) VALUES (?, ?)", event.ID, memberID); err != nil {
			return fmt.Errorf("failed to add attendee: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteEvent removes an event; attendees cascade
func (r *EventRepository) DeleteEvent(id int64) error {
	if _, err := r.db.Exec("DELETE FROM calendar_events WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// attendeesFor loads attendee member ids for a set of events
func (r *EventRepository) attendeesFor(eventIDs []int64) (map[int64][]int64, error) {
	attendees := make(map[int64][]int64)
	if len(eventIDs) == 0 {
		return attendees, nil
	}

	query := "SELECT event_id, member_id FROM event_attendees WHERE event_id IN ("
	args := make([]interface{}, len(eventIDs))
	for i, id := range eventIDs {
		if i > 0 {
			query += ", "
		}
		query += "?"
		args[i] = id
	}
	query += ") ORDER BY member_id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID, memberID int64
		if err := rows.Scan(&eventID, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan attendee: %w", err)
		}
		attendees[eventID] = append(attendees[eventID], memberID)
	}
	return attendees, rows.Err()
}

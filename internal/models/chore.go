package models

import "time"

// Recurrence values for Chore.Recurrence
const (
	RecurrenceNone   = "none"
	RecurrenceDaily  = "daily"
	RecurrenceWeekly = "weekly"
)

// Chore represents a household task, optionally assigned to a member.
// DueDate is nanoseconds since epoch, the timestamp unit used across
// the API.
type Chore struct {
	ID          int64
	FamilyID    int64
	Title       string
	AssignedTo  *int64
	DueDate     int64
	IsCompleted bool
	Recurrence  string
	CreatedAt   time.Time
}

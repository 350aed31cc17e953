package service

import (
	"errors"
	"fmt"

	"familyhub/internal/analytics"
	"familyhub/internal/models"
	"familyhub/internal/repository"
)

var ErrChoreNotFound = errors.New("chore not found")

// Recurrence expansion counts: a daily chore materializes a week of
// copies, a weekly chore a month's worth.
const (
	dailyCopies  = 7
	weeklyCopies = 4
)

// ChoreService handles household task business logic
type ChoreService struct {
	choreRepo *repository.ChoreRepository
}

// NewChoreService creates a new chore service
func NewChoreService(choreRepo *repository.ChoreRepository) *ChoreService {
	return &ChoreService{choreRepo: choreRepo}
}

// ListChores returns the family's chores ordered by due date
func (s *ChoreService) ListChores(familyID int64) ([]models.Chore, error) {
	return s.choreRepo.ListChores(familyID)
}

// CreateChore creates a chore, expanding recurring ones into concrete
// copies up front. Returns every chore created.
func (s *ChoreService) CreateChore(familyID int64, title string, assignedTo *int64, dueDate int64, recurrence string) ([]models.Chore, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	switch recurrence {
	case "", models.RecurrenceNone:
		recurrence = models.RecurrenceNone
	case models.RecurrenceDaily, models.RecurrenceWeekly:
	default:
		return nil, fmt.Errorf("unknown recurrence %q", recurrence)
	}

	var created []models.Chore
	for _, due := range ExpandRecurrence(dueDate, recurrence) {
		chore, err := s.choreRepo.CreateChore(models.Chore{
			FamilyID:   familyID,
			Title:      title,
			AssignedTo: assignedTo,
			DueDate:    due,
			Recurrence: recurrence,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create chore: %w", err)
		}
		created = append(created, *chore)
	}
	return created, nil
}

// UpdateChore rewrites a chore's editable fields
func (s *ChoreService) UpdateChore(familyID, choreID int64, title string, assignedTo *int64, dueDate int64, recurrence string) (*models.Chore, error) {
	chore, err := s.getFamilyChore(familyID, choreID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		chore.Title = title
	}
	chore.AssignedTo = assignedTo
	if dueDate != 0 {
		chore.DueDate = dueDate
	}
	if recurrence != "" {
		chore.Recurrence = recurrence
	}

	if err := s.choreRepo.UpdateChore(*chore); err != nil {
		return nil, fmt.Errorf("failed to update chore: %w", err)
	}
	return chore, nil
}

// ToggleChore flips a chore's completed state
func (s *ChoreService) ToggleChore(familyID, choreID int64) (*models.Chore, error) {
	chore, err := s.getFamilyChore(familyID, choreID)
	if err != nil {
		return nil, err
	}

	chore.IsCompleted = !chore.IsCompleted
	if err := s.choreRepo.SetCompleted(chore.ID, chore.IsCompleted); err != nil {
		return nil, fmt.Errorf("failed to toggle chore: %w", err)
	}
	return chore, nil
}

// DeleteChore removes a chore
func (s *ChoreService) DeleteChore(familyID, choreID int64) error {
	if _, err := s.getFamilyChore(familyID, choreID); err != nil {
		return err
	}
	return s.choreRepo.DeleteChore(choreID)
}

func (s *ChoreService) getFamilyChore(familyID, choreID int64) (*models.Chore, error) {
	chore, err := s.choreRepo.GetChore(choreID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chore: %w", err)
	}
	if chore == nil || chore.FamilyID != familyID {
		return nil, ErrChoreNotFound
	}
	return chore, nil
}

// ExpandRecurrence turns one due date into the series of due dates a
// recurring chore materializes as. Non-recurring chores yield just the
// given date. Steps use calendar arithmetic so the clock time survives
// DST transitions.
func ExpandRecurrence(dueDate int64, recurrence string) []int64 {
	base := analytics.ToLocalDate(dueDate)

	var count, stepDays int
	switch recurrence {
	case models.RecurrenceDaily:
		count, stepDays = dailyCopies, 1
	case models.RecurrenceWeekly:
		count, stepDays = weeklyCopies, 7
	default:
		return []int64{dueDate}
	}

	dates := make([]int64, count)
	for i := 0; i < count; i++ {
		d := base.AddDate(0, 0, i*stepDays)
		dates[i] = d.UnixMilli() * analytics.NanosPerMilli
	}
	return dates
}

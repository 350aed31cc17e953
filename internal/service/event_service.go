package service

import (
	"errors"
	"fmt"
	"time"

	"familyhub/internal/models"
	"familyhub/internal/repository"
)

var ErrEventNotFound = errors.New("event not found")

// defaultEventDuration applies when an event omits its end date
const defaultEventDuration = time.Hour

// EventService handles calendar event business logic
type EventService struct {
	eventRepo *repository.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// ListEvents returns the family's events in scheduled order
func (s *EventService) ListEvents(familyID int64) ([]models.CalendarEvent, error) {
	return s.eventRepo.ListEvents(familyID)
}

// CreateEvent creates an event with its attendee set
func (s *EventService) CreateEvent(familyID int64, title, eventType string, startDate, endDate int64, memberIDs []int64) (*models.CalendarEvent, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if !validEventType(eventType) {
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}
	if endDate == 0 {
		endDate = startDate + defaultEventDuration.Nanoseconds()
	}
	if endDate < startDate {
		return nil, errors.New("end date before start date")
	}

	event, err := s.eventRepo.CreateEvent(models.CalendarEvent{
		FamilyID:  familyID,
		Title:     title,
		EventType: eventType,
		StartDate: startDate,
		EndDate:   endDate,
		MemberIDs: memberIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// UpdateEvent rewrites an event and replaces its attendee set
func (s *EventService) UpdateEvent(familyID, eventID int64, title, eventType string, startDate, endDate int64, memberIDs []int64) (*models.CalendarEvent, error) {
	event, err := s.getFamilyEvent(familyID, eventID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		event.Title = title
	}
	if eventType != "" {
		if !validEventType(eventType) {
			return nil, fmt.Errorf("unknown event type %q", eventType)
		}
		event.EventType = eventType
	}
	if startDate != 0 {
		event.StartDate = startDate
	}
	if endDate != 0 {
		event.EndDate = endDate
	}
	if event.EndDate < event.StartDate {
		return nil, errors.New("end date before start date")
	}
	event.MemberIDs = memberIDs

	if err := s.eventRepo.UpdateEvent(*event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an event
func (s *EventService) DeleteEvent(familyID, eventID int64) error {
	if _, err := s.getFamilyEvent(familyID, eventID); err != nil {
		return err
	}
	return s.eventRepo.DeleteEvent(eventID)
}

func (s *EventService) getFamilyEvent(familyID, eventID int64) (*models.CalendarEvent, error) {
	event, err := s.eventRepo.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil || event.FamilyID != familyID {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func validEventType(eventType string) bool {
	switch eventType {
	case models.EventBirthday, models.EventAppointment, models.EventActivity, models.EventOther:
		return true
	}
	return false
}

package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"familyhub/internal/analytics"
	"familyhub/internal/models"
	"familyhub/internal/repository"
)

// ExportService renders family data as CSV downloads
type ExportService struct {
	memberRepo   *repository.MemberRepository
	choreRepo    *repository.ChoreRepository
	moodRepo     *repository.MoodRepository
	eventRepo    *repository.EventRepository
	shoppingRepo *repository.ShoppingRepository
}

// NewExportService creates a new export service
func NewExportService(
	memberRepo *repository.MemberRepository,
	choreRepo *repository.ChoreRepository,
	moodRepo *repository.MoodRepository,
	eventRepo *repository.EventRepository,
	shoppingRepo *repository.ShoppingRepository,
) *ExportService {
	return &ExportService{
		memberRepo:   memberRepo,
		choreRepo:    choreRepo,
		moodRepo:     moodRepo,
		eventRepo:    eventRepo,
		shoppingRepo: shoppingRepo,
	}
}

// ExportFilename names a download familyhub_<kind>_YYYY-MM-DD.csv
func ExportFilename(kind string, now time.Time) string {
	return fmt.Sprintf("familyhub_%s_%s.csv", kind, now.Format("2006-01-02"))
}

// ExportChores writes the family's chores as CSV
func (s *ExportService) ExportChores(w io.Writer, familyID int64) error {
	chores, err := s.choreRepo.ListChores(familyID)
	if err != nil {
		return fmt.Errorf("failed to load chores: %w", err)
	}
	names, err := s.memberNames(familyID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Title", "Assigned To", "Due Date", "Completed", "Recurrence"}); err != nil {
		return err
	}
	for _, c := range chores {
		assigned := ""
		if c.AssignedTo != nil {
			assigned = names[*c.AssignedTo]
		}
		record := []string{
			c.Title,
			assigned,
			analytics.FormatLocalDate(c.DueDate),
			strconv.FormatBool(c.IsCompleted),
			c.Recurrence,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportMoods writes the family's mood check-ins as CSV
func (s *ExportService) ExportMoods(w io.Writer, familyID int64) error {
	moods, err := s.moodRepo.ListMoods(familyID)
	if err != nil {
		return fmt.Errorf("failed to load moods: %w", err)
	}
	names, err := s.memberNames(familyID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Member", "Mood", "Label", "Note", "Date"}); err != nil {
		return err
	}
	for _, m := range moods {
		record := []string{
			names[m.MemberID],
			m.Mood,
			models.MoodLabels[m.Mood],
			m.Note,
			analytics.FormatLocalDate(m.Date),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportEvents writes the family's calendar events as CSV. Attendees
// land in one semicolon-separated cell.
func (s *ExportService) ExportEvents(w io.Writer, familyID int64) error {
	events, err := s.eventRepo.ListEvents(familyID)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}
	names, err := s.memberNames(familyID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Title", "Type", "Start", "End", "Attendees"}); err != nil {
		return err
	}
	for _, e := range events {
		attendees := ""
		for i, id := range e.MemberIDs {
			if i > 0 {
				attendees += "; "
			}
			attendees += names[id]
		}
		record := []string{
			e.Title,
			e.EventType,
			analytics.FormatLocalDate(e.StartDate),
			analytics.FormatLocalDate(e.EndDate),
			attendees,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportShopping writes the family's shopping list as CSV
func (s *ExportService) ExportShopping(w io.Writer, familyID int64) error {
	items, err := s.shoppingRepo.ListItems(familyID)
	if err != nil {
		return fmt.Errorf("failed to load shopping items: %w", err)
	}
	names, err := s.memberNames(familyID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Quantity", "Category", "Added By", "Completed"}); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			item.Name,
			item.Quantity,
			item.Category,
			names[item.AddedBy],
			strconv.FormatBool(item.IsCompleted),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ExportService) memberNames(familyID int64) (map[int64]string, error) {
	members, err := s.memberRepo.ListMembers(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names, nil
}

package service

import (
	"errors"
	"fmt"

	"familyhub/internal/models"
	"familyhub/internal/repository"
)

var (
	ErrMoodNotFound = errors.New("mood entry not found")
	ErrUnknownMood  = errors.New("unknown mood")
)

// MoodService handles mood check-ins. The mood vocabulary is enforced
// here so stored tokens are always scoreable downstream.
type MoodService struct {
	moodRepo *repository.MoodRepository
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo *repository.MoodRepository) *MoodService {
	return &MoodService{moodRepo: moodRepo}
}

// ListMoods returns the family's check-ins, newest first
func (s *MoodService) ListMoods(familyID int64) ([]models.MoodEntry, error) {
	return s.moodRepo.ListMoods(familyID)
}

// CheckIn records a mood for a member
func (s *MoodService) CheckIn(familyID, memberID int64, mood, note string, date int64) (*models.MoodEntry, error) {
	if !models.IsValidMood(mood) {
		return nil, ErrUnknownMood
	}

	entry, err := s.moodRepo.CreateMood(models.MoodEntry{
		FamilyID: familyID,
		MemberID: memberID,
		Mood:     mood,
		Note:     note,
		Date:     date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record mood: %w", err)
	}
	return entry, nil
}

// DeleteMood removes a check-in
func (s *MoodService) DeleteMood(familyID, moodID int64) error {
	entry, err := s.moodRepo.GetMood(moodID)
	if err != nil {
		return fmt.Errorf("failed to get mood entry: %w", err)
	}
	if entry == nil || entry.FamilyID != familyID {
		return ErrMoodNotFound
	}
	return s.moodRepo.DeleteMood(moodID)
}

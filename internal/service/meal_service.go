package service

import (
	"errors"
	"fmt"
	"time"

	"familyhub/internal/analytics"
	"familyhub/internal/models"
	"familyhub/internal/repository"
)

var ErrMealNotFound = errors.New("meal option not found")

// MealService handles meal proposals, voting, and day selection
type MealService struct {
	mealRepo *repository.MealRepository
}

// NewMealService creates a new meal service
func NewMealService(mealRepo *repository.MealRepository) *MealService {
	return &MealService{mealRepo: mealRepo}
}

// ListMeals returns the family's meal options with vote sets
func (s *MealService) ListMeals(familyID int64) ([]models.MealOption, error) {
	return s.mealRepo.ListMeals(familyID)
}

// ProposeMeal adds a meal option for a day
func (s *MealService) ProposeMeal(familyID, memberID int64, name string, scheduledDate int64) (*models.MealOption, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}

	meal, err := s.mealRepo.CreateMeal(models.MealOption{
		FamilyID:      familyID,
		Name:          name,
		ScheduledDate: scheduledDate,
		ProposedBy:    memberID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to propose meal: %w", err)
	}
	return meal, nil
}

// ToggleVote adds the member's vote, or withdraws it if already cast
func (s *MealService) ToggleVote(familyID, mealID, memberID int64) (*models.MealOption, error) {
	meal, err := s.getFamilyMeal(familyID, mealID)
	if err != nil {
		return nil, err
	}

	if meal.HasVote(memberID) {
		err = s.mealRepo.RemoveVote(mealID, memberID)
	} else {
		err = s.mealRepo.AddVote(mealID, memberID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle vote: %w", err)
	}
	return s.mealRepo.GetMeal(mealID)
}

// SelectMeal marks an option as the day's pick, replacing any earlier
// selection on that day
func (s *MealService) SelectMeal(familyID, mealID int64) (*models.MealOption, error) {
	meal, err := s.getFamilyMeal(familyID, mealID)
	if err != nil {
		return nil, err
	}

	dayStart := analytics.StartOfDay(analytics.ToLocalDate(meal.ScheduledDate))
	dayEnd := dayStart.AddDate(0, 0, 1)
	startNs := dayStart.UnixMilli() * analytics.NanosPerMilli
	endNs := dayEnd.UnixMilli() * analytics.NanosPerMilli

	if err := s.mealRepo.SelectMeal(mealID, familyID, startNs, endNs); err != nil {
		return nil, fmt.Errorf("failed to select meal: %w", err)
	}

	meal.IsSelected = true
	return meal, nil
}

// MealSummary aggregates the family's meal voting for display
type MealSummary struct {
	TotalVotes   int
	TopMeals     []models.MealOption
	TodaysMeals  []models.MealOption
	SelectedMeal *models.MealOption
}

// Summary computes vote totals, the leading options, today's slate in
// vote order, and today's selected pick
func (s *MealService) Summary(familyID int64, now time.Time) (*MealSummary, error) {
	meals, err := s.mealRepo.ListMeals(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal options: %w", err)
	}

	today := analytics.MealsForDay(meals, now)
	return &MealSummary{
		TotalVotes:   analytics.TotalVotes(meals),
		TopMeals:     analytics.TopMealsByVotes(meals, 3),
		TodaysMeals:  today,
		SelectedMeal: analytics.SelectedMeal(today),
	}, nil
}

// DeleteMeal removes a meal option
func (s *MealService) DeleteMeal(familyID, mealID int64) error {
	if _, err := s.getFamilyMeal(familyID, mealID); err != nil {
		return err
	}
	return s.mealRepo.DeleteMeal(mealID)
}

func (s *MealService) getFamilyMeal(familyID, mealID int64) (*models.MealOption, error) {
	meal, err := s.mealRepo.GetMeal(mealID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal option: %w", err)
	}
	if meal == nil || meal.FamilyID != familyID {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

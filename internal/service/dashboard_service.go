package service

import (
	"fmt"
	"time"

	"familyhub/internal/analytics"
	"familyhub/internal/models"
	"familyhub/internal/repository"
)

// feedDefaultLimit caps the activity feed when no limit is requested
const feedDefaultLimit = 20

// DashboardService assembles derived views from repository snapshots.
// All computation happens in the analytics package against in-memory
// slices; this service only fetches and delegates.
type DashboardService struct {
	memberRepo *repository.MemberRepository
	choreRepo  *repository.ChoreRepository
	moodRepo   *repository.MoodRepository
	eventRepo  *repository.EventRepository
	mealRepo   *repository.MealRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	memberRepo *repository.MemberRepository,
	choreRepo *repository.ChoreRepository,
	moodRepo *repository.MoodRepository,
	eventRepo *repository.EventRepository,
	mealRepo *repository.MealRepository,
) *DashboardService {
	return &DashboardService{
		memberRepo: memberRepo,
		choreRepo:  choreRepo,
		moodRepo:   moodRepo,
		eventRepo:  eventRepo,
		mealRepo:   mealRepo,
	}
}

// Dashboard bundles everything the overview page renders in one shot
type Dashboard struct {
	Summary        analytics.Summary
	Today          analytics.TodayOverview
	Alerts         analytics.Alerts
	Feed           []analytics.Activity
	MoodTrend      []analytics.SeriesPoint
	ChoreSeries    []analytics.SeriesPoint
	UpcomingEvents []models.CalendarEvent
}

// snapshot holds one consistent read of the family's collections
type snapshot struct {
	members []models.FamilyMember
	chores  []models.Chore
	moods   []models.MoodEntry
	events  []models.CalendarEvent
	meals   []models.MealOption
}

// GetDashboard builds the full dashboard for a family as of now
func (s *DashboardService) GetDashboard(familyID int64, now time.Time) (*Dashboard, error) {
	snap, err := s.load(familyID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Summary:        analytics.BuildSummary(snap.members, snap.chores, snap.moods, snap.events, now),
		Today:          analytics.BuildTodayOverview(snap.moods, snap.chores, snap.events, snap.meals, now),
		Alerts:         analytics.BuildAlerts(snap.chores, snap.events, now),
		Feed:           analytics.BuildActivityFeed(snap.moods, snap.chores, snap.events, snap.meals, snap.members, feedDefaultLimit, now),
		MoodTrend:      analytics.MoodTrend(snap.moods, now),
		ChoreSeries:    analytics.ChoreCompletionSeries(snap.chores, now),
		UpcomingEvents: analytics.UpcomingEvents(snap.events, 5, now),
	}, nil
}

// GetActivityFeed builds just the merged feed, capped at limit
func (s *DashboardService) GetActivityFeed(familyID int64, limit int, now time.Time) ([]analytics.Activity, error) {
	snap, err := s.load(familyID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = feedDefaultLimit
	}
	return analytics.BuildActivityFeed(snap.moods, snap.chores, snap.events, snap.meals, snap.members, limit, now), nil
}

// GetMemberStats computes one member's standing
func (s *DashboardService) GetMemberStats(familyID, memberID int64, now time.Time) (*analytics.MemberStats, error) {
	member, err := s.memberRepo.GetMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil || member.FamilyID != familyID {
		return nil, ErrMemberNotFound
	}

	snap, err := s.load(familyID)
	if err != nil {
		return nil, err
	}
	stats := analytics.ComputeMemberStats(memberID, snap.chores, snap.moods, snap.events, now)
	return &stats, nil
}

func (s *DashboardService) load(familyID int64) (*snapshot, error) {
	members, err := s.memberRepo.ListMembers(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	chores, err := s.choreRepo.ListChores(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chores: %w", err)
	}
	moods, err := s.moodRepo.ListMoods(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load moods: %w", err)
	}
	events, err := s.eventRepo.ListEvents(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	meals, err := s.mealRepo.ListMeals(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meals: %w", err)
	}
	return &snapshot{members: members, chores: chores, moods: moods, events: events, meals: meals}, nil
}

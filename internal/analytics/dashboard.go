package analytics

import (
	"sort"
	"time"

	"familyhub/internal/models"
)

// Summary holds the headline dashboard numbers
type Summary struct {
	Members                 int
	ChoresCompletedThisWeek int
	ChoreChange             Change
	MoodAverage             float64
	MoodEmoji               string
	EventsThisWeek          int
	EventsToday             int
}

// TodayOverview groups today's records for the dashboard highlights
type TodayOverview struct {
	Moods         []models.MoodEntry
	PendingChores []models.Chore
	Events        []models.CalendarEvent
	Meals         []models.MealOption
}

// Alerts holds attention-worthy records: chores past due and
// birthdays coming up within a week
type Alerts struct {
	OverdueChores     []models.Chore
	UpcomingBirthdays []models.CalendarEvent
}

// BuildSummary computes the headline stats: this week's completed
// chores with a week-over-week change, the weekly mood average, and
// event counts.
func BuildSummary(
	members []models.FamilyMember,
	chores []models.Chore,
	moods []models.MoodEntry,
	events []models.CalendarEvent,
	now time.Time,
) Summary {
	thisWeek, lastWeek := 0, 0
	for _, c := range chores {
		if !c.IsCompleted {
			continue
		}
		if IsThisWeek(c.DueDate, now) {
			thisWeek++
		} else if IsLastWeek(c.DueDate, now) {
			lastWeek++
		}
	}

	var weekMoods []models.MoodEntry
	for _, m := range moods {
		if IsThisWeek(m.Date, now) {
			weekMoods = append(weekMoods, m)
		}
	}
	avg := AverageMoodScore(weekMoods)

	eventsThisWeek, eventsToday := 0, 0
	for _, e := range events {
		if IsThisWeek(e.StartDate, now) {
			eventsThisWeek++
		}
		if SameDay(ToLocalDate(e.StartDate), now) {
			eventsToday++
		}
	}

	return Summary{
		Members:                 len(members),
		ChoresCompletedThisWeek: thisWeek,
		ChoreChange:             PercentChange(thisWeek, lastWeek),
		MoodAverage:             avg,
		MoodEmoji:               EmojiForScore(avg),
		EventsThisWeek:          eventsThisWeek,
		EventsToday:             eventsToday,
	}
}

// BuildTodayOverview filters each collection down to today's records.
// Chores exclude completed ones; events come back sorted by start
// time.
func BuildTodayOverview(
	moods []models.MoodEntry,
	chores []models.Chore,
	events []models.CalendarEvent,
	meals []models.MealOption,
	now time.Time,
) TodayOverview {
	var overview TodayOverview

	for _, m := range moods {
		if SameDay(ToLocalDate(m.Date), now) {
			overview.Moods = append(overview.Moods, m)
		}
	}
	for _, c := range chores {
		if !c.IsCompleted && SameDay(ToLocalDate(c.DueDate), now) {
			overview.PendingChores = append(overview.PendingChores, c)
		}
	}
	for _, e := range events {
		if SameDay(ToLocalDate(e.StartDate), now) {
			overview.Events = append(overview.Events, e)
		}
	}
	sort.Slice(overview.Events, func(i, j int) bool {
		return overview.Events[i].StartDate < overview.Events[j].StartDate
	})
	for _, m := range meals {
		if SameDay(ToLocalDate(m.ScheduledDate), now) {
			overview.Meals = append(overview.Meals, m)
		}
	}

	return overview
}

// BuildAlerts collects overdue chores and birthdays within the next
// seven days
func BuildAlerts(chores []models.Chore, events []models.CalendarEvent, now time.Time) Alerts {
	var alerts Alerts
	nowNanos := now.UnixNano()

	for _, c := range chores {
		if !c.IsCompleted && c.DueDate < nowNanos {
			alerts.OverdueChores = append(alerts.OverdueChores, c)
		}
	}
	for _, e := range events {
		if e.EventType == models.EventBirthday && IsWithinDaysFromNow(e.StartDate, 7, now) {
			alerts.UpcomingBirthdays = append(alerts.UpcomingBirthdays, e)
		}
	}

	return alerts
}

// UpcomingEvents returns up to limit future events sorted by start
// time
func UpcomingEvents(events []models.CalendarEvent, limit int, now time.Time) []models.CalendarEvent {
	nowNanos := now.UnixNano()
	var upcoming []models.CalendarEvent
	for _, e := range events {
		if e.StartDate >= nowNanos {
			upcoming = append(upcoming, e)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate < upcoming[j].StartDate
	})
	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// TotalVotes sums votes across all meal options
func TotalVotes(meals []models.MealOption) int {
	total := 0
	for _, m := range meals {
		total += len(m.Votes)
	}
	return total
}

// TopMealsByVotes returns up to limit options sorted by vote count
// descending
func TopMealsByVotes(meals []models.MealOption, limit int) []models.MealOption {
	ranked := make([]models.MealOption, len(meals))
	copy(ranked, meals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].Votes) > len(ranked[j].Votes)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// MealsForDay returns the options scheduled on day, sorted by vote
// count descending
func MealsForDay(meals []models.MealOption, day time.Time) []models.MealOption {
	var dayMeals []models.MealOption
	dayStart := StartOfDay(day)
	for _, m := range meals {
		if inDayBucket(m.ScheduledDate, dayStart) {
			dayMeals = append(dayMeals, m)
		}
	}
	sort.SliceStable(dayMeals, func(i, j int) bool {
		return len(dayMeals[i].Votes) > len(dayMeals[j].Votes)
	})
	return dayMeals
}

// SelectedMeal returns the selected option among meals, nil when none
func SelectedMeal(meals []models.MealOption) *models.MealOption {
	for i := range meals {
		if meals[i].IsSelected {
			return &meals[i]
		}
	}
	return nil
}

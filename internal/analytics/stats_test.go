package analytics

import (
	"testing"
	"time"

	"familyhub/internal/models"
)

// Three members; one incomplete chore due yesterday for A, one
// completed chore due today for B.
func TestComputeMemberStatsScenario(t *testing.T) {
	yesterday := nanos(fixedNow.AddDate(0, 0, -1))
	today := nanos(fixedNow)

	chores := []models.Chore{
		{Title: "Trash", AssignedTo: memberID(1), DueDate: yesterday, IsCompleted: false},
		{Title: "Dishes", AssignedTo: memberID(2), DueDate: today, IsCompleted: true},
	}

	if rate := CompletionRate(chores); rate != 50 {
		t.Errorf("CompletionRate = %d, want 50", rate)
	}

	statsA := ComputeMemberStats(1, chores, nil, nil, fixedNow)
	if statsA.ChoresAssigned != 1 || statsA.ChoresCompleted != 0 {
		t.Errorf("member A stats = %+v, want 1 assigned, 0 completed", statsA)
	}

	statsB := ComputeMemberStats(2, chores, nil, nil, fixedNow)
	if statsB.ChoresAssigned != 1 || statsB.ChoresCompleted != 1 {
		t.Errorf("member B stats = %+v, want 1 assigned, 1 completed", statsB)
	}

	statsC := ComputeMemberStats(3, chores, nil, nil, fixedNow)
	if statsC.ChoresAssigned != 0 || statsC.ChoresCompleted != 0 {
		t.Errorf("member C stats = %+v, want zeroes", statsC)
	}
}

func TestComputeMemberStatsRecentMood(t *testing.T) {
	moods := []models.MoodEntry{
		{MemberID: 1, Mood: models.MoodSad, Date: nanos(fixedNow.AddDate(0, 0, -2))},
		{MemberID: 1, Mood: models.MoodHappy, Date: nanos(fixedNow.Add(-1 * time.Hour))},
		{MemberID: 2, Mood: models.MoodAngry, Date: nanos(fixedNow)},
	}

	stats := ComputeMemberStats(1, nil, moods, nil, fixedNow)
	if stats.RecentMood != models.MoodHappy {
		t.Errorf("RecentMood = %q, want most recent entry %q", stats.RecentMood, models.MoodHappy)
	}

	none := ComputeMemberStats(3, nil, moods, nil, fixedNow)
	if none.RecentMood != "" {
		t.Errorf("RecentMood for member with no entries = %q, want empty", none.RecentMood)
	}
}

func TestComputeMemberStatsUpcomingEvents(t *testing.T) {
	events := []models.CalendarEvent{
		{Title: "Past", StartDate: nanos(fixedNow.AddDate(0, 0, -1)), MemberIDs: []int64{1}},
		{Title: "Soon", StartDate: nanos(fixedNow.AddDate(0, 0, 2)), MemberIDs: []int64{1, 2}},
		{Title: "Later", StartDate: nanos(fixedNow.AddDate(0, 0, 9)), MemberIDs: []int64{2}},
	}

	if got := ComputeMemberStats(1, nil, nil, events, fixedNow).UpcomingEvents; got != 1 {
		t.Errorf("member 1 upcoming = %d, want 1", got)
	}
	if got := ComputeMemberStats(2, nil, nil, events, fixedNow).UpcomingEvents; got != 2 {
		t.Errorf("member 2 upcoming = %d, want 2", got)
	}
}

// No moods for a week: the average is zero and the emoji mapping
// still resolves rather than failing.
func TestQuietWeekDegradesGracefully(t *testing.T) {
	avg := AverageMoodScore(nil)
	if avg != 0 {
		t.Fatalf("AverageMoodScore(nil) = %v, want 0", avg)
	}
	if emoji := EmojiForScore(avg); emoji != models.MoodAngry {
		t.Errorf("EmojiForScore(0) = %q, want lowest-score emoji", emoji)
	}
}

func TestBuildSummaryWeekOverWeek(t *testing.T) {
	thisWeek := nanos(fixedNow.AddDate(0, 0, -1)) // Tuesday, same week
	lastWeek := nanos(fixedNow.AddDate(0, 0, -7))

	chores := []models.Chore{
		{Title: "a", DueDate: thisWeek, IsCompleted: true},
		{Title: "b", DueDate: thisWeek, IsCompleted: true},
		{Title: "c", DueDate: lastWeek, IsCompleted: true},
		{Title: "d", DueDate: thisWeek, IsCompleted: false},
	}

	summary := BuildSummary(testMembers(), chores, nil, nil, fixedNow)

	if summary.Members != 3 {
		t.Errorf("Members = %d, want 3", summary.Members)
	}
	if summary.ChoresCompletedThisWeek != 2 {
		t.Errorf("ChoresCompletedThisWeek = %d, want 2", summary.ChoresCompletedThisWeek)
	}
	if summary.ChoreChange != (Change{Value: "+100%", Type: ChangePositive}) {
		t.Errorf("ChoreChange = %+v, want +100%% positive", summary.ChoreChange)
	}
}

func TestBuildAlerts(t *testing.T) {
	chores := []models.Chore{
		{Title: "Overdue", DueDate: nanos(fixedNow.AddDate(0, 0, -2)), IsCompleted: false},
		{Title: "Done late", DueDate: nanos(fixedNow.AddDate(0, 0, -2)), IsCompleted: true},
		{Title: "Future", DueDate: nanos(fixedNow.AddDate(0, 0, 2)), IsCompleted: false},
	}
	events := []models.CalendarEvent{
		{Title: "Birthday soon", EventType: models.EventBirthday, StartDate: nanos(fixedNow.AddDate(0, 0, 3))},
		{Title: "Birthday far", EventType: models.EventBirthday, StartDate: nanos(fixedNow.AddDate(0, 0, 12))},
		{Title: "Dentist", EventType: models.EventAppointment, StartDate: nanos(fixedNow.AddDate(0, 0, 3))},
	}

	alerts := BuildAlerts(chores, events, fixedNow)

	if len(alerts.OverdueChores) != 1 || alerts.OverdueChores[0].Title != "Overdue" {
		t.Errorf("OverdueChores = %+v, want just the overdue chore", alerts.OverdueChores)
	}
	if len(alerts.UpcomingBirthdays) != 1 || alerts.UpcomingBirthdays[0].Title != "Birthday soon" {
		t.Errorf("UpcomingBirthdays = %+v, want just the near birthday", alerts.UpcomingBirthdays)
	}
}

func TestTodayOverview(t *testing.T) {
	today := nanos(fixedNow.Add(-1 * time.Hour))
	yesterday := nanos(fixedNow.AddDate(0, 0, -1))

	overview := BuildTodayOverview(
		[]models.MoodEntry{{Mood: models.MoodHappy, Date: today}, {Mood: models.MoodSad, Date: yesterday}},
		[]models.Chore{
			{Title: "Due today", DueDate: today, IsCompleted: false},
			{Title: "Done today", DueDate: today, IsCompleted: true},
		},
		[]models.CalendarEvent{
			{Title: "Later", StartDate: nanos(fixedNow.Add(3 * time.Hour))},
			{Title: "Sooner", StartDate: today},
		},
		[]models.MealOption{{Name: "Tacos", ScheduledDate: today}},
		fixedNow,
	)

	if len(overview.Moods) != 1 {
		t.Errorf("Moods = %d entries, want 1", len(overview.Moods))
	}
	if len(overview.PendingChores) != 1 || overview.PendingChores[0].Title != "Due today" {
		t.Errorf("PendingChores = %+v, want only the pending one", overview.PendingChores)
	}
	if len(overview.Events) != 2 || overview.Events[0].Title != "Sooner" {
		t.Errorf("Events = %+v, want sorted by start", overview.Events)
	}
	if len(overview.Meals) != 1 {
		t.Errorf("Meals = %d entries, want 1", len(overview.Meals))
	}
}

func TestMealAggregates(t *testing.T) {
	meals := []models.MealOption{
		{ID: 1, Name: "Tacos", Votes: []int64{1, 2}, ScheduledDate: nanos(fixedNow)},
		{ID: 2, Name: "Pizza", Votes: []int64{1, 2, 3}, ScheduledDate: nanos(fixedNow), IsSelected: true},
		{ID: 3, Name: "Soup", Votes: nil, ScheduledDate: nanos(fixedNow.AddDate(0, 0, 1))},
	}

	if got := TotalVotes(meals); got != 5 {
		t.Errorf("TotalVotes = %d, want 5", got)
	}

	top := TopMealsByVotes(meals, 2)
	if len(top) != 2 || top[0].Name != "Pizza" || top[1].Name != "Tacos" {
		t.Errorf("TopMealsByVotes = %+v, want Pizza then Tacos", top)
	}

	today := MealsForDay(meals, fixedNow)
	if len(today) != 2 || today[0].Name != "Pizza" {
		t.Errorf("MealsForDay = %+v, want today's meals vote-sorted", today)
	}

	selected := SelectedMeal(meals)
	if selected == nil || selected.Name != "Pizza" {
		t.Errorf("SelectedMeal = %+v, want Pizza", selected)
	}
}

package analytics

import (
	"testing"
	"time"

	"familyhub/internal/models"
)

func memberID(id int64) *int64 {
	return &id
}

func testMembers() []models.FamilyMember {
	return []models.FamilyMember{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Cara"},
	}
}

func TestBuildActivityFeedMergeAndLimit(t *testing.T) {
	t1 := nanos(fixedNow.Add(-4 * time.Hour))
	t2 := nanos(fixedNow.Add(-3 * time.Hour))
	t3 := nanos(fixedNow.Add(-2 * time.Hour))
	t4 := nanos(fixedNow.Add(-1 * time.Hour))

	moods := []models.MoodEntry{{MemberID: 1, Mood: models.MoodHappy, Date: t1}}
	chores := []models.Chore{{Title: "Dishes", AssignedTo: memberID(2), IsCompleted: true, DueDate: t2}}
	events := []models.CalendarEvent{{Title: "Picnic", MemberIDs: []int64{3}, StartDate: t3}}
	meals := []models.MealOption{{Name: "Tacos", ProposedBy: 1, ScheduledDate: t4}}

	feed := BuildActivityFeed(moods, chores, events, meals, testMembers(), 2, fixedNow)

	if len(feed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(feed))
	}
	// The two largest timestamps are the meal (t4) then the event (t3)
	if feed[0].Type != ActivityMeal || feed[0].MemberName != "Alice" {
		t.Errorf("first entry = %+v, want meal by Alice", feed[0])
	}
	if feed[1].Type != ActivityEvent || feed[1].MemberName != "Cara" {
		t.Errorf("second entry = %+v, want event by Cara", feed[1])
	}
}

func TestBuildActivityFeedTieBreakBySourceOrder(t *testing.T) {
	ts := nanos(fixedNow.Add(-1 * time.Hour))

	moods := []models.MoodEntry{{MemberID: 1, Mood: models.MoodHappy, Date: ts}}
	chores := []models.Chore{{Title: "Dishes", AssignedTo: memberID(2), IsCompleted: true, DueDate: ts}}
	events := []models.CalendarEvent{{Title: "Picnic", MemberIDs: []int64{3}, StartDate: ts}}
	meals := []models.MealOption{{Name: "Tacos", ProposedBy: 1, ScheduledDate: ts}}

	feed := BuildActivityFeed(moods, chores, events, meals, testMembers(), 10, fixedNow)

	wantOrder := []string{ActivityMood, ActivityChore, ActivityEvent, ActivityMeal}
	if len(feed) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(feed))
	}
	for i, want := range wantOrder {
		if feed[i].Type != want {
			t.Errorf("entry %d type = %s, want %s", i, feed[i].Type, want)
		}
	}
}

func TestBuildActivityFeedSkipsUnresolvableMembers(t *testing.T) {
	ts := nanos(fixedNow.Add(-1 * time.Hour))

	moods := []models.MoodEntry{
		{MemberID: 1, Mood: models.MoodHappy, Date: ts},
		{MemberID: 99, Mood: models.MoodSad, Date: ts}, // no such member
	}
	chores := []models.Chore{
		{Title: "Unassigned", AssignedTo: nil, IsCompleted: true, DueDate: ts},
	}

	feed := BuildActivityFeed(moods, chores, nil, nil, testMembers(), 10, fixedNow)

	if len(feed) != 1 {
		t.Fatalf("expected only resolvable entries, got %d", len(feed))
	}
	if feed[0].MemberName != "Alice" {
		t.Errorf("member name = %q, want Alice", feed[0].MemberName)
	}
}

func TestBuildActivityFeedIncompleteChoresExcluded(t *testing.T) {
	ts := nanos(fixedNow.Add(-1 * time.Hour))
	chores := []models.Chore{
		{Title: "Pending", AssignedTo: memberID(1), IsCompleted: false, DueDate: ts},
	}

	feed := BuildActivityFeed(nil, chores, nil, nil, testMembers(), 10, fixedNow)
	if len(feed) != 0 {
		t.Errorf("expected empty feed for pending chores, got %d entries", len(feed))
	}
}

func TestBuildActivityFeedEmptyInputs(t *testing.T) {
	feed := BuildActivityFeed(nil, nil, nil, nil, nil, 10, fixedNow)
	if len(feed) != 0 {
		t.Errorf("expected empty feed, got %d entries", len(feed))
	}
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"seconds ago", fixedNow.Add(-30 * time.Second), "just now"},
		{"minutes ago", fixedNow.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", fixedNow.Add(-3 * time.Hour), "3h ago"},
		{"days ago", fixedNow.Add(-49 * time.Hour), "2d ago"},
		{"weeks ago", fixedNow.AddDate(0, 0, -10), fixedNow.AddDate(0, 0, -10).Format("Jan 2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(nanos(tt.ts), fixedNow); got != tt.want {
				t.Errorf("RelativeTime = %q, want %q", got, tt.want)
			}
		})
	}
}

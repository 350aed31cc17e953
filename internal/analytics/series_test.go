package analytics

import (
	"testing"
	"time"

	"familyhub/internal/models"
)

func TestMoodTrendAlwaysSevenPoints(t *testing.T) {
	tests := []struct {
		name  string
		moods []models.MoodEntry
	}{
		{"no entries", nil},
		{"one entry today", []models.MoodEntry{{Mood: models.MoodHappy, Date: nanos(fixedNow)}}},
		{"entry outside window", []models.MoodEntry{{Mood: models.MoodHappy, Date: nanos(fixedNow.AddDate(0, 0, -30))}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := MoodTrend(tt.moods, fixedNow)
			if len(points) != 7 {
				t.Fatalf("expected 7 points, got %d", len(points))
			}
		})
	}
}

func TestMoodTrendOrderingAndValues(t *testing.T) {
	// Two happy check-ins three days ago, one angry yesterday
	threeDaysAgo := fixedNow.AddDate(0, 0, -3)
	yesterday := fixedNow.AddDate(0, 0, -1)
	moods := []models.MoodEntry{
		{Mood: models.MoodHappy, Date: nanos(threeDaysAgo)},
		{Mood: models.MoodHappy, Date: nanos(threeDaysAgo.Add(time.Hour))},
		{Mood: models.MoodAngry, Date: nanos(yesterday)},
	}

	points := MoodTrend(moods, fixedNow)

	// Oldest first: index 0 is six days ago, index 6 is today
	labels := make(map[int]string)
	for i := 0; i < 7; i++ {
		labels[i] = StartOfDay(fixedNow).AddDate(0, 0, i-6).Format("Mon")
	}
	for i, p := range points {
		if p.Date != labels[i] {
			t.Errorf("point %d label = %q, want %q", i, p.Date, labels[i])
		}
	}

	if points[3].Value != 8 {
		t.Errorf("three days ago = %v, want 8", points[3].Value)
	}
	if points[5].Value != 2 {
		t.Errorf("yesterday = %v, want 2", points[5].Value)
	}
	if points[6].Value != 0 {
		t.Errorf("today (no entries) = %v, want 0", points[6].Value)
	}
}

func TestChoreCompletionSeries(t *testing.T) {
	yesterday := fixedNow.AddDate(0, 0, -1)
	chores := []models.Chore{
		{Title: "dishes", DueDate: nanos(yesterday), IsCompleted: true},
		{Title: "laundry", DueDate: nanos(yesterday.Add(time.Hour)), IsCompleted: false},
		{Title: "vacuum", DueDate: nanos(fixedNow), IsCompleted: true},
	}

	points := ChoreCompletionSeries(chores, fixedNow)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[5].Value != 50 {
		t.Errorf("yesterday rate = %v, want 50", points[5].Value)
	}
	if points[6].Value != 100 {
		t.Errorf("today rate = %v, want 100", points[6].Value)
	}
	if points[0].Value != 0 {
		t.Errorf("empty day rate = %v, want 0", points[0].Value)
	}
}

func TestChoreCompletionSeriesLargeInput(t *testing.T) {
	var chores []models.Chore
	for i := 0; i < 1000; i++ {
		chores = append(chores, models.Chore{
			DueDate:     nanos(fixedNow.AddDate(0, 0, -(i % 14))),
			IsCompleted: i%2 == 0,
		})
	}

	points := ChoreCompletionSeries(chores, fixedNow)
	if len(points) != 7 {
		t.Fatalf("expected 7 points for large input, got %d", len(points))
	}
}

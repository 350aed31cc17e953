package service

import (
	"testing"
	"time"

	"familyhub/internal/analytics"
	"familyhub/internal/models"
)

func dueNanos(t time.Time) int64 {
	return t.UnixMilli() * analytics.NanosPerMilli
}

func TestExpandRecurrenceNone(t *testing.T) {
	due := dueNanos(time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local))

	got := ExpandRecurrence(due, models.RecurrenceNone)
	if len(got) != 1 {
		t.Fatalf("expected 1 date, got %d", len(got))
	}
	if got[0] != due {
		t.Errorf("expected the original date back, got %d", got[0])
	}
}

func TestExpandRecurrenceDaily(t *testing.T) {
	base := time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local)
	got := ExpandRecurrence(dueNanos(base), models.RecurrenceDaily)

	if len(got) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(got))
	}
	for i, ns := range got {
		want := base.AddDate(0, 0, i)
		if !analytics.ToLocalDate(ns).Equal(want) {
			t.Errorf("copy %d: got %v, want %v", i, analytics.ToLocalDate(ns), want)
		}
	}
}

func TestExpandRecurrenceWeekly(t *testing.T) {
	base := time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local)
	got := ExpandRecurrence(dueNanos(base), models.RecurrenceWeekly)

	if len(got) != 4 {
		t.Fatalf("expected 4 dates, got %d", len(got))
	}
	for i, ns := range got {
		want := base.AddDate(0, 0, i*7)
		if !analytics.ToLocalDate(ns).Equal(want) {
			t.Errorf("copy %d: got %v, want %v", i, analytics.ToLocalDate(ns), want)
		}
	}
}

func TestExpandRecurrenceKeepsClockTime(t *testing.T) {
	base := time.Date(2025, 6, 18, 17, 30, 0, 0, time.Local)
	got := ExpandRecurrence(dueNanos(base), models.RecurrenceDaily)

	for i, ns := range got {
		d := analytics.ToLocalDate(ns)
		if d.Hour() != 17 || d.Minute() != 30 {
			t.Errorf("copy %d: clock time drifted to %02d:%02d", i, d.Hour(), d.Minute())
		}
	}
}

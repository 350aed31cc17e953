package analytics

import (
	"testing"
	"time"
)

// fixedNow is a Wednesday at noon local time
var fixedNow = time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)

func nanos(t time.Time) int64 {
	return t.UnixNano()
}

func TestLocalDateRoundTrip(t *testing.T) {
	dates := []string{
		"2025-01-01",
		"2025-06-18",
		"2025-12-31",
		"2024-02-29",
		"1999-07-04",
	}

	for _, d := range dates {
		t.Run(d, func(t *testing.T) {
			ns, err := LocalDateToNanos(d)
			if err != nil {
				t.Fatalf("LocalDateToNanos(%q) returned error: %v", d, err)
			}
			if got := FormatLocalDate(ns); got != d {
				t.Errorf("round trip of %q = %q", d, got)
			}
		})
	}
}

func TestLocalDateToNanosInvalid(t *testing.T) {
	for _, d := range []string{"", "not-a-date", "2025-13-01", "18/06/2025"} {
		if _, err := LocalDateToNanos(d); err == nil {
			t.Errorf("LocalDateToNanos(%q) expected error, got nil", d)
		}
	}
}

func TestToLocalDateTruncatesFractionalMillis(t *testing.T) {
	base := time.Date(2025, 6, 18, 8, 30, 0, 0, time.Local)
	withFraction := base.UnixNano() + 999_999 // just under one millisecond

	if got := ToLocalDate(withFraction); !got.Equal(base) {
		t.Errorf("ToLocalDate did not truncate: got %v, want %v", got, base)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday",
			in:   fixedNow,
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name: "sunday is its own week start",
			in:   time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name: "saturday",
			in:   time.Date(2025, 6, 21, 1, 0, 0, 0, time.Local),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"exactly seven days out", fixedNow.AddDate(0, 0, 7), 7},
		{"exactly eight days out", fixedNow.AddDate(0, 0, 8), 8},
		{"now", fixedNow, 0},
		{"earlier today", fixedNow.Add(-2 * time.Hour), 0},
		{"yesterday", fixedNow.AddDate(0, 0, -1), -1},
		{"tomorrow same time", fixedNow.AddDate(0, 0, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(nanos(tt.target), fixedNow); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsWithinDaysFromNow(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		days   int
		want   bool
	}{
		{"birthday in exactly 7 days", fixedNow.AddDate(0, 0, 7), 7, true},
		{"birthday in 8 days", fixedNow.AddDate(0, 0, 8), 7, false},
		{"earlier today", fixedNow.Add(-1 * time.Hour), 7, true},
		{"yesterday never matches", fixedNow.AddDate(0, 0, -1), 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsWithinDaysFromNow(nanos(tt.target), tt.days, fixedNow)
			if got != tt.want {
				t.Errorf("IsWithinDaysFromNow = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekClassification(t *testing.T) {
	thisTuesday := time.Date(2025, 6, 17, 9, 0, 0, 0, time.Local)
	lastThursday := time.Date(2025, 6, 12, 9, 0, 0, 0, time.Local)
	twoWeeksAgo := time.Date(2025, 6, 4, 9, 0, 0, 0, time.Local)

	if !IsThisWeek(nanos(thisTuesday), fixedNow) {
		t.Error("expected this Tuesday to be in this week")
	}
	if IsThisWeek(nanos(lastThursday), fixedNow) {
		t.Error("expected last Thursday to be outside this week")
	}
	if !IsLastWeek(nanos(lastThursday), fixedNow) {
		t.Error("expected last Thursday to be in last week")
	}
	if IsLastWeek(nanos(twoWeeksAgo), fixedNow) {
		t.Error("expected two weeks ago to be outside last week")
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 18, 0, 0, 1, 0, time.Local)
	night := time.Date(2025, 6, 18, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2025, 6, 19, 0, 0, 0, 0, time.Local)

	if !SameDay(morning, night) {
		t.Error("expected same calendar day")
	}
	if SameDay(night, nextDay) {
		t.Error("expected different calendar days")
	}
}

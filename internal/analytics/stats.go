package analytics

import (
	"time"

	"familyhub/internal/models"
)

// MemberStats summarizes one member's standing across chores, moods
// and events. RecentMood is empty when the member has never checked
// in.
type MemberStats struct {
	ChoresAssigned  int
	ChoresCompleted int
	RecentMood      string
	UpcomingEvents  int
}

// ComputeMemberStats scans the collections for records belonging to
// the member. Assignment is by id predicate only: a chore assigned to
// a since-deleted member still counts against that id.
func ComputeMemberStats(
	memberID int64,
	chores []models.Chore,
	moods []models.MoodEntry,
	events []models.CalendarEvent,
	now time.Time,
) MemberStats {
	var stats MemberStats

	for _, c := range chores {
		if c.AssignedTo == nil || *c.AssignedTo != memberID {
			continue
		}
		stats.ChoresAssigned++
		if c.IsCompleted {
			stats.ChoresCompleted++
		}
	}

	var latest int64
	for _, m := range moods {
		if m.MemberID != memberID {
			continue
		}
		if stats.RecentMood == "" || m.Date > latest {
			stats.RecentMood = m.Mood
			latest = m.Date
		}
	}

	nowNanos := now.UnixNano()
	for _, e := range events {
		if e.HasAttendee(memberID) && e.StartDate >= nowNanos {
			stats.UpcomingEvents++
		}
	}

	return stats
}

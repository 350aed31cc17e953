package analytics

import (
	"fmt"
	"sort"
	"time"

	"familyhub/internal/models"
)

// Activity types as they appear in the feed
const (
	ActivityMood  = "mood"
	ActivityChore = "chore"
	ActivityEvent = "event"
	ActivityMeal  = "meal"
)

// feed icon and accent color per activity type
var activityIcons = map[string]string{
	ActivityMood:  "smile",
	ActivityChore: "check-circle",
	ActivityEvent: "calendar",
	ActivityMeal:  "utensils",
}

var activityColors = map[string]string{
	ActivityMood:  "#8B5CF6",
	ActivityChore: "#10B981",
	ActivityEvent: "#3B82F6",
	ActivityMeal:  "#F59E0B",
}

// Activity is one entry in the merged recent-activity feed
type Activity struct {
	Type       string
	MemberName string
	Action     string
	Time       string
	Icon       string
	Color      string

	timestamp int64
}

// RelativeTime formats a timestamp relative to now for feed display
func RelativeTime(ns int64, now time.Time) string {
	elapsed := now.Sub(ToLocalDate(ns))
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	default:
		return ToLocalDate(ns).Format("Jan 2")
	}
}

// BuildActivityFeed merges mood check-ins, completed chores, calendar
// events and meal suggestions into one reverse-chronological feed of
// at most limit entries. Records whose member cannot be resolved are
// skipped so the feed never shows a nameless actor. Entries with equal
// timestamps keep source order: moods, chores, events, meals.
func BuildActivityFeed(
	moods []models.MoodEntry,
	chores []models.Chore,
	events []models.CalendarEvent,
	meals []models.MealOption,
	members []models.FamilyMember,
	limit int,
	now time.Time,
) []Activity {
	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	var feed []Activity
	add := func(kind string, memberID int64, action string, ns int64) {
		name, ok := names[memberID]
		if !ok || name == "" {
			return
		}
		feed = append(feed, Activity{
			Type:       kind,
			MemberName: name,
			Action:     action,
			Time:       RelativeTime(ns, now),
			Icon:       activityIcons[kind],
			Color:      activityColors[kind],
			timestamp:  ns,
		})
	}

	for _, m := range moods {
		add(ActivityMood, m.MemberID, fmt.Sprintf("is feeling %s", m.Mood), m.Date)
	}
	for _, c := range chores {
		if !c.IsCompleted || c.AssignedTo == nil {
			continue
		}
		add(ActivityChore, *c.AssignedTo, fmt.Sprintf("completed %q", c.Title), c.DueDate)
	}
	for _, e := range events {
		if len(e.MemberIDs) == 0 {
			continue
		}
		add(ActivityEvent, e.MemberIDs[0], fmt.Sprintf("added event %q", e.Title), e.StartDate)
	}
	for _, m := range meals {
		add(ActivityMeal, m.ProposedBy, fmt.Sprintf("suggested %s", m.Name), m.ScheduledDate)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].timestamp > feed[j].timestamp
	})

	if limit >= 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

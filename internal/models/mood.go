package models

// Mood tokens form a closed vocabulary. The token doubles as the
// display emoji and as the key into the analytics score table.
const (
	MoodHappy   = "😊"
	MoodSad     = "😢"
	MoodAngry   = "😡"
	MoodTired   = "😴"
	MoodExcited = "🤩"
	MoodNeutral = "😐"
)

// MoodLabels maps each mood token to its display label
var MoodLabels = map[string]string{
	MoodHappy:   "Happy",
	MoodSad:     "Sad",
	MoodAngry:   "Angry",
	MoodTired:   "Tired",
	MoodExcited: "Excited",
	MoodNeutral: "Neutral",
}

// IsValidMood reports whether token is one of the six known moods
func IsValidMood(token string) bool {
	_, ok := MoodLabels[token]
	return ok
}

// MoodEntry represents one mood check-in. Multiple entries per member
// per day are allowed. Date is nanoseconds since epoch.
type MoodEntry struct {
	ID       int64
	FamilyID int64
	MemberID int64
	Mood     string
	Note     string
	Date     int64
}

package models

// Event types for CalendarEvent.EventType
const (
	EventBirthday    = "birthday"
	EventAppointment = "appointment"
	EventActivity    = "activity"
	EventOther       = "other"
)

// CalendarEvent represents a scheduled event with a set of attending
// members. StartDate and EndDate are nanoseconds since epoch.
type CalendarEvent struct {
	ID        int64
	FamilyID  int64
	Title     string
	EventType string
	StartDate int64
	EndDate   int64
	MemberIDs []int64
}

// HasAttendee reports whether memberID is in the attendee set
func (e *CalendarEvent) HasAttendee(memberID int64) bool {
	for _, id := range e.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

package models

// MealOption represents a proposed meal for a given day. Members vote
// on options; one option per day can be selected. ScheduledDate is
// nanoseconds since epoch.
type MealOption struct {
	ID            int64
	FamilyID      int64
	Name          string
	ScheduledDate int64
	ProposedBy    int64
	Votes         []int64
	IsSelected    bool
}

// HasVote reports whether memberID has voted for this option
func (m *MealOption) HasVote(memberID int64) bool {
	for _, id := range m.Votes {
		if id == memberID {
			return true
		}
	}
	return false
}

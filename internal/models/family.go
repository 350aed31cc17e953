package models

import "time"

// Family represents a household sharing one FamilyHub space
type Family struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberRole values for FamilyMember.Role
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// FamilyMember represents a person in a family. A member may exist
// before anyone signs in as them: an admin adds the member and shares
// the invite code, and the member becomes linked when a user account
// claims that code.
type FamilyMember struct {
	ID          int64
	FamilyID    int64
	UserID      *int64
	Name        string
	Color       string
	AvatarEmoji string
	Role        string // 'admin' or 'member'
	IsLinked    bool
	InviteCode  *string
	CreatedAt   time.Time
}

// FamilyWithMembers combines a family with its member roster
type FamilyWithMembers struct {
	Family  Family
	Members []FamilyMember
}

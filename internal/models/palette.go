package models

// MemberColors is the palette offered when creating a member
var MemberColors = []string{
	"#3B82F6",
	"#EC4899",
	"#8B5CF6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#06B6D4",
	"#84CC16",
}

// MemberAvatars is the avatar emoji set offered when creating a member
var MemberAvatars = []string{"👨", "👩", "👧", "👦", "👴", "👵", "🧑", "👶"}

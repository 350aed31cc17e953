package service

import (
	"regexp"
	"strings"
	"testing"

	"familyhub/internal/models"
)

var inviteCodePattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func TestGenerateInviteCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateInviteCode()
		if err != nil {
			t.Fatalf("GenerateInviteCode() error: %v", err)
		}
		if !inviteCodePattern.MatchString(code) {
			t.Errorf("code %q does not match XXXX-XXXX", code)
		}
		if strings.ContainsAny(code, "O0I1") {
			t.Errorf("code %q contains a confusable character", code)
		}
	}
}

func TestGenerateInviteCodeVariety(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateInviteCode()
		if err != nil {
			t.Fatalf("GenerateInviteCode() error: %v", err)
		}
		seen[code] = true
	}
	// 50 draws from a 32^8 space should never collide
	if len(seen) != 50 {
		t.Errorf("expected 50 distinct codes, got %d", len(seen))
	}
}

func TestPickColorDefaults(t *testing.T) {
	if got := pickColor("#123456", 3); got != "#123456" {
		t.Errorf("explicit color ignored, got %q", got)
	}
	if got := pickColor("", 0); got != models.MemberColors[0] {
		t.Errorf("expected first palette color, got %q", got)
	}
	// Index wraps around the palette
	wrap := pickColor("", len(models.MemberColors))
	if wrap != models.MemberColors[0] {
		t.Errorf("expected palette wrap to first color, got %q", wrap)
	}
}

func TestPickAvatarDefaults(t *testing.T) {
	if got := pickAvatar("🐙", 2); got != "🐙" {
		t.Errorf("explicit avatar ignored, got %q", got)
	}
	if got := pickAvatar("", 1); got != models.MemberAvatars[1] {
		t.Errorf("expected second avatar, got %q", got)
	}
}

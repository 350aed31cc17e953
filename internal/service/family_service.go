package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"strings"

	"familyhub/internal/models"
	"familyhub/internal/repository"
	"familyhub/internal/validation"
)

var (
	ErrFamilyNotFound    = errors.New("family not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrInvalidInviteCode = errors.New("invalid invite code")
	ErrAlreadyInFamily   = errors.New("user already belongs to a family")
	ErrNotAdmin          = errors.New("admin role required")
	ErrCannotDemoteSelf  = errors.New("cannot change your own role")
)

// inviteCodeAlphabet omits easily-confused characters like O/0 and I/1
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// FamilyService handles families, members, and invite codes
type FamilyService struct {
	familyRepo *repository.FamilyRepository
	memberRepo *repository.MemberRepository
	emailSvc   *EmailService
}

// NewFamilyService creates a new family service
func NewFamilyService(familyRepo *repository.FamilyRepository, memberRepo *repository.MemberRepository, emailSvc *EmailService) *FamilyService {
	return &FamilyService{
		familyRepo: familyRepo,
		memberRepo: memberRepo,
		emailSvc:   emailSvc,
	}
}

// CreateFamily creates a family with the creating user as its first,
// already-linked admin member
func (s *FamilyService) CreateFamily(user *models.User, familyName, color, avatarEmoji string) (*models.FamilyWithMembers, error) {
	if err := validation.ValidateName(familyName); err != nil {
		return nil, err
	}

	existing, err := s.familyRepo.GetFamilyForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check family membership: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyInFamily
	}

	creator := models.FamilyMember{
		UserID:      &user.ID,
		Name:        user.Name,
		Color:       pickColor(color, 0),
		AvatarEmoji: pickAvatar(avatarEmoji, 0),
		Role:        models.RoleAdmin,
		IsLinked:    true,
	}
	family, member, err := s.familyRepo.CreateFamily(familyName, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to create family: %w", err)
	}

	return &models.FamilyWithMembers{
		Family:  *family,
		Members: []models.FamilyMember{*member},
	}, nil
}

// GetFamilyForUser loads a user's family with its member roster
func (s *FamilyService) GetFamilyForUser(userID int64) (*models.FamilyWithMembers, error) {
	family, err := s.familyRepo.GetFamilyForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, ErrFamilyNotFound
	}

	members, err := s.memberRepo.ListMembers(family.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return &models.FamilyWithMembers{Family: *family, Members: members}, nil
}

// UpdateFamily renames a family
func (s *FamilyService) UpdateFamily(familyID int64, name string) error {
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	return s.familyRepo.UpdateFamily(familyID, name)
}

// DeleteFamily removes the family and, through cascades, everything
// in it. Admin only.
func (s *FamilyService) DeleteFamily(actor *models.FamilyMember) error {
	if actor.Role != models.RoleAdmin {
		return ErrNotAdmin
	}

	family, err := s.familyRepo.GetFamilyByID(actor.FamilyID)
	if err != nil {
		return fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return ErrFamilyNotFound
	}
	return s.familyRepo.DeleteFamily(family.ID)
}

// AddMemberWithInvite creates an unlinked member and generates an
// invite code the member can later claim. When email is given and the
// email service is enabled, the code is also sent out.
func (s *FamilyService) AddMemberWithInvite(ctx context.Context, familyID int64, name, color, avatarEmoji, role, email string, memberCount int) (*models.FamilyMember, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && role != models.RoleMember {
		role = models.RoleMember
	}

	code, err := s.generateUniqueInviteCode()
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.CreateMember(familyID, name, pickColor(color, memberCount), pickAvatar(avatarEmoji, memberCount), role, code)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	if email != "" && s.emailSvc != nil {
		if err := s.emailSvc.SendInviteEmail(ctx, email, name, code); err != nil {
			log.Printf("Failed to send invite email to %s: %v", email, err)
		}
	}
	return member, nil
}

// RegenerateInviteCode replaces an unlinked member's invite code
func (s *FamilyService) RegenerateInviteCode(memberID int64) (*models.FamilyMember, error) {
	member, err := s.memberRepo.GetMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if member.IsLinked {
		return nil, errors.New("member is already linked to an account")
	}

	code, err := s.generateUniqueInviteCode()
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.SetInviteCode(memberID, code); err != nil {
		return nil, fmt.Errorf("failed to set invite code: %w", err)
	}

	member.InviteCode = &code
	return member, nil
}

// JoinByInviteCode links a user account to the pending member that
// holds the code. The code is cleared once claimed.
func (s *FamilyService) JoinByInviteCode(user *models.User, code string) (*models.FamilyMember, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if err := validation.ValidateInviteCode(normalized); err != nil {
		return nil, ErrInvalidInviteCode
	}

	existing, err := s.familyRepo.GetFamilyForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check family membership: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyInFamily
	}

	member, err := s.memberRepo.GetMemberByInviteCode(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}
	if member == nil || member.IsLinked {
		return nil, ErrInvalidInviteCode
	}

	if err := s.memberRepo.LinkUser(member.ID, user.ID); err != nil {
		return nil, fmt.Errorf("failed to link member: %w", err)
	}

	member.UserID = &user.ID
	member.IsLinked = true
	member.InviteCode = nil
	return member, nil
}

// UpdateMember changes a member's display fields
func (s *FamilyService) UpdateMember(memberID int64, name, color, avatarEmoji string) error {
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	member, err := s.memberRepo.GetMember(memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return ErrMemberNotFound
	}
	if color == "" {
		color = member.Color
	}
	if avatarEmoji == "" {
		avatarEmoji = member.AvatarEmoji
	}
	return s.memberRepo.UpdateMember(memberID, name, color, avatarEmoji)
}

// UpdateMemberRole changes a member's role. Admins cannot change
// their own role, so a family always keeps at least one admin.
func (s *FamilyService) UpdateMemberRole(actor *models.FamilyMember, memberID int64, role string) error {
	if actor.Role != models.RoleAdmin {
		return ErrNotAdmin
	}
	if actor.ID == memberID {
		return ErrCannotDemoteSelf
	}
	if role != models.RoleAdmin && role != models.RoleMember {
		return fmt.Errorf("unknown role %q", role)
	}

	member, err := s.memberRepo.GetMember(memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil || member.FamilyID != actor.FamilyID {
		return ErrMemberNotFound
	}
	return s.memberRepo.UpdateRole(memberID, role)
}

// DeleteMember removes a member from the family. Admins cannot remove
// themselves.
func (s *FamilyService) DeleteMember(actor *models.FamilyMember, memberID int64) error {
	if actor.Role != models.RoleAdmin {
		return ErrNotAdmin
	}
	if actor.ID == memberID {
		return errors.New("cannot remove yourself")
	}

	member, err := s.memberRepo.GetMember(memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil || member.FamilyID != actor.FamilyID {
		return ErrMemberNotFound
	}
	return s.memberRepo.DeleteMember(memberID)
}

// GetMemberForUser resolves the member record a signed-in user acts as
func (s *FamilyService) GetMemberForUser(userID int64) (*models.FamilyMember, error) {
	member, err := s.memberRepo.GetMemberForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// generateUniqueInviteCode retries until a code not already in use
// comes up. Collisions are vanishingly rare at this alphabet size.
func (s *FamilyService) generateUniqueInviteCode() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := GenerateInviteCode()
		if err != nil {
			return "", err
		}
		existing, err := s.memberRepo.GetMemberByInviteCode(code)
		if err != nil {
			return "", fmt.Errorf("failed to check invite code: %w", err)
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", errors.New("failed to generate a unique invite code")
}

// GenerateInviteCode produces a code in XXXX-XXXX form
func GenerateInviteCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	code := make([]byte, 9)
	for i, b := range buf {
		pos := i
		if i >= 4 {
			pos = i + 1
		}
		code[pos] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	code[4] = '-'
	return string(code), nil
}

// pickColor falls back to the palette when no color was chosen
func pickColor(color string, index int) string {
	if color != "" {
		return color
	}
	return models.MemberColors[index%len(models.MemberColors)]
}

// pickAvatar falls back to the avatar set when none was chosen
func pickAvatar(avatar string, index int) string {
	if avatar != "" {
		return avatar
	}
	return models.MemberAvatars[index%len(models.MemberAvatars)]
}

package repository

import (
	"database/sql"
	"fmt"

	"familyhub/internal/database"
	"familyhub/internal/models"
)

const memberColumns = "id, family_id, user_id, name, color, avatar_emoji, role, is_linked, invite_code, created_at"

// MemberRepository handles database operations for family members
type MemberRepository struct {
	db *database.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// CreateMember adds an unlinked member carrying an invite code
func (r *MemberRepository) CreateMember(familyID int64, name, color, avatarEmoji, role, inviteCode string) (*models.FamilyMember, error) {
	query := "INSERT INTO family_members (family_id, name, color, avatar_emoji, role, invite_code) VALUES (?, ?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, familyID, name, color, avatarEmoji, role, inviteCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return r.GetMember(id)
}

// GetMember retrieves a member by id, nil when absent
func (r *MemberRepository) GetMember(id int64) (*models.FamilyMember, error) {
	return r.getMember("SELECT "+memberColumns+" FROM family_members WHERE id = ?", id)
}

// GetMemberByInviteCode retrieves the pending member holding the
// code, nil when absent
func (r *MemberRepository) GetMemberByInviteCode(code string) (*models.FamilyMember, error) {
	return r.getMember("SELECT "+memberColumns+" FROM family_members WHERE invite_code = ?", code)
}

// GetMemberForUser retrieves the member linked to the user, nil when
// the user is not linked anywhere
func (r *MemberRepository) GetMemberForUser(userID int64) (*models.FamilyMember, error) {
	return r.getMember("SELECT "+memberColumns+" FROM family_members WHERE user_id = ?", userID)
}

// ListMembers returns the family roster ordered by join time
func (r *MemberRepository) ListMembers(familyID int64) ([]models.FamilyMember, error) {
	query := "SELECT " + memberColumns + " FROM family_members WHERE family_id = ? ORDER BY created_at ASC, id ASC"
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []models.FamilyMember
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, rows.Err()
}

// UpdateMember changes a member's profile fields
func (r *MemberRepository) UpdateMember(id int64, name, color, avatarEmoji string) error {
	query := "UPDATE family_members SET name = ?, color = ?, avatar_emoji = ? WHERE id = ?"
	if _, err := r.db.Exec(query, name, color, avatarEmoji, id); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// UpdateRole changes a member's role
func (r *MemberRepository) UpdateRole(id int64, role string) error {
	query := "UPDATE family_members SET role = ? WHERE id = ?"
	if _, err := r.db.Exec(query, role, id); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}
	return nil
}

// SetInviteCode replaces a member's invite code
func (r *MemberRepository) SetInviteCode(id int64, code string) error {
	query := "UPDATE family_members SET invite_code = ? WHERE id = ?"
	if _, err := r.db.Exec(query, code, id); err != nil {
		return fmt.Errorf("failed to set invite code: %w", err)
	}
	return nil
}

// LinkUser attaches a user account to a pending member and consumes
// the invite code
func (r *MemberRepository) LinkUser(memberID, userID int64) error {
	query := "UPDATE family_members SET user_id = ?, is_linked = ?, invite_code = NULL WHERE id = ?"
	if _, err := r.db.Exec(query, userID, true, memberID); err != nil {
		return fmt.Errorf("failed to link user to member: %w", err)
	}
	return nil
}

// DeleteMember removes a member
func (r *MemberRepository) DeleteMember(id int64) error {
	if _, err := r.db.Exec("DELETE FROM family_members WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func (r *MemberRepository) getMember(query string, args ...interface{}) (*models.FamilyMember, error) {
	row := r.db.QueryRow(query, args...)
	member, err := scanMemberRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMemberRow(row rowScanner) (*models.FamilyMember, error) {
	member := &models.FamilyMember{}
	var userID sql.NullInt64
	var inviteCode sql.NullString
	err := row.Scan(
		&member.ID,
		&member.FamilyID,
		&userID,
		&member.Name,
		&member.Color,
		&member.AvatarEmoji,
		&member.Role,
		&member.IsLinked,
		&inviteCode,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		member.UserID = &userID.Int64
	}
	if inviteCode.Valid {
		member.InviteCode = &inviteCode.String
	}
	return member, nil
}

func scanMember(rows *sql.Rows) (*models.FamilyMember, error) {
	member, err := scanMemberRow(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan member: %w", err)
	}
	return member, nil
}

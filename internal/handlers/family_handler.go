package handlers

import (
	"net/http"
	"strconv"

	"familyhub/internal/models"
	"familyhub/internal/service"
)

// FamilyHandler handles families, members, and invites
type FamilyHandler struct {
	familyService *service.FamilyService
}

// NewFamilyHandler creates a new family handler
func NewFamilyHandler(familyService *service.FamilyService) *FamilyHandler {
	return &FamilyHandler{familyService: familyService}
}

type memberView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	AvatarEmoji string  `json:"avatarEmoji"`
	Role        string  `json:"role"`
	IsLinked    bool    `json:"isLinked"`
	InviteCode  *string `json:"inviteCode,omitempty"`
}

func viewMember(m models.FamilyMember) memberView {
	return memberView{
		ID:          m.ID,
		Name:        m.Name,
		Color:       m.Color,
		AvatarEmoji: m.AvatarEmoji,
		Role:        m.Role,
		IsLinked:    m.IsLinked,
		InviteCode:  m.InviteCode,
	}
}

type familyView struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Members []memberView `json:"members"`
}

func viewFamily(f *models.FamilyWithMembers) familyView {
	members := make([]memberView, len(f.Members))
	for i, m := range f.Members {
		members[i] = viewMember(m)
	}
	return familyView{ID: f.Family.ID, Name: f.Family.Name, Members: members}
}

// CreateFamily handles POST /api/v1/family
func (h *FamilyHandler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Name        string `json:"name"`
		Color       string `json:"color"`
		AvatarEmoji string `json:"avatarEmoji"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	family, err := h.familyService.CreateFamily(user, req.Name, req.Color, req.AvatarEmoji)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewFamily(family))
}

// GetFamily handles GET /api/v1/family
func (h *FamilyHandler) GetFamily(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	family, err := h.familyService.GetFamilyForUser(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewFamily(family))
}

// UpdateFamily handles PUT /api/v1/family
func (h *FamilyHandler) UpdateFamily(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	if member.Role != models.RoleAdmin {
		respondServiceError(w, service.ErrNotAdmin)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.familyService.UpdateFamily(member.FamilyID, req.Name); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteFamily handles DELETE /api/v1/family
func (h *FamilyHandler) DeleteFamily(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	if err := h.familyService.DeleteFamily(member); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddMember handles POST /api/v1/family/members
func (h *FamilyHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	if member.Role != models.RoleAdmin {
		respondServiceError(w, service.ErrNotAdmin)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Color       string `json:"color"`
		AvatarEmoji string `json:"avatarEmoji"`
		Role        string `json:"role"`
		Email       string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user := GetUserFromContext(r.Context())
	family, err := h.familyService.GetFamilyForUser(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	created, err := h.familyService.AddMemberWithInvite(r.Context(), member.FamilyID, req.Name, req.Color, req.AvatarEmoji, req.Role, req.Email, len(family.Members))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewMember(*created))
}

// UpdateMember handles PUT /api/v1/family/members/{id}
func (h *FamilyHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	targetID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id", err)
		return
	}
	// Members may edit their own profile; admins can edit anyone's
	if member.Role != models.RoleAdmin && member.ID != targetID {
		respondServiceError(w, service.ErrNotAdmin)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Color       string `json:"color"`
		AvatarEmoji string `json:"avatarEmoji"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.familyService.UpdateMember(targetID, req.Name, req.Color, req.AvatarEmoji); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// UpdateMemberRole handles PUT /api/v1/family/members/{id}/role
func (h *FamilyHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	targetID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id", err)
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.familyService.UpdateMemberRole(member, targetID, req.Role); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RegenerateInvite handles POST /api/v1/family/members/{id}/invite
func (h *FamilyHandler) RegenerateInvite(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	if member.Role != models.RoleAdmin {
		respondServiceError(w, service.ErrNotAdmin)
		return
	}
	targetID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id", err)
		return
	}

	updated, err := h.familyService.RegenerateInviteCode(targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewMember(*updated))
}

// DeleteMember handles DELETE /api/v1/family/members/{id}
func (h *FamilyHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	targetID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id", err)
		return
	}

	if err := h.familyService.DeleteMember(member, targetID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Join handles POST /api/v1/family/join
func (h *FamilyHandler) Join(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		InviteCode string `json:"inviteCode"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	member, err := h.familyService.JoinByInviteCode(user, req.InviteCode)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewMember(*member))
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

package handlers

import (
	"net/http"

	"familyhub/internal/models"
	"familyhub/internal/service"
)

// ChoreHandler handles the chores API
type ChoreHandler struct {
	choreService *service.ChoreService
}

// NewChoreHandler creates a new chore handler
func NewChoreHandler(choreService *service.ChoreService) *ChoreHandler {
	return &ChoreHandler{choreService: choreService}
}

type choreView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	AssignedTo  *int64 `json:"assignedTo"`
	DueDate     int64  `json:"dueDate"`
	IsCompleted bool   `json:"isCompleted"`
	Recurrence  string `json:"recurrence"`
}

func viewChore(c models.Chore) choreView {
	return choreView{
		ID:          c.ID,
		Title:       c.Title,
		AssignedTo:  c.AssignedTo,
		DueDate:     c.DueDate,
		IsCompleted: c.IsCompleted,
		Recurrence:  c.Recurrence,
	}
}

func viewChores(chores []models.Chore) []choreView {
	views := make([]choreView, len(chores))
	for i, c := range chores {
		views[i] = viewChore(c)
	}
	return views
}

// List handles GET /api/v1/chores
func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	chores, err := h.choreService.ListChores(member.FamilyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewChores(chores))
}

// Create handles POST /api/v1/chores
func (h *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	var req struct {
		Title      string `json:"title"`
		AssignedTo *int64 `json:"assignedTo"`
		DueDate    int64  `json:"dueDate"`
		Recurrence string `json:"recurrence"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.choreService.CreateChore(member.FamilyID, req.Title, req.AssignedTo, req.DueDate, req.Recurrence)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewChores(created))
}

// Update handles PUT /api/v1/chores/{id}
func (h *ChoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	choreID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid chore id", err)
		return
	}

	var req struct {
		Title      string `json:"title"`
		AssignedTo *int64 `json:"assignedTo"`
		DueDate    int64  `json:"dueDate"`
		Recurrence string `json:"recurrence"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	chore, err := h.choreService.UpdateChore(member.FamilyID, choreID, req.Title, req.AssignedTo, req.DueDate, req.Recurrence)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewChore(*chore))
}

// Toggle handles POST /api/v1/chores/{id}/toggle
func (h *ChoreHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	choreID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid chore id", err)
		return
	}

	chore, err := h.choreService.ToggleChore(member.FamilyID, choreID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewChore(*chore))
}

// Delete handles DELETE /api/v1/chores/{id}
func (h *ChoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	choreID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid chore id", err)
		return
	}

	if err := h.choreService.DeleteChore(member.FamilyID, choreID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

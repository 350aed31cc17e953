package handlers

import (
	"net/http"

	"familyhub/internal/models"
	"familyhub/internal/service"
)

// MoodHandler handles the mood check-in API
type MoodHandler struct {
	moodService *service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService *service.MoodService) *MoodHandler {
	return &MoodHandler{moodService: moodService}
}

type moodView struct {
	ID       int64  `json:"id"`
	MemberID int64  `json:"memberId"`
	Mood     string `json:"mood"`
	Label    string `json:"label"`
	Note     string `json:"note"`
	Date     int64  `json:"date"`
}

func viewMood(m models.MoodEntry) moodView {
	return moodView{
		ID:       m.ID,
		MemberID: m.MemberID,
		Mood:     m.Mood,
		Label:    models.MoodLabels[m.Mood],
		Note:     m.Note,
		Date:     m.Date,
	}
}

// List handles GET /api/v1/moods
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	moods, err := h.moodService.ListMoods(member.FamilyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	views := make([]moodView, len(moods))
	for i, m := range moods {
		views[i] = viewMood(m)
	}
	respondJSON(w, http.StatusOK, views)
}

// CheckIn handles POST /api/v1/moods
func (h *MoodHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	var req struct {
		Mood string `json:"mood"`
		Note string `json:"note"`
		Date int64  `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	entry, err := h.moodService.CheckIn(member.FamilyID, member.ID, req.Mood, req.Note, req.Date)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewMood(*entry))
}

// Delete handles DELETE /api/v1/moods/{id}
func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	moodID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid mood id", err)
		return
	}

	if err := h.moodService.DeleteMood(member.FamilyID, moodID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

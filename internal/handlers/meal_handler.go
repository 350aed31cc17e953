package handlers

import (
	"net/http"
	"time"

	"familyhub/internal/models"
	"familyhub/internal/service"
)

// MealHandler handles the meal-planning API
type MealHandler struct {
	mealService *service.MealService
}

// NewMealHandler creates a new meal handler
func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

type mealView struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ScheduledDate int64   `json:"scheduledDate"`
	ProposedBy    int64   `json:"proposedBy"`
	Votes         []int64 `json:"votes"`
	IsSelected    bool    `json:"isSelected"`
}

func viewMeal(m models.MealOption) mealView {
	votes := m.Votes
	if votes == nil {
		votes = []int64{}
	}
	return mealView{
		ID:            m.ID,
		Name:          m.Name,
		ScheduledDate: m.ScheduledDate,
		ProposedBy:    m.ProposedBy,
		Votes:         votes,
		IsSelected:    m.IsSelected,
	}
}

// List handles GET /api/v1/meals
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	meals, err := h.mealService.ListMeals(member.FamilyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	views := make([]mealView, len(meals))
	for i, m := range meals {
		views[i] = viewMeal(m)
	}
	respondJSON(w, http.StatusOK, views)
}

// Summary handles GET /api/v1/meals/summary
func (h *MealHandler) Summary(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	summary, err := h.mealService.Summary(member.FamilyID, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	top := make([]mealView, len(summary.TopMeals))
	for i, m := range summary.TopMeals {
		top[i] = viewMeal(m)
	}
	today := make([]mealView, len(summary.TodaysMeals))
	for i, m := range summary.TodaysMeals {
		today[i] = viewMeal(m)
	}
	var selected *mealView
	if summary.SelectedMeal != nil {
		v := viewMeal(*summary.SelectedMeal)
		selected = &v
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"totalVotes":   summary.TotalVotes,
		"topMeals":     top,
		"todaysMeals":  today,
		"selectedMeal": selected,
	})
}

// Propose handles POST /api/v1/meals
func (h *MealHandler) Propose(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	var req struct {
		Name          string `json:"name"`
		ScheduledDate int64  `json:"scheduledDate"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	meal, err := h.mealService.ProposeMeal(member.FamilyID, member.ID, req.Name, req.ScheduledDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewMeal(*meal))
}

// ToggleVote handles POST /api/v1/meals/{id}/vote
func (h *MealHandler) ToggleVote(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	mealID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid meal id", err)
		return
	}

	meal, err := h.mealService.ToggleVote(member.FamilyID, mealID, member.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewMeal(*meal))
}

// Select handles POST /api/v1/meals/{id}/select
func (h *MealHandler) Select(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	mealID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid meal id", err)
		return
	}

	meal, err := h.mealService.SelectMeal(member.FamilyID, mealID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewMeal(*meal))
}

// Delete handles DELETE /api/v1/meals/{id}
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	mealID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid meal id", err)
		return
	}

	if err := h.mealService.DeleteMeal(member.FamilyID, mealID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

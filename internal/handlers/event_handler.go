package handlers

import (
	"net/http"

	"familyhub/internal/models"
	"familyhub/internal/service"
)

// EventHandler handles the calendar API
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type eventView struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	EventType string  `json:"eventType"`
	StartDate int64   `json:"startDate"`
	EndDate   int64   `json:"endDate"`
	MemberIDs []int64 `json:"memberIds"`
}

func viewEvent(e models.CalendarEvent) eventView {
	memberIDs := e.MemberIDs
	if memberIDs == nil {
		memberIDs = []int64{}
	}
	return eventView{
		ID:        e.ID,
		Title:     e.Title,
		EventType: e.EventType,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		MemberIDs: memberIDs,
	}
}

// List handles GET /api/v1/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	events, err := h.eventService.ListEvents(member.FamilyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	views := make([]eventView, len(events))
	for i, e := range events {
		views[i] = viewEvent(e)
	}
	respondJSON(w, http.StatusOK, views)
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	var req struct {
		Title     string  `json:"title"`
		EventType string  `json:"eventType"`
		StartDate int64   `json:"startDate"`
		EndDate   int64   `json:"endDate"`
		MemberIDs []int64 `json:"memberIds"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	event, err := h.eventService.CreateEvent(member.FamilyID, req.Title, req.EventType, req.StartDate, req.EndDate, req.MemberIDs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewEvent(*event))
}

// Update handles PUT /api/v1/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	eventID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id", err)
		return
	}

	var req struct {
		Title     string  `json:"title"`
		EventType string  `json:"eventType"`
		StartDate int64   `json:"startDate"`
		EndDate   int64   `json:"endDate"`
		MemberIDs []int64 `json:"memberIds"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	event, err := h.eventService.UpdateEvent(member.FamilyID, eventID, req.Title, req.EventType, req.StartDate, req.EndDate, req.MemberIDs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewEvent(*event))
}

// Delete handles DELETE /api/v1/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	eventID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id", err)
		return
	}

	if err := h.eventService.DeleteEvent(member.FamilyID, eventID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

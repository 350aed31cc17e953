package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"familyhub/internal/service"
	"familyhub/internal/validation"
)

// respondJSON writes v as the JSON response body
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondError writes a JSON error body and logs the underlying error
func respondError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}
	respondJSON(w, status, map[string]string{"error": userMsg})
}

// respondServiceError maps known service errors onto HTTP statuses;
// anything unrecognized becomes a 500 with the detail kept server-side
func respondServiceError(w http.ResponseWriter, err error) {
	var verr validation.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": verr.Message,
			"field": verr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyInFamily),
		errors.Is(err, service.ErrUnknownMood),
		errors.Is(err, service.ErrInvalidInviteCode),
		errors.Is(err, service.ErrCannotDemoteSelf):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotAdmin):
		respondJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrFamilyNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrChoreNotFound),
		errors.Is(err, service.ErrMoodNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, service.ErrItemNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		respondError(w, http.StatusInternalServerError, "something went wrong", err)
	}
}

// decodeJSON parses the request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

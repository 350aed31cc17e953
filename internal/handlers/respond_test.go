package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"familyhub/internal/service"
	"familyhub/internal/validation"
)

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email taken", service.ErrEmailTaken, http.StatusBadRequest},
		{"unknown mood", service.ErrUnknownMood, http.StatusBadRequest},
		{"invalid invite code", service.ErrInvalidInviteCode, http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not admin", service.ErrNotAdmin, http.StatusForbidden},
		{"chore missing", service.ErrChoreNotFound, http.StatusNotFound},
		{"meal missing", service.ErrMealNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("context: %w", service.ErrEventNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q", ct)
			}
		})
	}
}

func TestRespondServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondServiceError(rec, errors.New("pq: connection refused"))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if strings.Contains(body["error"], "connection refused") {
		t.Errorf("internal detail leaked to client: %q", body["error"])
	}
}

func TestRespondServiceErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	respondServiceError(rec, validation.ValidationError{Field: "email", Message: "invalid email address"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["field"] != "email" {
		t.Errorf("field = %q, want %q", body["field"], "email")
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"dishes","bogus":1}`))

	var req struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(r, &req); err == nil {
		t.Error("expected error for unknown field")
	}
}

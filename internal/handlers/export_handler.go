package handlers

import (
	"fmt"
	"net/http"
	"time"

	"familyhub/internal/service"
)

// ExportHandler serves CSV downloads of family data
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles GET /api/v1/export/{kind}
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	kind := r.PathValue("kind")

	var write func(http.ResponseWriter, int64) error
	switch kind {
	case "chores":
		write = func(w http.ResponseWriter, familyID int64) error { return h.exportService.ExportChores(w, familyID) }
	case "moods":
		write = func(w http.ResponseWriter, familyID int64) error { return h.exportService.ExportMoods(w, familyID) }
	case "events":
		write = func(w http.ResponseWriter, familyID int64) error { return h.exportService.ExportEvents(w, familyID) }
	case "shopping":
		write = func(w http.ResponseWriter, familyID int64) error { return h.exportService.ExportShopping(w, familyID) }
	default:
		respondError(w, http.StatusNotFound, "unknown export kind", nil)
		return
	}

	filename := service.ExportFilename(kind, time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := write(w, member.FamilyID); err != nil {
		// Headers are already out; all we can do is log
		respondError(w, http.StatusInternalServerError, "export failed", err)
	}
}

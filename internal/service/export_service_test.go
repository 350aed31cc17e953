package service

import (
	"testing"
	"time"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 4, 5, 0, time.Local)

	tests := []struct {
		kind string
		want string
	}{
		{"chores", "familyhub_chores_2025-06-18.csv"},
		{"moods", "familyhub_moods_2025-06-18.csv"},
		{"events", "familyhub_events_2025-06-18.csv"},
		{"shopping", "familyhub_shopping_2025-06-18.csv"},
	}
	for _, tt := range tests {
		if got := ExportFilename(tt.kind, now); got != tt.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

package analytics

import (
	"testing"

	"familyhub/internal/models"
)

func choreList(completed ...bool) []models.Chore {
	chores := make([]models.Chore, len(completed))
	for i, c := range completed {
		chores[i] = models.Chore{ID: int64(i + 1), Title: "chore", IsCompleted: c}
	}
	return chores
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		chores []models.Chore
		want   int
	}{
		{"empty", nil, 0},
		{"none completed", choreList(false, false), 0},
		{"all completed", choreList(true, true, true), 100},
		{"half completed", choreList(true, false), 50},
		{"one of three rounds", choreList(true, false, false), 33},
		{"two of three rounds", choreList(true, true, false), 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionRate(tt.chores)
			if got != tt.want {
				t.Errorf("CompletionRate = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("CompletionRate = %d outside [0,100]", got)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     Change
	}{
		{"growth", 15, 10, Change{Value: "+50%", Type: ChangePositive}},
		{"decline", 5, 10, Change{Value: "-50%", Type: ChangeNegative}},
		{"flat", 10, 10, Change{Value: "0%", Type: ChangeNeutral}},
		{"from zero with activity", 3, 0, Change{Value: "New", Type: ChangePositive}},
		{"both zero", 0, 0, Change{Value: "0%", Type: ChangeNeutral}},
		{"to zero", 0, 4, Change{Value: "-100%", Type: ChangeNegative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(tt.current, tt.previous)
			if got != tt.want {
				t.Errorf("PercentChange(%d, %d) = %+v, want %+v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestAverageMoodScore(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.MoodEntry
		want    float64
	}{
		{"empty", nil, 0},
		{"single happy", []models.MoodEntry{{Mood: models.MoodHappy}}, 8},
		{
			"excited and angry average",
			[]models.MoodEntry{{Mood: models.MoodExcited}, {Mood: models.MoodAngry}},
			6,
		},
		{"unknown token scores neutral", []models.MoodEntry{{Mood: "❓"}}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageMoodScore(tt.entries); got != tt.want {
				t.Errorf("AverageMoodScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmojiForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, models.MoodExcited},
		{8, models.MoodExcited},
		{7.9, models.MoodHappy},
		{6, models.MoodHappy},
		{5, models.MoodNeutral},
		{4, models.MoodNeutral},
		{3, models.MoodSad},
		{2, models.MoodSad},
		{1, models.MoodAngry},
		{0, models.MoodAngry},
	}

	for _, tt := range tests {
		if got := EmojiForScore(tt.score); got != tt.want {
			t.Errorf("EmojiForScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// EmojiForScore must never produce the tired emoji: it has no natural
// position on the score axis.
func TestEmojiForScoreNeverTired(t *testing.T) {
	for score := 0.0; score <= 10; score += 0.5 {
		if EmojiForScore(score) == models.MoodTired {
			t.Fatalf("EmojiForScore(%v) produced the tired emoji", score)
		}
	}
}

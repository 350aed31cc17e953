package analytics

import (
	"fmt"
	"math"

	"familyhub/internal/models"
)

// ChangeType classifies the direction of a period-over-period change
type ChangeType string

const (
	ChangePositive ChangeType = "positive"
	ChangeNegative ChangeType = "negative"
	ChangeNeutral  ChangeType = "neutral"
)

// Change is a display-ready period-over-period delta
type Change struct {
	Value string
	Type  ChangeType
}

// CompletionRate returns the percentage of completed chores, rounded
// to the nearest integer. Empty input yields 0.
func CompletionRate(chores []models.Chore) int {
	if len(chores) == 0 {
		return 0
	}
	completed := 0
	for _, c := range chores {
		if c.IsCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(chores))))
}

// PercentChange compares current against previous. When previous is
// zero there is no meaningful percentage: any growth reads as "New"
// rather than a fabricated number.
func PercentChange(current, previous int) Change {
	if previous == 0 {
		if current > 0 {
			return Change{Value: "New", Type: ChangePositive}
		}
		return Change{Value: "0%", Type: ChangeNeutral}
	}

	pct := int(math.Round(100 * float64(current-previous) / float64(previous)))
	switch {
	case pct > 0:
		return Change{Value: fmt.Sprintf("+%d%%", pct), Type: ChangePositive}
	case pct < 0:
		return Change{Value: fmt.Sprintf("%d%%", pct), Type: ChangeNegative}
	default:
		return Change{Value: "0%", Type: ChangeNeutral}
	}
}

// moodScores maps each mood token to a 1-10 score. Tired sits between
// sad and neutral; it is never reconstructed by EmojiForScore since it
// has no natural position on the happiness axis.
var moodScores = map[string]float64{
	models.MoodExcited: 10,
	models.MoodHappy:   8,
	models.MoodNeutral: 5,
	models.MoodTired:   4,
	models.MoodSad:     3,
	models.MoodAngry:   2,
}

const neutralScore = 5

// ScoreForMood returns the numeric score for a mood token. Unknown
// tokens score neutral.
func ScoreForMood(token string) float64 {
	if score, ok := moodScores[token]; ok {
		return score
	}
	return neutralScore
}

// AverageMoodScore returns the mean score of the entries, 0 when empty
func AverageMoodScore(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += ScoreForMood(e.Mood)
	}
	return sum / float64(len(entries))
}

// EmojiForScore buckets a score back into a mood emoji:
//
//	>= 8  🤩
//	>= 6  😊
//	>= 4  😐
//	>= 2  😢
//	else  😡
func EmojiForScore(score float64) string {
	switch {
	case score >= 8:
		return models.MoodExcited
	case score >= 6:
		return models.MoodHappy
	case score >= 4:
		return models.MoodNeutral
	case score >= 2:
		return models.MoodSad
	default:
		return models.MoodAngry
	}
}

package analytics

import (
	"math"
	"time"

	"familyhub/internal/models"
)

// seriesDays is the fixed window of the trend charts: today plus the
// six preceding days.
const seriesDays = 7

// SeriesPoint is one chart point. Date is a short day label; the
// series always has exactly seven points so charts keep a stable
// x-axis.
type SeriesPoint struct {
	Date  string
	Value float64
}

// lastSevenDayStarts returns midnight for each of the last seven
// calendar days, oldest first, ending with today.
func lastSevenDayStarts(now time.Time) []time.Time {
	starts := make([]time.Time, seriesDays)
	today := StartOfDay(now)
	for i := 0; i < seriesDays; i++ {
		starts[i] = today.AddDate(0, 0, i-(seriesDays-1))
	}
	return starts
}

// inDayBucket reports whether the timestamp falls in [dayStart,
// dayStart+1day)
func inDayBucket(ns int64, dayStart time.Time) bool {
	return ns >= dayStart.UnixNano() && ns < dayStart.AddDate(0, 0, 1).UnixNano()
}

// MoodTrend builds the last-7-days average mood series. Days without
// check-ins produce a 0 point rather than a gap.
func MoodTrend(moods []models.MoodEntry, now time.Time) []SeriesPoint {
	points := make([]SeriesPoint, 0, seriesDays)
	for _, dayStart := range lastSevenDayStarts(now) {
		var bucket []models.MoodEntry
		for _, m := range moods {
			if inDayBucket(m.Date, dayStart) {
				bucket = append(bucket, m)
			}
		}
		avg := AverageMoodScore(bucket)
		points = append(points, SeriesPoint{
			Date:  dayStart.Format("Mon"),
			Value: math.Round(avg*10) / 10,
		})
	}
	return points
}

// ChoreCompletionSeries builds the last-7-days completion-rate series
// over chores due each day. Days with no due chores produce a 0 point.
func ChoreCompletionSeries(chores []models.Chore, now time.Time) []SeriesPoint {
	points := make([]SeriesPoint, 0, seriesDays)
	for _, dayStart := range lastSevenDayStarts(now) {
		var bucket []models.Chore
		for _, c := range chores {
			if inDayBucket(c.DueDate, dayStart) {
				bucket = append(bucket, c)
			}
		}
		points = append(points, SeriesPoint{
			Date:  dayStart.Format("Mon"),
			Value: float64(CompletionRate(bucket)),
		})
	}
	return points
}

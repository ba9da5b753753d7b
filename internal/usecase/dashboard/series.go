// Package dashboard derives chart series, filtered averages, pagination
// windows and transcript turns from a member's call log snapshot. All
// derivations are pure functions over the in-memory snapshot: they are
// recomputed per request and never mutate their input.
package dashboard

import (
	"time"

	"github.com/avamus/visionboard/internal/domain/entities"
)

// SeriesPoint is one derived chart point. Ordinal is the 1-based position
// in the member's ascending call-date order and stays stable regardless
// of any later reversal for display.
type SeriesPoint struct {
	Ordinal int       `json:"ordinal"`
	Date    time.Time `json:"date"`
	Value   float64   `json:"value"`
}

// CategorySeries projects one category's score out of each call log,
// preserving ascending chronological order. A missing score projects to
// 0 rather than being dropped, so series length always equals record
// count.
func CategorySeries(logs []*entities.CallLog, cat entities.ScoreCategory) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(logs))
	for i, l := range logs {
		value, _ := l.Score(cat)
		points = append(points, SeriesPoint{
			Ordinal: i + 1,
			Date:    l.CallDate,
			Value:   value,
		})
	}
	return points
}

// OverallSeries derives the "Average Success" trend. Its value is the
// overall_effectiveness score of each call.
func OverallSeries(logs []*entities.CallLog) []SeriesPoint {
	return CategorySeries(logs, entities.ScoreOverallEffectiveness)
}

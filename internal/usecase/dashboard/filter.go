package dashboard

import "time"

// DateRange is an inclusive calendar range. A nil *DateRange means
// "all time".
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// startOfDay truncates t to 00:00:00 in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay extends t to 23:59:59.999999999 in its own location.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// FilterByRange returns the subsequence of points whose date falls inside
// the range, normalized to start-of-day/end-of-day. A nil range returns
// the full input. A range with From after To yields an empty result, not
// an error.
func FilterByRange(points []SeriesPoint, r *DateRange) []SeriesPoint {
	if r == nil {
		return points
	}
	from := startOfDay(r.From)
	to := endOfDay(r.To)

	filtered := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		if p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Average computes the arithmetic mean of point values. The second
// return distinguishes "no data for the selected period" from a real
// average of 0: an empty input reports (0, false).
func Average(points []SeriesPoint) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points)), true
}

package dashboard

import (
	"testing"
	"time"
)

func points(dates ...time.Time) []SeriesPoint {
	pts := make([]SeriesPoint, 0, len(dates))
	for i, d := range dates {
		pts = append(pts, SeriesPoint{Ordinal: i + 1, Date: d, Value: float64((i + 1) * 10)})
	}
	return pts
}

func TestFilterByRange_NilRangeReturnsAll(t *testing.T) {
	pts := points(
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	)

	got := FilterByRange(pts, nil)
	if len(got) != len(pts) {
		t.Fatalf("nil range: got %d points, want %d", len(got), len(pts))
	}
}

func TestFilterByRange_SingleDayInclusive(t *testing.T) {
	day := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	pts := points(
		time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	)

	got := FilterByRange(pts, &DateRange{From: day, To: day})
	if len(got) != 2 {
		t.Fatalf("single-day range: got %d points, want 2", len(got))
	}
	if got[0].Ordinal != 2 || got[1].Ordinal != 3 {
		t.Errorf("wrong points kept: ordinals %d, %d", got[0].Ordinal, got[1].Ordinal)
	}
}

func TestFilterByRange_RangeNormalizedToDayBounds(t *testing.T) {
	// Range endpoints carry times of day; filtering must still span the
	// whole calendar days.
	from := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 6, 15, 0, 0, time.UTC)
	pts := points(
		time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 22, 0, 0, 0, time.UTC),
	)

	got := FilterByRange(pts, &DateRange{From: from, To: to})
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
}

func TestFilterByRange_InvertedRangeYieldsEmpty(t *testing.T) {
	pts := points(time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))
	r := &DateRange{
		From: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	got := FilterByRange(pts, r)
	if len(got) != 0 {
		t.Fatalf("inverted range: got %d points, want 0", len(got))
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		want    float64
		hasData bool
	}{
		{"empty reports no data", nil, 0, false},
		{"single", []float64{42}, 42, true},
		{"mean", []float64{40, 60, 80}, 60, true},
		{"zero average is still data", []float64{0, 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := make([]SeriesPoint, 0, len(tt.values))
			for i, v := range tt.values {
				pts = append(pts, SeriesPoint{Ordinal: i + 1, Value: v})
			}
			got, hasData := Average(pts)
			if got != tt.want || hasData != tt.hasData {
				t.Errorf("Average() = (%v, %v), want (%v, %v)", got, hasData, tt.want, tt.hasData)
			}
		})
	}
}

package dashboard

import "testing"

func TestColorForScore_TierBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, ColorLow},
		{49, ColorLow},
		{50, ColorMid},
		{79, ColorMid},
		{80, ColorHigh},
		{100, ColorHigh},
	}

	for _, tt := range tests {
		if got := ColorForScore(tt.score); got != tt.want {
			t.Errorf("ColorForScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestColorForScore_TotalOutsideRange(t *testing.T) {
	if got := ColorForScore(-10); got != ColorLow {
		t.Errorf("ColorForScore(-10) = %s, want %s", got, ColorLow)
	}
	if got := ColorForScore(150); got != ColorHigh {
		t.Errorf("ColorForScore(150) = %s, want %s", got, ColorHigh)
	}
}

func TestColorForScore_Monotonic(t *testing.T) {
	rank := map[string]int{ColorLow: 0, ColorMid: 1, ColorHigh: 2}

	prev := rank[ColorForScore(-5)]
	for s := -4.0; s <= 105; s++ {
		cur := rank[ColorForScore(s)]
		if cur < prev {
			t.Fatalf("tier got worse as score increased at %v", s)
		}
		prev = cur
	}
}

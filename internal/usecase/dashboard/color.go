package dashboard

// Score tier thresholds. Scores below TierMidThreshold are low, scores
// from TierHighThreshold up are high, everything between is mid.
const (
	TierMidThreshold  = 50.0
	TierHighThreshold = 80.0
)

// Display colors per tier.
const (
	ColorLow  = "#ef4444"
	ColorMid  = "#f8b922"
	ColorHigh = "#22c55e"
)

// ColorForScore maps a score to its display color. The mapping is pure,
// monotonic and total over the real number line: values outside [0,100]
// clamp to the nearest tier.
func ColorForScore(score float64) string {
	switch {
	case score < TierMidThreshold:
		return ColorLow
	case score < TierHighThreshold:
		return ColorMid
	default:
		return ColorHigh
	}
}

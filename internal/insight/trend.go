package insight

import (
	"time"

	"github.com/mindwell/mindwell/store"
)

// Trend is the three-way mood-trend classification.
type Trend int

const (
	TrendInsufficientData Trend = iota
	TrendStable
	TrendImproving
	TrendDeclining
)

func (t Trend) String() string {
	switch t {
	case TrendImproving:
		return "improving"
	case TrendDeclining:
		return "declining"
	case TrendStable:
		return "stable"
	default:
		return "insufficient data"
	}
}

// Sentence renders the fixed user-facing phrasing for the trend.
func (t Trend) Sentence() string {
	switch t {
	case TrendImproving:
		return "Your mood has been improving recently."
	case TrendDeclining:
		return "Your mood has been declining recently. Consider reaching out for support."
	case TrendStable:
		return "Your mood has been stable recently."
	default:
		return "Not enough mood data to determine a trend yet."
	}
}

// trendDelta is the mean difference that separates stable from a move.
const trendDelta = 0.5

// MoodTrend compares the mean mood of the last 7 days against the preceding
// 7 days (days 8-14 back from now). A difference greater than 0.5 is
// improving, less than -0.5 declining, otherwise stable. Either window being
// empty yields TrendInsufficientData.
func MoodTrend(samples []*store.MoodSample, now time.Time) Trend {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var recentSum, priorSum float64
	var recentN, priorN int
	for _, s := range samples {
		switch {
		case s.Date.After(weekAgo):
			recentSum += float64(s.Mood)
			recentN++
		case s.Date.After(twoWeeksAgo):
			priorSum += float64(s.Mood)
			priorN++
		}
	}
	if recentN == 0 || priorN == 0 {
		return TrendInsufficientData
	}

	diff := recentSum/float64(recentN) - priorSum/float64(priorN)
	switch {
	case diff > trendDelta:
		return TrendImproving
	case diff < -trendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

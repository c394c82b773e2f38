package cbt

import (
	"fmt"
	"sort"
	"time"

	"github.com/mindwell/mindwell/store"
)

// DistortionTrend is the ratio-heuristic direction of a distortion's
// frequency. It compares the count in the last 14 days against the
// remainder of the history; it is not a statistically rigorous trend.
type DistortionTrend string

const (
	TrendIncreasing DistortionTrend = "increasing"
	TrendDecreasing DistortionTrend = "decreasing"
	TrendSteady     DistortionTrend = "stable"
)

// DistortionStat is one row of the distortion frequency table.
type DistortionStat struct {
	Label string          `json:"label"`
	Count int             `json:"count"`
	Trend DistortionTrend `json:"trend"`
}

// TechniqueStat is one row of the technique effectiveness table. The score
// is an estimate, not measured outcome data.
type TechniqueStat struct {
	Technique     string  `json:"technique"`
	UsageCount    int     `json:"usage_count"`
	Effectiveness float64 `json:"effectiveness"`
}

// Insights is the full analytics result.
type Insights struct {
	Distortions []DistortionStat `json:"distortions"`
	Techniques  []TechniqueStat  `json:"techniques"`
	// MoodCBTCorrelation is the mean mood on days with CBT activity minus
	// the mean mood on days without. Despite the name it is a two-group
	// mean difference, not a correlation coefficient; the name is kept for
	// continuity with the product's API.
	MoodCBTCorrelation float64  `json:"mood_cbt_correlation"`
	Recommendations    []string `json:"recommendations"`
}

const maxRecommendations = 4

// GenerateInsights computes the distortion table, technique estimates, the
// mood/CBT group difference and recommendations as of now.
func GenerateInsights(records []*store.ThoughtRecord, entries []*store.CBTMoodEntry, estimator Estimator, now time.Time) *Insights {
	if estimator == nil {
		estimator = HeuristicEstimator{}
	}

	result := &Insights{
		Distortions:        distortionStats(records, now),
		Techniques:         techniqueStats(records, estimator),
		MoodCBTCorrelation: moodCBTCorrelation(records, entries),
	}
	result.Recommendations = recommendations(result)
	return result
}

func distortionStats(records []*store.ThoughtRecord, now time.Time) []DistortionStat {
	cutoff := now.AddDate(0, 0, -14)
	total := map[string]int{}
	recent := map[string]int{}
	for _, r := range records {
		for _, d := range r.Distortions {
			total[d]++
			if r.Date.After(cutoff) {
				recent[d]++
			}
		}
	}

	stats := make([]DistortionStat, 0, len(total))
	for label, count := range total {
		older := count - recent[label]
		trend := TrendSteady
		// Ratio heuristic: more than half of all hits in the last two weeks
		// reads as increasing, none of them as decreasing.
		if recent[label] > older {
			trend = TrendIncreasing
		} else if recent[label] == 0 && older > 0 {
			trend = TrendDecreasing
		}
		stats = append(stats, DistortionStat{Label: label, Count: count, Trend: trend})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Label < stats[j].Label
	})
	return stats
}

// techniqueStats derives technique usage from the structure of the thought
// records themselves: filling in evidence, writing a balanced thought, and
// completing a full record each count as practicing a technique.
func techniqueStats(records []*store.ThoughtRecord, estimator Estimator) []TechniqueStat {
	usage := map[string]int{}
	for _, r := range records {
		usage["thought-challenging"]++
		if len(r.EvidenceFor) > 0 || len(r.EvidenceAgainst) > 0 {
			usage["evidence-examination"]++
		}
		if r.BalancedThought != "" {
			usage["balanced-thinking"]++
		}
	}

	stats := make([]TechniqueStat, 0, len(usage))
	for technique, count := range usage {
		stats = append(stats, TechniqueStat{
			Technique:     technique,
			UsageCount:    count,
			Effectiveness: estimator.Estimate(technique, count),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].UsageCount != stats[j].UsageCount {
			return stats[i].UsageCount > stats[j].UsageCount
		}
		return stats[i].Technique < stats[j].Technique
	})
	return stats
}

// moodCBTCorrelation returns the mean mood on days with a thought record
// minus the mean mood on days without. Zero when either group is empty.
func moodCBTCorrelation(records []*store.ThoughtRecord, entries []*store.CBTMoodEntry) float64 {
	activeDays := map[string]bool{}
	for _, r := range records {
		activeDays[dayKey(r.Date)] = true
	}

	var withSum, withoutSum float64
	var withN, withoutN int
	for _, e := range entries {
		if activeDays[dayKey(e.Date)] {
			withSum += float64(e.Mood)
			withN++
		} else {
			withoutSum += float64(e.Mood)
			withoutN++
		}
	}
	if withN == 0 || withoutN == 0 {
		return 0
	}
	return withSum/float64(withN) - withoutSum/float64(withoutN)
}

func recommendations(insights *Insights) []string {
	var recs []string
	if len(insights.Distortions) > 0 {
		top := insights.Distortions[0]
		recs = append(recs, fmt.Sprintf("Your most frequent thinking pattern is %s; try the challenge questions for it next time it shows up.", top.Label))
		if top.Trend == TrendIncreasing {
			recs = append(recs, fmt.Sprintf("%s has come up more in the last two weeks; a daily thought record can help catch it earlier.", top.Label))
		}
	}
	if len(insights.Techniques) > 0 {
		top := insights.Techniques[0]
		recs = append(recs, fmt.Sprintf("You use %s most; keep it in your routine.", top.Technique))
	}
	switch {
	case insights.MoodCBTCorrelation > 0:
		recs = append(recs, "Your mood tends to be higher on days you practice; consistency is paying off.")
	case insights.MoodCBTCorrelation < 0:
		recs = append(recs, "You tend to practice on harder days, which is exactly when it helps most.")
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

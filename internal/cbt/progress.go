package cbt

import (
	"time"

	"github.com/mindwell/mindwell/store"
)

// WeekReport summarizes one rolling 7-day window.
type WeekReport struct {
	// WeeksAgo is 0 for the current week, 3 for the oldest.
	WeeksAgo              int     `json:"weeks_ago"`
	RecordCount           int     `json:"record_count"`
	DistortionsChallenged int     `json:"distortions_challenged"`
	// MoodDelta is this week's mean mood minus the previous week's; 0 when
	// either week has no mood entries.
	MoodDelta float64 `json:"mood_delta"`
}

// Progress is the overall CBT practice summary.
type Progress struct {
	TotalThoughtRecords int          `json:"total_thought_records"`
	TotalMoodEntries    int          `json:"total_mood_entries"`
	Weeks               []WeekReport `json:"weeks"`
	// StreakDays is the number of consecutive calendar days, walking back
	// from today, with either a thought record or a mood entry carrying CBT
	// insights. Breaks on the first gap.
	StreakDays int `json:"streak_days"`
}

// CalculateProgress computes totals, the 4-week rolling report and the
// practice streak as of now.
func CalculateProgress(records []*store.ThoughtRecord, entries []*store.CBTMoodEntry, now time.Time) *Progress {
	progress := &Progress{
		TotalThoughtRecords: len(records),
		TotalMoodEntries:    len(entries),
		StreakDays:          practiceStreak(records, entries, now),
	}

	weekMean := make([]float64, 5)
	weekHasMood := make([]bool, 5)
	for week := 0; week < 5; week++ {
		end := now.AddDate(0, 0, -7*week)
		start := now.AddDate(0, 0, -7*(week+1))
		sum, n := 0.0, 0
		for _, e := range entries {
			if e.Date.After(start) && !e.Date.After(end) {
				sum += float64(e.Mood)
				n++
			}
		}
		if n > 0 {
			weekMean[week] = sum / float64(n)
			weekHasMood[week] = true
		}
	}

	for week := 0; week < 4; week++ {
		end := now.AddDate(0, 0, -7*week)
		start := now.AddDate(0, 0, -7*(week+1))
		report := WeekReport{WeeksAgo: week}
		for _, r := range records {
			if r.Date.After(start) && !r.Date.After(end) {
				report.RecordCount++
				report.DistortionsChallenged += len(r.Distortions)
			}
		}
		if weekHasMood[week] && weekHasMood[week+1] {
			report.MoodDelta = weekMean[week] - weekMean[week+1]
		}
		progress.Weeks = append(progress.Weeks, report)
	}
	return progress
}

// dayKey buckets a time into its calendar day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func practiceStreak(records []*store.ThoughtRecord, entries []*store.CBTMoodEntry, now time.Time) int {
	active := map[string]bool{}
	for _, r := range records {
		active[dayKey(r.Date)] = true
	}
	for _, e := range entries {
		if len(e.Insights) > 0 {
			active[dayKey(e.Date)] = true
		}
	}

	streak := 0
	for day := now; active[dayKey(day)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

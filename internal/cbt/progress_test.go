package cbt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/store"
)

func recordAt(date time.Time, distortions ...string) *store.ThoughtRecord {
	return &store.ThoughtRecord{Date: date, Distortions: distortions}
}

func moodEntryAt(date time.Time, mood int32, insights ...string) *store.CBTMoodEntry {
	return &store.CBTMoodEntry{Date: date, Mood: mood, Insights: insights}
}

func TestPracticeStreak(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		records  []*store.ThoughtRecord
		entries  []*store.CBTMoodEntry
		expected int
	}{
		{
			name:     "no activity",
			expected: 0,
		},
		{
			name:     "nothing today breaks the streak immediately",
			records:  []*store.ThoughtRecord{recordAt(now.AddDate(0, 0, -1))},
			expected: 0,
		},
		{
			name: "three consecutive days",
			records: []*store.ThoughtRecord{
				recordAt(now),
				recordAt(now.AddDate(0, 0, -1)),
				recordAt(now.AddDate(0, 0, -2)),
			},
			expected: 3,
		},
		{
			name: "gap resets the streak",
			records: []*store.ThoughtRecord{
				recordAt(now),
				recordAt(now.AddDate(0, 0, -2)),
				recordAt(now.AddDate(0, 0, -3)),
			},
			expected: 1,
		},
		{
			name:    "mood entry with insights counts as practice",
			records: []*store.ThoughtRecord{recordAt(now)},
			entries: []*store.CBTMoodEntry{moodEntryAt(now.AddDate(0, 0, -1), 4, "noticed catastrophizing")},
			expected: 2,
		},
		{
			name:     "mood entry without insights does not count",
			records:  []*store.ThoughtRecord{recordAt(now)},
			entries:  []*store.CBTMoodEntry{moodEntryAt(now.AddDate(0, 0, -1), 4)},
			expected: 1,
		},
		{
			name: "multiple records on one day count once",
			records: []*store.ThoughtRecord{
				recordAt(now),
				recordAt(now.Add(-2 * time.Hour)),
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, practiceStreak(tt.records, tt.entries, now))
		})
	}
}

func TestCalculateProgress(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	records := []*store.ThoughtRecord{
		recordAt(now.AddDate(0, 0, -1), "catastrophizing", "all-or-nothing"),
		recordAt(now.AddDate(0, 0, -3), "catastrophizing"),
		recordAt(now.AddDate(0, 0, -9), "labeling"),
	}
	entries := []*store.CBTMoodEntry{
		moodEntryAt(now.AddDate(0, 0, -1), 5),
		moodEntryAt(now.AddDate(0, 0, -2), 5),
		moodEntryAt(now.AddDate(0, 0, -9), 3),
	}

	progress := CalculateProgress(records, entries, now)

	require.Equal(t, 3, progress.TotalThoughtRecords)
	require.Equal(t, 3, progress.TotalMoodEntries)
	require.Len(t, progress.Weeks, 4)

	current := progress.Weeks[0]
	require.Equal(t, 0, current.WeeksAgo)
	require.Equal(t, 2, current.RecordCount)
	require.Equal(t, 3, current.DistortionsChallenged)
	require.InDelta(t, 2.0, current.MoodDelta, 1e-9)

	lastWeek := progress.Weeks[1]
	require.Equal(t, 1, lastWeek.WeeksAgo)
	require.Equal(t, 1, lastWeek.RecordCount)
	require.Equal(t, 1, lastWeek.DistortionsChallenged)
	// Week two has no mood entries, so no delta for week one.
	require.Zero(t, lastWeek.MoodDelta)

	require.Zero(t, progress.Weeks[2].RecordCount)
	require.Zero(t, progress.Weeks[3].RecordCount)
}

func TestCalculateProgressEmpty(t *testing.T) {
	progress := CalculateProgress(nil, nil, time.Now())
	require.Zero(t, progress.TotalThoughtRecords)
	require.Zero(t, progress.TotalMoodEntries)
	require.Zero(t, progress.StreakDays)
	require.Len(t, progress.Weeks, 4)
}

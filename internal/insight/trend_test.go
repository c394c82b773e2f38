package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/store"
)

// samplesAt builds one sample per day walking back from now, oldest first.
// moods[0] is the oldest day.
func samplesAt(now time.Time, moods ...int32) []*store.MoodSample {
	samples := make([]*store.MoodSample, 0, len(moods))
	for i, mood := range moods {
		daysBack := len(moods) - 1 - i
		samples = append(samples, &store.MoodSample{
			Mood: mood,
			Date: now.AddDate(0, 0, -daysBack).Add(-time.Hour),
		})
	}
	return samples
}

func TestMoodTrend(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		samples  []*store.MoodSample
		expected Trend
	}{
		{
			name:     "no samples",
			samples:  nil,
			expected: TrendInsufficientData,
		},
		{
			name:     "only recent week",
			samples:  samplesAt(now, 4, 4, 4, 4, 4, 4, 4),
			expected: TrendInsufficientData,
		},
		{
			name:     "improving when recent mean is more than half a point higher",
			samples:  samplesAt(now, 2, 2, 2, 2, 2, 2, 2, 5, 5, 5, 5, 5, 5, 5),
			expected: TrendImproving,
		},
		{
			name:     "declining when recent mean is more than half a point lower",
			samples:  samplesAt(now, 5, 5, 5, 5, 5, 5, 5, 2, 2, 2, 2, 2, 2, 2),
			expected: TrendDeclining,
		},
		{
			name:     "stable within the half-point band",
			samples:  samplesAt(now, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4),
			expected: TrendStable,
		},
		{
			name: "exactly half a point is still stable",
			samples: []*store.MoodSample{
				{Mood: 3, Date: now.AddDate(0, 0, -10)},
				{Mood: 4, Date: now.AddDate(0, 0, -2)},
				{Mood: 3, Date: now.AddDate(0, 0, -1)},
			},
			expected: TrendStable,
		},
		{
			name:     "samples older than two weeks are ignored",
			samples:  append(samplesAt(now, 2, 2, 2, 2, 2, 2, 2, 5, 5, 5, 5, 5, 5, 5), &store.MoodSample{Mood: 6, Date: now.AddDate(0, 0, -20)}),
			expected: TrendImproving,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, MoodTrend(tt.samples, now))
		})
	}
}

func TestTrendSentence(t *testing.T) {
	require.Equal(t, "Your mood has been improving recently.", TrendImproving.Sentence())
	require.Equal(t, "Your mood has been declining recently. Consider reaching out for support.", TrendDeclining.Sentence())
	require.Equal(t, "Your mood has been stable recently.", TrendStable.Sentence())
	require.Equal(t, "Not enough mood data to determine a trend yet.", TrendInsufficientData.Sentence())
}

package insight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/store"
)

func moodsOf(values ...int32) []*store.MoodSample {
	samples := make([]*store.MoodSample, 0, len(values))
	for _, v := range values {
		samples = append(samples, &store.MoodSample{Mood: v})
	}
	return samples
}

func journalsWithThemes(themeLists ...[]string) []*store.JournalEntry {
	entries := make([]*store.JournalEntry, 0, len(themeLists))
	for _, themes := range themeLists {
		entries = append(entries, &store.JournalEntry{Themes: themes})
	}
	return entries
}

func meditationsOf(effectiveness ...float64) []*store.MeditationSession {
	sessions := make([]*store.MeditationSession, 0, len(effectiveness))
	for _, e := range effectiveness {
		sessions = append(sessions, &store.MeditationSession{Effectiveness: e})
	}
	return sessions
}

func TestRegenerateLowMood(t *testing.T) {
	insights := Regenerate("u1", moodsOf(2, 2, 3, 2, 2, 3, 2), nil, nil)
	require.Len(t, insights, 1)
	require.Equal(t, store.InsightPattern, insights[0].Kind)
	require.Equal(t, store.SourceMood, insights[0].Source)
	require.Equal(t, 0.8, insights[0].Confidence)
	require.Equal(t, "u1", insights[0].UserID)
}

func TestRegenerateHighMood(t *testing.T) {
	insights := Regenerate("u1", moodsOf(5, 5, 4, 5, 5, 4, 5), nil, nil)
	require.Len(t, insights, 1)
	require.Equal(t, store.InsightAchievement, insights[0].Kind)
	require.Equal(t, 0.7, insights[0].Confidence)
}

func TestRegenerateMoodBoundaries(t *testing.T) {
	// A mean of exactly 3 or exactly 4 triggers nothing.
	require.Empty(t, Regenerate("u1", moodsOf(3, 3, 3, 3, 3, 3, 3), nil, nil))
	require.Empty(t, Regenerate("u1", moodsOf(4, 4, 4, 4, 4, 4, 4), nil, nil))
}

func TestRegenerateRequiresSevenMoods(t *testing.T) {
	require.Empty(t, Regenerate("u1", moodsOf(1, 1, 1, 1, 1, 1), nil, nil))
}

func TestRegenerateUsesTrailingMoodWindow(t *testing.T) {
	// Old low moods fall outside the 7-sample window.
	moods := moodsOf(1, 1, 1, 4, 4, 4, 4, 4, 4, 4)
	require.Empty(t, Regenerate("u1", moods, nil, nil))
}

func TestRegenerateAnxietyTheme(t *testing.T) {
	journals := journalsWithThemes(
		[]string{"anxiety", "work"},
		[]string{"anxiety"},
		[]string{"sleep"},
		[]string{"anxiety"},
	)
	insights := Regenerate("u1", nil, journals, nil)
	require.Len(t, insights, 1)
	require.Equal(t, store.InsightConcern, insights[0].Kind)
	require.Equal(t, store.SourceJournal, insights[0].Source)
	require.Equal(t, 0.9, insights[0].Confidence)
}

func TestRegenerateAnxietyNeedsMoreThanTwo(t *testing.T) {
	journals := journalsWithThemes([]string{"anxiety"}, []string{"anxiety"}, []string{"work"})
	require.Empty(t, Regenerate("u1", nil, journals, nil))
}

func TestRegenerateAnxietyOnlyLastFiveEntries(t *testing.T) {
	// Three anxious entries exist, but only two fall in the last five.
	journals := journalsWithThemes(
		[]string{"anxiety"},
		[]string{"work"},
		[]string{"anxiety"},
		[]string{"sleep"},
		[]string{"work"},
		[]string{"anxiety"},
		[]string{"family"},
	)
	require.Empty(t, Regenerate("u1", nil, journals, nil))
}

func TestRegenerateMeditationEffectiveness(t *testing.T) {
	insights := Regenerate("u1", nil, nil, meditationsOf(0.8, 0.9, 0.75, 0.8, 0.85))
	require.Len(t, insights, 1)
	require.Equal(t, store.InsightAchievement, insights[0].Kind)
	require.Equal(t, store.SourceMeditation, insights[0].Source)
	require.Equal(t, 0.8, insights[0].Confidence)
}

func TestRegenerateMeditationRequiresFiveSessions(t *testing.T) {
	require.Empty(t, Regenerate("u1", nil, nil, meditationsOf(0.9, 0.9, 0.9, 0.9)))
}

func TestRegenerateCombinesRules(t *testing.T) {
	moods := moodsOf(2, 2, 2, 2, 2, 2, 2)
	journals := journalsWithThemes([]string{"anxiety"}, []string{"anxiety"}, []string{"anxiety"})
	insights := Regenerate("u1", moods, journals, nil)
	require.Len(t, insights, 2)
	require.Equal(t, store.InsightPattern, insights[0].Kind)
	require.Equal(t, store.InsightConcern, insights[1].Kind)
}

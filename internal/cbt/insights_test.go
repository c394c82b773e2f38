package cbt

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/store"
)

func TestGenerateInsightsDistortionStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	records := []*store.ThoughtRecord{
		recordAt(now.AddDate(0, 0, -1), "catastrophizing"),
		recordAt(now.AddDate(0, 0, -2), "catastrophizing", "labeling"),
		recordAt(now.AddDate(0, 0, -30), "catastrophizing"),
		recordAt(now.AddDate(0, 0, -30), "labeling"),
		recordAt(now.AddDate(0, 0, -40), "mind-reading"),
	}

	result := GenerateInsights(records, nil, HeuristicEstimator{}, now)

	require.Len(t, result.Distortions, 3)
	// Sorted by count descending, label ascending on ties.
	require.Equal(t, "catastrophizing", result.Distortions[0].Label)
	require.Equal(t, 3, result.Distortions[0].Count)
	require.Equal(t, TrendIncreasing, result.Distortions[0].Trend)

	require.Equal(t, "labeling", result.Distortions[1].Label)
	require.Equal(t, 2, result.Distortions[1].Count)
	require.Equal(t, TrendSteady, result.Distortions[1].Trend)

	require.Equal(t, "mind-reading", result.Distortions[2].Label)
	require.Equal(t, TrendDecreasing, result.Distortions[2].Trend)
}

func TestGenerateInsightsTechniqueStats(t *testing.T) {
	now := time.Now()
	records := []*store.ThoughtRecord{
		{Date: now, EvidenceFor: []string{"e"}, BalancedThought: "a kinder view"},
		{Date: now},
	}

	result := GenerateInsights(records, nil, HeuristicEstimator{}, now)

	require.Len(t, result.Techniques, 3)
	require.Equal(t, "thought-challenging", result.Techniques[0].Technique)
	require.Equal(t, 2, result.Techniques[0].UsageCount)
	require.InDelta(t, 0.5, result.Techniques[0].Effectiveness, 1e-9)

	// Ties sort by name.
	require.Equal(t, "balanced-thinking", result.Techniques[1].Technique)
	require.Equal(t, "evidence-examination", result.Techniques[2].Technique)
	require.Equal(t, 1, result.Techniques[1].UsageCount)
}

func TestMoodCBTCorrelation(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	records := []*store.ThoughtRecord{recordAt(now.AddDate(0, 0, -1))}
	entries := []*store.CBTMoodEntry{
		moodEntryAt(now.AddDate(0, 0, -1), 5), // practice day
		moodEntryAt(now.AddDate(0, 0, -2), 3),
		moodEntryAt(now.AddDate(0, 0, -3), 3),
	}

	result := GenerateInsights(records, entries, HeuristicEstimator{}, now)
	require.InDelta(t, 2.0, result.MoodCBTCorrelation, 1e-9)
}

func TestMoodCBTCorrelationNeedsBothGroups(t *testing.T) {
	now := time.Now()
	// All mood entries fall on practice days.
	records := []*store.ThoughtRecord{recordAt(now)}
	entries := []*store.CBTMoodEntry{moodEntryAt(now, 5)}
	result := GenerateInsights(records, entries, HeuristicEstimator{}, now)
	require.Zero(t, result.MoodCBTCorrelation)
}

func TestGenerateInsightsDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	records := []*store.ThoughtRecord{
		recordAt(now.AddDate(0, 0, -1), "catastrophizing", "labeling"),
		recordAt(now.AddDate(0, 0, -5), "should-statements"),
	}
	first := GenerateInsights(records, nil, HeuristicEstimator{}, now)
	second := GenerateInsights(records, nil, HeuristicEstimator{}, now)
	require.Equal(t, first, second)
}

func TestGenerateInsightsRecommendationsCapped(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	var records []*store.ThoughtRecord
	for i := 0; i < 6; i++ {
		records = append(records, recordAt(now.AddDate(0, 0, -i), "catastrophizing"))
	}
	entries := []*store.CBTMoodEntry{
		moodEntryAt(now.AddDate(0, 0, -1), 5),
		moodEntryAt(now.AddDate(0, 0, -20), 2),
	}

	result := GenerateInsights(records, entries, HeuristicEstimator{}, now)
	require.NotEmpty(t, result.Recommendations)
	require.LessOrEqual(t, len(result.Recommendations), maxRecommendations)
}

func TestHeuristicEstimator(t *testing.T) {
	e := HeuristicEstimator{}
	require.InDelta(t, 0.4, e.Estimate("any", 0), 1e-9)
	require.InDelta(t, 0.45, e.Estimate("any", 1), 1e-9)
	require.InDelta(t, 0.95, e.Estimate("any", 11), 1e-9)
	// Saturates.
	require.InDelta(t, 0.95, e.Estimate("any", 100), 1e-9)
}

func TestJitteredEstimatorStaysInRange(t *testing.T) {
	e := JitteredEstimator{Rand: rand.New(rand.NewSource(1))}
	for i := 0; i < 50; i++ {
		got := e.Estimate("any", i)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 1.0)
	}
}

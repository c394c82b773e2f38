// Package insight derives short observations from a user's aggregated
// history. Generation is rule-based over fixed literal thresholds; it runs
// synchronously after every append to the memory aggregate.
package insight

import (
	"time"

	"github.com/mindwell/mindwell/store"
)

const (
	// MaxInsights caps the per-user insight collection; oldest evicted first.
	MaxInsights = 20

	moodWindow       = 7
	journalWindow    = 5
	meditationWindow = 5

	lowMoodThreshold       = 3.0
	highMoodThreshold      = 4.0
	anxietyCountThreshold  = 2
	effectivenessThreshold = 0.7
)

// Regenerate scans the aggregate's collections and returns the insights the
// current state implies. New insights are appended by the caller without
// deduplication; the 20-item cap bounds growth.
func Regenerate(userID string, moods []*store.MoodSample, journals []*store.JournalEntry, meditations []*store.MeditationSession) []*store.Insight {
	now := time.Now().Unix()
	var insights []*store.Insight

	// (a) trailing mood mean.
	if len(moods) >= moodWindow {
		recent := moods[len(moods)-moodWindow:]
		sum := 0.0
		for _, s := range recent {
			sum += float64(s.Mood)
		}
		mean := sum / float64(len(recent))
		if mean < lowMoodThreshold {
			insights = append(insights, &store.Insight{
				UserID:     userID,
				Kind:       store.InsightPattern,
				Content:    "Your mood has been lower than usual over the past week.",
				Confidence: 0.8,
				Source:     store.SourceMood,
				CreatedTs:  now,
			})
		} else if mean > highMoodThreshold {
			insights = append(insights, &store.Insight{
				UserID:     userID,
				Kind:       store.InsightAchievement,
				Content:    "Your mood has been consistently positive over the past week.",
				Confidence: 0.7,
				Source:     store.SourceMood,
				CreatedTs:  now,
			})
		}
	}

	// (b) recurring anxiety theme in recent journal entries.
	recentJournals := journals
	if len(recentJournals) > journalWindow {
		recentJournals = recentJournals[len(recentJournals)-journalWindow:]
	}
	anxietyCount := 0
	for _, entry := range recentJournals {
		for _, theme := range entry.Themes {
			if theme == "anxiety" {
				anxietyCount++
				break
			}
		}
	}
	if anxietyCount > anxietyCountThreshold {
		insights = append(insights, &store.Insight{
			UserID:     userID,
			Kind:       store.InsightConcern,
			Content:    "Anxiety has come up repeatedly in your recent journal entries.",
			Confidence: 0.9,
			Source:     store.SourceJournal,
			CreatedTs:  now,
		})
	}

	// (c) meditation effectiveness.
	if len(meditations) >= meditationWindow {
		recent := meditations[len(meditations)-meditationWindow:]
		sum := 0.0
		for _, s := range recent {
			sum += s.Effectiveness
		}
		if sum/float64(len(recent)) > effectivenessThreshold {
			insights = append(insights, &store.Insight{
				UserID:     userID,
				Kind:       store.InsightAchievement,
				Content:    "Your recent meditation sessions have been working well for you.",
				Confidence: 0.8,
				Source:     store.SourceMeditation,
				CreatedTs:  now,
			})
		}
	}

	return insights
}

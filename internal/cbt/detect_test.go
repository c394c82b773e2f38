package cbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectDistortions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no distortions in neutral text",
			text:     "I went shopping and cooked dinner",
			expected: nil,
		},
		{
			name:     "single distortion",
			text:     "This is going to be a disaster",
			expected: []string{"catastrophizing"},
		},
		{
			name:     "multiple distortions, label order is fixed",
			text:     "I should have known, it's my fault, I'm an idiot",
			expected: []string{"should-statements", "personalization", "labeling"},
		},
		{
			name:     "distortion detected once despite repetition",
			text:     "always late, always wrong, always failing",
			expected: []string{"all-or-nothing"},
		},
		{
			name:     "markdown emphasis does not break matching",
			text:     "I **always** mess this up",
			expected: []string{"all-or-nothing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DetectDistortions(tt.text))
		})
	}
}

func TestChallengeQuestions(t *testing.T) {
	questions := ChallengeQuestions([]string{"all-or-nothing"})
	require.NotEmpty(t, questions)
	require.LessOrEqual(t, len(questions), maxChallengeQuestions)

	// Many distortions still cap at the limit.
	all := ChallengeQuestions([]string{
		"all-or-nothing", "catastrophizing", "mind-reading",
		"fortune-telling", "should-statements", "personalization",
	})
	require.Len(t, all, maxChallengeQuestions)

	require.Empty(t, ChallengeQuestions(nil))
	require.Empty(t, ChallengeQuestions([]string{"not-a-distortion"}))
}

func TestBalancedSuggestions(t *testing.T) {
	suggestions := BalancedSuggestions([]string{"catastrophizing"})
	require.NotEmpty(t, suggestions)
	require.LessOrEqual(t, len(suggestions), maxBalancedSuggestions)

	all := BalancedSuggestions([]string{
		"all-or-nothing", "catastrophizing", "mind-reading",
		"fortune-telling", "should-statements",
	})
	require.Len(t, all, maxBalancedSuggestions)

	require.Empty(t, BalancedSuggestions(nil))
}

func TestEveryDistortionHasGuidance(t *testing.T) {
	for _, label := range []string{
		"all-or-nothing", "catastrophizing", "mind-reading", "fortune-telling",
		"should-statements", "personalization", "mental-filter",
		"disqualifying-the-positive", "jumping-to-conclusions",
		"magnification-minimization", "emotional-reasoning", "labeling",
	} {
		require.NotEmpty(t, challengeQuestions[label], "missing questions for %s", label)
		require.NotEmpty(t, balancedSuggestions[label], "missing suggestions for %s", label)
	}
}

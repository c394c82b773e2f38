package classify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		taxonomy *Taxonomy
		text     string
		expected []string
	}{
		{
			name:     "empty text yields no labels",
			taxonomy: Themes,
			text:     "",
			expected: nil,
		},
		{
			name:     "no keyword match yields no labels",
			taxonomy: Themes,
			text:     "a perfectly unremarkable afternoon",
			expected: nil,
		},
		{
			name:     "single theme",
			taxonomy: Themes,
			text:     "my boss criticized me again",
			expected: []string{"work"},
		},
		{
			name:     "label emitted once despite repeated keywords",
			taxonomy: Themes,
			text:     "work work work, all I do is work at my job",
			expected: []string{"work"},
		},
		{
			name:     "multiple labels in rule order",
			taxonomy: Themes,
			text:     "worried about money and feeling anxious about the rent",
			expected: []string{"anxiety", "finances"},
		},
		{
			name:     "matching is case-insensitive",
			taxonomy: Themes,
			text:     "ANXIOUS about the DEADLINE",
			expected: []string{"work", "anxiety"},
		},
		{
			name:     "concern keyword",
			taxonomy: Concerns,
			text:     "had a panic attack on the bus",
			expected: []string{"panic attacks"},
		},
		{
			name:     "achievement keyword",
			taxonomy: Achievements,
			text:     "finally finished the project and went for a walk",
			expected: []string{"self-care", "accomplishment"},
		},
		{
			name:     "distortion detection",
			taxonomy: Distortions,
			text:     "I always ruin things, everything is ruined, I'm a failure",
			expected: []string{"all-or-nothing", "catastrophizing", "labeling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.taxonomy.Classify(tt.text))
		})
	}
}

func TestDistortionLabelSet(t *testing.T) {
	expected := []string{
		"all-or-nothing",
		"catastrophizing",
		"mind-reading",
		"fortune-telling",
		"should-statements",
		"personalization",
		"mental-filter",
		"disqualifying-the-positive",
		"jumping-to-conclusions",
		"magnification-minimization",
		"emotional-reasoning",
		"labeling",
	}
	require.Equal(t, expected, Distortions.Labels())
}

func TestEmotionalState(t *testing.T) {
	tests := []struct {
		mood     int32
		expected string
	}{
		{1, "struggling"},
		{2, "struggling"},
		{3, "neutral"},
		{4, "positive"},
		{5, "positive"},
		{6, "thriving"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, EmotionalState(tt.mood), "mood %d", tt.mood)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		contains string
		excludes string
	}{
		{
			name:     "strips emphasis markers",
			markdown: "I feel **really** _anxious_ today",
			contains: "anxious",
			excludes: "**",
		},
		{
			name:     "drops fenced code blocks",
			markdown: "stressful day\n```\nworried_flag = true\n```\n",
			contains: "stressful",
			excludes: "worried_flag",
		},
		{
			name:     "keeps link text",
			markdown: "read [an article about sleep](https://example.com/x)",
			contains: "article about sleep",
			excludes: "https://example.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := PlainText(tt.markdown)
			require.Contains(t, plain, tt.contains)
			require.NotContains(t, plain, tt.excludes)
		})
	}
}

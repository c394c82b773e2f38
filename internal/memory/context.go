package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mindwell/mindwell/internal/insight"
)

// maxContextInsights bounds how many derived insights the chat context carries.
const maxContextInsights = 3

// BuildContext renders the aggregate into the conversational-context string
// handed to the chat assistant: preference profile, recent themes, mood
// trend, active concerns and the freshest insights.
func (s *Service) BuildContext(ctx context.Context, userID string) (string, error) {
	agg, err := s.Load(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	profile := agg.Profile
	fmt.Fprintf(&b, "Communication style: %s.\n", profile.CommunicationStyle)
	if len(profile.Goals) > 0 {
		fmt.Fprintf(&b, "Goals: %s.\n", strings.Join(profile.Goals, ", "))
	}
	if len(profile.AvoidedTopics) > 0 {
		fmt.Fprintf(&b, "Avoid discussing: %s.\n", strings.Join(profile.AvoidedTopics, ", "))
	}
	if len(profile.PreferredTechniques) > 0 {
		fmt.Fprintf(&b, "Preferred techniques: %s.\n", strings.Join(profile.PreferredTechniques, ", "))
	}

	if themes := rankThemes(lastN(agg.Journal, 5)); len(themes) > 0 {
		fmt.Fprintf(&b, "Recent journal themes: %s.\n", strings.Join(themes, ", "))
	}
	b.WriteString(insight.MoodTrend(agg.Moods, time.Now()).Sentence())
	b.WriteByte('\n')

	concerns := map[string]bool{}
	for _, entry := range lastN(agg.Journal, 5) {
		for _, c := range entry.Concerns {
			concerns[c] = true
		}
	}
	if len(concerns) > 0 {
		var list []string
		for c := range concerns {
			list = append(list, c)
		}
		sort.Strings(list)
		fmt.Fprintf(&b, "Active concerns: %s.\n", strings.Join(list, ", "))
	}

	insights := agg.Insights
	if len(insights) > maxContextInsights {
		insights = insights[len(insights)-maxContextInsights:]
	}
	for _, ins := range insights {
		fmt.Fprintf(&b, "Insight (%s): %s\n", ins.Kind, ins.Content)
	}

	return b.String(), nil
}

func lastN[T any](list []T, n int) []T {
	if len(list) > n {
		return list[len(list)-n:]
	}
	return list
}

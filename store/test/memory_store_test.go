package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/store"
)

func TestMigrateStampsSchemaVersion(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	name := store.SystemSettingSchemaVersion
	setting, err := ts.GetSystemSetting(ctx, &store.FindSystemSetting{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, setting)
	require.Equal(t, "1.0.0", setting.Value)
}

func TestJournalEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	entry := &store.JournalEntry{
		UID:            "j1",
		UserID:         "u1",
		Date:           time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Mood:           2,
		Content:        "worried about the deadline at work",
		Tags:           []string{"morning"},
		Themes:         []string{"work", "anxiety"},
		EmotionalState: "struggling",
		Concerns:       []string{"burnout"},
		Achievements:   nil,
		Insights:       []string{"work stress is recurring"},
	}
	created, err := ts.CreateJournalEntry(ctx, entry)
	require.NoError(t, err)
	require.Greater(t, created.ID, int64(0))

	userID := "u1"
	listed, err := ts.ListJournalEntries(ctx, &store.FindJournalEntry{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	require.Equal(t, "j1", got.UID)
	require.Equal(t, int32(2), got.Mood)
	require.Equal(t, []string{"work", "anxiety"}, got.Themes)
	require.Equal(t, []string{"burnout"}, got.Concerns)
	require.Empty(t, got.Achievements)
	require.Equal(t, "struggling", got.EmotionalState)
	require.Equal(t, entry.Date.Unix(), got.Date.Unix())

	uid := "j1"
	require.NoError(t, ts.DeleteJournalEntry(ctx, &store.DeleteJournalEntry{UID: &uid, UserID: &userID}))
	listed, err = ts.ListJournalEntries(ctx, &store.FindJournalEntry{UserID: &userID})
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestUserMemoryUpsert(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	first, err := ts.UpsertUserMemory(ctx, &store.UpsertUserMemory{
		UserID:             "u1",
		CommunicationStyle: store.StyleSupportive,
		Goals:              []string{"sleep better"},
		LastUpdatedTs:      100,
	})
	require.NoError(t, err)
	require.Equal(t, store.StyleSupportive, first.CommunicationStyle)

	// Upsert replaces the row in place.
	second, err := ts.UpsertUserMemory(ctx, &store.UpsertUserMemory{
		UserID:             "u1",
		CommunicationStyle: store.StyleDirect,
		Goals:              []string{"sleep better", "less doomscrolling"},
		AvoidedTopics:      []string{"diet"},
		LastUpdatedTs:      200,
	})
	require.NoError(t, err)

	userID := "u1"
	got, err := ts.GetUserMemory(ctx, &store.FindUserMemory{UserID: &userID})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, store.StyleDirect, got.CommunicationStyle)
	require.Equal(t, second.Goals, got.Goals)
	require.Equal(t, []string{"diet"}, got.AvoidedTopics)
	require.Equal(t, int64(200), got.LastUpdatedTs)
}

func TestGetUserMemoryMissing(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	userID := "nobody"
	got, err := ts.GetUserMemory(ctx, &store.FindUserMemory{UserID: &userID})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestInsightKeepLatest(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	for i := 0; i < 25; i++ {
		_, err := ts.CreateInsight(ctx, &store.Insight{
			UserID:     "u1",
			Kind:       store.InsightPattern,
			Content:    "observation",
			Confidence: 0.8,
			Source:     store.SourceMood,
			CreatedTs:  int64(1000 + i),
		})
		require.NoError(t, err)
	}

	userID := "u1"
	keep := 20
	require.NoError(t, ts.DeleteInsights(ctx, &store.DeleteInsight{UserID: &userID, KeepLatest: &keep}))

	insights, err := ts.ListInsights(ctx, &store.FindInsight{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, insights, 20)
	// Oldest five were evicted.
	for _, ins := range insights {
		require.GreaterOrEqual(t, ins.CreatedTs, int64(1005))
	}
}

func TestMoodSampleRetentionDelete(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	now := time.Now()
	old := now.AddDate(0, 0, -40)
	for _, date := range []time.Time{old, now.AddDate(0, 0, -2), now} {
		_, err := ts.CreateMoodSample(ctx, &store.MoodSample{
			UserID: "u1",
			Date:   date,
			Mood:   4,
		})
		require.NoError(t, err)
	}

	userID := "u1"
	cutoff := now.AddDate(0, 0, -30).Unix()
	require.NoError(t, ts.DeleteMoodSamples(ctx, &store.DeleteMoodSample{UserID: &userID, BeforeTs: &cutoff}))

	samples, err := ts.ListMoodSamples(ctx, &store.FindMoodSample{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, samples, 2)
	for _, s := range samples {
		require.True(t, s.Date.Unix() >= cutoff)
	}
}

func TestThoughtRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	record := &store.ThoughtRecord{
		UID:              "tr1",
		UserID:           "u1",
		Date:             time.Now(),
		Situation:        "presentation tomorrow",
		AutomaticThought: "I will completely mess this up",
		Emotions:         []store.Emotion{{Name: "anxiety", Intensity: 80}},
		EvidenceFor:      []string{"I stumbled last time"},
		EvidenceAgainst:  []string{"I have presented fine before"},
		BalancedThought:  "I may be nervous, but I am prepared",
		Distortions:      []string{"all-or-nothing", "fortune-telling"},
	}
	_, err := ts.CreateThoughtRecord(ctx, record)
	require.NoError(t, err)

	userID := "u1"
	listed, err := ts.ListThoughtRecords(ctx, &store.FindThoughtRecord{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, record.Distortions, listed[0].Distortions)
	require.Equal(t, record.Emotions, listed[0].Emotions)
	require.Equal(t, "I may be nervous, but I am prepared", listed[0].BalancedThought)
}

func TestAccessTokenLookupByPrefix(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	_, err := ts.CreateAccessToken(ctx, &store.AccessToken{
		UserID:      "u1",
		Description: "cli",
		TokenPrefix: "abcdef123456",
		TokenHash:   "$2a$10$fakehashfakehashfakehash",
	})
	require.NoError(t, err)

	prefix := "abcdef123456"
	tokens, err := ts.ListAccessTokens(ctx, &store.FindAccessToken{TokenPrefix: &prefix})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, "u1", tokens[0].UserID)

	missing := "zzzzzzzzzzzz"
	tokens, err = ts.ListAccessTokens(ctx, &store.FindAccessToken{TokenPrefix: &missing})
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestAccessTokenRevocationDropsCachedLookup(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	userID := "u1"
	_, err := ts.CreateAccessToken(ctx, &store.AccessToken{
		UserID:      userID,
		Description: "cli",
		TokenPrefix: "abcdef123456",
		TokenHash:   "$2a$10$fakehashfakehashfakehash",
	})
	require.NoError(t, err)

	// Prime the prefix cache.
	prefix := "abcdef123456"
	tokens, err := ts.ListAccessTokens(ctx, &store.FindAccessToken{TokenPrefix: &prefix})
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	require.NoError(t, ts.DeleteAccessToken(ctx, &store.DeleteAccessToken{UserID: &userID}))

	// The cached rows must not survive revocation.
	tokens, err = ts.ListAccessTokens(ctx, &store.FindAccessToken{TokenPrefix: &prefix})
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestTherapySessionTranscriptRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	session := &store.TherapySession{
		UID:    "th1",
		UserID: "u1",
		Date:   time.Now(),
		Topics: []string{"work stress"},
		Mood:   3,
		Transcript: []store.TherapyMessage{
			{Role: "user", Content: "I had a panic attack at work", Ts: 100},
			{Role: "assistant", Content: "That sounds frightening. What happened next?", Ts: 110},
		},
	}
	_, err := ts.CreateTherapySession(ctx, session)
	require.NoError(t, err)

	userID := "u1"
	listed, err := ts.ListTherapySessions(ctx, &store.FindTherapySession{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, session.Transcript, listed[0].Transcript)
}

// Package memory manages the per-user history aggregate: journal entries,
// meditation sessions, therapy sessions, mood samples and derived insights.
//
// The aggregate is single-writer by construction: one service instance is
// created per process and callers pass the user id explicitly, so there is no
// process-global current user. Every append is a synchronous
// validate-derive-append-regenerate-persist cycle; remote sync is best-effort
// and never blocks or fails the caller.
package memory

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mindwell/mindwell/internal/classify"
	"github.com/mindwell/mindwell/internal/insight"
	"github.com/mindwell/mindwell/internal/observability"
	"github.com/mindwell/mindwell/internal/util"
	"github.com/mindwell/mindwell/store"
)

// moodRetentionDays is the trailing window kept for mood samples.
const moodRetentionDays = 30

// RemoteSyncer mirrors accepted records to the upstream backend and reads
// back the remote journal for backfill. A nil syncer disables sync entirely.
type RemoteSyncer interface {
	PushJournalEntry(ctx context.Context, entry *store.JournalEntry) error
	PushMeditationSession(ctx context.Context, session *store.MeditationSession) error
	PushTherapySession(ctx context.Context, session *store.TherapySession) error
	PushMoodSample(ctx context.Context, sample *store.MoodSample) error
	FetchJournalEntries(ctx context.Context, userID string) ([]*store.JournalEntry, error)
}

// Aggregate is the loaded view of one user's memory.
type Aggregate struct {
	Profile     *store.UserMemory
	Journal     []*store.JournalEntry
	Meditations []*store.MeditationSession
	Therapy     []*store.TherapySession
	Moods       []*store.MoodSample
	Insights    []*store.Insight
}

// Service coordinates the memory aggregate over the store.
type Service struct {
	store  *store.Store
	remote RemoteSyncer
	logger *slog.Logger
}

// NewService creates a memory service. remote may be nil.
func NewService(st *store.Store, remote RemoteSyncer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, remote: remote, logger: logger}
}

// Load fetches the user's aggregate, creating an empty profile on first
// access. Idempotent.
func (s *Service) Load(ctx context.Context, userID string) (*Aggregate, error) {
	if userID == "" {
		return nil, errInvalidUserID()
	}

	profile, err := s.store.GetUserMemory(ctx, &store.FindUserMemory{UserID: &userID})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile, err = s.store.UpsertUserMemory(ctx, &store.UpsertUserMemory{
			UserID:             userID,
			CommunicationStyle: store.StyleSupportive,
			LastUpdatedTs:      time.Now().Unix(),
		})
		if err != nil {
			return nil, err
		}
	}

	agg := &Aggregate{Profile: profile}
	moodCutoff := time.Now().AddDate(0, 0, -moodRetentionDays).Unix()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		agg.Journal, err = s.store.ListJournalEntries(gctx, &store.FindJournalEntry{UserID: &userID})
		return err
	})
	g.Go(func() error {
		var err error
		agg.Meditations, err = s.store.ListMeditationSessions(gctx, &store.FindMeditationSession{UserID: &userID})
		return err
	})
	g.Go(func() error {
		var err error
		agg.Therapy, err = s.store.ListTherapySessions(gctx, &store.FindTherapySession{UserID: &userID})
		return err
	})
	g.Go(func() error {
		var err error
		agg.Moods, err = s.store.ListMoodSamples(gctx, &store.FindMoodSample{UserID: &userID, SinceTs: &moodCutoff})
		return err
	})
	g.Go(func() error {
		var err error
		agg.Insights, err = s.store.ListInsights(gctx, &store.FindInsight{UserID: &userID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return agg, nil
}

// AppendJournalEntry validates the entry, derives its features, appends it
// together with a mood sample for the entry's mood, regenerates insights and
// persists. The returned entry carries the derived fields.
func (s *Service) AppendJournalEntry(ctx context.Context, entry *store.JournalEntry) (*store.JournalEntry, error) {
	if err := validateJournalEntry(entry); err != nil {
		return nil, err
	}

	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	plain := classify.PlainText(entry.Content)
	entry.Themes = classify.Themes.Classify(plain)
	entry.EmotionalState = classify.EmotionalState(entry.Mood)
	entry.Concerns = classify.Concerns.Classify(plain)
	entry.Achievements = classify.Achievements.Classify(plain)
	entry.Insights = deriveEntryInsights(entry)
	if entry.UID == "" {
		entry.UID = util.GenUID()
	}

	rc := observability.NewRequestContext(s.logger, entry.UserID)
	created, err := s.store.CreateJournalEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	// The entry's mood also feeds the mood-trend window.
	if _, err := s.store.CreateMoodSample(ctx, &store.MoodSample{
		UserID:   entry.UserID,
		Date:     entry.Date,
		Mood:     entry.Mood,
		Triggers: entry.Tags,
	}); err != nil {
		return nil, err
	}
	if err := s.afterAppend(ctx, entry.UserID); err != nil {
		return nil, err
	}
	s.syncBestEffort(ctx, entry.UserID, "journal", func(sctx context.Context) error {
		return s.remote.PushJournalEntry(sctx, created)
	})
	rc.Info("journal entry appended",
		slog.String("uid", created.UID),
		slog.Int(observability.LogFieldThemeCount, len(created.Themes)),
		slog.Int64(observability.LogFieldDuration, rc.Elapsed()))
	return created, nil
}

// AppendMeditationSession derives the effectiveness score and appends.
func (s *Service) AppendMeditationSession(ctx context.Context, session *store.MeditationSession) (*store.MeditationSession, error) {
	if err := validateMeditationSession(session); err != nil {
		return nil, err
	}

	if session.Date.IsZero() {
		session.Date = time.Now()
	}
	session.Effectiveness = effectiveness(session)
	if session.UID == "" {
		session.UID = util.GenUID()
	}

	created, err := s.store.CreateMeditationSession(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := s.afterAppend(ctx, session.UserID); err != nil {
		return nil, err
	}
	s.syncBestEffort(ctx, session.UserID, "meditation", func(sctx context.Context) error {
		return s.remote.PushMeditationSession(sctx, created)
	})
	return created, nil
}

// AppendTherapySession derives concerns from the transcript when none were
// provided, then appends.
func (s *Service) AppendTherapySession(ctx context.Context, session *store.TherapySession) (*store.TherapySession, error) {
	if err := validateTherapySession(session); err != nil {
		return nil, err
	}

	if session.Date.IsZero() {
		session.Date = time.Now()
	}
	if len(session.Concerns) == 0 && len(session.Transcript) > 0 {
		var text string
		for _, msg := range session.Transcript {
			if msg.Role == "user" {
				text += msg.Content + " "
			}
		}
		session.Concerns = classify.Concerns.Classify(text)
	}
	if session.UID == "" {
		session.UID = util.GenUID()
	}

	created, err := s.store.CreateTherapySession(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := s.afterAppend(ctx, session.UserID); err != nil {
		return nil, err
	}
	s.syncBestEffort(ctx, session.UserID, "therapy", func(sctx context.Context) error {
		return s.remote.PushTherapySession(sctx, created)
	})
	return created, nil
}

// AppendMoodSample appends a reading and trims the retention window.
func (s *Service) AppendMoodSample(ctx context.Context, sample *store.MoodSample) (*store.MoodSample, error) {
	if err := validateMoodSample(sample); err != nil {
		return nil, err
	}

	if sample.Date.IsZero() {
		sample.Date = time.Now()
	}
	created, err := s.store.CreateMoodSample(ctx, sample)
	if err != nil {
		return nil, err
	}
	if err := s.afterAppend(ctx, sample.UserID); err != nil {
		return nil, err
	}
	s.syncBestEffort(ctx, sample.UserID, "mood", func(sctx context.Context) error {
		return s.remote.PushMoodSample(sctx, created)
	})
	return created, nil
}

// afterAppend runs the shared post-mutation pass: trim the mood retention
// window, regenerate insights, enforce the insight cap and touch the profile
// timestamp.
func (s *Service) afterAppend(ctx context.Context, userID string) error {
	cutoff := time.Now().AddDate(0, 0, -moodRetentionDays).Unix()
	if err := s.store.DeleteMoodSamples(ctx, &store.DeleteMoodSample{UserID: &userID, BeforeTs: &cutoff}); err != nil {
		return err
	}

	agg, err := s.Load(ctx, userID)
	if err != nil {
		return err
	}
	for _, ins := range insight.Regenerate(userID, agg.Moods, agg.Journal, agg.Meditations) {
		if _, err := s.store.CreateInsight(ctx, ins); err != nil {
			return err
		}
	}
	keep := insight.MaxInsights
	if err := s.store.DeleteInsights(ctx, &store.DeleteInsight{UserID: &userID, KeepLatest: &keep}); err != nil {
		return err
	}

	profile := agg.Profile
	_, err = s.store.UpsertUserMemory(ctx, &store.UpsertUserMemory{
		UserID:              profile.UserID,
		CommunicationStyle:  profile.CommunicationStyle,
		AvoidedTopics:       profile.AvoidedTopics,
		PreferredTechniques: profile.PreferredTechniques,
		Goals:               profile.Goals,
		Challenges:          profile.Challenges,
		LastUpdatedTs:       time.Now().Unix(),
	})
	return err
}

// syncBestEffort pushes to the remote backend if configured. Failures are
// logged and swallowed; the local store is the source of truth.
func (s *Service) syncBestEffort(ctx context.Context, userID, collection string, push func(context.Context) error) {
	if s.remote == nil {
		return
	}
	if err := push(ctx); err != nil {
		s.logger.Warn("remote sync failed, keeping local copy",
			slog.String(observability.LogFieldUserID, userID),
			slog.String(observability.LogFieldCollection, collection),
			slog.String("error", err.Error()))
	}
}

// BackfillJournal pulls the remote journal collection and inserts the entries
// the local store does not have yet, matched by UID. Local records always win;
// nothing is updated or deleted. Returns the number of entries inserted.
func (s *Service) BackfillJournal(ctx context.Context, userID string) (int, error) {
	if s.remote == nil {
		return 0, nil
	}
	remote, err := s.remote.FetchJournalEntries(ctx, userID)
	if err != nil {
		return 0, err
	}
	local, err := s.store.ListJournalEntries(ctx, &store.FindJournalEntry{UserID: &userID})
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(local))
	for _, entry := range local {
		seen[entry.UID] = true
	}

	inserted := 0
	for _, entry := range remote {
		if entry.UID == "" || seen[entry.UID] {
			continue
		}
		if _, err := s.store.CreateJournalEntry(ctx, &store.JournalEntry{
			UID:            entry.UID,
			UserID:         userID,
			Date:           entry.Date,
			Mood:           entry.Mood,
			Content:        entry.Content,
			Tags:           entry.Tags,
			Themes:         entry.Themes,
			EmotionalState: entry.EmotionalState,
			Concerns:       entry.Concerns,
			Achievements:   entry.Achievements,
			Insights:       entry.Insights,
		}); err != nil {
			return inserted, err
		}
		seen[entry.UID] = true
		inserted++
	}
	if inserted > 0 {
		if err := s.afterAppend(ctx, userID); err != nil {
			return inserted, err
		}
	}
	return inserted, nil
}

// MoodTrend classifies the user's recent mood movement.
func (s *Service) MoodTrend(ctx context.Context, userID string) (insight.Trend, error) {
	moods, err := s.store.ListMoodSamples(ctx, &store.FindMoodSample{UserID: &userID})
	if err != nil {
		return insight.TrendInsufficientData, err
	}
	return insight.MoodTrend(moods, time.Now()), nil
}

// RecentThemes returns the distinct themes across the user's most recent
// journal entries, most frequent first.
func (s *Service) RecentThemes(ctx context.Context, userID string, window int) ([]string, error) {
	if window <= 0 {
		window = 5
	}
	entries, err := s.store.ListJournalEntries(ctx, &store.FindJournalEntry{UserID: &userID})
	if err != nil {
		return nil, err
	}
	if len(entries) > window {
		entries = entries[len(entries)-window:]
	}
	return rankThemes(entries), nil
}

func rankThemes(entries []*store.JournalEntry) []string {
	counts := map[string]int{}
	var order []string
	for _, entry := range entries {
		for _, theme := range entry.Themes {
			if counts[theme] == 0 {
				order = append(order, theme)
			}
			counts[theme]++
		}
	}
	// Stable sort: frequency descending, first-seen order on ties.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && counts[order[j]] > counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

func deriveEntryInsights(entry *store.JournalEntry) []string {
	var insights []string
	if len(entry.Achievements) > 0 {
		insights = append(insights, "This entry records a positive step.")
	}
	if len(entry.Concerns) > 0 {
		insights = append(insights, "This entry mentions something worth keeping an eye on.")
	}
	if entry.Mood <= 2 && len(entry.Themes) > 0 {
		insights = append(insights, "Low mood appears connected to: "+entry.Themes[0]+".")
	}
	return insights
}

// effectiveness derives the 0-1 score from completion and the mood shift.
func effectiveness(session *store.MeditationSession) float64 {
	moodShift := float64(session.MoodAfter-session.MoodBefore+5) / 10 // -5..+5 -> 0..1
	return util.ClampFloat(0.4*session.Completion+0.6*moodShift, 0, 1)
}

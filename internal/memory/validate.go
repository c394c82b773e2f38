package memory

import (
	mwerrors "github.com/mindwell/mindwell/internal/errors"
	"github.com/mindwell/mindwell/store"
)

// Validation is the boundary: a record that fails here is rejected before any
// mutation is applied, with a typed error the API layer maps to HTTP 400.

const (
	moodMin = 1
	moodMax = 6
)

func errInvalidUserID() error {
	return mwerrors.NewInvalidRecord("user_id", "user id is required")
}

func validMood(mood int32) bool {
	return mood >= moodMin && mood <= moodMax
}

func validateJournalEntry(entry *store.JournalEntry) error {
	if entry == nil {
		return mwerrors.NewInvalidRecord("entry", "entry is required")
	}
	if entry.UserID == "" {
		return errInvalidUserID()
	}
	if !validMood(entry.Mood) {
		return mwerrors.NewInvalidRecord("mood", "mood must be between %d and %d, got %d", moodMin, moodMax, entry.Mood)
	}
	if entry.Content == "" {
		return mwerrors.NewInvalidRecord("content", "content is required")
	}
	return nil
}

func validateMeditationSession(session *store.MeditationSession) error {
	if session == nil {
		return mwerrors.NewInvalidRecord("session", "session is required")
	}
	if session.UserID == "" {
		return errInvalidUserID()
	}
	if session.Technique == "" {
		return mwerrors.NewInvalidRecord("technique", "technique is required")
	}
	if session.DurationMinutes <= 0 {
		return mwerrors.NewInvalidRecord("duration_minutes", "duration must be positive, got %d", session.DurationMinutes)
	}
	if session.Completion < 0 || session.Completion > 1 {
		return mwerrors.NewInvalidRecord("completion", "completion must be between 0 and 1, got %g", session.Completion)
	}
	if !validMood(session.MoodBefore) {
		return mwerrors.NewInvalidRecord("mood_before", "mood must be between %d and %d, got %d", moodMin, moodMax, session.MoodBefore)
	}
	if !validMood(session.MoodAfter) {
		return mwerrors.NewInvalidRecord("mood_after", "mood must be between %d and %d, got %d", moodMin, moodMax, session.MoodAfter)
	}
	return nil
}

func validateTherapySession(session *store.TherapySession) error {
	if session == nil {
		return mwerrors.NewInvalidRecord("session", "session is required")
	}
	if session.UserID == "" {
		return errInvalidUserID()
	}
	if len(session.Topics) == 0 && len(session.Transcript) == 0 {
		return mwerrors.NewInvalidRecord("topics", "a therapy session needs topics or a transcript")
	}
	if session.Mood != 0 && !validMood(session.Mood) {
		return mwerrors.NewInvalidRecord("mood", "mood must be between %d and %d, got %d", moodMin, moodMax, session.Mood)
	}
	for i, msg := range session.Transcript {
		if msg.Role != "user" && msg.Role != "assistant" {
			return mwerrors.NewInvalidRecord("transcript", "message %d has unknown role %q", i, msg.Role)
		}
	}
	return nil
}

func validateMoodSample(sample *store.MoodSample) error {
	if sample == nil {
		return mwerrors.NewInvalidRecord("sample", "sample is required")
	}
	if sample.UserID == "" {
		return errInvalidUserID()
	}
	if !validMood(sample.Mood) {
		return mwerrors.NewInvalidRecord("mood", "mood must be between %d and %d, got %d", moodMin, moodMax, sample.Mood)
	}
	return nil
}

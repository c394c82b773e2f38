package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// UserMemory profile related methods.
	UpsertUserMemory(ctx context.Context, upsert *UpsertUserMemory) (*UserMemory, error)
	GetUserMemory(ctx context.Context, find *FindUserMemory) (*UserMemory, error)
	DeleteUserMemory(ctx context.Context, delete *DeleteUserMemory) error

	// JournalEntry related methods.
	CreateJournalEntry(ctx context.Context, create *JournalEntry) (*JournalEntry, error)
	ListJournalEntries(ctx context.Context, find *FindJournalEntry) ([]*JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, delete *DeleteJournalEntry) error

	// MeditationSession related methods.
	CreateMeditationSession(ctx context.Context, create *MeditationSession) (*MeditationSession, error)
	ListMeditationSessions(ctx context.Context, find *FindMeditationSession) ([]*MeditationSession, error)
	DeleteMeditationSession(ctx context.Context, delete *DeleteMeditationSession) error

	// TherapySession related methods.
	CreateTherapySession(ctx context.Context, create *TherapySession) (*TherapySession, error)
	ListTherapySessions(ctx context.Context, find *FindTherapySession) ([]*TherapySession, error)
	DeleteTherapySession(ctx context.Context, delete *DeleteTherapySession) error

	// MoodSample related methods.
	CreateMoodSample(ctx context.Context, create *MoodSample) (*MoodSample, error)
	ListMoodSamples(ctx context.Context, find *FindMoodSample) ([]*MoodSample, error)
	DeleteMoodSamples(ctx context.Context, delete *DeleteMoodSample) error

	// Insight related methods.
	CreateInsight(ctx context.Context, create *Insight) (*Insight, error)
	ListInsights(ctx context.Context, find *FindInsight) ([]*Insight, error)
	DeleteInsights(ctx context.Context, delete *DeleteInsight) error

	// ThoughtRecord related methods.
	CreateThoughtRecord(ctx context.Context, create *ThoughtRecord) (*ThoughtRecord, error)
	ListThoughtRecords(ctx context.Context, find *FindThoughtRecord) ([]*ThoughtRecord, error)
	DeleteThoughtRecord(ctx context.Context, delete *DeleteThoughtRecord) error

	// CBTMoodEntry related methods.
	CreateCBTMoodEntry(ctx context.Context, create *CBTMoodEntry) (*CBTMoodEntry, error)
	ListCBTMoodEntries(ctx context.Context, find *FindCBTMoodEntry) ([]*CBTMoodEntry, error)
	DeleteCBTMoodEntry(ctx context.Context, delete *DeleteCBTMoodEntry) error

	// AccessToken related methods.
	CreateAccessToken(ctx context.Context, create *AccessToken) (*AccessToken, error)
	ListAccessTokens(ctx context.Context, find *FindAccessToken) ([]*AccessToken, error)
	DeleteAccessToken(ctx context.Context, delete *DeleteAccessToken) error

	// SystemSetting related methods.
	UpsertSystemSetting(ctx context.Context, upsert *SystemSetting) (*SystemSetting, error)
	GetSystemSetting(ctx context.Context, find *FindSystemSetting) (*SystemSetting, error)
}

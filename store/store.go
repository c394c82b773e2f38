package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/store/cache"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// Caches
	userMemoryCache  *cache.Cache // cache for user memory profiles
	accessTokenCache *cache.Cache // cache for access token rows
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	cacheConfig := cache.Config{
		DefaultTTL:      10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
		MaxItems:        1000,
	}

	return &Store{
		driver:           driver,
		profile:          profile,
		userMemoryCache:  cache.New(cacheConfig),
		accessTokenCache: cache.New(cacheConfig),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	s.userMemoryCache.Close()
	s.accessTokenCache.Close()
	return s.driver.Close()
}

func userMemoryCacheKey(userID string) string {
	return fmt.Sprintf("user_memory:%s", userID)
}

func (s *Store) UpsertUserMemory(ctx context.Context, upsert *UpsertUserMemory) (*UserMemory, error) {
	memory, err := s.driver.UpsertUserMemory(ctx, upsert)
	if err != nil {
		return nil, err
	}
	s.userMemoryCache.Set(userMemoryCacheKey(memory.UserID), memory)
	return memory, nil
}

func (s *Store) GetUserMemory(ctx context.Context, find *FindUserMemory) (*UserMemory, error) {
	if find.UserID != nil {
		if v, ok := s.userMemoryCache.Get(userMemoryCacheKey(*find.UserID)); ok {
			return v.(*UserMemory), nil
		}
	}
	memory, err := s.driver.GetUserMemory(ctx, find)
	if err != nil {
		return nil, err
	}
	if memory != nil {
		s.userMemoryCache.Set(userMemoryCacheKey(memory.UserID), memory)
	}
	return memory, nil
}

func (s *Store) DeleteUserMemory(ctx context.Context, delete *DeleteUserMemory) error {
	if err := s.driver.DeleteUserMemory(ctx, delete); err != nil {
		return err
	}
	if delete.UserID != nil {
		s.userMemoryCache.Delete(userMemoryCacheKey(*delete.UserID))
	}
	return nil
}

func (s *Store) CreateJournalEntry(ctx context.Context, create *JournalEntry) (*JournalEntry, error) {
	return s.driver.CreateJournalEntry(ctx, create)
}

func (s *Store) ListJournalEntries(ctx context.Context, find *FindJournalEntry) ([]*JournalEntry, error) {
	return s.driver.ListJournalEntries(ctx, find)
}

func (s *Store) DeleteJournalEntry(ctx context.Context, delete *DeleteJournalEntry) error {
	return s.driver.DeleteJournalEntry(ctx, delete)
}

func (s *Store) CreateMeditationSession(ctx context.Context, create *MeditationSession) (*MeditationSession, error) {
	return s.driver.CreateMeditationSession(ctx, create)
}

func (s *Store) ListMeditationSessions(ctx context.Context, find *FindMeditationSession) ([]*MeditationSession, error) {
	return s.driver.ListMeditationSessions(ctx, find)
}

func (s *Store) DeleteMeditationSession(ctx context.Context, delete *DeleteMeditationSession) error {
	return s.driver.DeleteMeditationSession(ctx, delete)
}

func (s *Store) CreateTherapySession(ctx context.Context, create *TherapySession) (*TherapySession, error) {
	return s.driver.CreateTherapySession(ctx, create)
}

func (s *Store) ListTherapySessions(ctx context.Context, find *FindTherapySession) ([]*TherapySession, error) {
	return s.driver.ListTherapySessions(ctx, find)
}

func (s *Store) DeleteTherapySession(ctx context.Context, delete *DeleteTherapySession) error {
	return s.driver.DeleteTherapySession(ctx, delete)
}

func (s *Store) CreateMoodSample(ctx context.Context, create *MoodSample) (*MoodSample, error) {
	return s.driver.CreateMoodSample(ctx, create)
}

func (s *Store) ListMoodSamples(ctx context.Context, find *FindMoodSample) ([]*MoodSample, error) {
	return s.driver.ListMoodSamples(ctx, find)
}

func (s *Store) DeleteMoodSamples(ctx context.Context, delete *DeleteMoodSample) error {
	return s.driver.DeleteMoodSamples(ctx, delete)
}

func (s *Store) CreateInsight(ctx context.Context, create *Insight) (*Insight, error) {
	return s.driver.CreateInsight(ctx, create)
}

func (s *Store) ListInsights(ctx context.Context, find *FindInsight) ([]*Insight, error) {
	return s.driver.ListInsights(ctx, find)
}

func (s *Store) DeleteInsights(ctx context.Context, delete *DeleteInsight) error {
	return s.driver.DeleteInsights(ctx, delete)
}

func (s *Store) CreateThoughtRecord(ctx context.Context, create *ThoughtRecord) (*ThoughtRecord, error) {
	return s.driver.CreateThoughtRecord(ctx, create)
}

func (s *Store) ListThoughtRecords(ctx context.Context, find *FindThoughtRecord) ([]*ThoughtRecord, error) {
	return s.driver.ListThoughtRecords(ctx, find)
}

func (s *Store) DeleteThoughtRecord(ctx context.Context, delete *DeleteThoughtRecord) error {
	return s.driver.DeleteThoughtRecord(ctx, delete)
}

func (s *Store) CreateCBTMoodEntry(ctx context.Context, create *CBTMoodEntry) (*CBTMoodEntry, error) {
	return s.driver.CreateCBTMoodEntry(ctx, create)
}

func (s *Store) ListCBTMoodEntries(ctx context.Context, find *FindCBTMoodEntry) ([]*CBTMoodEntry, error) {
	return s.driver.ListCBTMoodEntries(ctx, find)
}

func (s *Store) DeleteCBTMoodEntry(ctx context.Context, delete *DeleteCBTMoodEntry) error {
	return s.driver.DeleteCBTMoodEntry(ctx, delete)
}

func (s *Store) CreateAccessToken(ctx context.Context, create *AccessToken) (*AccessToken, error) {
	return s.driver.CreateAccessToken(ctx, create)
}

func (s *Store) ListAccessTokens(ctx context.Context, find *FindAccessToken) ([]*AccessToken, error) {
	if find.TokenPrefix != nil && find.ID == nil && find.UserID == nil {
		if v, ok := s.accessTokenCache.Get(*find.TokenPrefix); ok {
			return v.([]*AccessToken), nil
		}
	}
	tokens, err := s.driver.ListAccessTokens(ctx, find)
	if err != nil {
		return nil, err
	}
	if find.TokenPrefix != nil && find.ID == nil && find.UserID == nil {
		s.accessTokenCache.Set(*find.TokenPrefix, tokens)
	}
	return tokens, nil
}

func (s *Store) DeleteAccessToken(ctx context.Context, delete *DeleteAccessToken) error {
	// Look up the affected rows first so the prefix cache entries can be
	// dropped; otherwise a revoked token would keep authenticating until the
	// cache TTL runs out.
	tokens, err := s.driver.ListAccessTokens(ctx, &FindAccessToken{ID: delete.ID, UserID: delete.UserID})
	if err != nil {
		return err
	}
	if err := s.driver.DeleteAccessToken(ctx, delete); err != nil {
		return err
	}
	for _, token := range tokens {
		s.accessTokenCache.Delete(token.TokenPrefix)
	}
	return nil
}

func (s *Store) UpsertSystemSetting(ctx context.Context, upsert *SystemSetting) (*SystemSetting, error) {
	return s.driver.UpsertSystemSetting(ctx, upsert)
}

func (s *Store) GetSystemSetting(ctx context.Context, find *FindSystemSetting) (*SystemSetting, error) {
	return s.driver.GetSystemSetting(ctx, find)
}

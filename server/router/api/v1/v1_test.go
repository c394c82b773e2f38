package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindwell/mindwell/internal/memory"
	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/store"
	storetest "github.com/mindwell/mindwell/store/test"
)

const testToken = "mwtesttoken0123456789abcdef"

func newTestingAPI(t *testing.T) *echo.Echo {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)

	hash, err := bcrypt.GenerateFromPassword([]byte(testToken), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = ts.CreateAccessToken(ctx, &store.AccessToken{
		UserID:      "u1",
		Description: "test",
		TokenPrefix: testToken[:TokenPrefixLen],
		TokenHash:   string(hash),
	})
	require.NoError(t, err)

	p := &profile.Profile{Mode: "dev"}
	svc := NewAPIV1Service(p, ts, memory.NewService(ts, nil, nil), nil)

	e := echo.New()
	svc.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	e := newTestingAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/memory", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/memory", "not-the-right-token-at-all", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Error)
}

func TestCreateJournalEntryEndpoint(t *testing.T) {
	e := newTestingAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/journal", testToken,
		`{"mood": 2, "content": "anxious about the deadline at work"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    *journalEntryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.UID)
	require.Equal(t, []string{"work", "anxiety"}, resp.Data.Themes)
	require.Equal(t, "struggling", resp.Data.EmotionalState)

	// The entry shows up in the list for the authenticated user.
	rec = doJSON(e, http.MethodGet, "/api/v1/journal", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []*journalEntryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
}

func TestCreateJournalEntryRejectsBadMood(t *testing.T) {
	e := newTestingAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/journal", testToken,
		`{"mood": 9, "content": "x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Contains(t, resp.Error, "mood")
}

func TestCreateMoodSampleAndTrendEndpoint(t *testing.T) {
	e := newTestingAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/mood", testToken, `{"mood": 4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/memory/trend", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data *moodTrendResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "insufficient data", resp.Data.Trend)
}

func TestGenerateCBTInsightsEndpoint(t *testing.T) {
	e := newTestingAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/cbt/insights/generate", testToken,
		`{"text": "I always mess this up, it's my fault"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data *generateCBTInsightsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"all-or-nothing", "personalization"}, resp.Data.Distortions)
	require.NotEmpty(t, resp.Data.Questions)
	require.NotEmpty(t, resp.Data.Suggestions)
}

func TestCreateThoughtRecordEndpoint(t *testing.T) {
	e := newTestingAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/cbt/thought-records", testToken,
		`{"situation": "team meeting", "automatic_thought": "they think I am incompetent", "balanced_thought": "I have no evidence of that"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data *thoughtRecordResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"mind-reading"}, resp.Data.Record.Distortions)
	require.NotEmpty(t, resp.Data.Questions)

	// Progress now reflects the record.
	rec = doJSON(e, http.MethodGet, "/api/v1/cbt/progress", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var progress struct {
		Data struct {
			TotalThoughtRecords int `json:"total_thought_records"`
			StreakDays          int `json:"streak_days"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	require.Equal(t, 1, progress.Data.TotalThoughtRecords)
	require.Equal(t, 1, progress.Data.StreakDays)
}

func TestRateLimitEndpoint(t *testing.T) {
	const otherToken = "mwsecondtoken123456789abcdef"

	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	for userID, token := range map[string]string{"u1": testToken, "u2": otherToken} {
		hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.MinCost)
		require.NoError(t, err)
		_, err = ts.CreateAccessToken(ctx, &store.AccessToken{
			UserID:      userID,
			TokenPrefix: token[:TokenPrefixLen],
			TokenHash:   string(hash),
		})
		require.NoError(t, err)
	}

	p := &profile.Profile{Mode: "dev", RateLimitRPS: 1, RateLimitBurst: 3}
	svc := NewAPIV1Service(p, ts, memory.NewService(ts, nil, nil), nil)
	e := echo.New()
	svc.RegisterRoutes(e)

	for i := 0; i < 3; i++ {
		rec := doJSON(e, http.MethodGet, "/api/v1/memory", testToken, "")
		require.Equal(t, http.StatusOK, rec.Code, "request %d should fit in the burst", i)
	}
	rec := doJSON(e, http.MethodGet, "/api/v1/memory", testToken, "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Error)

	// A different user's bucket is untouched.
	rec = doJSON(e, http.MethodGet, "/api/v1/memory", otherToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

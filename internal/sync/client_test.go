package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/store"
)

func TestPushJournalEntry(t *testing.T) {
	var gotAuth string
	var gotPath string
	var gotEntry store.JournalEntry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEntry))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token")
	err := c.PushJournalEntry(context.Background(), &store.JournalEntry{
		UID:     "j1",
		UserID:  "u1",
		Mood:    4,
		Content: "a good day",
	})
	require.NoError(t, err)
	require.Equal(t, "Bearer secret-token", gotAuth)
	require.Equal(t, "/journal", gotPath)
	require.Equal(t, "j1", gotEntry.UID)
}

func TestPushRejectedByBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "duplicate uid"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")
	err := c.PushMoodSample(context.Background(), &store.MoodSample{UserID: "u1", Mood: 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate uid")
}

func TestPushServerErrorNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")
	err := c.PushMoodSample(context.Background(), &store.MoodSample{UserID: "u1", Mood: 3})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestFetchJournalEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "u1", r.URL.Query().Get("user_id"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"UID": "j1", "UserID": "u1", "Mood": 4},
				{"UID": "j2", "UserID": "u1", "Mood": 2},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")
	entries, err := c.FetchJournalEntries(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "j1", entries[0].UID)
	require.Equal(t, int32(2), entries[1].Mood)
}

func TestFetchRetriesOnServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")
	entries, err := c.FetchJournalEntries(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, entries)
	require.Equal(t, 2, calls)
}

func TestGetHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "t")
	_, err := c.FetchJournalEntries(ctx, "u1")
	require.Error(t, err)
}

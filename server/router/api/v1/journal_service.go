package v1

import (
	"time"

	"github.com/labstack/echo/v4"

	mwerrors "github.com/mindwell/mindwell/internal/errors"
	"github.com/mindwell/mindwell/store"
)

type createJournalEntryRequest struct {
	Date    *time.Time `json:"date,omitempty"`
	Mood    int32      `json:"mood"`
	Content string     `json:"content"`
	Tags    []string   `json:"tags,omitempty"`
}

type journalEntryResponse struct {
	UID            string    `json:"uid"`
	Date           time.Time `json:"date"`
	Mood           int32     `json:"mood"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	Themes         []string  `json:"themes"`
	EmotionalState string    `json:"emotional_state"`
	Concerns       []string  `json:"concerns"`
	Achievements   []string  `json:"achievements"`
	Insights       []string  `json:"insights"`
}

func toJournalEntryResponse(entry *store.JournalEntry) *journalEntryResponse {
	return &journalEntryResponse{
		UID:            entry.UID,
		Date:           entry.Date,
		Mood:           entry.Mood,
		Content:        entry.Content,
		Tags:           entry.Tags,
		Themes:         entry.Themes,
		EmotionalState: entry.EmotionalState,
		Concerns:       entry.Concerns,
		Achievements:   entry.Achievements,
		Insights:       entry.Insights,
	}
}

func (s *APIV1Service) createJournalEntry(c echo.Context) error {
	var req createJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}

	entry := &store.JournalEntry{
		UserID:  userID(c),
		Mood:    req.Mood,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	appended, err := s.Memory.AppendJournalEntry(c.Request().Context(), entry)
	if err != nil {
		return fail(c, err)
	}
	return created(c, toJournalEntryResponse(appended))
}

func (s *APIV1Service) listJournalEntries(c echo.Context) error {
	uid := userID(c)
	entries, err := s.Store.ListJournalEntries(c.Request().Context(), &store.FindJournalEntry{UserID: &uid})
	if err != nil {
		return fail(c, err)
	}
	list := make([]*journalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		list = append(list, toJournalEntryResponse(entry))
	}
	return ok(c, list)
}

// replaceJournalEntry implements PUT as delete-and-reappend: entries are
// immutable in the aggregate, so an edit becomes a new derived record with a
// fresh UID, and the old one is removed.
func (s *APIV1Service) replaceJournalEntry(c echo.Context) error {
	var req createJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}

	ctx := c.Request().Context()
	uid := userID(c)
	entryUID := c.Param("uid")
	existing, err := s.Store.ListJournalEntries(ctx, &store.FindJournalEntry{UID: &entryUID, UserID: &uid})
	if err != nil {
		return fail(c, err)
	}
	if len(existing) == 0 {
		return fail(c, mwerrors.New(mwerrors.ErrCodeNotFound, "journal entry not found"))
	}

	entry := &store.JournalEntry{
		UserID:  uid,
		Date:    existing[0].Date,
		Mood:    req.Mood,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	replacement, err := s.Memory.AppendJournalEntry(ctx, entry)
	if err != nil {
		return fail(c, err)
	}
	if err := s.Store.DeleteJournalEntry(ctx, &store.DeleteJournalEntry{UID: &entryUID, UserID: &uid}); err != nil {
		return fail(c, err)
	}
	return ok(c, toJournalEntryResponse(replacement))
}

func (s *APIV1Service) deleteJournalEntry(c echo.Context) error {
	uid := userID(c)
	entryUID := c.Param("uid")
	if err := s.Store.DeleteJournalEntry(c.Request().Context(), &store.DeleteJournalEntry{UID: &entryUID, UserID: &uid}); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

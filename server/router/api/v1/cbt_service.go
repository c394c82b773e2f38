package v1

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindwell/mindwell/internal/cbt"
	mwerrors "github.com/mindwell/mindwell/internal/errors"
	"github.com/mindwell/mindwell/internal/util"
	"github.com/mindwell/mindwell/store"
)

func (s *APIV1Service) listThoughtRecords(c echo.Context) error {
	uid := userID(c)
	find := &store.FindThoughtRecord{UserID: &uid}
	if raw := c.QueryParam("since"); raw != "" {
		since, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, mwerrors.NewInvalidRecord("since", "must be a unix timestamp"))
		}
		find.SinceTs = &since
	}
	records, err := s.Store.ListThoughtRecords(c.Request().Context(), find)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, records)
}

type createThoughtRecordRequest struct {
	Date             *time.Time      `json:"date,omitempty"`
	Situation        string          `json:"situation"`
	AutomaticThought string          `json:"automatic_thought"`
	Emotions         []store.Emotion `json:"emotions,omitempty"`
	EvidenceFor      []string        `json:"evidence_for,omitempty"`
	EvidenceAgainst  []string        `json:"evidence_against,omitempty"`
	BalancedThought  string          `json:"balanced_thought,omitempty"`
}

type thoughtRecordResponse struct {
	Record *store.ThoughtRecord `json:"record"`
	// Questions and Suggestions guide the challenging step for the detected
	// distortions.
	Questions   []string `json:"questions"`
	Suggestions []string `json:"suggestions"`
}

func (s *APIV1Service) createThoughtRecord(c echo.Context) error {
	var req createThoughtRecordRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}
	if req.AutomaticThought == "" {
		return fail(c, mwerrors.NewInvalidRecord("automatic_thought", "must not be empty"))
	}

	record := &store.ThoughtRecord{
		UID:              util.GenUID(),
		UserID:           userID(c),
		Date:             time.Now(),
		Situation:        req.Situation,
		AutomaticThought: req.AutomaticThought,
		Emotions:         req.Emotions,
		EvidenceFor:      req.EvidenceFor,
		EvidenceAgainst:  req.EvidenceAgainst,
		BalancedThought:  req.BalancedThought,
		Distortions:      cbt.DetectDistortions(req.Situation + " " + req.AutomaticThought),
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	stored, err := s.Store.CreateThoughtRecord(c.Request().Context(), record)
	if err != nil {
		return fail(c, err)
	}
	return created(c, &thoughtRecordResponse{
		Record:      stored,
		Questions:   cbt.ChallengeQuestions(stored.Distortions),
		Suggestions: cbt.BalancedSuggestions(stored.Distortions),
	})
}

type createCBTMoodEntryRequest struct {
	Date     *time.Time `json:"date,omitempty"`
	Mood     int32      `json:"mood"`
	Insights []string   `json:"insights,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

func (s *APIV1Service) createCBTMoodEntry(c echo.Context) error {
	var req createCBTMoodEntryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}
	if req.Mood < 1 || req.Mood > 6 {
		return fail(c, mwerrors.NewInvalidRecord("mood", "must be between 1 and 6"))
	}
	entry := &store.CBTMoodEntry{
		UserID:   userID(c),
		Date:     time.Now(),
		Mood:     req.Mood,
		Insights: req.Insights,
		Notes:    req.Notes,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	stored, err := s.Store.CreateCBTMoodEntry(c.Request().Context(), entry)
	if err != nil {
		return fail(c, err)
	}
	return created(c, stored)
}

func (s *APIV1Service) getCBTProgress(c echo.Context) error {
	records, entries, err := s.loadCBTHistory(c)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, cbt.CalculateProgress(records, entries, time.Now()))
}

func (s *APIV1Service) getCBTInsights(c echo.Context) error {
	records, entries, err := s.loadCBTHistory(c)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, cbt.GenerateInsights(records, entries, s.Estimator, time.Now()))
}

type generateCBTInsightsRequest struct {
	Text string `json:"text"`
	// Type names the thought context (automatic-thought, situation...);
	// informational only, detection runs on the text either way.
	Type string `json:"type,omitempty"`
	Mood int32  `json:"mood,omitempty"`
}

type generateCBTInsightsResponse struct {
	Distortions []string `json:"distortions"`
	Questions   []string `json:"questions"`
	Suggestions []string `json:"suggestions"`
}

// generateCBTInsights runs distortion detection over ad-hoc text without
// persisting anything, for the in-conversation challenging flow.
func (s *APIV1Service) generateCBTInsights(c echo.Context) error {
	var req generateCBTInsightsRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}
	if req.Text == "" {
		return fail(c, mwerrors.NewInvalidRecord("text", "must not be empty"))
	}
	if req.Mood != 0 && (req.Mood < 1 || req.Mood > 6) {
		return fail(c, mwerrors.NewInvalidRecord("mood", "must be between 1 and 6"))
	}
	distortions := cbt.DetectDistortions(req.Text)
	return ok(c, &generateCBTInsightsResponse{
		Distortions: distortions,
		Questions:   cbt.ChallengeQuestions(distortions),
		Suggestions: cbt.BalancedSuggestions(distortions),
	})
}

type cbtAnalyticsResponse struct {
	Progress *cbt.Progress `json:"progress"`
	Insights *cbt.Insights `json:"insights"`
}

func (s *APIV1Service) getCBTAnalytics(c echo.Context) error {
	records, entries, err := s.loadCBTHistory(c)
	if err != nil {
		return fail(c, err)
	}
	if period := c.QueryParam("period"); period != "" {
		days, err := strconv.Atoi(period)
		if err != nil || days <= 0 {
			return fail(c, mwerrors.NewInvalidRecord("period", "must be a positive number of days"))
		}
		cutoff := time.Now().AddDate(0, 0, -days)
		records = filterRecordsSince(records, cutoff)
		entries = filterEntriesSince(entries, cutoff)
	}
	now := time.Now()
	return ok(c, &cbtAnalyticsResponse{
		Progress: cbt.CalculateProgress(records, entries, now),
		Insights: cbt.GenerateInsights(records, entries, s.Estimator, now),
	})
}

func (s *APIV1Service) loadCBTHistory(c echo.Context) ([]*store.ThoughtRecord, []*store.CBTMoodEntry, error) {
	ctx := c.Request().Context()
	uid := userID(c)
	records, err := s.Store.ListThoughtRecords(ctx, &store.FindThoughtRecord{UserID: &uid})
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.Store.ListCBTMoodEntries(ctx, &store.FindCBTMoodEntry{UserID: &uid})
	if err != nil {
		return nil, nil, err
	}
	return records, entries, nil
}

func filterRecordsSince(records []*store.ThoughtRecord, cutoff time.Time) []*store.ThoughtRecord {
	filtered := make([]*store.ThoughtRecord, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func filterEntriesSince(entries []*store.CBTMoodEntry, cutoff time.Time) []*store.CBTMoodEntry {
	filtered := make([]*store.CBTMoodEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

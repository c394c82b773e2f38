package v1

import (
	"time"

	"github.com/labstack/echo/v4"

	mwerrors "github.com/mindwell/mindwell/internal/errors"
	"github.com/mindwell/mindwell/store"
)

type memoryResponse struct {
	Profile     *store.UserMemory          `json:"profile"`
	Journal     []*journalEntryResponse    `json:"journal"`
	Meditations []*store.MeditationSession `json:"meditations"`
	Therapy     []*store.TherapySession    `json:"therapy"`
	Moods       []*store.MoodSample        `json:"moods"`
	Insights    []*store.Insight           `json:"insights"`
}

func (s *APIV1Service) getMemory(c echo.Context) error {
	agg, err := s.Memory.Load(c.Request().Context(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	journal := make([]*journalEntryResponse, 0, len(agg.Journal))
	for _, entry := range agg.Journal {
		journal = append(journal, toJournalEntryResponse(entry))
	}
	return ok(c, &memoryResponse{
		Profile:     agg.Profile,
		Journal:     journal,
		Meditations: agg.Meditations,
		Therapy:     agg.Therapy,
		Moods:       agg.Moods,
		Insights:    agg.Insights,
	})
}

type memoryContextResponse struct {
	Context string `json:"context"`
	// Narrative is an LLM-polished rendering of the freshest insights.
	// Present only when the AI summarizer is configured.
	Narrative string `json:"narrative,omitempty"`
}

func (s *APIV1Service) getMemoryContext(c echo.Context) error {
	ctx := c.Request().Context()
	uid := userID(c)
	contextText, err := s.Memory.BuildContext(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	resp := &memoryContextResponse{Context: contextText}

	if s.Summarizer != nil {
		agg, err := s.Memory.Load(ctx, uid)
		if err != nil {
			return fail(c, err)
		}
		narrative, err := s.Summarizer.Summarize(ctx, agg.Profile.CommunicationStyle, agg.Insights)
		if err != nil {
			// Context delivery must not depend on the LLM; degrade to the
			// rule-based text.
			s.logger.Warn("insight summarization failed", "user", uid, "error", err)
		} else {
			resp.Narrative = narrative
		}
	}
	return ok(c, resp)
}

type moodTrendResponse struct {
	Trend    string `json:"trend"`
	Sentence string `json:"sentence"`
}

func (s *APIV1Service) getMoodTrend(c echo.Context) error {
	trend, err := s.Memory.MoodTrend(c.Request().Context(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, &moodTrendResponse{Trend: trend.String(), Sentence: trend.Sentence()})
}

type createMeditationSessionRequest struct {
	Date            *time.Time `json:"date,omitempty"`
	Technique       string     `json:"technique"`
	DurationMinutes int32      `json:"duration_minutes"`
	Completion      float64    `json:"completion"`
	MoodBefore      int32      `json:"mood_before"`
	MoodAfter       int32      `json:"mood_after"`
}

func (s *APIV1Service) createMeditationSession(c echo.Context) error {
	var req createMeditationSessionRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}
	session := &store.MeditationSession{
		UserID:          userID(c),
		Technique:       req.Technique,
		DurationMinutes: req.DurationMinutes,
		Completion:      req.Completion,
		MoodBefore:      req.MoodBefore,
		MoodAfter:       req.MoodAfter,
	}
	if req.Date != nil {
		session.Date = *req.Date
	}
	appended, err := s.Memory.AppendMeditationSession(c.Request().Context(), session)
	if err != nil {
		return fail(c, err)
	}
	return created(c, appended)
}

type createTherapySessionRequest struct {
	Date       *time.Time             `json:"date,omitempty"`
	Topics     []string               `json:"topics,omitempty"`
	Techniques []string               `json:"techniques,omitempty"`
	Mood       int32                  `json:"mood"`
	Transcript []store.TherapyMessage `json:"transcript,omitempty"`
}

func (s *APIV1Service) createTherapySession(c echo.Context) error {
	var req createTherapySessionRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}
	session := &store.TherapySession{
		UserID:     userID(c),
		Topics:     req.Topics,
		Techniques: req.Techniques,
		Mood:       req.Mood,
		Transcript: req.Transcript,
	}
	if req.Date != nil {
		session.Date = *req.Date
	}
	appended, err := s.Memory.AppendTherapySession(c.Request().Context(), session)
	if err != nil {
		return fail(c, err)
	}
	return created(c, appended)
}

type createMoodSampleRequest struct {
	Date     *time.Time `json:"date,omitempty"`
	Mood     int32      `json:"mood"`
	Triggers []string   `json:"triggers,omitempty"`
}

func (s *APIV1Service) createMoodSample(c echo.Context) error {
	var req createMoodSampleRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, mwerrors.NewInvalidRecord("body", "malformed request body"))
	}
	sample := &store.MoodSample{
		UserID:   userID(c),
		Mood:     req.Mood,
		Triggers: req.Triggers,
	}
	if req.Date != nil {
		sample.Date = *req.Date
	}
	appended, err := s.Memory.AppendMoodSample(c.Request().Context(), sample)
	if err != nil {
		return fail(c, err)
	}
	return created(c, appended)
}

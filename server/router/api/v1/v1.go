// Package v1 exposes the memory and analytics services over the JSON HTTP
// contract: every response is a {success, data, error} envelope and every
// route requires a bearer token.
package v1

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindwell/mindwell/internal/cbt"
	"github.com/mindwell/mindwell/internal/memory"
	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/plugin/ai"
	"github.com/mindwell/mindwell/server/middleware"
	"github.com/mindwell/mindwell/store"
)

type APIV1Service struct {
	Profile    *profile.Profile
	Store      *store.Store
	Memory     *memory.Service
	Summarizer ai.Summarizer // nil when AI is disabled
	Estimator  cbt.Estimator

	logger      *slog.Logger
	rateLimiter *middleware.RateLimiter
}

// NewAPIV1Service wires the service layer for the API routes.
func NewAPIV1Service(p *profile.Profile, st *store.Store, mem *memory.Service, logger *slog.Logger) *APIV1Service {
	if logger == nil {
		logger = slog.Default()
	}
	service := &APIV1Service{
		Profile:     p,
		Store:       st,
		Memory:      mem,
		Summarizer:  ai.NewSummarizer(p),
		Estimator:   cbt.HeuristicEstimator{},
		logger:      logger,
		rateLimiter: middleware.NewRateLimiter(p.RateLimitRPS, p.RateLimitBurst),
	}
	if p.DemoJitter {
		service.Estimator = cbt.JitteredEstimator{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	return service
}

// RegisterRoutes mounts all v1 routes under /api/v1.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1", s.authMiddleware, s.rateLimitMiddleware)

	g.GET("/journal", s.listJournalEntries)
	g.POST("/journal", s.createJournalEntry)
	g.PUT("/journal/:uid", s.replaceJournalEntry)
	g.DELETE("/journal/:uid", s.deleteJournalEntry)

	g.POST("/meditation", s.createMeditationSession)
	g.POST("/therapy", s.createTherapySession)
	g.POST("/mood", s.createMoodSample)

	g.GET("/memory", s.getMemory)
	g.GET("/memory/context", s.getMemoryContext)
	g.GET("/memory/trend", s.getMoodTrend)

	g.GET("/cbt/thought-records", s.listThoughtRecords)
	g.POST("/cbt/thought-records", s.createThoughtRecord)
	g.POST("/cbt/mood", s.createCBTMoodEntry)
	g.GET("/cbt/progress", s.getCBTProgress)
	g.GET("/cbt/insights", s.getCBTInsights)
	g.POST("/cbt/insights/generate", s.generateCBTInsights)
	g.GET("/cbt/analytics", s.getCBTAnalytics)
}

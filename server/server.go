// Package server assembles the echo HTTP server over the memory store and
// the v1 API routes.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mindwell/mindwell/internal/memory"
	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/internal/sync"
	apiv1 "github.com/mindwell/mindwell/server/router/api/v1"
	"github.com/mindwell/mindwell/store"
)

type Server struct {
	echo    *echo.Echo
	profile *profile.Profile
	store   *store.Store
	logger  *slog.Logger
}

func NewServer(ctx context.Context, p *profile.Profile, st *store.Store, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"latency", time.Since(start),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	})

	s := &Server{
		echo:    e,
		profile: p,
		store:   st,
		logger:  logger,
	}

	e.GET("/healthz", s.healthz)

	var remote memory.RemoteSyncer
	if p.RemoteBaseURL != "" {
		remote = sync.NewClient(p.RemoteBaseURL, p.RemoteToken)
	}
	mem := memory.NewService(st, remote, logger)
	apiv1.NewAPIV1Service(p, st, mem, logger).RegisterRoutes(e)

	return s, nil
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.profile.Addr, s.profile.Port)
	s.logger.Info("starting http server", "addr", addr, "mode", s.profile.Mode)
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and closes the store.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("failed to shut down http server", "error", err)
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("failed to close store", "error", err)
	}
	s.logger.Info("server shut down")
}

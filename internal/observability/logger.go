// Package observability provides structured logging helpers for the server.
package observability

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// LogFieldRequestID is the field name for request ID.
	LogFieldRequestID = "request_id"
	// LogFieldUserID is the field name for user ID.
	LogFieldUserID = "user_id"
	// LogFieldDuration is the field name for duration in milliseconds.
	LogFieldDuration = "duration_ms"
	// LogFieldErrorCode is the field name for error code.
	LogFieldErrorCode = "error_code"
	// LogFieldCollection is the field name for the memory collection touched.
	LogFieldCollection = "collection"
	// LogFieldThemeCount is the field name for the number of derived themes.
	LogFieldThemeCount = "theme_count"
)

// NewLogger builds the process logger. Dev mode logs text at debug level,
// prod logs JSON at info level.
func NewLogger(dev bool) *slog.Logger {
	var handler slog.Handler
	if dev {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}

// RequestContext carries request-scoped fields for structured logging.
type RequestContext struct {
	RequestID string
	UserID    string
	StartTime time.Time
	Logger    *slog.Logger
}

// NewRequestContext creates a new request context with a generated request ID.
func NewRequestContext(logger *slog.Logger, userID string) *RequestContext {
	return &RequestContext{
		RequestID: generateRequestID(),
		UserID:    userID,
		StartTime: time.Now(),
		Logger:    logger,
	}
}

func (r *RequestContext) baseAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String(LogFieldRequestID, r.RequestID),
		slog.String(LogFieldUserID, r.UserID),
	}
}

// Info logs an info message with the request-scoped fields attached.
func (r *RequestContext) Info(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelInfo, msg, append(r.baseAttrs(), attrs...)...)
}

// Warn logs a warning message with the request-scoped fields attached.
func (r *RequestContext) Warn(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelWarn, msg, append(r.baseAttrs(), attrs...)...)
}

// Error logs an error message with the request-scoped fields attached.
func (r *RequestContext) Error(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelError, msg, append(r.baseAttrs(), attrs...)...)
}

// Elapsed returns the milliseconds since the request started.
func (r *RequestContext) Elapsed() int64 {
	return time.Since(r.StartTime).Milliseconds()
}

func generateRequestID() string {
	return uuid.New().String()
}

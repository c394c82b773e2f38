package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mwerrors "github.com/mindwell/mindwell/internal/errors"
)

// Response is the uniform JSON envelope for all API responses.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch mwerrors.CodeOf(err) {
	case mwerrors.ErrCodeInvalidRecord:
		status = http.StatusBadRequest
	case mwerrors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case mwerrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case mwerrors.ErrCodeRateLimitExceeded:
		status = http.StatusTooManyRequests
	case mwerrors.ErrCodeLLMUnavailable, mwerrors.ErrCodeServiceUnavailable:
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, Response{Success: false, Error: err.Error()})
}

package v1

import (
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	mwerrors "github.com/mindwell/mindwell/internal/errors"
	"github.com/mindwell/mindwell/store"
)

const (
	// TokenPrefixLen is how many leading characters of a token are stored in
	// clear for lookup; the full token is only stored as a bcrypt hash.
	TokenPrefixLen = 12

	userIDContextKey = "mindwell.user_id"
)

// userID returns the authenticated user id set by the auth middleware.
func userID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

// authMiddleware resolves the bearer token to a user id. Tokens are looked
// up by prefix and verified against their bcrypt hash.
func (s *APIV1Service) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || len(token) < TokenPrefixLen {
			return fail(c, mwerrors.New(mwerrors.ErrCodeUnauthorized, "missing or malformed bearer token"))
		}

		prefix := token[:TokenPrefixLen]
		candidates, err := s.Store.ListAccessTokens(c.Request().Context(), &store.FindAccessToken{TokenPrefix: &prefix})
		if err != nil {
			return fail(c, err)
		}
		for _, candidate := range candidates {
			if bcrypt.CompareHashAndPassword([]byte(candidate.TokenHash), []byte(token)) == nil {
				c.Set(userIDContextKey, candidate.UserID)
				return next(c)
			}
		}
		return fail(c, mwerrors.New(mwerrors.ErrCodeUnauthorized, "invalid token"))
	}
}

// rateLimitMiddleware applies the per-user limiter after authentication.
func (s *APIV1Service) rateLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.rateLimiter.Allow(userID(c)) {
			return fail(c, mwerrors.New(mwerrors.ErrCodeRateLimitExceeded, "too many requests"))
		}
		return next(c)
	}
}

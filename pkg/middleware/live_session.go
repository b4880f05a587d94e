package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/live"
)

// LiveSessionKey is the echo context key holding the resolved *live.Session
const LiveSessionKey = "live_session"

// SessionLookup resolves live sessions by id
type SessionLookup interface {
	Get(id string) (*live.Session, error)
}

// RequireLiveSession middleware: resolve :id to an open live session or answer 404
func RequireLiveSession(sessions SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Param("id"))
			if id == "" {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"error":   "invalid_argument",
					"message": "session id is required",
				})
			}
			session, err := sessions.Get(id)
			if err != nil {
				return c.JSON(http.StatusNotFound, map[string]interface{}{
					"error":   "live_session_not_found",
					"message": "Live session not found",
					"details": map[string]string{"session_id": id},
				})
			}
			c.Set(LiveSessionKey, session)
			return next(c)
		}
	}
}

// LiveSessionFrom returns the session stored by RequireLiveSession
func LiveSessionFrom(c echo.Context) (*live.Session, bool) {
	s, ok := c.Get(LiveSessionKey).(*live.Session)
	return s, ok
}

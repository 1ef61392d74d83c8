package session

import (
	"errors"
	"time"

	"eaglegym/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "eaglegym_session"
	contextKey = "session"
)

// Middleware attaches the visitor's session to the request, starting a new
// one when the cookie is missing, invalid or points at an evicted session.
func Middleware(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(CookieName); err == nil && token != "" {
			s, expiresAt, err := m.Lookup(token)
			if err == nil {
				if time.Until(expiresAt) < m.TTL()/2 {
					if renewed, err := m.Renew(s); err == nil {
						setCookie(c, renewed, m.TTL())
					}
				}
				c.Set(contextKey, s)
				c.Next()
				return
			}
			if !errors.Is(err, ErrSessionExpired) && !errors.Is(err, ErrTokenExpired) {
				logger.Debug("Discarding session cookie", "error", err)
			}
		}

		s, token, err := m.Create()
		if err != nil {
			logger.Error("Failed to create session", "error", err)
			c.JSON(500, gin.H{"error": "Failed to create session"})
			c.Abort()
			return
		}

		setCookie(c, token, m.TTL())
		c.Set(contextKey, s)
		c.Next()
	}
}

func setCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

func FromContext(c *gin.Context) (*Session, bool) {
	v, exists := c.Get(contextKey)
	if !exists {
		return nil, false
	}

	s, ok := v.(*Session)
	return s, ok
}

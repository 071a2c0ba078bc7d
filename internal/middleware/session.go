package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"readshelf-share/internal/session"
)

const sessionKey = "session"

// Session builds a per-request session from the bearer token or the session cookie.
// Invalid tokens leave the request signed out.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.New(m.verifier)

		if token := m.token(c); token != "" {
			if err := sess.Init(c.Request.Context(), token); err != nil {
				m.l.Debugf(c.Request.Context(), "middleware.Session: %v", err)
			}
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func (m Middleware) token(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie
	}
	return ""
}

// GetSession returns the request session, or a signed-out one if Session did not run.
func GetSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return session.New(nil)
}

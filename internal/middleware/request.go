package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"readshelf-share/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates or assigns a request id and stores it in the request context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog logs one line per request.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
		default:
			m.l.Infof(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
		}
	}
}

package middleware

import (
	"readshelf-share/internal/session"
	"readshelf-share/pkg/log"
)

// DefaultCookieName is the session cookie read when no Authorization header is sent.
const DefaultCookieName = "readshelf_token"

// Config holds the middleware tunables.
type Config struct {
	CookieName       string
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l          log.Logger
	verifier   session.Verifier
	cookieName string
	limiter    *rateLimiter
}

func New(l log.Logger, verifier session.Verifier, cfg Config) Middleware {
	cookie := cfg.CookieName
	if cookie == "" {
		cookie = DefaultCookieName
	}

	mw := Middleware{
		l:          l,
		verifier:   verifier,
		cookieName: cookie,
	}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}

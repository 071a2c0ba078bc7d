// Package session holds the signed-in user context of a single request or CLI run.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"readshelf-share/internal/model"
)

var (
	ErrNoToken = errors.New("session: no token")
	ErrExpired = errors.New("session: token expired")
)

// Verifier resolves a bearer token to its owner's profile.
type Verifier interface {
	Me(ctx context.Context, token string) (model.User, error)
}

// Session is the token and current user. The zero state is signed out.
type Session struct {
	verifier Verifier
	now      func() time.Time

	mu    sync.RWMutex
	token string
	user  *model.User
}

// New creates a signed-out session backed by v.
func New(v Verifier) *Session {
	return &Session{verifier: v, now: time.Now}
}

// Init hydrates the session from a persisted token. Tokens whose exp claim is
// already past are rejected without a backend call. Any failure leaves the
// session torn down.
func (s *Session) Init(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		s.Teardown()
		return ErrNoToken
	}

	if expired(token, s.now()) {
		s.Teardown()
		return ErrExpired
	}

	u, err := s.verifier.Me(ctx, token)
	if err != nil {
		s.Teardown()
		return fmt.Errorf("session: verify token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = &u
	s.mu.Unlock()
	return nil
}

// Teardown clears the token and user.
func (s *Session) Teardown() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// User returns the signed-in user, if any.
func (s *Session) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	_, ok := s.User()
	return ok
}

// Scope returns the request scope for the signed-in user. Signed out yields a zero Scope.
func (s *Session) Scope() model.Scope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.Scope{}
	}
	return model.Scope{UserID: s.user.ID, Token: s.token}
}

// expired reports whether token is a JWT whose exp is not after now.
// Opaque tokens are left to the backend.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

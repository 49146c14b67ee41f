package services

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reelkeep/reeldb/internal/types"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "admin_session"

// Sessions is the admin gate: one shared password, and opaque tokens with a
// fixed expiry issued on a successful login. There is no per-user identity;
// a valid unexpired token is the single admin capability.
type Sessions struct {
	password string
	ttl      time.Duration

	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry

	now func() time.Time
}

func NewSessions(password string, ttl time.Duration) *Sessions {
	return &Sessions{
		password: password,
		ttl:      ttl,
		tokens:   make(map[string]time.Time),
		now:      time.Now,
	}
}

// Login compares the submitted password in constant time and, on match,
// issues a new session token.
func (s *Sessions) Login(password string) (string, error) {
	if password == "" {
		return "", types.NewValidationError("Password is required", "catalog.validation.login")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", types.NewAuthorizationError("Invalid password", "catalog.authorization.login")
	}

	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.tokens[token] = s.now().Add(s.ttl)

	return token, nil
}

// Validate reports whether the token is a live admin session. Expired tokens
// are dropped on sight.
func (s *Sessions) Validate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Logout invalidates the token immediately. Unknown tokens are a no-op.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// TTL returns the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// sweepLocked drops expired tokens; callers hold s.mu.
func (s *Sessions) sweepLocked() {
	now := s.now()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
}

// Package session holds the bearer credential for the backend API as an
// explicit object instead of ambient global state.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

type State int

const (
	Anonymous State = iota
	Authenticated
	Expired
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	default:
		return "anonymous"
	}
}

// DefaultRole is assumed when the token carries no role claim.
const DefaultRole = "AGENCY"

// Session moves through anonymous -> authenticated -> expired/logged-out.
// Safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	state     State
	token     string
	role      string
	expiresAt time.Time
}

func New() *Session {
	return &Session{state: Anonymous}
}

// Establish stores the bearer token and reads the role and expiry claims out
// of it. The signature is not checked here; verification is the backend's
// job, the console only needs the claims for display and expiry handling.
func (s *Session) Establish(token string) {
	role := DefaultRole
	var expiresAt time.Time

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err == nil {
		if r, ok := claims["role"].(string); ok && r != "" {
			role = r
		}
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Authenticated
	s.token = token
	s.role = role
	s.expiresAt = expiresAt
}

// Token returns the bearer credential, or "" when not logged in.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return ""
	}
	return s.token
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return ""
	}
	return s.role
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LoggedIn reports whether the session holds a credential that has not
// passed its expiry claim.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return false
	}
	return s.expiresAt.IsZero() || time.Now().Before(s.expiresAt)
}

// Expire tears the session down after the backend rejected the credential.
// The token is dropped; the user must authenticate again.
func (s *Session) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Expired
	s.token = ""
	s.role = ""
}

// Clear returns the session to the anonymous state (explicit logout).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Anonymous
	s.token = ""
	s.role = ""
}

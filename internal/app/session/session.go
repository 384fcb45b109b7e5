// Package session holds the credentials and preferences of one signed-in
// user. A Session is created at login, shared by reference with the task
// client (as a credential source) and the presentation layer (for the
// theme), and ended at logout.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CredentialSource = (*Session)(nil)
	_ oauth2.TokenSource     = (*Session)(nil)
)

// ErrEnded is returned (wrapped in domain.ErrUnauthenticated) once End has
// been called.
var ErrEnded = errors.New("session ended")

type state struct {
	token    string
	expiry   time.Time
	darkMode bool
	ended    bool
}

// Session is safe for concurrent use. The controller and client only read
// from it.
type Session struct {
	username string
	now      func() time.Time
	state    guarded[state]
}

// Option configures a Session.
type Option func(*Session)

// WithDarkMode sets the initial theme preference.
func WithDarkMode(dark bool) Option {
	return func(s *Session) {
		s.state.val.darkMode = dark
	}
}

// WithClock overrides the time source used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates a session for the given bearer token. When the token is a JWT
// carrying an exp claim, its expiry is recorded so that an expired token is
// rejected before any request is sent. Opaque tokens are accepted as-is.
func New(username, token string, opts ...Option) *Session {
	s := &Session{
		username: username,
		now:      time.Now,
	}
	s.state.val.token = strings.TrimSpace(token)
	s.state.val.expiry = tokenExpiry(s.state.val.token)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Username returns the name the session was opened for. It may be empty when
// the session was built from a bare token.
func (s *Session) Username() string {
	return s.username
}

// BearerToken returns the current token. It fails with
// domain.ErrUnauthenticated when the session has ended, holds no token, or
// the token's exp claim has passed.
func (s *Session) BearerToken() (string, error) {
	st := s.state.get()

	switch {
	case st.ended:
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, ErrEnded)
	case st.token == "":
		return "", fmt.Errorf("%w: no token", domain.ErrUnauthenticated)
	case !st.expiry.IsZero() && !s.now().Before(st.expiry):
		return "", fmt.Errorf("%w: token expired at %s", domain.ErrUnauthenticated, st.expiry.Format(time.RFC3339))
	}

	return st.token, nil
}

// Token implements oauth2.TokenSource so the session can drive
// oauth2.Token.SetAuthHeader.
func (s *Session) Token() (*oauth2.Token, error) {
	tok, err := s.BearerToken()
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: tok,
		TokenType:   "Bearer",
		Expiry:      s.state.get().expiry,
	}, nil
}

// Active reports whether the session still has a usable token.
func (s *Session) Active() bool {
	_, err := s.BearerToken()
	return err == nil
}

// End invalidates the token. Subsequent BearerToken calls fail with
// domain.ErrUnauthenticated. End is idempotent.
func (s *Session) End() {
	s.state.update(func(st *state) {
		st.ended = true
		st.token = ""
	})
}

// DarkMode reports the current theme preference.
func (s *Session) DarkMode() bool {
	return s.state.get().darkMode
}

// SetDarkMode sets the theme preference.
func (s *Session) SetDarkMode(dark bool) {
	s.state.update(func(st *state) {
		st.darkMode = dark
	})
}

// ToggleDarkMode flips the theme preference and returns the new value.
func (s *Session) ToggleDarkMode() bool {
	var dark bool
	s.state.update(func(st *state) {
		st.darkMode = !st.darkMode
		dark = st.darkMode
	})
	return dark
}

// tokenExpiry reads the exp claim without verifying the signature. The
// server remains the authority on validity.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

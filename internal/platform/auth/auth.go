// Package auth issues and verifies the HS256 bearer tokens of the reference
// task API and hashes account passwords.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/platform/config"
)

const defaultTokenTTL = 24 * time.Hour

// Principal identifies the account behind a verified token.
type Principal struct {
	UserID   int64
	Username string
}

// claims are the token claims. The subject carries the user ID; the
// username travels in its own claim so handlers need no lookup.
type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies signed bearer tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewTokens creates a Tokens from the auth configuration.
func NewTokens(cfg config.AuthConfig) *Tokens {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Tokens{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		ttl:    ttl,
		now:    time.Now,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Issue signs a token for p that expires after the configured TTL.
func (t *Tokens) Issue(p Principal) (string, error) {
	now := t.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: p.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.UserID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})

	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, expiry and issuer of raw and returns its
// principal. Every failure wraps domain.ErrUnauthenticated.
func (t *Tokens) Verify(raw string) (Principal, error) {
	var c claims
	_, err := t.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return Principal{}, fmt.Errorf("%w: token expired", domain.ErrUnauthenticated)
		}
		return Principal{}, fmt.Errorf("%w: invalid token: %w", domain.ErrUnauthenticated, err)
	}

	if t.issuer != "" && !c.VerifyIssuer(t.issuer, true) {
		return Principal{}, fmt.Errorf("%w: unexpected issuer %q", domain.ErrUnauthenticated, c.Issuer)
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Principal{}, fmt.Errorf("%w: malformed subject", domain.ErrUnauthenticated)
	}
	return Principal{UserID: id, Username: c.Username}, nil
}

// FromAuthorizationHeader extracts and verifies a "Bearer <token>" header
// value.
func (t *Tokens) FromAuthorizationHeader(h string) (Principal, error) {
	if h == "" {
		return Principal{}, fmt.Errorf("%w: missing authorization header", domain.ErrUnauthenticated)
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return Principal{}, fmt.Errorf("%w: authorization header is not a bearer token", domain.ErrUnauthenticated)
	}
	return t.Verify(strings.TrimSpace(token))
}

type principalKey struct{}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
	"github.com/jsamuelsen11/tasksync/internal/platform/config"
)

func newTestTokens() *auth.Tokens {
	return auth.NewTokens(config.AuthConfig{
		JWTSecret: "middleware-test-secret",
		Issuer:    "tasksync-test",
		TokenTTL:  time.Hour,
	})
}

func TestAuth_ValidTokenSetsPrincipal(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens()
	raw, err := tokens.Issue(auth.Principal{UserID: 12, Username: "grace"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var got auth.Principal
	var found bool
	handler := middleware.Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = auth.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+raw)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !found || got.UserID != 12 || got.Username != "grace" {
		t.Errorf("principal = %+v (found %v), want user 12 grace", got, found)
	}
}

func TestAuth_RejectsMissingOrBadToken(t *testing.T) {
	t.Parallel()

	other := auth.NewTokens(config.AuthConfig{JWTSecret: "someone-else", Issuer: "tasksync-test"})
	forged, err := other.Issue(auth.Principal{UserID: 1, Username: "mallory"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic Zm9vOmJhcg=="},
		{"garbage", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := middleware.Auth(newTestTokens())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/tasks", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("next handler was called")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
		})
	}
}

package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// Requester centralizes the HTTP request lifecycle for ACL clients:
// credential lookup, request creation, JSON marshaling, execution via
// httpclient.Client, response body cleanup, 2xx validation, error
// translation, and JSON decoding.
//
// Every error it returns wraps one of the domain sentinels, so callers can
// classify failures with errors.Is or domain.KindOf.
type Requester struct {
	client *httpclient.Client
	tokens oauth2.TokenSource // nil for unauthenticated endpoints
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client. When
// creds is non-nil every request carries its bearer token, and a missing
// token fails the call before anything is sent.
func NewRequester(client *httpclient.Client, creds ports.CredentialSource, logger *slog.Logger) *Requester {
	return &Requester{client: client, tokens: tokenSource(creds), logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request, and decodes a
// 2xx response body into respBody (if non-nil). Non-2xx responses go through
// TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}

	return r.execute(req, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// BreakerState returns the circuit breaker state from the underlying HTTP
// client.
func (r *Requester) BreakerState() string {
	return r.client.BreakerState()
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	// The credential is checked first so an unauthenticated call never
	// reaches the network.
	var tok *oauth2.Token
	if r.tokens != nil {
		t, err := r.tokens.Token()
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				err = fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
			}
			return nil, err
		}
		tok = t
	}

	url := r.client.BaseURL() + path

	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != nil {
		tok.SetAuthHeader(req)
	}

	return req, nil
}

// closeBody drains and closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.Any("error", err),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). Translate the HTTP response
		// rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !isSuccess(resp.StatusCode) {
				return r.statusError(req, resp)
			}
		}
		r.logger.WarnContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if !isSuccess(resp.StatusCode) {
		return r.statusError(req, resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("%w: decoding response from %s %s: %w", domain.ErrDecode, req.Method, req.URL.Path, err)
		}
	}

	return nil
}

func (r *Requester) statusError(req *http.Request, resp *http.Response) error {
	translated := TranslateHTTPError(resp)
	r.logger.WarnContext(req.Context(), "unexpected status",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("kind", domain.KindOf(translated).String()),
	)
	return translated
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// credentialTokenSource adapts a ports.CredentialSource to oauth2.TokenSource.
type credentialTokenSource struct {
	creds ports.CredentialSource
}

func (s credentialTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.creds.BearerToken()
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

// tokenSource prefers the credential's own oauth2.TokenSource
// implementation so token expiry travels with the token.
func tokenSource(creds ports.CredentialSource) oauth2.TokenSource {
	if creds == nil {
		return nil
	}
	if ts, ok := creds.(oauth2.TokenSource); ok {
		return ts
	}
	return credentialTokenSource{creds: creds}
}

package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/platform/logging"
)

// spread is the jitter applied to each delay, as a fraction either side.
const spread = 0.25

// policy is the retry schedule: attempt n (1-based, counting retries only)
// waits base*factor^(n-1), capped at ceiling, then jittered by spread.
type policy struct {
	attempts int
	base     time.Duration
	ceiling  time.Duration
	factor   float64
}

func newPolicy(cfg config.RetryConfig) policy {
	return policy{
		attempts: cfg.MaxAttempts,
		base:     cfg.InitialInterval,
		ceiling:  cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
}

// budget is how many times a request with the given method may be sent.
func (p policy) budget(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return p.attempts
	default:
		return 1
	}
}

// nominal is the un-jittered delay before retry n.
func (p policy) nominal(n int) time.Duration {
	d := float64(p.base) * math.Pow(p.factor, float64(n-1))
	if d > float64(p.ceiling) {
		d = float64(p.ceiling)
	}
	return time.Duration(d)
}

// delay is nominal(n) moved by up to spread in either direction.
func (p policy) delay(n int) time.Duration {
	d := float64(p.nominal(n))
	d += d * spread * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// attempts sends req until it gets a response worth returning or the budget
// is spent. The body is buffered up front so every attempt replays it.
func (c *Client) attempts(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: retry.max_attempts must be at least 1, got %d", c.retry.attempts)
	}

	body, err := buffer(req)
	if err != nil {
		return nil, err
	}

	budget := c.retry.budget(req.Method)
	var last error
	for n := range budget {
		if n > 0 {
			if err := c.pause(ctx, req, n, budget, last); err != nil {
				return nil, err
			}
		}
		rewind(req, body)

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !transient(err) {
				return nil, err
			}
			last = err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		case n == budget-1:
			return resp, fmt.Errorf("HTTP %d from %s after %d attempts", resp.StatusCode, c.peer, budget)
		default:
			last = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
			discard(resp)
		}
	}
	return nil, last
}

func (c *Client) pause(ctx context.Context, req *http.Request, n, budget int, cause error) error {
	wait := c.retry.delay(n)
	logging.FromContext(ctx).WarnContext(ctx, "retrying request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", budget),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func buffer(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("buffering request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains resp so the connection can be reused by the next attempt.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// transient reports whether a transport error may succeed on another try.
// Cancellation and deadlines belong to the caller and are final.
func transient(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus covers throttling and every server error.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

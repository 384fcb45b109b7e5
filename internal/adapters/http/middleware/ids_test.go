package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
)

// ids captures what the ID middleware stored for one request.
type ids struct {
	request, correlation           string
	outboundReq, outboundCorrelate string
}

func serveIDs(t *testing.T, header http.Header) (ids, *httptest.ResponseRecorder) {
	t.Helper()

	var got ids
	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		got = ids{
			request:           middleware.RequestIDFromContext(ctx),
			correlation:       middleware.CorrelationIDFromContext(ctx),
			outboundReq:       httpclient.RequestIDFromContext(ctx),
			outboundCorrelate: httpclient.CorrelationIDFromContext(ctx),
		}
	})))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", http.NoBody)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	h.ServeHTTP(rec, req)
	return got, rec
}

func TestRequestID_AssignsUUID(t *testing.T) {
	t.Parallel()

	got, rec := serveIDs(t, nil)

	_, err := uuid.Parse(got.request)
	require.NoError(t, err)
	assert.Equal(t, got.request, rec.Header().Get(httpclient.HeaderRequestID))
	assert.Equal(t, got.request, got.outboundReq, "outbound calls reuse the request ID")
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	t.Parallel()

	got, rec := serveIDs(t, http.Header{httpclient.HeaderRequestID: {"req-123"}})

	assert.Equal(t, "req-123", got.request)
	assert.Equal(t, "req-123", rec.Header().Get(httpclient.HeaderRequestID))
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	got, rec := serveIDs(t, nil)

	assert.NotEmpty(t, got.correlation)
	assert.Equal(t, got.request, got.correlation)
	assert.Equal(t, got.correlation, rec.Header().Get(httpclient.HeaderCorrelationID))
}

func TestCorrelationID_KeepsClientAction(t *testing.T) {
	t.Parallel()

	got, rec := serveIDs(t, http.Header{
		httpclient.HeaderRequestID:     {"req-9"},
		httpclient.HeaderCorrelationID: {"toggle-action-1"},
	})

	assert.Equal(t, "req-9", got.request)
	assert.Equal(t, "toggle-action-1", got.correlation)
	assert.Equal(t, "toggle-action-1", got.outboundCorrelate)
	assert.Equal(t, "toggle-action-1", rec.Header().Get(httpclient.HeaderCorrelationID))
}

func TestIDs_EmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	assert.Empty(t, middleware.RequestIDFromContext(r.Context()))
	assert.Empty(t, middleware.CorrelationIDFromContext(r.Context()))
}

func TestIDs_RejectMalformedIncoming(t *testing.T) {
	t.Parallel()

	for name, value := range map[string]string{
		"too long":        strings.Repeat("a", 129),
		"control chars":   "abc\nlevel=ERROR",
		"embedded spaces": "two words",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, _ := serveIDs(t, http.Header{
				httpclient.HeaderRequestID:     {value},
				httpclient.HeaderCorrelationID: {value},
			})

			assert.NotEqual(t, value, got.request)
			_, err := uuid.Parse(got.request)
			require.NoError(t, err)
			assert.Equal(t, got.request, got.correlation)
		})
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
)

// maxIDLength bounds identifiers accepted from clients.
const maxIDLength = 128

// RequestIDFromContext returns the ID RequestID assigned, or "".
func RequestIDFromContext(ctx context.Context) string {
	return httpclient.RequestIDFromContext(ctx)
}

// CorrelationIDFromContext returns the ID CorrelationID assigned, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return httpclient.CorrelationIDFromContext(ctx)
}

// RequestID keeps a well-formed incoming X-Request-ID or assigns a UUID,
// and echoes it on the response. The ID is stored where httpclient reads
// it, so calls made while serving carry the same value.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := incomingID(r, httpclient.HeaderRequestID)
			if !ok {
				id = uuid.NewString()
			}
			w.Header().Set(httpclient.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(httpclient.WithRequestID(r.Context(), id)))
		})
	}
}

// CorrelationID keeps an incoming X-Correlation-ID. The task view sends one
// per user action so the write and the refresh it triggers can be matched
// in the logs. Without one the request ID stands in, so RequestID must run
// first.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := incomingID(r, httpclient.HeaderCorrelationID)
			if !ok {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(httpclient.HeaderCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(httpclient.WithCorrelationID(r.Context(), id)))
		})
	}
}

// incomingID returns the header value if it is short printable ASCII.
// Anything else is dropped so it cannot forge log lines.
func incomingID(r *http.Request, header string) (string, bool) {
	id := r.Header.Get(header)
	if id == "" || len(id) > maxIDLength {
		return "", false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return "", false
		}
	}
	return id, true
}

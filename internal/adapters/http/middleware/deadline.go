package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
)

// Deadline bounds each request to d. The handler runs on the caller's
// goroutine with a context that expires after d; the store passes that
// context to SQLite, so an expired request fails inside the query and the
// handler reports 504. A handler that ignores its context and writes
// nothing still gets a 504 once it returns. A d of zero or less disables
// the deadline.
func Deadline(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			if !rec.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				dto.WriteErrorResponse(rec, r, ctx.Err())
			}
		})
	}
}
